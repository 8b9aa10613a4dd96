package pullseq

import (
	"fmt"
	"strings"
)

// ErrorCode represents a generic pullseq ErrorCode
type ErrorCode int

const (
	NORMALIZE ErrorCode = iota
	SOURCE
	SINK
)

// String converts ErrorCode enum into a string value
func (w ErrorCode) String() string {
	return [...]string{
		"NORMALIZE",
		"SOURCE",
		"SINK",
	}[w]
}

// Message converts ErrorCode enum into a human-readable message
func (w ErrorCode) Message(msg string, segment string) string {
	return fmt.Sprintf(
		"pullseq %s error (code: %d segment: %s, message: %s)", w.String(), w, segment, msg,
	)
}

// Error defines a custom error type
type Error struct {
	Code    ErrorCode
	Segment string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Stage returns the segment that originated the error.
func (e *Error) Stage() string {
	return e.Segment
}

func newError(code ErrorCode, segment string, err error) error {
	return &Error{
		Code:    code,
		Segment: segment,
		Message: code.Message(err.Error(), segment),
		Cause:   err,
	}
}

func newNormalizeError(segment string, err error) error {
	return newError(NORMALIZE, segment, err)
}

// NewSourceError wraps a failure originating in a Source implementation.
func NewSourceError(segment string, err error) error {
	return newError(SOURCE, segment, err)
}

// NewSinkError wraps a failure originating in a Sinker implementation.
func NewSinkError(segment string, err error) error {
	return newError(SINK, segment, err)
}

func isError(err error, code ErrorCode) bool {
	return strings.Contains(
		err.Error(),
		fmt.Sprintf("pullseq %s error (code: %d", code.String(), code),
	)
}

// IsNormalizeError checks if the given error is a NORMALIZE error.
// It returns true if the error is a NORMALIZE error, otherwise false.
func IsNormalizeError(err error) bool {
	return isError(err, NORMALIZE)
}

// IsSourceError checks if the given error is a SOURCE error.
// It returns true if the error is a SOURCE error, otherwise false.
func IsSourceError(err error) bool {
	return isError(err, SOURCE)
}

// IsSinkError checks if the given error is a SINK error.
// It returns true if the error is a SINK error, otherwise false.
func IsSinkError(err error) bool {
	return isError(err, SINK)
}
