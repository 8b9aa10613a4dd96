package errors

// Error is an error that knows which pipeline stage it came from.
type Error interface {
	error
	Stage() string
}

// SegmentError attributes an underlying error to a named segment.
type SegmentError struct {
	error
	segment string
}

// NewSegment wraps err with the segment that originated it.
func NewSegment(segment string, err error) *SegmentError {
	return &SegmentError{
		error:   err,
		segment: segment,
	}
}

// Stage returns the segment that originated the error.
func (e *SegmentError) Stage() string {
	return e.segment
}

// Unwrap exposes the underlying error for errors.Is / errors.As.
func (e *SegmentError) Unwrap() error {
	return e.error
}
