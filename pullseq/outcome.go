package pullseq

import "fmt"

type outcomeKind uint8

const (
	kindSuspended outcomeKind = iota
	kindItem
	kindEnd
	kindFailed
)

// Outcome is the result of a single pull attempt on a Source. Exactly one
// of the four variants holds: an item was produced, the sequence ended,
// the sequence is not ready yet, or the pull failed.
type Outcome[T any] struct {
	kind outcomeKind
	item T
	err  error
}

// ItemOf wraps a produced value in an Outcome.
func ItemOf[T any](v T) Outcome[T] {
	return Outcome[T]{kind: kindItem, item: v}
}

// End reports sequence exhaustion. Terminal: a well-behaved Source keeps
// returning End once it has ended.
func End[T any]() Outcome[T] {
	return Outcome[T]{kind: kindEnd}
}

// Suspended reports that no value is ready yet. The caller must wait for
// an external wake signal before pulling again.
func Suspended[T any]() Outcome[T] {
	return Outcome[T]{kind: kindSuspended}
}

// Fail wraps a pull failure in an Outcome. Failures travel in-band, not
// through a side channel, so control flow across suspension points stays
// uniform.
func Fail[T any](err error) Outcome[T] {
	return Outcome[T]{kind: kindFailed, err: err}
}

// Item returns the produced value and true if this outcome carries one.
func (o Outcome[T]) Item() (T, bool) {
	return o.item, o.kind == kindItem
}

// IsEnd reports whether the sequence is exhausted.
func (o Outcome[T]) IsEnd() bool {
	return o.kind == kindEnd
}

// IsSuspended reports whether the sequence was not ready.
func (o Outcome[T]) IsSuspended() bool {
	return o.kind == kindSuspended
}

// Err returns the pull failure, or nil for the other three variants.
func (o Outcome[T]) Err() error {
	return o.err
}

// String renders the outcome variant for diagnostics and test failures.
func (o Outcome[T]) String() string {
	switch o.kind {
	case kindItem:
		return fmt.Sprintf("Item(%v)", o.item)
	case kindEnd:
		return "End"
	case kindFailed:
		return fmt.Sprintf("Failed(%v)", o.err)
	default:
		return "Suspended"
	}
}
