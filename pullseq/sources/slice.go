package sources

import (
	"context"

	"github.com/elastiflow/pullstreams/pullseq"
)

// slice is a source that yields the values of a slice in order
type slice[T any] struct {
	values []T
	next   int
	done   bool
}

// FromSlice creates a new Source backed by an in-memory slice. Every value
// is always ready, so the source never suspends; after the last value it
// yields End on every pull.
func FromSlice[T any](values []T) pullseq.Source[T] {
	return &slice[T]{values: values}
}

// Pull yields the next value or End.
func (s *slice[T]) Pull(_ context.Context) pullseq.Outcome[T] {
	if s.done || s.next >= len(s.values) {
		s.done = true
		return pullseq.End[T]()
	}
	v := s.values[s.next]
	s.next++
	return pullseq.ItemOf(v)
}
