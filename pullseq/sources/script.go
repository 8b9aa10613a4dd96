package sources

import (
	"context"

	"github.com/elastiflow/pullstreams/pullseq"
)

// script is a source that replays a fixed sequence of outcomes
type script[T any] struct {
	outcomes []pullseq.Outcome[T]
	next     int
}

// FromOutcomes creates a Source that replays the given outcomes in order,
// one per pull, then yields End forever. Suspended entries are consumed
// like any other outcome, which makes this the natural way to script
// not-ready upstreams in tests and simulations.
func FromOutcomes[T any](outcomes ...pullseq.Outcome[T]) pullseq.Source[T] {
	return &script[T]{outcomes: outcomes}
}

// Pull replays the next scripted outcome.
func (s *script[T]) Pull(_ context.Context) pullseq.Outcome[T] {
	if s.next >= len(s.outcomes) {
		return pullseq.End[T]()
	}
	out := s.outcomes[s.next]
	s.next++
	return out
}
