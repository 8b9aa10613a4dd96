package pullseq

import "context"

// filter is a Source that yields or discards upstream items based on a predicate
type filter[T any] struct {
	src  Source[T]
	pred Predicate[T]
	done bool
}

// Filter wraps a Source, yielding only the items for which the predicate
// is true. Rejected items are discarded and the upstream is pulled again
// within the same call, so a single external pull may perform several
// upstream pulls. A Suspended upstream outcome is returned immediately;
// Filter never spins waiting for readiness.
func Filter[T any](src Source[T], pred Predicate[T]) Source[T] {
	return &filter[T]{
		src:  src,
		pred: pred,
	}
}

// Pull pulls the upstream until it produces an accepted item, ends, fails,
// or suspends. End and Failed latch the adapter: no later pull touches the
// upstream again.
func (f *filter[T]) Pull(ctx context.Context) Outcome[T] {
	if f.done {
		return End[T]()
	}
	for {
		out := f.src.Pull(ctx)
		if out.IsSuspended() {
			return out
		}
		if out.IsEnd() {
			f.done = true
			return out
		}
		if out.Err() != nil {
			f.done = true
			return out
		}
		if v, ok := out.Item(); ok && f.pred(v) {
			return out
		}
	}
}
