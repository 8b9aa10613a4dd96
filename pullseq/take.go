package pullseq

import "context"

// take is a Source that yields at most n upstream items
type take[T any] struct {
	src  Source[T]
	left int
}

// Take wraps a Source, yielding its first n items and then End. Once the
// quota is reached the upstream is never pulled again.
func Take[T any](src Source[T], n int) Source[T] {
	return &take[T]{src: src, left: n}
}

func (t *take[T]) Pull(ctx context.Context) Outcome[T] {
	if t.left <= 0 {
		return End[T]()
	}
	out := t.src.Pull(ctx)
	if out.IsEnd() || out.Err() != nil {
		t.left = 0
		return out
	}
	if _, ok := out.Item(); ok {
		t.left--
	}
	return out
}
