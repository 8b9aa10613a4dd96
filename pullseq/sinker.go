package pullseq

import "context"

// Sinker is an interface that defines the Sink method. A Sinker drives a
// Source to End, waiting on the Waker whenever the source suspends.
type Sinker[T any] interface {
	Sink(ctx context.Context, src Source[T], w Waker) error
}
