package sources

import (
	"context"

	"github.com/elastiflow/pullstreams/pullseq"
)

type channelSource[T any] struct {
	receiver <-chan T
	params   Params
	done     bool
}

// FromChannel creates a new channelSource. A pull performs a non-blocking
// receive: a buffered value yields Item, a closed channel yields End, an
// empty channel yields Suspended. The sender owns the wake arrangement —
// typically a pullseq.Signal notified after each send.
func FromChannel[T any](rec <-chan T, params ...Params) pullseq.Source[T] {
	var p Params
	for _, param := range params {
		p = param
	}
	return &channelSource[T]{
		receiver: rec,
		params:   p,
	}
}

// Pull receives the next buffered value without blocking.
func (p *channelSource[T]) Pull(ctx context.Context) pullseq.Outcome[T] {
	if p.done {
		return pullseq.End[T]()
	}
	if err := ctx.Err(); err != nil {
		p.done = true
		return pullseq.Fail[T](pullseq.NewSourceError(p.params.SegmentName, err))
	}
	select {
	case v, ok := <-p.receiver:
		if !ok {
			p.done = true
			return pullseq.End[T]()
		}
		return pullseq.ItemOf(v)
	default:
		return pullseq.Suspended[T]()
	}
}
