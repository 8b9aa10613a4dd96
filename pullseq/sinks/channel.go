package sinks

import (
	"context"

	"github.com/elastiflow/pullstreams/errors"
	"github.com/elastiflow/pullstreams/pullseq"
)

type channelSink[T any] struct {
	sender chan<- T
	params Params
}

// ToChannel creates a new channelSink. Sink drives the source to End and
// forwards every item to the sender channel, waiting on the Waker across
// suspensions. The sender channel is not closed; it belongs to the caller.
func ToChannel[T any](sender chan<- T, params ...Params) pullseq.Sinker[T] {
	var p Params
	for _, param := range params {
		p = param
	}
	return &channelSink[T]{
		sender: sender,
		params: p,
	}
}

// Sink pulls the source until End, sending each item to the output channel.
func (p *channelSink[T]) Sink(ctx context.Context, src pullseq.Source[T], w pullseq.Waker) error {
	segment := p.params.SegmentName
	if segment == "" {
		segment = "channel_sink"
	}
	for {
		out := src.Pull(ctx)
		if out.IsEnd() {
			return nil
		}
		if err := out.Err(); err != nil {
			return errors.NewSegment(segment, err)
		}
		if out.IsSuspended() {
			if err := waitReady(ctx, w, segment); err != nil {
				return err
			}
			continue
		}
		v, _ := out.Item()
		select {
		case p.sender <- v:
		case <-ctx.Done():
			return errors.NewSegment(segment, ctx.Err())
		}
	}
}
