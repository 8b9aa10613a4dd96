package sinks

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/elastiflow/pullstreams/errors"
	"github.com/elastiflow/pullstreams/pullseq"
)

// Collector is a sink that accumulates every item of a source in memory.
// It is designed to be used as a terminal stage when the whole sequence is
// wanted at once, for example in tests or batch jobs.
type Collector[T any] struct {
	params Params

	mu    sync.Mutex
	items []T
}

// NewCollector creates and returns a new Collector.
func NewCollector[T any](params ...Params) *Collector[T] {
	var p Params
	for _, param := range params {
		p = param
	}
	return &Collector[T]{params: p}
}

// Sink pulls the source until End, appending each item to the collection.
// A Failed outcome aborts the collection; items gathered before the
// failure remain readable through Items.
func (c *Collector[T]) Sink(ctx context.Context, src pullseq.Source[T], w pullseq.Waker) error {
	segment := c.params.SegmentName
	if segment == "" {
		segment = "collector"
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
		c.mu.Lock()
		c.items = append(c.items, v)
		c.mu.Unlock()
	}
}

// Items returns a snapshot copy of the collected items in arrival order.
func (c *Collector[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]T, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

// waitReady blocks on the Waker after a Suspended outcome. A sink driving
// a suspendable source without a waker cannot make progress, so that case
// is an error rather than a spin.
func waitReady(ctx context.Context, w pullseq.Waker, segment string) error {
	if w == nil {
		return pullseq.NewSinkError(segment, stderrors.New("source suspended but no waker was provided"))
	}
	if err := w.Wait(ctx); err != nil {
		return pullseq.NewSinkError(segment, err)
	}
	return nil
}
