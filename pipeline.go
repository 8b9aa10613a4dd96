package pullstreams

import (
	"context"
	"errors"

	"github.com/elastiflow/pullstreams/pullseq"
)

// ErrNoWaker is returned when a suspended source cannot be waited on
// because the pipeline was built without a Waker.
var ErrNoWaker = errors.New("source suspended but pipeline has no waker")

// Pipeline drives a composed pullseq.Source from ordinary blocking Go
// code. The adapters themselves never block; Pipeline is the collaborator
// that turns Suspended outcomes into waits on the externally-owned Waker.
type Pipeline[T any] struct {
	src   pullseq.Source[T]
	waker pullseq.Waker
}

// New constructs a new Pipeline over an already-composed Source. The waker
// is whatever wake arrangement the upstream resource owner provides; it
// may be nil for sources that never suspend.
func New[T any](src pullseq.Source[T], waker pullseq.Waker) *Pipeline[T] {
	return &Pipeline[T]{
		src:   src,
		waker: waker,
	}
}

// Next returns the next item from the pipeline, blocking across
// suspensions. It returns (zero, false, nil) when the sequence ends and
// (zero, false, err) when a pull fails or the context is done.
func (p *Pipeline[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	for {
		out := p.src.Pull(ctx)
		if v, ok := out.Item(); ok {
			return v, true, nil
		}
		if out.IsEnd() {
			return zero, false, nil
		}
		if err := out.Err(); err != nil {
			return zero, false, err
		}
		if p.waker == nil {
			return zero, false, ErrNoWaker
		}
		if err := p.waker.Wait(ctx); err != nil {
			return zero, false, err
		}
	}
}

// Collect drains the pipeline to End and returns every item in order.
func (p *Pipeline[T]) Collect(ctx context.Context) ([]T, error) {
	var items []T
	for {
		v, ok, err := p.Next(ctx)
		if err != nil {
			return items, err
		}
		if !ok {
			return items, nil
		}
		items = append(items, v)
	}
}

// ForEach applies fn to every item until End, a pull failure, or an error
// from fn.
func (p *Pipeline[T]) ForEach(ctx context.Context, fn func(T) error) error {
	for {
		v, ok, err := p.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}
