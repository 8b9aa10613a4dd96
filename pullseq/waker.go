package pullseq

import "context"

// Waker is the externally-owned wake contract: after a Source returns
// Suspended, the driver waits on its Waker before pulling again. How the
// wake is produced belongs to whoever owns the underlying resource, not to
// this package's adapters.
type Waker interface {
	Wait(ctx context.Context) error
}

// WakerFunc adapts a plain function to the Waker interface.
type WakerFunc func(ctx context.Context) error

// Wait calls f(ctx).
func (f WakerFunc) Wait(ctx context.Context) error {
	return f(ctx)
}

// Signal is a level-triggered, one-slot Waker. Notify never blocks and
// coalesces with a pending notification; Wait consumes one notification or
// returns the context error.
type Signal struct {
	ch chan struct{}
}

// NewSignal creates a new Signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Notify records that the resource became ready. Safe to call from any
// goroutine.
func (s *Signal) Notify() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Wait blocks until a notification arrives or the context is done.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ch:
		return nil
	}
}
