package pullseq

import "context"

// Source is an interface that defines the Pull method.
//
// Pull never blocks: a Source that has no value ready returns a Suspended
// outcome and expects to be pulled again after an external wake signal.
// Pulling again after Suspended is always safe. Pulling again after End is
// outside the contract; the adapters in this package guard themselves with
// an internal exhausted flag rather than relying on upstream good behavior.
//
// A Source instance serves a single logical consumer: a Pull must run to
// completion before the next Pull on the same instance begins.
type Source[T any] interface {
	Pull(ctx context.Context) Outcome[T]
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc[T any] func(ctx context.Context) Outcome[T]

// Pull calls f(ctx).
func (f SourceFunc[T]) Pull(ctx context.Context) Outcome[T] {
	return f(ctx)
}
