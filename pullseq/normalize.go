package pullseq

import "context"

// normalize is a Source that maps each upstream item through a transform
type normalize[T any, U any] struct {
	src    Source[T]
	f      Transform[T, U]
	params Params
	done   bool
}

// Normalize wraps a Source, yielding the transformed value of each
// upstream item. It pulls the upstream exactly once per call; End and
// Suspended pass through unchanged. A transform failure surfaces as a
// Failed outcome carrying a NORMALIZE Error and latches the adapter.
func Normalize[T any, U any](src Source[T], f Transform[T, U], params ...Params) Source[U] {
	return &normalize[T, U]{
		src:    src,
		f:      f,
		params: applyParams(params...),
	}
}

func (n *normalize[T, U]) Pull(ctx context.Context) Outcome[U] {
	if n.done {
		return End[U]()
	}
	out := n.src.Pull(ctx)
	if out.IsSuspended() {
		return Suspended[U]()
	}
	if out.IsEnd() {
		n.done = true
		return End[U]()
	}
	if err := out.Err(); err != nil {
		n.done = true
		return Fail[U](err)
	}
	v, _ := out.Item()
	u, err := n.f(v)
	if err != nil {
		n.done = true
		return Fail[U](newNormalizeError(n.params.SegmentName, err))
	}
	return ItemOf(u)
}
