package pullseq

import (
	"context"
	"sync"
)

// RecordStream is a Source that forwards upstream items unchanged while
// accumulating them in an ordered, append-only log. The log can be read at
// any time, including concurrently with in-flight pulls.
type RecordStream[T any] struct {
	src  Source[T]
	done bool

	mu  sync.Mutex
	log []T
}

// Record wraps a Source in a RecordStream.
func Record[T any](src Source[T]) *RecordStream[T] {
	return &RecordStream[T]{src: src}
}

// Pull pulls the upstream exactly once. An item is appended to the log and
// then yielded unchanged; End, Suspended, and Failed pass through with no
// log mutation.
func (r *RecordStream[T]) Pull(ctx context.Context) Outcome[T] {
	if r.done {
		return End[T]()
	}
	out := r.src.Pull(ctx)
	if out.IsEnd() || out.Err() != nil {
		r.done = true
		return out
	}
	if v, ok := out.Item(); ok {
		r.mu.Lock()
		r.log = append(r.log, v)
		r.mu.Unlock()
	}
	return out
}

// Recorded returns a snapshot copy of the log in emission order. Safe to
// call concurrently with Pull.
func (r *RecordStream[T]) Recorded() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make([]T, len(r.log))
	copy(snapshot, r.log)
	return snapshot
}

// Len returns the number of recorded items.
func (r *RecordStream[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.log)
}

// Reset discards all recorded items. The pull state is untouched.
func (r *RecordStream[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = nil
}
