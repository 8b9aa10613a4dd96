package pullseq_test

import (
	"context"

	"github.com/elastiflow/pullstreams/pullseq"
)

// countingSource wraps a Source and counts upstream pulls.
type countingSource[T any] struct {
	src   pullseq.Source[T]
	pulls int
}

func (c *countingSource[T]) Pull(ctx context.Context) pullseq.Outcome[T] {
	c.pulls++
	return c.src.Pull(ctx)
}

// drain pulls src until End or Failed, returning every outcome seen
// (including Suspended entries) as strings for easy comparison.
func drain[T any](src pullseq.Source[T], maxPulls int) []string {
	var got []string
	for i := 0; i < maxPulls; i++ {
		out := src.Pull(context.Background())
		got = append(got, out.String())
		if out.IsEnd() || out.Err() != nil {
			return got
		}
	}
	return got
}
