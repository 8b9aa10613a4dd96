package bench

import (
	"context"
	"testing"

	"github.com/elastiflow/pullstreams"
	"github.com/elastiflow/pullstreams/pullseq"
	"github.com/elastiflow/pullstreams/pullseq/sources"
)

func intValues(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return values
}

func BenchmarkPipelineCollect(b *testing.B) {
	benchmarks := []struct {
		name  string
		build func(values []int) pullseq.Source[int]
	}{
		{
			name: "plain source",
			build: func(values []int) pullseq.Source[int] {
				return sources.FromSlice(values)
			},
		},
		{
			name: "filter half",
			build: func(values []int) pullseq.Source[int] {
				return pullseq.Filter(
					sources.FromSlice(values),
					func(v int) bool { return v%2 == 0 },
				)
			},
		},
		{
			name: "normalize",
			build: func(values []int) pullseq.Source[int] {
				return pullseq.Normalize(
					sources.FromSlice(values),
					func(v int) (int, error) { return v * 2, nil },
				)
			},
		},
		{
			name: "record",
			build: func(values []int) pullseq.Source[int] {
				return pullseq.Record(sources.FromSlice(values))
			},
		},
		{
			name: "filter+normalize+record",
			build: func(values []int) pullseq.Source[int] {
				return pullseq.Record(pullseq.Normalize(
					pullseq.Filter(
						sources.FromSlice(values),
						func(v int) bool { return v%2 == 0 },
					),
					func(v int) (int, error) { return v * 2, nil },
				))
			},
		},
	}

	values := intValues(1024)
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				pl := pullstreams.New(bm.build(values), nil)
				if _, err := pl.Collect(context.Background()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFilterPull(b *testing.B) {
	pred := func(v int) bool { return v%2 == 0 }
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f := pullseq.Filter(sources.FromSlice(intValues(256)), pred)
		for !f.Pull(context.Background()).IsEnd() {
		}
	}
}
