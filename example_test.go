package pullstreams_test

import (
	"context"
	"fmt"

	"github.com/elastiflow/pullstreams"
	"github.com/elastiflow/pullstreams/pullseq"
	"github.com/elastiflow/pullstreams/pullseq/sources"
)

// Example composes all three adapters: values fed through a channel are
// filtered, normalized, and recorded, with a Signal carrying the wake
// notifications across suspensions.
func Example() {
	in := make(chan int, 8)
	sig := pullseq.NewSignal()

	go func() {
		for i := 1; i <= 6; i++ {
			in <- i
			sig.Notify()
		}
		close(in)
		sig.Notify()
	}()

	audit := pullseq.Record(pullseq.Filter(
		sources.FromChannel(in),
		isEven,
	))
	labeled := pullseq.Normalize[int, string](audit, func(v int) (string, error) {
		return fmt.Sprintf("even: %d", v), nil
	})

	err := pullstreams.New(labeled, sig).ForEach(context.Background(), func(s string) error {
		fmt.Println(s)
		return nil
	})
	if err != nil {
		fmt.Println("pipeline error:", err)
		return
	}
	fmt.Println("audited:", audit.Recorded())

	// Output:
	// even: 2
	// even: 4
	// even: 6
	// audited: [2 4 6]
}
