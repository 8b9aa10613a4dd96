// Package pullstreams provides composable adapters over pull-based
// asynchronous sequences.
//
// The core contract lives in the pullseq package: a Source is pulled for
// one Outcome at a time, and an Outcome is either an item, the end of the
// sequence, a failure, or a Suspended marker meaning "not ready yet, wait
// for a wake signal and pull again". Adapters (Filter, Normalize, Record,
// Take) both consume and implement that contract, so pipelines compose by
// structural nesting. Waiting never happens inside an adapter; it is the
// job of a driver such as Pipeline or a pullseq.Sinker, coordinated with
// an externally-owned Waker.
//
// Below is an example of an application filtering and normalizing values
// fed through a channel by a producer goroutine:
//
//	package yourpipeline
//
//	import (
//		"context"
//		"fmt"
//
//		"github.com/elastiflow/pullstreams"
//		"github.com/elastiflow/pullstreams/pullseq"
//		"github.com/elastiflow/pullstreams/pullseq/sources"
//	)
//
//	func Run(ctx context.Context) error {
//		in := make(chan int, 16)
//		sig := pullseq.NewSignal()
//
//		go func() { // Producer owns the wake arrangement
//			for i := 0; i < 10; i++ {
//				in <- i
//				sig.Notify()
//			}
//			close(in)
//			sig.Notify() // Wake the consumer for the close as well
//		}()
//
//		evens := pullseq.Filter(
//			sources.FromChannel(in),
//			func(v int) bool { return v%2 == 0 },
//		)
//		labeled := pullseq.Normalize(evens, func(v int) (string, error) {
//			return fmt.Sprintf("even: %d", v), nil
//		})
//
//		return pullstreams.New(labeled, sig).ForEach(ctx, func(s string) error {
//			fmt.Println(s)
//			return nil
//		})
//	}
package pullstreams
