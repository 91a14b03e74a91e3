package middleware

import (
	"time"

	"github.com/weftlabs/weft"
)

// Timing records the wall-clock duration of each Run. The record callback
// receives the node name and the elapsed time; it runs on the same goroutine
// as the node, after the run completes.
func Timing[In, Out any](name string, record func(name string, d time.Duration)) Middleware[In, Out] {
	return func(node weft.Node[In, Out]) weft.Node[In, Out] {
		return &wrapped[In, Out]{
			run: func(input In) Out {
				start := time.Now()
				output := node.Run(input)
				record(name, time.Since(start))
				return output
			},
		}
	}
}
