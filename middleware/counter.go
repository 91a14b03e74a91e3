package middleware

import (
	"sync/atomic"

	"github.com/weftlabs/weft"
)

// Count holds an invocation count for a decorated node.
type Count struct {
	n atomic.Int64
}

// Value returns the number of completed runs.
func (c *Count) Value() int64 {
	return c.n.Load()
}

// Counter counts completed runs of the decorated node. The counter is safe
// to read from another goroutine even though the node itself is not.
func Counter[In, Out any](count *Count) Middleware[In, Out] {
	return func(node weft.Node[In, Out]) weft.Node[In, Out] {
		return &wrapped[In, Out]{
			run: func(input In) Out {
				output := node.Run(input)
				count.n.Add(1)
				return output
			},
		}
	}
}
