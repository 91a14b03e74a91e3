// Package middleware provides node decoration for cross-cutting concerns
// like logging, timing, and invocation counting. A decorated node satisfies
// the same typed contract as the node it wraps, so middleware can be applied
// at any point of a composition without changing the chain's types.
package middleware

import (
	"github.com/weftlabs/weft"
)

// Middleware modifies node behavior while preserving its input and output
// types.
type Middleware[In, Out any] func(weft.Node[In, Out]) weft.Node[In, Out]

// wrapped decorates a node's Run with an override. The override closes over
// the wrapped node and is responsible for invoking it.
type wrapped[In, Out any] struct {
	run func(In) Out
}

func (w *wrapped[In, Out]) Run(input In) Out {
	return w.run(input)
}

// Chain combines multiple middlewares into a single middleware.
// Middlewares are applied in reverse order (like function composition).
func Chain[In, Out any](middlewares ...Middleware[In, Out]) Middleware[In, Out] {
	return func(node weft.Node[In, Out]) weft.Node[In, Out] {
		for i := len(middlewares) - 1; i >= 0; i-- {
			node = middlewares[i](node)
		}
		return node
	}
}

// Apply applies middleware to a node.
func Apply[In, Out any](node weft.Node[In, Out], middlewares ...Middleware[In, Out]) weft.Node[In, Out] {
	for _, mw := range middlewares {
		node = mw(node)
	}
	return node
}
