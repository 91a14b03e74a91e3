// Package weft provides compile-time-checked composition of typed processing
// nodes into linear and fan-out/fan-in transformation chains.
//
// Type Safety:
// Composition is verified entirely by the Go compiler:
//
//   - Pipe[In, Mid, Out] only accepts a source whose output type matches the
//     sink's input type. A mismatched chain does not compile.
//
//   - Group composites type their input and output as positional tuples of
//     the slot types, so a value can only enter the slot it was built for.
//
// There is no runtime graph object and no validation pass: the composed chain
// is a static nested value, and running it threads one input through that
// nesting exactly as written.
package weft

// Node is the core contract for a processing unit: consume a value of type
// In, produce a value of type Out. A node may hold mutable internal state,
// so repeated runs with the same input are not required to yield the same
// output. Run never reports failure; a node that cannot produce an Out must
// either panic or encode the failure in the Out type itself.
type Node[In, Out any] interface {
	Run(input In) Out
}

// Func adapts a plain function to the Node contract. Any value of shape
// func(In) Out is a node after a single conversion, with no wrapper type.
type Func[In, Out any] func(In) Out

// Run invokes the function.
func (f Func[In, Out]) Run(input In) Out {
	return f(input)
}

// pipe is the sequential composite: the source's output feeds the sink.
type pipe[In, Mid, Out any] struct {
	src  Node[In, Mid]
	sink Node[Mid, Out]
}

// Run hands the source's result directly to the sink. No buffering, no
// recovery: if either side blocks or panics, so does the composite.
func (p *pipe[In, Mid, Out]) Run(input In) Out {
	return p.sink.Run(p.src.Run(input))
}

// Pipe binds src and sink into one node whose input is src's input and whose
// output is sink's output. The intermediate type must agree, which the
// compiler enforces. The composite owns both sub-nodes; they must not be
// shared with another composite.
func Pipe[In, Mid, Out any](src Node[In, Mid], sink Node[Mid, Out]) Node[In, Out] {
	return &pipe[In, Mid, Out]{src: src, sink: sink}
}

// Logger provides structured logging for code layered on top of the core,
// such as the middleware package. The core itself never logs.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}
