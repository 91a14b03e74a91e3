package weft

// Chain is the declarative construction surface. It accumulates a composite
// node stage by stage:
//
//	c := weft.Start(parse)
//	c2 := weft.Then(c, split)
//	c3 := weft.FanOut2(c2, double, negate)
//	out := weft.Then(c3, join).Run(input)
//
// Each step is pure construction-time sugar: Then(c, n) builds exactly
// Pipe(c.node, n), and FanOutK builds exactly Pipe(c.node, GroupK(...)).
// The stages are package-level functions rather than methods because a
// method cannot introduce the type parameters a new stage needs; the
// compiler still checks every joint.
type Chain[In, Out any] struct {
	node Node[In, Out]
}

// Start begins a chain at the given node.
func Start[In, Out any](node Node[In, Out]) Chain[In, Out] {
	return Chain[In, Out]{node: node}
}

// StartFunc begins a chain at a plain function.
func StartFunc[In, Out any](fn func(In) Out) Chain[In, Out] {
	return Chain[In, Out]{node: Func[In, Out](fn)}
}

// Node returns the composed node built so far.
func (c Chain[In, Out]) Node() Node[In, Out] {
	return c.node
}

// Run executes the composed node on a single input.
func (c Chain[In, Out]) Run(input In) Out {
	return c.node.Run(input)
}

// Then pipes the chain's output into the next node.
func Then[In, Mid, Out any](c Chain[In, Mid], next Node[Mid, Out]) Chain[In, Out] {
	return Chain[In, Out]{node: Pipe(c.node, next)}
}

// ThenFunc pipes the chain's output into a plain function.
func ThenFunc[In, Mid, Out any](c Chain[In, Mid], fn func(Mid) Out) Chain[In, Out] {
	return Then(c, Func[Mid, Out](fn))
}

// FanOut1 appends a one-slot group stage.
func FanOut1[In, I1, O1 any](c Chain[In, Tuple1[I1]], n1 Node[I1, O1]) Chain[In, Tuple1[O1]] {
	return Chain[In, Tuple1[O1]]{node: Pipe(c.node, Group1(n1))}
}

// FanOut2 appends a two-slot group stage: the chain must currently produce a
// Tuple2 whose slots match the sub-nodes' inputs.
func FanOut2[In, I1, I2, O1, O2 any](
	c Chain[In, Tuple2[I1, I2]], n1 Node[I1, O1], n2 Node[I2, O2],
) Chain[In, Tuple2[O1, O2]] {
	return Chain[In, Tuple2[O1, O2]]{node: Pipe(c.node, Group2(n1, n2))}
}

// FanOut3 appends a three-slot group stage.
func FanOut3[In, I1, I2, I3, O1, O2, O3 any](
	c Chain[In, Tuple3[I1, I2, I3]], n1 Node[I1, O1], n2 Node[I2, O2], n3 Node[I3, O3],
) Chain[In, Tuple3[O1, O2, O3]] {
	return Chain[In, Tuple3[O1, O2, O3]]{node: Pipe(c.node, Group3(n1, n2, n3))}
}

// FanOut4 appends a four-slot group stage.
func FanOut4[In, I1, I2, I3, I4, O1, O2, O3, O4 any](
	c Chain[In, Tuple4[I1, I2, I3, I4]], n1 Node[I1, O1], n2 Node[I2, O2], n3 Node[I3, O3], n4 Node[I4, O4],
) Chain[In, Tuple4[O1, O2, O3, O4]] {
	return Chain[In, Tuple4[O1, O2, O3, O4]]{node: Pipe(c.node, Group4(n1, n2, n3, n4))}
}

// FanOut5 appends a five-slot group stage.
func FanOut5[In, I1, I2, I3, I4, I5, O1, O2, O3, O4, O5 any](
	c Chain[In, Tuple5[I1, I2, I3, I4, I5]],
	n1 Node[I1, O1], n2 Node[I2, O2], n3 Node[I3, O3], n4 Node[I4, O4], n5 Node[I5, O5],
) Chain[In, Tuple5[O1, O2, O3, O4, O5]] {
	return Chain[In, Tuple5[O1, O2, O3, O4, O5]]{node: Pipe(c.node, Group5(n1, n2, n3, n4, n5))}
}

// FanOut6 appends a six-slot group stage.
func FanOut6[In, I1, I2, I3, I4, I5, I6, O1, O2, O3, O4, O5, O6 any](
	c Chain[In, Tuple6[I1, I2, I3, I4, I5, I6]],
	n1 Node[I1, O1], n2 Node[I2, O2], n3 Node[I3, O3], n4 Node[I4, O4], n5 Node[I5, O5], n6 Node[I6, O6],
) Chain[In, Tuple6[O1, O2, O3, O4, O5, O6]] {
	return Chain[In, Tuple6[O1, O2, O3, O4, O5, O6]]{node: Pipe(c.node, Group6(n1, n2, n3, n4, n5, n6))}
}

// FanOut7 appends a seven-slot group stage.
func FanOut7[In, I1, I2, I3, I4, I5, I6, I7, O1, O2, O3, O4, O5, O6, O7 any](
	c Chain[In, Tuple7[I1, I2, I3, I4, I5, I6, I7]],
	n1 Node[I1, O1], n2 Node[I2, O2], n3 Node[I3, O3], n4 Node[I4, O4], n5 Node[I5, O5], n6 Node[I6, O6], n7 Node[I7, O7],
) Chain[In, Tuple7[O1, O2, O3, O4, O5, O6, O7]] {
	return Chain[In, Tuple7[O1, O2, O3, O4, O5, O6, O7]]{node: Pipe(c.node, Group7(n1, n2, n3, n4, n5, n6, n7))}
}

// FanOut8 appends an eight-slot group stage, the maximum arity.
func FanOut8[In, I1, I2, I3, I4, I5, I6, I7, I8, O1, O2, O3, O4, O5, O6, O7, O8 any](
	c Chain[In, Tuple8[I1, I2, I3, I4, I5, I6, I7, I8]],
	n1 Node[I1, O1], n2 Node[I2, O2], n3 Node[I3, O3], n4 Node[I4, O4], n5 Node[I5, O5], n6 Node[I6, O6], n7 Node[I7, O7], n8 Node[I8, O8],
) Chain[In, Tuple8[O1, O2, O3, O4, O5, O6, O7, O8]] {
	return Chain[In, Tuple8[O1, O2, O3, O4, O5, O6, O7, O8]]{node: Pipe(c.node, Group8(n1, n2, n3, n4, n5, n6, n7, n8))}
}
