package weft

// Fan-out/fan-in composites. GroupN binds N sub-nodes into one node whose
// input and output are N-tuples, each slot handled by the sub-node in the
// same position. Slots run strictly left to right, one at a time, never
// concurrently; each Run body sequences the slot calls as separate
// statements so the order is pinned by the code, not by evaluation rules.
// A panic in one slot aborts the whole group with earlier slots' effects
// applied and later slots unexecuted.
//
// MaxArity is a hard limit. Larger fan-outs need either another enumerated
// arity here or the homogeneous GroupSlice form in dynamic.go.

// MaxArity is the largest number of slots a group composite supports.
const MaxArity = 8

type group1[I1, O1 any] struct {
	n1 Node[I1, O1]
}

func (g *group1[I1, O1]) Run(input Tuple1[I1]) Tuple1[O1] {
	var out Tuple1[O1]
	out.V1 = g.n1.Run(input.V1)
	return out
}

// Group1 binds a single node into a one-slot group. Degenerate but kept so
// every arity from 1 through MaxArity is constructible.
func Group1[I1, O1 any](n1 Node[I1, O1]) Node[Tuple1[I1], Tuple1[O1]] {
	return &group1[I1, O1]{n1: n1}
}

type group2[I1, I2, O1, O2 any] struct {
	n1 Node[I1, O1]
	n2 Node[I2, O2]
}

func (g *group2[I1, I2, O1, O2]) Run(input Tuple2[I1, I2]) Tuple2[O1, O2] {
	var out Tuple2[O1, O2]
	out.V1 = g.n1.Run(input.V1)
	out.V2 = g.n2.Run(input.V2)
	return out
}

// Group2 binds two nodes into a two-slot group.
func Group2[I1, I2, O1, O2 any](n1 Node[I1, O1], n2 Node[I2, O2]) Node[Tuple2[I1, I2], Tuple2[O1, O2]] {
	return &group2[I1, I2, O1, O2]{n1: n1, n2: n2}
}

type group3[I1, I2, I3, O1, O2, O3 any] struct {
	n1 Node[I1, O1]
	n2 Node[I2, O2]
	n3 Node[I3, O3]
}

func (g *group3[I1, I2, I3, O1, O2, O3]) Run(input Tuple3[I1, I2, I3]) Tuple3[O1, O2, O3] {
	var out Tuple3[O1, O2, O3]
	out.V1 = g.n1.Run(input.V1)
	out.V2 = g.n2.Run(input.V2)
	out.V3 = g.n3.Run(input.V3)
	return out
}

// Group3 binds three nodes into a three-slot group.
func Group3[I1, I2, I3, O1, O2, O3 any](
	n1 Node[I1, O1], n2 Node[I2, O2], n3 Node[I3, O3],
) Node[Tuple3[I1, I2, I3], Tuple3[O1, O2, O3]] {
	return &group3[I1, I2, I3, O1, O2, O3]{n1: n1, n2: n2, n3: n3}
}

type group4[I1, I2, I3, I4, O1, O2, O3, O4 any] struct {
	n1 Node[I1, O1]
	n2 Node[I2, O2]
	n3 Node[I3, O3]
	n4 Node[I4, O4]
}

func (g *group4[I1, I2, I3, I4, O1, O2, O3, O4]) Run(input Tuple4[I1, I2, I3, I4]) Tuple4[O1, O2, O3, O4] {
	var out Tuple4[O1, O2, O3, O4]
	out.V1 = g.n1.Run(input.V1)
	out.V2 = g.n2.Run(input.V2)
	out.V3 = g.n3.Run(input.V3)
	out.V4 = g.n4.Run(input.V4)
	return out
}

// Group4 binds four nodes into a four-slot group.
func Group4[I1, I2, I3, I4, O1, O2, O3, O4 any](
	n1 Node[I1, O1], n2 Node[I2, O2], n3 Node[I3, O3], n4 Node[I4, O4],
) Node[Tuple4[I1, I2, I3, I4], Tuple4[O1, O2, O3, O4]] {
	return &group4[I1, I2, I3, I4, O1, O2, O3, O4]{n1: n1, n2: n2, n3: n3, n4: n4}
}

type group5[I1, I2, I3, I4, I5, O1, O2, O3, O4, O5 any] struct {
	n1 Node[I1, O1]
	n2 Node[I2, O2]
	n3 Node[I3, O3]
	n4 Node[I4, O4]
	n5 Node[I5, O5]
}

func (g *group5[I1, I2, I3, I4, I5, O1, O2, O3, O4, O5]) Run(
	input Tuple5[I1, I2, I3, I4, I5],
) Tuple5[O1, O2, O3, O4, O5] {
	var out Tuple5[O1, O2, O3, O4, O5]
	out.V1 = g.n1.Run(input.V1)
	out.V2 = g.n2.Run(input.V2)
	out.V3 = g.n3.Run(input.V3)
	out.V4 = g.n4.Run(input.V4)
	out.V5 = g.n5.Run(input.V5)
	return out
}

// Group5 binds five nodes into a five-slot group.
func Group5[I1, I2, I3, I4, I5, O1, O2, O3, O4, O5 any](
	n1 Node[I1, O1], n2 Node[I2, O2], n3 Node[I3, O3], n4 Node[I4, O4], n5 Node[I5, O5],
) Node[Tuple5[I1, I2, I3, I4, I5], Tuple5[O1, O2, O3, O4, O5]] {
	return &group5[I1, I2, I3, I4, I5, O1, O2, O3, O4, O5]{n1: n1, n2: n2, n3: n3, n4: n4, n5: n5}
}

type group6[I1, I2, I3, I4, I5, I6, O1, O2, O3, O4, O5, O6 any] struct {
	n1 Node[I1, O1]
	n2 Node[I2, O2]
	n3 Node[I3, O3]
	n4 Node[I4, O4]
	n5 Node[I5, O5]
	n6 Node[I6, O6]
}

func (g *group6[I1, I2, I3, I4, I5, I6, O1, O2, O3, O4, O5, O6]) Run(
	input Tuple6[I1, I2, I3, I4, I5, I6],
) Tuple6[O1, O2, O3, O4, O5, O6] {
	var out Tuple6[O1, O2, O3, O4, O5, O6]
	out.V1 = g.n1.Run(input.V1)
	out.V2 = g.n2.Run(input.V2)
	out.V3 = g.n3.Run(input.V3)
	out.V4 = g.n4.Run(input.V4)
	out.V5 = g.n5.Run(input.V5)
	out.V6 = g.n6.Run(input.V6)
	return out
}

// Group6 binds six nodes into a six-slot group.
func Group6[I1, I2, I3, I4, I5, I6, O1, O2, O3, O4, O5, O6 any](
	n1 Node[I1, O1], n2 Node[I2, O2], n3 Node[I3, O3], n4 Node[I4, O4], n5 Node[I5, O5], n6 Node[I6, O6],
) Node[Tuple6[I1, I2, I3, I4, I5, I6], Tuple6[O1, O2, O3, O4, O5, O6]] {
	return &group6[I1, I2, I3, I4, I5, I6, O1, O2, O3, O4, O5, O6]{
		n1: n1, n2: n2, n3: n3, n4: n4, n5: n5, n6: n6,
	}
}

type group7[I1, I2, I3, I4, I5, I6, I7, O1, O2, O3, O4, O5, O6, O7 any] struct {
	n1 Node[I1, O1]
	n2 Node[I2, O2]
	n3 Node[I3, O3]
	n4 Node[I4, O4]
	n5 Node[I5, O5]
	n6 Node[I6, O6]
	n7 Node[I7, O7]
}

func (g *group7[I1, I2, I3, I4, I5, I6, I7, O1, O2, O3, O4, O5, O6, O7]) Run(
	input Tuple7[I1, I2, I3, I4, I5, I6, I7],
) Tuple7[O1, O2, O3, O4, O5, O6, O7] {
	var out Tuple7[O1, O2, O3, O4, O5, O6, O7]
	out.V1 = g.n1.Run(input.V1)
	out.V2 = g.n2.Run(input.V2)
	out.V3 = g.n3.Run(input.V3)
	out.V4 = g.n4.Run(input.V4)
	out.V5 = g.n5.Run(input.V5)
	out.V6 = g.n6.Run(input.V6)
	out.V7 = g.n7.Run(input.V7)
	return out
}

// Group7 binds seven nodes into a seven-slot group.
func Group7[I1, I2, I3, I4, I5, I6, I7, O1, O2, O3, O4, O5, O6, O7 any](
	n1 Node[I1, O1], n2 Node[I2, O2], n3 Node[I3, O3], n4 Node[I4, O4], n5 Node[I5, O5], n6 Node[I6, O6], n7 Node[I7, O7],
) Node[Tuple7[I1, I2, I3, I4, I5, I6, I7], Tuple7[O1, O2, O3, O4, O5, O6, O7]] {
	return &group7[I1, I2, I3, I4, I5, I6, I7, O1, O2, O3, O4, O5, O6, O7]{
		n1: n1, n2: n2, n3: n3, n4: n4, n5: n5, n6: n6, n7: n7,
	}
}

type group8[I1, I2, I3, I4, I5, I6, I7, I8, O1, O2, O3, O4, O5, O6, O7, O8 any] struct {
	n1 Node[I1, O1]
	n2 Node[I2, O2]
	n3 Node[I3, O3]
	n4 Node[I4, O4]
	n5 Node[I5, O5]
	n6 Node[I6, O6]
	n7 Node[I7, O7]
	n8 Node[I8, O8]
}

func (g *group8[I1, I2, I3, I4, I5, I6, I7, I8, O1, O2, O3, O4, O5, O6, O7, O8]) Run(
	input Tuple8[I1, I2, I3, I4, I5, I6, I7, I8],
) Tuple8[O1, O2, O3, O4, O5, O6, O7, O8] {
	var out Tuple8[O1, O2, O3, O4, O5, O6, O7, O8]
	out.V1 = g.n1.Run(input.V1)
	out.V2 = g.n2.Run(input.V2)
	out.V3 = g.n3.Run(input.V3)
	out.V4 = g.n4.Run(input.V4)
	out.V5 = g.n5.Run(input.V5)
	out.V6 = g.n6.Run(input.V6)
	out.V7 = g.n7.Run(input.V7)
	out.V8 = g.n8.Run(input.V8)
	return out
}

// Group8 binds eight nodes into an eight-slot group, the maximum arity.
func Group8[I1, I2, I3, I4, I5, I6, I7, I8, O1, O2, O3, O4, O5, O6, O7, O8 any](
	n1 Node[I1, O1], n2 Node[I2, O2], n3 Node[I3, O3], n4 Node[I4, O4], n5 Node[I5, O5], n6 Node[I6, O6], n7 Node[I7, O7], n8 Node[I8, O8],
) Node[Tuple8[I1, I2, I3, I4, I5, I6, I7, I8], Tuple8[O1, O2, O3, O4, O5, O6, O7, O8]] {
	return &group8[I1, I2, I3, I4, I5, I6, I7, I8, O1, O2, O3, O4, O5, O6, O7, O8]{
		n1: n1, n2: n2, n3: n3, n4: n4, n5: n5, n6: n6, n7: n7, n8: n8,
	}
}
