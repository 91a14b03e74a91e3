package weft

// Positional tuple values used by the group composites. TupleN carries N
// heterogeneous values in slot order; Tuple8 is the largest arity supported.
//
// The TN constructors exist because composite literals for these types get
// verbose at higher arities.

// Tuple1 holds a single value. It exists so that arity-1 groups have the
// same shape as every other arity.
type Tuple1[A any] struct {
	V1 A
}

// Tuple2 holds two values in slot order.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 holds three values in slot order.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 holds four values in slot order.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Tuple5 holds five values in slot order.
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Tuple6 holds six values in slot order.
type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// Tuple7 holds seven values in slot order.
type Tuple7[A, B, C, D, E, F, G any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

// Tuple8 holds eight values in slot order.
type Tuple8[A, B, C, D, E, F, G, H any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
}

// T1 builds a Tuple1.
func T1[A any](v1 A) Tuple1[A] {
	return Tuple1[A]{V1: v1}
}

// T2 builds a Tuple2.
func T2[A, B any](v1 A, v2 B) Tuple2[A, B] {
	return Tuple2[A, B]{V1: v1, V2: v2}
}

// T3 builds a Tuple3.
func T3[A, B, C any](v1 A, v2 B, v3 C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{V1: v1, V2: v2, V3: v3}
}

// T4 builds a Tuple4.
func T4[A, B, C, D any](v1 A, v2 B, v3 C, v4 D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{V1: v1, V2: v2, V3: v3, V4: v4}
}

// T5 builds a Tuple5.
func T5[A, B, C, D, E any](v1 A, v2 B, v3 C, v4 D, v5 E) Tuple5[A, B, C, D, E] {
	return Tuple5[A, B, C, D, E]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5}
}

// T6 builds a Tuple6.
func T6[A, B, C, D, E, F any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F) Tuple6[A, B, C, D, E, F] {
	return Tuple6[A, B, C, D, E, F]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6}
}

// T7 builds a Tuple7.
func T7[A, B, C, D, E, F, G any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F, v7 G) Tuple7[A, B, C, D, E, F, G] {
	return Tuple7[A, B, C, D, E, F, G]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7}
}

// T8 builds a Tuple8.
func T8[A, B, C, D, E, F, G, H any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F, v7 G, v8 H) Tuple8[A, B, C, D, E, F, G, H] {
	return Tuple8[A, B, C, D, E, F, G, H]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7, V8: v8}
}
