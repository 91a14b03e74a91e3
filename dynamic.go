package weft

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrArity is returned when a slice group is built with a slot count
	// outside 1..MaxArity.
	ErrArity = errors.New("weft: unsupported arity")
)

// Dynamic is a node on the untyped plane. Runtime-assembled chains, such as
// those loaded from YAML definitions, compose Dynamic nodes with the same
// Pipe operation the typed core uses; type agreement between stages is the
// assembler's responsibility.
type Dynamic = Node[any, any]

// Lift adapts a typed node into the dynamic plane. The returned node asserts
// its input back to In at run time and panics on a mismatch, consistent with
// the infallible Run contract. A nil input runs the node on In's zero value.
func Lift[In, Out any](n Node[In, Out]) Dynamic {
	return Func[any, any](func(input any) any {
		if input == nil {
			return n.Run(*new(In))
		}
		typed, ok := input.(In)
		if !ok {
			panic(fmt.Sprintf("weft: lift expected %T, got %T", *new(In), input))
		}
		return n.Run(typed)
	})
}

// sliceGroup is the homogeneous-typed fan-out form: an ordered collection of
// dynamic nodes processed by a loop, trading per-slot types for a slice.
type sliceGroup struct {
	nodes []Dynamic
}

func (g *sliceGroup) Run(input any) any {
	values, ok := input.([]any)
	if !ok {
		panic(fmt.Sprintf("weft: slice group expected []any, got %T", input))
	}
	if len(values) != len(g.nodes) {
		panic(fmt.Sprintf("weft: slice group has %d slots, got %d values", len(g.nodes), len(values)))
	}

	// Slots run in positional order, one at a time, matching the typed groups.
	out := make([]any, len(values))
	for i, n := range g.nodes {
		out[i] = n.Run(values[i])
	}
	return out
}

// GroupSlice binds an ordered list of dynamic nodes into a fan-out node over
// []any: slot i consumes element i of the input slice and produces element i
// of the output slice. The slot count is capped at MaxArity so the semantics
// stay interchangeable with the typed groups.
func GroupSlice(nodes ...Dynamic) (Dynamic, error) {
	if len(nodes) < 1 || len(nodes) > MaxArity {
		return nil, fmt.Errorf("%w: got %d slots, want 1 to %d", ErrArity, len(nodes), MaxArity)
	}
	return &sliceGroup{nodes: nodes}, nil
}
