package weft_test

import (
	"strconv"
	"testing"

	"github.com/weftlabs/weft"
)

func TestFuncAdapter(t *testing.T) {
	tests := []struct {
		name  string
		node  weft.Node[int, int]
		input int
		want  int
	}{
		{
			name:  "identity",
			node:  weft.Func[int, int](func(n int) int { return n }),
			input: 7,
			want:  7,
		},
		{
			name:  "double",
			node:  weft.Func[int, int](func(n int) int { return n * 2 }),
			input: 21,
			want:  42,
		},
		{
			name:  "negate",
			node:  weft.Func[int, int](func(n int) int { return -n }),
			input: 5,
			want:  -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Run(tt.input); got != tt.want {
				t.Errorf("Run(%d) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestPipeDoubleStringify(t *testing.T) {
	double := weft.Func[int, int](func(n int) int { return n * 2 })
	stringify := weft.Func[int, string](strconv.Itoa)

	node := weft.Pipe[int, int, string](double, stringify)

	if got := node.Run(3); got != "6" {
		t.Errorf("Run(3) = %q, want %q", got, "6")
	}
}

func TestPipeThreeStages(t *testing.T) {
	parseInt := weft.Func[string, int](func(s string) int {
		n, err := strconv.Atoi(s)
		if err != nil {
			panic(err)
		}
		return n
	})
	double := weft.Func[int, int](func(n int) int { return n * 2 })
	stringify := weft.Func[int, string](strconv.Itoa)

	node := weft.Pipe[string, int, string](weft.Pipe[string, int, int](parseInt, double), stringify)

	if got := node.Run("21"); got != "42" {
		t.Errorf("Run(%q) = %q, want %q", "21", got, "42")
	}
}

func TestPipeAssociativity(t *testing.T) {
	// Build A.B.C both as (A|B)|C and A|(B|C); outputs and side-effect
	// order must be identical.
	makeStage := func(name string, log *[]string) weft.Node[int, int] {
		return weft.Func[int, int](func(n int) int {
			*log = append(*log, name)
			return n + 1
		})
	}

	var leftLog []string
	leftAB := weft.Pipe[int, int, int](makeStage("A", &leftLog), makeStage("B", &leftLog))
	left := weft.Pipe[int, int, int](leftAB, makeStage("C", &leftLog))

	var rightLog []string
	rightBC := weft.Pipe[int, int, int](makeStage("B", &rightLog), makeStage("C", &rightLog))
	right := weft.Pipe[int, int, int](makeStage("A", &rightLog), rightBC)

	leftOut := left.Run(10)
	rightOut := right.Run(10)

	if leftOut != rightOut {
		t.Errorf("left = %d, right = %d, want equal", leftOut, rightOut)
	}

	wantOrder := []string{"A", "B", "C"}
	for name, log := range map[string][]string{"left": leftLog, "right": rightLog} {
		if len(log) != len(wantOrder) {
			t.Fatalf("%s: executed %v, want %v", name, log, wantOrder)
		}
		for i := range wantOrder {
			if log[i] != wantOrder[i] {
				t.Errorf("%s: executed %v, want %v", name, log, wantOrder)
				break
			}
		}
	}
}

func TestStatefulNode(t *testing.T) {
	// A node wrapping a counter returns successive values across runs of the
	// same composite: state persists with the node instance.
	counter := 0
	count := weft.Func[int, int](func(int) int {
		counter++
		return counter
	})
	node := weft.Pipe[int, int, int](count, weft.Func[int, int](func(n int) int { return n }))

	if got := node.Run(0); got != 1 {
		t.Errorf("first Run = %d, want 1", got)
	}
	if got := node.Run(0); got != 2 {
		t.Errorf("second Run = %d, want 2", got)
	}
}

func TestPipePanicPropagates(t *testing.T) {
	boom := weft.Func[int, int](func(int) int { panic("boom") })
	sinkRan := false
	sink := weft.Func[int, int](func(n int) int {
		sinkRan = true
		return n
	})
	node := weft.Pipe[int, int, int](boom, sink)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic to propagate")
		}
		if sinkRan {
			t.Error("sink ran after source panicked")
		}
	}()
	node.Run(1)
}
