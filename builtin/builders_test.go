package builtin_test

import (
	"strings"
	"testing"

	"github.com/weftlabs/weft/builtin"
	"github.com/weftlabs/weft/internal/testutil"
	"github.com/weftlabs/weft/yaml"
)

func buildNode(t *testing.T, builder builtin.NodeBuilder, name string, config map[string]any) func(any) any {
	t.Helper()
	node, err := builder.Build(&yaml.NodeDefinition{Name: name, Type: builder.Metadata().Type, Config: config})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return node.Run
}

func TestEchoNode(t *testing.T) {
	assert := testutil.NewAssert(t)
	run := buildNode(t, &builtin.EchoNodeBuilder{}, "greet", map[string]any{"message": "hi"})

	out, ok := run("payload").(map[string]any)
	assert.True(ok)
	assert.Equal("hi", out["message"])
	assert.Equal("payload", out["input"])
	assert.Equal("greet", out["node"])
}

func TestTransformNode(t *testing.T) {
	tests := []struct {
		name   string
		config map[string]any
		input  any
		want   any
	}{
		{
			name:   "to_upper",
			config: map[string]any{"op": "to_upper"},
			input:  "weft",
			want:   "WEFT",
		},
		{
			name:   "trim",
			config: map[string]any{"op": "trim"},
			input:  "  x  ",
			want:   "x",
		},
		{
			name:   "parse_int",
			config: map[string]any{"op": "parse_int"},
			input:  "21",
			want:   21,
		},
		{
			name:   "stringify",
			config: map[string]any{"op": "stringify"},
			input:  6,
			want:   "6",
		},
		{
			name:   "double",
			config: map[string]any{"op": "double"},
			input:  3,
			want:   6,
		},
		{
			name:   "negate",
			config: map[string]any{"op": "negate"},
			input:  5,
			want:   -5,
		},
		{
			name:   "increment",
			config: map[string]any{"op": "increment"},
			input:  2,
			want:   3,
		},
		{
			name:   "join",
			config: map[string]any{"op": "join", "separator": "/"},
			input:  []any{1, 2, 3},
			want:   "1/2/3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := buildNode(t, &builtin.TransformNodeBuilder{}, tt.name, tt.config)
			if got := run(tt.input); got != tt.want {
				t.Errorf("run(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransformReplicate(t *testing.T) {
	run := buildNode(t, &builtin.TransformNodeBuilder{}, "split",
		map[string]any{"op": "replicate", "count": 3})

	out, ok := run(7).([]any)
	if !ok || len(out) != 3 {
		t.Fatalf("run(7) = %v, want 3-element slice", out)
	}
	for _, v := range out {
		if v != 7 {
			t.Errorf("element = %v, want 7", v)
		}
	}
}

func TestTransformUnknownOp(t *testing.T) {
	builder := &builtin.TransformNodeBuilder{}
	_, err := builder.Build(&yaml.NodeDefinition{
		Name:   "bad",
		Type:   "transform",
		Config: map[string]any{"op": "frobnicate"},
	})
	if err == nil {
		t.Fatal("expected error for unknown op")
	}
}

func TestTransformBadInputPanics(t *testing.T) {
	run := buildNode(t, &builtin.TransformNodeBuilder{}, "up", map[string]any{"op": "to_upper"})

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on non-string input")
		}
	}()
	run(42)
}

func TestTemplateNode(t *testing.T) {
	run := buildNode(t, &builtin.TemplateNodeBuilder{}, "greet",
		map[string]any{"template": "Hello, {{.name}}!"})

	if got := run(map[string]any{"name": "Alice"}); got != "Hello, Alice!" {
		t.Errorf("run = %v, want Hello, Alice!", got)
	}
}

func TestTemplateNodeJSONOutput(t *testing.T) {
	assert := testutil.NewAssert(t)
	run := buildNode(t, &builtin.TemplateNodeBuilder{}, "wrap",
		map[string]any{"template": `{"value": {{.n}}}`, "output_format": "json"})

	out, ok := run(map[string]any{"n": 42}).(map[string]any)
	assert.True(ok)
	assert.Equal(float64(42), out["value"])
}

func TestTemplateNodeInvalid(t *testing.T) {
	builder := &builtin.TemplateNodeBuilder{}
	_, err := builder.Build(&yaml.NodeDefinition{
		Name:   "bad",
		Type:   "template",
		Config: map[string]any{"template": "{{.broken"},
	})
	if err == nil {
		t.Fatal("expected error for invalid template")
	}
}

func TestJSONPathNode(t *testing.T) {
	input := map[string]any{
		"user": map[string]any{"name": "Alice", "age": 30},
		"items": []any{
			map[string]any{"price": 10.99},
			map[string]any{"price": 2.50},
		},
	}

	t.Run("first match", func(t *testing.T) {
		run := buildNode(t, &builtin.JSONPathNodeBuilder{}, "name",
			map[string]any{"path": "$.user.name"})
		if got := run(input); got != "Alice" {
			t.Errorf("run = %v, want Alice", got)
		}
	})

	t.Run("multiple matches", func(t *testing.T) {
		run := buildNode(t, &builtin.JSONPathNodeBuilder{}, "prices",
			map[string]any{"path": "$.items[*].price", "multiple": true})
		out, ok := run(input).([]any)
		if !ok || len(out) != 2 {
			t.Fatalf("run = %v, want 2 matches", out)
		}
	})

	t.Run("default on no match", func(t *testing.T) {
		run := buildNode(t, &builtin.JSONPathNodeBuilder{}, "missing",
			map[string]any{"path": "$.missing.field", "default": "n/a"})
		if got := run(input); got != "n/a" {
			t.Errorf("run = %v, want n/a", got)
		}
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := (&builtin.JSONPathNodeBuilder{}).Build(&yaml.NodeDefinition{
			Name:   "bad",
			Type:   "jsonpath",
			Config: map[string]any{"path": "$..[["},
		})
		if err == nil {
			t.Fatal("expected error for invalid JSONPath")
		}
	})
}

func TestValidateNode(t *testing.T) {
	assert := testutil.NewAssert(t)
	run := buildNode(t, &builtin.ValidateNodeBuilder{}, "check", map[string]any{
		"schema": map[string]any{
			"type":     "object",
			"required": []any{"name"},
		},
	})

	good, ok := run(map[string]any{"name": "Alice"}).(map[string]any)
	assert.True(ok)
	assert.Equal(true, good["valid"])

	bad, ok := run(map[string]any{"age": 30}).(map[string]any)
	assert.True(ok)
	assert.Equal(false, bad["valid"])
	errs, ok := bad["errors"].([]string)
	assert.True(ok)
	assert.True(len(errs) > 0)
}

func TestLuaNode(t *testing.T) {
	run := buildNode(t, &builtin.LuaNodeBuilder{}, "dbl", map[string]any{
		"script": "function exec(input)\n  return input * 2\nend",
	})

	if got := run(21); got != float64(42) {
		t.Errorf("run(21) = %v (%T), want 42", got, got)
	}
}

func TestLuaNodeInvalidScript(t *testing.T) {
	_, err := (&builtin.LuaNodeBuilder{}).Build(&yaml.NodeDefinition{
		Name:   "bad",
		Type:   "lua",
		Config: map[string]any{"script": "function exec("},
	})
	if err == nil {
		t.Fatal("expected error for invalid script")
	}
}

func TestRegistryRegisterAll(t *testing.T) {
	loader := yaml.NewLoader()
	registry := builtin.RegisterAll(loader, false)

	for _, want := range []string{"echo", "transform", "template", "jsonpath", "validate", "lua"} {
		if _, ok := registry.Get(want); !ok {
			t.Errorf("type %q not registered", want)
		}
	}

	// Config validation is enforced through the loader: a transform without
	// an op must fail at build time.
	_, err := loader.LoadString(`
name: bad
stages:
  - node:
      name: t
      type: transform
`)
	if err == nil || !strings.Contains(err.Error(), "config validation failed") {
		t.Errorf("err = %v, want config validation failure", err)
	}
}

func TestRegistryLoadedChain(t *testing.T) {
	loader := yaml.NewLoader()
	builtin.RegisterAll(loader, false)

	chain, err := loader.LoadString(`
name: numbers
stages:
  - node:
      name: parse
      type: transform
      config:
        op: parse_int
  - node:
      name: split
      type: transform
      config:
        op: replicate
        count: 2
  - fan_out:
      - name: double
        type: transform
        config:
          op: double
      - name: negate
        type: transform
        config:
          op: negate
  - node:
      name: join
      type: transform
      config:
        op: join
`)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	if got := chain.Run("21"); got != "42,-21" {
		t.Errorf(`Run("21") = %v, want "42,-21"`, got)
	}
}
