package script_test

import (
	"testing"

	"github.com/weftlabs/weft/builtin/script"
)

func TestExecuteWithExecFunction(t *testing.T) {
	src := `
function exec(input)
  return input * 2
end
`
	result, err := script.Execute(src, 21)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if n, ok := result.(float64); !ok || n != 42 {
		t.Errorf("result = %v (%T), want 42", result, result)
	}
}

func TestExecuteReturnValue(t *testing.T) {
	result, err := script.Execute(`return "hello " .. input`, "world")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result != "hello world" {
		t.Errorf("result = %v, want %q", result, "hello world")
	}
}

func TestExecuteTableConversion(t *testing.T) {
	src := `
function exec(input)
  return { name = input.name, tags = { "a", "b" } }
end
`
	result, err := script.Execute(src, map[string]any{"name": "weft"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	obj, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("result = %T, want map", result)
	}
	if obj["name"] != "weft" {
		t.Errorf("name = %v, want weft", obj["name"])
	}
	tags, ok := obj["tags"].([]any)
	if !ok || len(tags) != 2 || tags[0] != "a" || tags[1] != "b" {
		t.Errorf("tags = %v, want [a b]", obj["tags"])
	}
}

func TestExecuteSandboxBlocksIO(t *testing.T) {
	if _, err := script.Execute(`exec = loadfile("/etc/passwd")`, nil); err == nil {
		t.Error("loadfile available inside sandbox")
	}
}

func TestExecuteSyntaxError(t *testing.T) {
	if _, err := script.Execute(`this is not lua`, nil); err == nil {
		t.Error("expected error for invalid script")
	}
}

func TestValidate(t *testing.T) {
	if err := script.Validate(`function exec(input) return input end`); err != nil {
		t.Errorf("valid script rejected: %v", err)
	}
	if err := script.Validate(`function exec(`); err == nil {
		t.Error("invalid script accepted")
	}
}
