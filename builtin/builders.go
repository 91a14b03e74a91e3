package builtin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"text/template"

	"github.com/ohler55/ojg/jp"
	"github.com/xeipuuv/gojsonschema"

	"github.com/weftlabs/weft"
	"github.com/weftlabs/weft/builtin/script"
	"github.com/weftlabs/weft/yaml"
)

// EchoNodeBuilder builds echo nodes.
type EchoNodeBuilder struct {
	Verbose bool
}

// Metadata returns the node metadata.
func (b *EchoNodeBuilder) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:        "echo",
		Category:    "core",
		Description: "Outputs a message alongside the input",
		ConfigSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"message": map[string]any{
					"type":        "string",
					"description": "Message to output",
					"default":     "Hello from echo node",
				},
			},
		},
		Examples: []Example{
			{
				Name:        "Simple echo",
				Description: "Output a message with input passthrough",
				Config:      map[string]any{"message": "Hello, World!"},
				Input:       map[string]any{"data": "test"},
				Output: map[string]any{
					"message": "Hello, World!",
					"input":   map[string]any{"data": "test"},
					"node":    "echo1",
				},
			},
		},
		Since: "1.0.0",
	}
}

// Build creates an echo node from a definition.
func (b *EchoNodeBuilder) Build(def *yaml.NodeDefinition) (weft.Dynamic, error) {
	message := stringConfig(def.Config, "message", "Hello from echo node")

	return weft.Func[any, any](func(input any) any {
		if b.Verbose {
			log.Printf("[%s] Echo: %s", def.Name, message)
		}
		return map[string]any{
			"message": message,
			"input":   input,
			"node":    def.Name,
		}
	}), nil
}

// TransformNodeBuilder builds transform nodes: small data-shaping primitives
// selected by the "op" config key.
type TransformNodeBuilder struct {
	Verbose bool
}

// Metadata returns the node metadata.
func (b *TransformNodeBuilder) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:        "transform",
		Category:    "data",
		Description: "Applies a primitive transformation to the input",
		ConfigSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"op": map[string]any{
					"type": "string",
					"enum": []any{
						"to_upper", "to_lower", "trim",
						"parse_int", "stringify",
						"double", "negate", "increment",
						"replicate", "join",
					},
					"description": "Transformation to apply",
				},
				"count": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"maximum":     8,
					"default":     2,
					"description": "Fan width for replicate",
				},
				"separator": map[string]any{
					"type":        "string",
					"default":     ",",
					"description": "Separator for join",
				},
			},
			"required": []any{"op"},
		},
		Examples: []Example{
			{
				Name:   "Double a number",
				Config: map[string]any{"op": "double"},
				Input:  3,
				Output: 6,
			},
			{
				Name:        "Replicate for a fan-out",
				Description: "Turn one value into a two-element slice for a fan_out stage",
				Config:      map[string]any{"op": "replicate", "count": 2},
				Input:       5,
				Output:      []any{5, 5},
			},
		},
		Since: "1.0.0",
	}
}

// Build creates a transform node from a definition.
func (b *TransformNodeBuilder) Build(def *yaml.NodeDefinition) (weft.Dynamic, error) {
	op := stringConfig(def.Config, "op", "")

	var fn func(any) any
	switch op {
	case "to_upper":
		fn = func(v any) any { return strings.ToUpper(mustString(def.Name, v)) }
	case "to_lower":
		fn = func(v any) any { return strings.ToLower(mustString(def.Name, v)) }
	case "trim":
		fn = func(v any) any { return strings.TrimSpace(mustString(def.Name, v)) }
	case "parse_int":
		fn = func(v any) any {
			n, err := strconv.Atoi(strings.TrimSpace(mustString(def.Name, v)))
			if err != nil {
				panic(fmt.Sprintf("node %q: %v", def.Name, err))
			}
			return n
		}
	case "stringify":
		fn = func(v any) any { return fmt.Sprint(v) }
	case "double":
		fn = func(v any) any { return mustInt(def.Name, v) * 2 }
	case "negate":
		fn = func(v any) any { return -mustInt(def.Name, v) }
	case "increment":
		fn = func(v any) any { return mustInt(def.Name, v) + 1 }
	case "replicate":
		count := intConfig(def.Config, "count", 2)
		fn = func(v any) any {
			out := make([]any, count)
			for i := range out {
				out[i] = v
			}
			return out
		}
	case "join":
		separator := stringConfig(def.Config, "separator", ",")
		fn = func(v any) any {
			values := mustSlice(def.Name, v)
			parts := make([]string, len(values))
			for i, item := range values {
				parts[i] = fmt.Sprint(item)
			}
			return strings.Join(parts, separator)
		}
	default:
		return nil, fmt.Errorf("unknown op: %q", op)
	}

	return weft.Func[any, any](func(input any) any {
		if b.Verbose {
			log.Printf("[%s] Transform %s", def.Name, op)
		}
		return fn(input)
	}), nil
}

// TemplateNodeBuilder builds template rendering nodes.
type TemplateNodeBuilder struct {
	Verbose bool
}

// Metadata returns the node metadata.
func (b *TemplateNodeBuilder) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:        "template",
		Category:    "data",
		Description: "Renders a Go text/template against the input",
		ConfigSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"template": map[string]any{
					"type":        "string",
					"description": "Template text; the input is the template data",
				},
				"output_format": map[string]any{
					"type":    "string",
					"enum":    []any{"string", "json"},
					"default": "string",
				},
			},
			"required": []any{"template"},
		},
		Examples: []Example{
			{
				Name:   "Greeting",
				Config: map[string]any{"template": "Hello, {{.name}}!"},
				Input:  map[string]any{"name": "Alice"},
				Output: "Hello, Alice!",
			},
		},
		Since: "1.0.0",
	}
}

// Build creates a template node from a definition.
func (b *TemplateNodeBuilder) Build(def *yaml.NodeDefinition) (weft.Dynamic, error) {
	text := stringConfig(def.Config, "template", "")
	if text == "" {
		return nil, fmt.Errorf("template is required")
	}
	outputFormat := stringConfig(def.Config, "output_format", "string")

	// Parse at build time so a broken template fails construction, not a run.
	tmpl, err := template.New(def.Name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	return weft.Func[any, any](func(input any) any {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, input); err != nil {
			panic(fmt.Sprintf("node %q: template execution failed: %v", def.Name, err))
		}
		result := buf.String()

		if b.Verbose {
			log.Printf("[%s] Rendered template: %s", def.Name, result)
		}

		if outputFormat == "json" {
			var jsonData any
			if err := json.Unmarshal([]byte(result), &jsonData); err != nil {
				panic(fmt.Sprintf("node %q: template produced invalid JSON: %v", def.Name, err))
			}
			return jsonData
		}
		return result
	}), nil
}

// JSONPathNodeBuilder builds JSONPath extraction nodes.
type JSONPathNodeBuilder struct {
	Verbose bool
}

// Metadata returns the node metadata.
func (b *JSONPathNodeBuilder) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:        "jsonpath",
		Category:    "data",
		Description: "Extracts data from the input using a JSONPath expression",
		ConfigSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "JSONPath expression to extract data",
				},
				"multiple": map[string]any{
					"type":        "boolean",
					"default":     false,
					"description": "Return all matches as an array instead of the first match",
				},
				"default": map[string]any{
					"description": "Value to return when the path has no match",
				},
			},
			"required": []any{"path"},
		},
		Examples: []Example{
			{
				Name:   "Extract user name",
				Config: map[string]any{"path": "$.user.name"},
				Input:  map[string]any{"user": map[string]any{"name": "Alice"}},
				Output: "Alice",
			},
			{
				Name:   "Extract all prices",
				Config: map[string]any{"path": "$.items[*].price", "multiple": true},
			},
		},
		Since: "1.0.0",
	}
}

// Build creates a JSONPath node from a definition.
func (b *JSONPathNodeBuilder) Build(def *yaml.NodeDefinition) (weft.Dynamic, error) {
	pathStr := stringConfig(def.Config, "path", "")
	if pathStr == "" {
		return nil, fmt.Errorf("path is required")
	}

	// Parse the expression at build time for validation.
	expr, err := jp.ParseString(pathStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath expression: %w", err)
	}

	multiple := boolConfig(def.Config, "multiple", false)
	defaultValue := def.Config["default"]

	return weft.Func[any, any](func(input any) any {
		results := expr.Get(input)

		if b.Verbose {
			log.Printf("[%s] JSONPath %q found %d matches", def.Name, pathStr, len(results))
		}

		if len(results) == 0 {
			if defaultValue != nil {
				return defaultValue
			}
			if multiple {
				return []any{}
			}
			return nil
		}

		if multiple {
			return results
		}
		return results[0]
	}), nil
}

// ValidateNodeBuilder builds schema validation nodes. Validation results are
// encoded in the output value rather than reported out of band, so an
// invalid input flows downstream as data instead of aborting the chain.
type ValidateNodeBuilder struct {
	Verbose bool
}

// Metadata returns the node metadata.
func (b *ValidateNodeBuilder) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:        "validate",
		Category:    "data",
		Description: "Validates the input against a JSON Schema",
		ConfigSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"schema": map[string]any{
					"type":        "object",
					"description": "JSON Schema the input must satisfy",
				},
			},
			"required": []any{"schema"},
		},
		Examples: []Example{
			{
				Name: "Require a name field",
				Config: map[string]any{
					"schema": map[string]any{
						"type":     "object",
						"required": []any{"name"},
					},
				},
				Input:  map[string]any{"name": "Alice"},
				Output: map[string]any{"valid": true, "errors": []any{}, "value": map[string]any{"name": "Alice"}},
			},
		},
		Since: "1.0.0",
	}
}

// Build creates a validate node from a definition.
func (b *ValidateNodeBuilder) Build(def *yaml.NodeDefinition) (weft.Dynamic, error) {
	schemaConfig, ok := def.Config["schema"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema is required")
	}

	schemaJSON, err := json.Marshal(schemaConfig)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	return weft.Func[any, any](func(input any) any {
		result, err := compiled.Validate(gojsonschema.NewGoLoader(input))
		if err != nil {
			panic(fmt.Sprintf("node %q: validation error: %v", def.Name, err))
		}

		errs := make([]string, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			errs = append(errs, verr.String())
		}

		if b.Verbose {
			log.Printf("[%s] Validation: valid=%v errors=%d", def.Name, result.Valid(), len(errs))
		}

		return map[string]any{
			"valid":  result.Valid(),
			"errors": errs,
			"value":  input,
		}
	}), nil
}

// LuaNodeBuilder builds Lua script transform nodes.
type LuaNodeBuilder struct {
	Verbose bool
}

// Metadata returns the node metadata.
func (b *LuaNodeBuilder) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:        "lua",
		Category:    "script",
		Description: "Transforms the input with a sandboxed Lua script",
		ConfigSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"script": map[string]any{
					"type":        "string",
					"description": "Lua source; define exec(input) or return a value",
				},
			},
			"required": []any{"script"},
		},
		Examples: []Example{
			{
				Name:   "Double with Lua",
				Config: map[string]any{"script": "function exec(input)\n  return input * 2\nend"},
				Input:  21,
				Output: 42,
			},
		},
		Since: "1.0.0",
	}
}

// Build creates a Lua node from a definition.
func (b *LuaNodeBuilder) Build(def *yaml.NodeDefinition) (weft.Dynamic, error) {
	src := stringConfig(def.Config, "script", "")
	if src == "" {
		return nil, fmt.Errorf("script is required")
	}

	if err := script.Validate(src); err != nil {
		return nil, err
	}

	return weft.Func[any, any](func(input any) any {
		if b.Verbose {
			log.Printf("[%s] Executing Lua script", def.Name)
		}
		result, err := script.Execute(src, input)
		if err != nil {
			panic(fmt.Sprintf("node %q: %v", def.Name, err))
		}
		return result
	}), nil
}
