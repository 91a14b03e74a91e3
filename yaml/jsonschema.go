package yaml

import (
	"fmt"
	"strings"

	goyaml "github.com/goccy/go-yaml"
	"github.com/xeipuuv/gojsonschema"
)

// nodeSchema describes a single node reference in a definition document.
var nodeSchema = map[string]any{
	"type":     "object",
	"required": []string{"name", "type"},
	"properties": map[string]any{
		"name":        map[string]any{"type": "string", "minLength": 1},
		"type":        map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"config":      map[string]any{"type": "object"},
	},
	"additionalProperties": false,
}

// chainSchema is the JSON Schema every chain definition document must
// satisfy before it is unmarshaled into ChainDefinition.
var chainSchema = map[string]any{
	"type":     "object",
	"required": []string{"name", "stages"},
	"properties": map[string]any{
		"name":        map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"version":     map[string]any{"type": "string"},
		"metadata":    map[string]any{"type": "object"},
		"stages": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"node": nodeSchema,
					"fan_out": map[string]any{
						"type":     "array",
						"minItems": 1,
						"maxItems": 8,
						"items":    nodeSchema,
					},
				},
				"oneOf": []any{
					map[string]any{"required": []string{"node"}},
					map[string]any{"required": []string{"fan_out"}},
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

// ValidateDocument checks a raw YAML document against the chain definition
// schema. It catches structural mistakes (missing fields, wrong shapes,
// oversized fan-outs) with positional error messages before any node is
// built.
func ValidateDocument(data []byte) error {
	var doc any
	if err := goyaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse YAML: %w", err)
	}

	schemaLoader := gojsonschema.NewGoLoader(chainSchema)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		var b strings.Builder
		for i, verr := range result.Errors() {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(verr.String())
		}
		return fmt.Errorf("definition validation failed: %s", b.String())
	}

	return nil
}
