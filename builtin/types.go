// Package builtin provides the catalog of named node types available to
// YAML-defined chains.
package builtin

// NodeMetadata describes a node type.
type NodeMetadata struct {
	Type         string         `json:"type"`
	Category     string         `json:"category"`
	Description  string         `json:"description"`
	ConfigSchema map[string]any `json:"configSchema"`
	Examples     []Example      `json:"examples,omitempty"`
	Since        string         `json:"since,omitempty"`
}

// Example shows how to use a node.
type Example struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Config      map[string]any `json:"config"`
	Input       any            `json:"input,omitempty"`
	Output      any            `json:"output,omitempty"`
}
