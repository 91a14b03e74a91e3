package builtin

import (
	"fmt"

	"github.com/weftlabs/weft"
	"github.com/weftlabs/weft/yaml"
)

// NodeBuilder creates nodes and provides metadata.
type NodeBuilder interface {
	Metadata() NodeMetadata
	Build(def *yaml.NodeDefinition) (weft.Dynamic, error)
}

// Registry manages all built-in nodes.
type Registry struct {
	builders map[string]NodeBuilder
}

// NewRegistry creates a new node registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]NodeBuilder),
	}
}

// Register adds a node builder.
func (r *Registry) Register(builder NodeBuilder) {
	meta := builder.Metadata()
	r.builders[meta.Type] = builder
}

// Get returns a builder by type.
func (r *Registry) Get(nodeType string) (NodeBuilder, bool) {
	builder, exists := r.builders[nodeType]
	return builder, exists
}

// All returns all registered builders.
func (r *Registry) All() map[string]NodeBuilder {
	return r.builders
}

// RegisterAll registers all built-in node types with a YAML loader.
func RegisterAll(loader *yaml.Loader, verbose bool) *Registry {
	registry := NewRegistry()

	// Core nodes
	registry.Register(&EchoNodeBuilder{Verbose: verbose})

	// Data nodes
	registry.Register(&TransformNodeBuilder{Verbose: verbose})
	registry.Register(&TemplateNodeBuilder{Verbose: verbose})
	registry.Register(&JSONPathNodeBuilder{Verbose: verbose})
	registry.Register(&ValidateNodeBuilder{Verbose: verbose})

	// Script nodes
	registry.Register(&LuaNodeBuilder{Verbose: verbose})

	// Register with the loader, validating node config against the
	// builder's schema at build time.
	for _, builder := range registry.All() {
		meta := builder.Metadata()
		loader.RegisterNodeType(meta.Type, validatingBuilder(builder))
	}

	return registry
}

// validatingBuilder wraps a builder so its config schema is enforced before
// the node is built.
func validatingBuilder(builder NodeBuilder) yaml.NodeBuilder {
	return func(def *yaml.NodeDefinition) (weft.Dynamic, error) {
		meta := builder.Metadata()
		if err := ValidateNodeConfig(&meta, def.Config); err != nil {
			return nil, fmt.Errorf("node %q: %w", def.Name, err)
		}
		return builder.Build(def)
	}
}
