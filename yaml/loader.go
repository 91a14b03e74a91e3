package yaml

import (
	"errors"
	"fmt"

	"github.com/weftlabs/weft"
)

// ErrUnknownNodeType is returned when a definition references a node type
// with no registered builder.
var ErrUnknownNodeType = errors.New("yaml: unknown node type")

// NodeFactory creates nodes from definitions.
type NodeFactory interface {
	CreateNode(def *NodeDefinition) (weft.Dynamic, error)
}

// NodeBuilder is a function that builds a node from a definition.
type NodeBuilder func(def *NodeDefinition) (weft.Dynamic, error)

// defaultNodeFactory provides registry-based node creation.
type defaultNodeFactory struct {
	registry map[string]NodeBuilder
}

func (f *defaultNodeFactory) CreateNode(def *NodeDefinition) (weft.Dynamic, error) {
	builder, ok := f.registry[def.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNodeType, def.Type)
	}
	return builder(def)
}

// Loader loads chain definitions and composes executable chains.
type Loader struct {
	parser  *Parser
	factory NodeFactory
}

// NewLoader creates a new YAML chain loader.
func NewLoader() *Loader {
	return &Loader{
		parser: NewParser(),
		factory: &defaultNodeFactory{
			registry: make(map[string]NodeBuilder),
		},
	}
}

// WithNodeFactory sets a custom node factory.
func (l *Loader) WithNodeFactory(factory NodeFactory) *Loader {
	l.factory = factory
	return l
}

// RegisterNodeType registers a builder for a node type.
func (l *Loader) RegisterNodeType(nodeType string, builder NodeBuilder) {
	if df, ok := l.factory.(*defaultNodeFactory); ok {
		df.registry[nodeType] = builder
	}
}

// LoadFile loads a chain from a YAML file.
func (l *Loader) LoadFile(filename string) (weft.Dynamic, error) {
	def, err := l.parser.ParseFile(filename)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	return l.LoadDefinition(def)
}

// LoadString loads a chain from a YAML string.
func (l *Loader) LoadString(yamlStr string) (weft.Dynamic, error) {
	def, err := l.parser.ParseString(yamlStr)
	if err != nil {
		return nil, fmt.Errorf("parse string: %w", err)
	}

	return l.LoadDefinition(def)
}

// LoadDefinition composes a chain from a parsed definition. Stages are bound
// with the same Pipe and group operations the typed construction API uses;
// the result is a nested composite value, not a graph to interpret.
func (l *Loader) LoadDefinition(def *ChainDefinition) (weft.Dynamic, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chain definition: %w", err)
	}

	var chain weft.Dynamic
	for i := range def.Stages {
		stage, err := l.buildStage(&def.Stages[i])
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}

		if chain == nil {
			chain = stage
			continue
		}
		chain = weft.Pipe[any, any, any](chain, stage)
	}

	return chain, nil
}

func (l *Loader) buildStage(stage *StageDefinition) (weft.Dynamic, error) {
	if stage.Node != nil {
		node, err := l.factory.CreateNode(stage.Node)
		if err != nil {
			return nil, fmt.Errorf("create node %s: %w", stage.Node.Name, err)
		}
		return node, nil
	}

	branches := make([]weft.Dynamic, len(stage.FanOut))
	for i := range stage.FanOut {
		node, err := l.factory.CreateNode(&stage.FanOut[i])
		if err != nil {
			return nil, fmt.Errorf("create node %s: %w", stage.FanOut[i].Name, err)
		}
		branches[i] = node
	}

	group, err := weft.GroupSlice(branches...)
	if err != nil {
		return nil, fmt.Errorf("build fan_out: %w", err)
	}
	return group, nil
}
