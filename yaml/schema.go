// Package yaml provides YAML-based chain definition support for weft.
// A definition describes a linear sequence of stages, each stage being
// either a single node or a fan-out group; the loader expands it into the
// same nested composition the typed construction API would build.
package yaml

import (
	"fmt"

	"github.com/weftlabs/weft"
)

// ChainDefinition represents a complete chain defined in YAML.
type ChainDefinition struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Version     string            `yaml:"version,omitempty"`
	Metadata    map[string]any    `yaml:"metadata,omitempty"`
	Stages      []StageDefinition `yaml:"stages"`
}

// StageDefinition is one stage of a chain: exactly one of Node or FanOut
// must be set. A fan-out stage consumes a []any produced by the previous
// stage, one element per branch, and produces a []any of the branch outputs.
type StageDefinition struct {
	Node   *NodeDefinition  `yaml:"node,omitempty"`
	FanOut []NodeDefinition `yaml:"fan_out,omitempty"`
}

// NodeDefinition represents a node in YAML format.
type NodeDefinition struct {
	Name        string         `yaml:"name"`
	Type        string         `yaml:"type"`
	Description string         `yaml:"description,omitempty"`
	Config      map[string]any `yaml:"config,omitempty"`
}

// Validate checks if the chain definition is valid.
func (cd *ChainDefinition) Validate() error {
	if cd.Name == "" {
		return fmt.Errorf("chain name is required")
	}
	if len(cd.Stages) == 0 {
		return fmt.Errorf("at least one stage is required")
	}

	for i, stage := range cd.Stages {
		if err := stage.Validate(); err != nil {
			return fmt.Errorf("stage %d: %w", i, err)
		}
	}

	return nil
}

// Validate checks if the stage definition is valid.
func (sd *StageDefinition) Validate() error {
	switch {
	case sd.Node != nil && len(sd.FanOut) > 0:
		return fmt.Errorf("stage must set either node or fan_out, not both")
	case sd.Node != nil:
		return sd.Node.Validate()
	case len(sd.FanOut) > 0:
		if len(sd.FanOut) > weft.MaxArity {
			return fmt.Errorf("fan_out has %d branches, maximum is %d", len(sd.FanOut), weft.MaxArity)
		}
		for i := range sd.FanOut {
			if err := sd.FanOut[i].Validate(); err != nil {
				return fmt.Errorf("branch %d: %w", i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("stage must set node or fan_out")
	}
}

// Validate checks if the node definition is valid.
func (nd *NodeDefinition) Validate() error {
	if nd.Name == "" {
		return fmt.Errorf("node name is required")
	}
	if nd.Type == "" {
		return fmt.Errorf("node type is required for node %s", nd.Name)
	}
	return nil
}
