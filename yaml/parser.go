package yaml

import (
	"bytes"
	"fmt"
	"io"
	"os"

	goyaml "github.com/goccy/go-yaml"
)

// Parser handles parsing YAML chain definitions.
type Parser struct{}

// NewParser creates a new YAML parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads and parses a YAML chain definition from a reader.
func (p *Parser) Parse(r io.Reader) (*ChainDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}

	var def ChainDefinition
	if err := goyaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &def, nil
}

// ParseFile reads and parses a YAML chain definition from a file.
func (p *Parser) ParseFile(filename string) (*ChainDefinition, error) {
	// #nosec G304 - This is a parser that needs to accept arbitrary file paths
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return p.Parse(file)
}

// ParseString parses a YAML chain definition from a string.
func (p *Parser) ParseString(s string) (*ChainDefinition, error) {
	return p.Parse(bytes.NewReader([]byte(s)))
}

// Marshal converts a chain definition to YAML format.
func (p *Parser) Marshal(cd *ChainDefinition) ([]byte, error) {
	data, err := goyaml.Marshal(cd)
	if err != nil {
		return nil, fmt.Errorf("marshal YAML: %w", err)
	}
	return data, nil
}

// MarshalToFile writes a chain definition to a YAML file.
func (p *Parser) MarshalToFile(cd *ChainDefinition, filename string) error {
	data, err := p.Marshal(cd)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0o600)
}
