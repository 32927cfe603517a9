package yaml

import (
	"fmt"
	"io"
	"os"

	goyaml "github.com/goccy/go-yaml"
)

// Parser reads and writes pipeline definitions.
type Parser struct{}

// NewParser creates a new YAML parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a pipeline definition from a reader and validates it.
func (p *Parser) Parse(r io.Reader) (*PipelineDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	return p.ParseBytes(data)
}

// ParseBytes parses a pipeline definition from raw YAML and validates it.
func (p *Parser) ParseBytes(data []byte) (*PipelineDefinition, error) {
	var def PipelineDefinition
	if err := goyaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline: %w", err)
	}
	return &def, nil
}

// ParseString parses a pipeline definition from a string.
func (p *Parser) ParseString(s string) (*PipelineDefinition, error) {
	return p.ParseBytes([]byte(s))
}

// ParseFile reads and parses a pipeline definition from a file.
func (p *Parser) ParseFile(filename string) (*PipelineDefinition, error) {
	// #nosec G304 - pipeline files are user-provided by design
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return p.Parse(file)
}

// Marshal converts a pipeline definition to YAML.
func (p *Parser) Marshal(def *PipelineDefinition) ([]byte, error) {
	return goyaml.Marshal(def)
}
