// Package registry provides the catalog of built-in node types that pipeline
// definitions can reference. Each builder carries metadata and a JSON schema
// for its config map; configs are validated against the schema before the
// node is built.
package registry

import (
	"fmt"

	"github.com/agentstation/flume"
	"github.com/agentstation/flume/yaml"
)

// NodeBuilder creates nodes of one type and describes them.
type NodeBuilder interface {
	Metadata() NodeMetadata
	Build(def *yaml.StepDefinition) (flume.Node, error)
}

// Registry manages the available node builders.
type Registry struct {
	builders map[string]NodeBuilder
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]NodeBuilder),
	}
}

// Register adds a node builder, keyed by its metadata type.
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

// RegisterAll registers every built-in node type with a loader, wrapping each
// builder so its config is schema-validated at build time.
func RegisterAll(loader *yaml.Loader) *Registry {
	registry := NewRegistry()

	registry.Register(&EchoNodeBuilder{})
	registry.Register(&DelayNodeBuilder{})
	registry.Register(&AppendNodeBuilder{})
	registry.Register(&MathNodeBuilder{})
	registry.Register(&TemplateNodeBuilder{})
	registry.Register(&JSONPathNodeBuilder{})
	registry.Register(&ScriptNodeBuilder{})

	for _, builder := range registry.All() {
		meta := builder.Metadata()
		loader.RegisterNodeType(meta.Type, validatingBuilder(builder))
	}

	return registry
}

// validatingBuilder wraps a builder with config schema validation.
func validatingBuilder(builder NodeBuilder) yaml.BuildFunc {
	return func(def *yaml.StepDefinition) (flume.Node, error) {
		meta := builder.Metadata()
		if err := ValidateNodeConfig(&meta, def.Config); err != nil {
			return nil, fmt.Errorf("node %q: %w", def.Name, err)
		}
		return builder.Build(def)
	}
}
