package yaml

import (
	"fmt"

	"github.com/agentstation/flume"
)

// BuildFunc constructs a node from a step definition.
type BuildFunc func(def *StepDefinition) (flume.Node, error)

// Loader builds executable topologies from pipeline definitions. Node types
// are registered by name; the reserved composite types are handled by the
// loader itself.
type Loader struct {
	builders map[string]BuildFunc
}

// NewLoader creates a loader with no node types registered.
func NewLoader() *Loader {
	return &Loader{
		builders: make(map[string]BuildFunc),
	}
}

// RegisterNodeType registers a builder for the given step type. Registering
// a reserved composite type is a no-op.
func (l *Loader) RegisterNodeType(nodeType string, build BuildFunc) {
	switch nodeType {
	case TypeSequential, TypeParallel, TypeBatch:
		return
	}
	l.builders[nodeType] = build
}

// NodeTypes returns the registered node type names.
func (l *Loader) NodeTypes() []string {
	types := make([]string, 0, len(l.builders))
	for t := range l.builders {
		types = append(types, t)
	}
	return types
}

// Load builds the sequential flow a definition describes. The definition
// should already be valid (the parser validates on parse).
func (l *Loader) Load(def *PipelineDefinition) (*flume.Flow, error) {
	nodes := make([]flume.Node, 0, len(def.Pipeline))
	for i := range def.Pipeline {
		node, err := l.buildStep(&def.Pipeline[i])
		if err != nil {
			return nil, fmt.Errorf("pipeline %q: %w", def.Name, err)
		}
		nodes = append(nodes, node)
	}
	return flume.NewFlow(def.Name, nodes...), nil
}

func (l *Loader) buildStep(def *StepDefinition) (flume.Node, error) {
	switch def.Type {
	case TypeSequential:
		children, err := l.buildSteps(def.Steps)
		if err != nil {
			return nil, err
		}
		return flume.NewFlow(def.Name, children...), nil

	case TypeParallel:
		children, err := l.buildSteps(def.Steps)
		if err != nil {
			return nil, err
		}
		return flume.NewParallelFlow(def.Name, children, fanOutOptions(def)...), nil

	case TypeBatch:
		child, err := l.buildStep(def.Step)
		if err != nil {
			return nil, err
		}
		return flume.NewBatch(child, fanOutOptions(def)...), nil

	default:
		build, ok := l.builders[def.Type]
		if !ok {
			return nil, fmt.Errorf("step %q: unknown node type %q", def.Name, def.Type)
		}
		node, err := build(def)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", def.Name, err)
		}
		return node, nil
	}
}

func (l *Loader) buildSteps(defs []StepDefinition) ([]flume.Node, error) {
	nodes := make([]flume.Node, 0, len(defs))
	for i := range defs {
		node, err := l.buildStep(&defs[i])
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func fanOutOptions(def *StepDefinition) []flume.Option {
	if def.MaxConcurrency > 0 {
		return []flume.Option{flume.WithMaxConcurrency(def.MaxConcurrency)}
	}
	return nil
}
