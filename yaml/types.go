// Package yaml parses pipeline definitions and builds executable topologies
// from them. A definition is a sequential pipeline of steps; each step is
// either a registered node type with a config map, or one of the reserved
// composite types (sequential, parallel, batch) nesting further steps.
package yaml

import (
	"fmt"
)

// Reserved step types understood by the loader itself. Every other type must
// be registered with RegisterNodeType.
const (
	TypeSequential = "sequential"
	TypeParallel   = "parallel"
	TypeBatch      = "batch"
)

// PipelineDefinition is the top-level document.
type PipelineDefinition struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Version     string           `yaml:"version,omitempty"`
	Pipeline    []StepDefinition `yaml:"pipeline"`
}

// StepDefinition describes one step of a pipeline. Exactly one shape applies
// per type: leaf steps carry Config, sequential/parallel composites carry
// Steps, and batch composites carry Step.
type StepDefinition struct {
	Name   string         `yaml:"name"`
	Type   string         `yaml:"type"`
	Config map[string]any `yaml:"config,omitempty"`

	// Steps holds the children of a sequential or parallel composite.
	Steps []StepDefinition `yaml:"steps,omitempty"`

	// Step holds the single wrapped node of a batch composite.
	Step *StepDefinition `yaml:"step,omitempty"`

	// MaxConcurrency caps in-flight branches of a parallel or batch step.
	MaxConcurrency int `yaml:"max_concurrency,omitempty"`
}

// Validate checks the definition for structural problems before any node is
// built.
func (d *PipelineDefinition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("pipeline name is required")
	}
	if len(d.Pipeline) == 0 {
		return fmt.Errorf("pipeline %q has no steps", d.Name)
	}
	for i := range d.Pipeline {
		if err := d.Pipeline[i].validate(); err != nil {
			return fmt.Errorf("pipeline %q: %w", d.Name, err)
		}
	}
	return nil
}

func (s *StepDefinition) validate() error {
	if s.Name == "" {
		return fmt.Errorf("step name is required")
	}
	if s.Type == "" {
		return fmt.Errorf("step %q: type is required", s.Name)
	}

	switch s.Type {
	case TypeSequential, TypeParallel:
		if len(s.Steps) == 0 {
			return fmt.Errorf("step %q: %s requires steps", s.Name, s.Type)
		}
		if s.Step != nil {
			return fmt.Errorf("step %q: %s takes steps, not step", s.Name, s.Type)
		}
		for i := range s.Steps {
			if err := s.Steps[i].validate(); err != nil {
				return err
			}
		}
	case TypeBatch:
		if s.Step == nil {
			return fmt.Errorf("step %q: batch requires a wrapped step", s.Name)
		}
		if len(s.Steps) != 0 {
			return fmt.Errorf("step %q: batch takes step, not steps", s.Name)
		}
		if err := s.Step.validate(); err != nil {
			return err
		}
	default:
		if len(s.Steps) != 0 || s.Step != nil {
			return fmt.Errorf("step %q: type %q does not nest steps", s.Name, s.Type)
		}
	}
	return nil
}
