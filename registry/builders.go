package registry

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/ohler55/ojg/jp"

	"github.com/agentstation/flume"
	"github.com/agentstation/flume/yaml"
)

// EchoNodeBuilder builds echo nodes.
type EchoNodeBuilder struct{}

// Metadata returns the node metadata.
func (b *EchoNodeBuilder) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:        "echo",
		Category:    "core",
		Description: "Wraps the input with a fixed message",
		ConfigSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"message": map[string]any{
					"type":        "string",
					"description": "Message to attach to the output",
				},
			},
		},
		Since: "1.0.0",
	}
}

// Build creates an echo node from a definition.
func (b *EchoNodeBuilder) Build(def *yaml.StepDefinition) (flume.Node, error) {
	message := "hello from echo"
	if msg, ok := def.Config["message"].(string); ok {
		message = msg
	}

	return flume.NewNode(def.Name, func(ctx context.Context, input flume.Value) (flume.Value, error) {
		return map[string]any{
			"message": message,
			"input":   input,
			"node":    def.Name,
		}, nil
	}), nil
}

// DelayNodeBuilder builds delay nodes.
type DelayNodeBuilder struct{}

// Metadata returns the node metadata.
func (b *DelayNodeBuilder) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:        "delay",
		Category:    "core",
		Description: "Passes the input through after a fixed delay",
		ConfigSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"duration": map[string]any{
					"type":        "string",
					"description": "Duration to wait, e.g. '1s' or '500ms'",
					"default":     "1s",
				},
			},
		},
		Since: "1.0.0",
	}
}

// Build creates a delay node from a definition.
func (b *DelayNodeBuilder) Build(def *yaml.StepDefinition) (flume.Node, error) {
	duration := time.Second
	if s, ok := def.Config["duration"].(string); ok {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		duration = parsed
	}

	return flume.NewNode(def.Name, func(ctx context.Context, input flume.Value) (flume.Value, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(duration):
		}
		return input, nil
	}), nil
}

// AppendNodeBuilder builds append nodes.
type AppendNodeBuilder struct{}

// Metadata returns the node metadata.
func (b *AppendNodeBuilder) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:        "append",
		Category:    "data",
		Description: "Appends a fixed suffix to a string input",
		ConfigSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"suffix": map[string]any{
					"type":        "string",
					"description": "Suffix to append",
				},
			},
			"required": []any{"suffix"},
		},
		Since: "1.0.0",
	}
}

// Build creates an append node from a definition.
func (b *AppendNodeBuilder) Build(def *yaml.StepDefinition) (flume.Node, error) {
	suffix, ok := def.Config["suffix"].(string)
	if !ok {
		return nil, fmt.Errorf("suffix is required")
	}

	return flume.NewNode(def.Name, func(ctx context.Context, input flume.Value) (flume.Value, error) {
		s, ok := flume.AsString(input)
		if !ok {
			return nil, flume.NodeErrorf("%s: expected a string, got %T", def.Name, input)
		}
		return s + suffix, nil
	}), nil
}

// MathNodeBuilder builds arithmetic nodes.
type MathNodeBuilder struct{}

// Metadata returns the node metadata.
func (b *MathNodeBuilder) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:        "math",
		Category:    "data",
		Description: "Applies a fixed arithmetic operation to a numeric input",
		ConfigSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"operation": map[string]any{
					"type": "string",
					"enum": []any{"add", "subtract", "multiply", "divide"},
				},
				"operand": map[string]any{
					"type": "number",
				},
			},
			"required": []any{"operation", "operand"},
		},
		Since: "1.0.0",
	}
}

// Build creates a math node from a definition.
func (b *MathNodeBuilder) Build(def *yaml.StepDefinition) (flume.Node, error) {
	operation, _ := def.Config["operation"].(string)
	operand, ok := flume.AsNumber(def.Config["operand"])
	if !ok {
		return nil, fmt.Errorf("operand must be a number, got %T", def.Config["operand"])
	}
	if operation == "divide" && operand == 0 {
		return nil, fmt.Errorf("division by zero operand")
	}

	return flume.NewNode(def.Name, func(ctx context.Context, input flume.Value) (flume.Value, error) {
		n, ok := flume.AsNumber(input)
		if !ok {
			return nil, flume.NodeErrorf("%s: expected a number, got %T", def.Name, input)
		}
		switch operation {
		case "add":
			return n + operand, nil
		case "subtract":
			return n - operand, nil
		case "multiply":
			return n * operand, nil
		case "divide":
			return n / operand, nil
		default:
			return nil, flume.NodeErrorf("%s: unknown operation %q", def.Name, operation)
		}
	}), nil
}

// TemplateNodeBuilder builds template rendering nodes.
type TemplateNodeBuilder struct{}

// Metadata returns the node metadata.
func (b *TemplateNodeBuilder) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:        "template",
		Category:    "data",
		Description: "Renders a text template with the input as its data",
		ConfigSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"template": map[string]any{
					"type":        "string",
					"description": "Go text/template source",
				},
			},
			"required": []any{"template"},
		},
		Since: "1.0.0",
	}
}

// Build creates a template node from a definition.
func (b *TemplateNodeBuilder) Build(def *yaml.StepDefinition) (flume.Node, error) {
	source, ok := def.Config["template"].(string)
	if !ok {
		return nil, fmt.Errorf("template is required")
	}
	tmpl, err := template.New(def.Name).Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	return flume.NewNode(def.Name, func(ctx context.Context, input flume.Value) (flume.Value, error) {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, input); err != nil {
			return nil, flume.NodeErrorf("%s: render template: %v", def.Name, err)
		}
		return buf.String(), nil
	}), nil
}

// JSONPathNodeBuilder builds JSONPath extraction nodes.
type JSONPathNodeBuilder struct{}

// Metadata returns the node metadata.
func (b *JSONPathNodeBuilder) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:        "jsonpath",
		Category:    "data",
		Description: "Extracts part of the input using a JSONPath expression",
		ConfigSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "JSONPath expression, e.g. $.items[*].price",
				},
				"multiple": map[string]any{
					"type":        "boolean",
					"description": "Return all matches as an array",
				},
				"default": map[string]any{
					"description": "Value to return when nothing matches",
				},
			},
			"required": []any{"path"},
		},
		Since: "1.0.0",
	}
}

// Build creates a JSONPath node from a definition.
func (b *JSONPathNodeBuilder) Build(def *yaml.StepDefinition) (flume.Node, error) {
	pathStr, ok := def.Config["path"].(string)
	if !ok || pathStr == "" {
		return nil, fmt.Errorf("path is required")
	}
	// Parse at build time so a bad expression fails before execution.
	expr, err := jp.ParseString(pathStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath expression: %w", err)
	}

	multiple, _ := def.Config["multiple"].(bool)
	defaultValue := def.Config["default"]

	return flume.NewNode(def.Name, func(ctx context.Context, input flume.Value) (flume.Value, error) {
		results := expr.Get(input)

		if len(results) == 0 {
			if defaultValue != nil {
				return defaultValue, nil
			}
			if multiple {
				return []any{}, nil
			}
			return nil, nil
		}
		if multiple {
			return []any(results), nil
		}
		return results[0], nil
	}), nil
}
