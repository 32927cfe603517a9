package registry

import (
	"context"

	"github.com/Shopify/go-lua"

	"github.com/agentstation/flume"
	"github.com/agentstation/flume/yaml"
)

// ScriptNodeBuilder builds Lua script nodes. The script receives the input
// value as the global `input` and either defines an `exec(input)` function or
// leaves its result on the stack. A fresh sandboxed interpreter is created
// per call, so script nodes are safe under fan-out concurrency.
type ScriptNodeBuilder struct{}

// Metadata returns the node metadata.
func (b *ScriptNodeBuilder) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:        "lua",
		Category:    "script",
		Description: "Transforms the input with a sandboxed Lua script",
		ConfigSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"script": map[string]any{
					"type":        "string",
					"description": "Lua source; define exec(input) or return a value",
				},
			},
			"required": []any{"script"},
		},
		Since: "1.0.0",
	}
}

// Build creates a script node from a definition. The script is compiled once
// here so syntax errors fail at build time.
func (b *ScriptNodeBuilder) Build(def *yaml.StepDefinition) (flume.Node, error) {
	script, ok := def.Config["script"].(string)
	if !ok || script == "" {
		return nil, errScriptRequired
	}

	l := lua.NewState()
	if err := lua.LoadString(l, script); err != nil {
		return nil, err
	}

	return flume.NewNode(def.Name, func(ctx context.Context, input flume.Value) (flume.Value, error) {
		out, err := runScript(script, input)
		if err != nil {
			return nil, flume.NodeErrorf("%s: %v", def.Name, err)
		}
		return out, nil
	}), nil
}

// runScript executes a Lua script against one input value in a fresh
// sandboxed state.
func runScript(script string, input flume.Value) (flume.Value, error) {
	l := lua.NewState()
	setupSandbox(l)

	pushValue(l, input)
	l.SetGlobal("input")

	if err := lua.DoString(l, script); err != nil {
		return nil, err
	}

	// Prefer an exec(input) function when the script defines one.
	l.Global("exec")
	if l.TypeOf(-1) == lua.TypeFunction {
		pushValue(l, input)
		if err := l.ProtectedCall(1, 1, 0); err != nil {
			return nil, err
		}
		result := pullValue(l, -1)
		l.Pop(1)
		return result, nil
	}
	l.Pop(1)

	// Otherwise take whatever the script left on the stack.
	if l.Top() > 0 {
		result := pullValue(l, -1)
		l.Pop(1)
		return result, nil
	}
	return input, nil
}
