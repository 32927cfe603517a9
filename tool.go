package flume

import (
	"context"

	"github.com/agentstation/flume/codec"
)

// Tool is a typed computation unit: fixed input and output shapes instead of
// dynamic value trees. Tools join a pipeline only through ToolNode, which
// performs the codec round-trips at the boundary.
type Tool[In, Out any] interface {
	// Name returns the tool's identifier.
	Name() string

	// Run executes the tool with typed input.
	Run(ctx context.Context, input In) (Out, error)
}

// RunFunc is the signature of a tool's computation.
type RunFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// funcTool adapts a plain function to the Tool interface.
type funcTool[In, Out any] struct {
	name string
	fn   RunFunc[In, Out]
}

// NewTool wraps a function as a Tool.
func NewTool[In, Out any](name string, fn RunFunc[In, Out]) Tool[In, Out] {
	return &funcTool[In, Out]{name: name, fn: fn}
}

func (t *funcTool[In, Out]) Name() string {
	return t.name
}

func (t *funcTool[In, Out]) Run(ctx context.Context, input In) (Out, error) {
	return t.fn(ctx, input)
}

// ToolNode bridges a Tool into the Node contract. Call decodes the dynamic
// input into the tool's input shape, runs the tool, and encodes the typed
// output back into a value tree.
//
// Codec failures surface as ErrConversion and are kept distinct from the
// tool's own errors, which propagate unchanged. A decode failure aborts
// before the tool runs. The adapter performs no caching, retries, or
// validation beyond what the codec and tool themselves provide.
type ToolNode[In, Out any] struct {
	tool Tool[In, Out]
}

// NewToolNode wraps a tool so it can participate in a pipeline as a Node.
func NewToolNode[In, Out any](tool Tool[In, Out]) *ToolNode[In, Out] {
	return &ToolNode[In, Out]{tool: tool}
}

// Name returns the wrapped tool's identifier.
func (t *ToolNode[In, Out]) Name() string {
	return t.tool.Name()
}

// Call implements Node via decode, run, encode.
func (t *ToolNode[In, Out]) Call(ctx context.Context, input Value) (Value, error) {
	typedInput, err := codec.Decode[In](input)
	if err != nil {
		return nil, ConversionErrorf("tool %s: %v", t.tool.Name(), err)
	}

	typedOutput, err := t.tool.Run(ctx, typedInput)
	if err != nil {
		return nil, err
	}

	output, err := codec.Encode(typedOutput)
	if err != nil {
		return nil, ConversionErrorf("tool %s: %v", t.tool.Name(), err)
	}
	return output, nil
}
