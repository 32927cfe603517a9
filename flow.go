package flume

import (
	"context"
)

// Flow executes nodes sequentially, passing each node's output as the next
// node's input. The node list is fixed at construction and the declared order
// is the execution order.
//
// Flow implements Node, so a sequential pipeline can be nested inside
// another Flow, a ParallelFlow branch, or a Batch.
type Flow struct {
	name  string
	nodes []Node
}

// NewFlow creates a sequential flow over the given nodes.
func NewFlow(name string, nodes ...Node) *Flow {
	if name == "" {
		name = "flow"
	}
	return &Flow{name: name, nodes: nodes}
}

// Name returns the flow's identifier.
func (f *Flow) Name() string {
	return f.name
}

// Execute threads the initial value through the nodes in declared order.
// It stops at the first error and returns it unchanged; no partial result is
// exposed. An empty flow returns the initial value untouched.
func (f *Flow) Execute(ctx context.Context, initial Value) (Value, error) {
	current := initial
	for _, n := range f.nodes {
		out, err := n.Call(ctx, current)
		if err != nil {
			return nil, err
		}
		current = out
	}
	return current, nil
}

// Call implements Node by delegating to Execute.
func (f *Flow) Call(ctx context.Context, input Value) (Value, error) {
	return f.Execute(ctx, input)
}
