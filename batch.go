package flume

import (
	"context"
)

// Batch applies one wrapped node to each element of an array-shaped input
// concurrently, fanning the outputs back in to an array of the same length.
// It shares the wait-all-then-decide error policy and index-stable ordering
// contract with ParallelFlow: one node applied N times rather than N nodes
// applied once each.
type Batch struct {
	node Node
	opts fanOutOptions
}

// NewBatch wraps node in a batch container.
func NewBatch(node Node, opts ...Option) *Batch {
	b := &Batch{node: node}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

// Name returns the batch's identifier, derived from the wrapped node.
func (b *Batch) Name() string {
	return "batch-" + b.node.Name()
}

// Call applies the wrapped node to each element of the input array. The
// input must be array-shaped; anything else fails immediately without
// invoking the node. Element i of the output is the node's output for input
// element i. Each element is deep-copied before the node sees it.
func (b *Batch) Call(ctx context.Context, input Value) (Value, error) {
	items, ok := AsArray(input)
	if !ok {
		return nil, NodeErrorf("%s: input must be an array, got %T", b.Name(), input)
	}

	results, err := fanOut(ctx, len(items), b.opts, func(ctx context.Context, i int) (Value, error) {
		return b.node.Call(ctx, Clone(items[i]))
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
