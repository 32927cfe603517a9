package flume

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParallelFlow executes distinct nodes concurrently over one shared input
// and fans their outputs back in to an ordered array. The declared node
// order is load-bearing for result placement only, never for timing.
//
// The error policy is wait-all-then-decide, not fail-fast: a failing branch
// does not cancel its siblings, every branch runs to completion, and only
// then is the failure with the lowest declared index reported. This differs
// from the usual cancel-on-first-error design on purpose; do not "fix" it.
type ParallelFlow struct {
	name  string
	nodes []Node
	opts  fanOutOptions
}

// NewParallelFlow creates a parallel flow over the given nodes.
func NewParallelFlow(name string, nodes []Node, opts ...Option) *ParallelFlow {
	if name == "" {
		name = "parallel"
	}
	p := &ParallelFlow{name: name, nodes: nodes}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Name returns the flow's identifier.
func (p *ParallelFlow) Name() string {
	return p.name
}

// Execute gives every node a deep copy of input, runs all of them
// concurrently, and waits for all to settle. If any failed, the error from
// the lowest-index failing node is returned and all outputs are discarded;
// otherwise the result is an array whose element i is the output of node i,
// regardless of completion order. An empty node list yields an empty array.
func (p *ParallelFlow) Execute(ctx context.Context, input Value) (Value, error) {
	results, err := fanOut(ctx, len(p.nodes), p.opts, func(ctx context.Context, i int) (Value, error) {
		return p.nodes[i].Call(ctx, Clone(input))
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Call implements Node by delegating to Execute.
func (p *ParallelFlow) Call(ctx context.Context, input Value) (Value, error) {
	return p.Execute(ctx, input)
}

// fanOut runs n branches concurrently and applies the shared wait-all
// policy: every branch settles before any error is considered, and the
// lowest-index error wins. Branch goroutines always return nil to the group
// so that no sibling is ever cancelled.
func fanOut(ctx context.Context, n int, opts fanOutOptions, branch func(ctx context.Context, i int) (Value, error)) ([]any, error) {
	results := make([]any, n)
	errs := make([]error, n)

	var g errgroup.Group
	if opts.maxConcurrency > 0 {
		g.SetLimit(opts.maxConcurrency)
	}
	for i := range n {
		g.Go(func() error {
			results[i], errs[i] = branch(ctx, i)
			return nil
		})
	}
	// Branches never report errors through the group; Wait is purely a join.
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
