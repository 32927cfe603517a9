package flume

import (
	"context"
)

// Node is the core interface for all computation units in a pipeline.
// A node consumes a Value and produces a Value or an error.
//
// Implementations must be safe for concurrent use: a single node instance may
// be invoked simultaneously from multiple containers or fan-out branches. The
// engine never mutates a node and never retries a failed call; errors surface
// immediately to the caller.
type Node interface {
	// Name returns the node's identifier, used in logs and error messages.
	Name() string

	// Call executes the node with the given input.
	Call(ctx context.Context, input Value) (Value, error)
}

// CallFunc is the signature of a node's computation.
type CallFunc func(ctx context.Context, input Value) (Value, error)

// funcNode adapts a plain function to the Node interface.
type funcNode struct {
	name string
	fn   CallFunc
}

// NewNode wraps a function as a Node. The function must be safe for
// concurrent invocation.
func NewNode(name string, fn CallFunc) Node {
	return &funcNode{name: name, fn: fn}
}

func (n *funcNode) Name() string {
	return n.name
}

func (n *funcNode) Call(ctx context.Context, input Value) (Value, error) {
	return n.fn(ctx, input)
}

// Option configures a fan-out container (ParallelFlow or Batch).
type Option func(*fanOutOptions)

// fanOutOptions holds configuration shared by the fan-out containers.
type fanOutOptions struct {
	maxConcurrency int
}

// WithMaxConcurrency caps the number of branches executing at once. Zero or
// negative means unlimited. The cap changes scheduling only: result placement
// stays index-stable and every branch still runs to completion.
func WithMaxConcurrency(n int) Option {
	return func(o *fanOutOptions) {
		o.maxConcurrency = n
	}
}

// Logger provides structured logging. The engine itself never logs; the
// middleware and server packages accept a Logger for observability.
type Logger interface {
	Debug(ctx context.Context, msg string, keysAndValues ...any)
	Info(ctx context.Context, msg string, keysAndValues ...any)
	Error(ctx context.Context, msg string, keysAndValues ...any)
}
