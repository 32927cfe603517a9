// Package middleware provides node wrappers for cross-cutting concerns like
// logging, timing, and panic recovery. Middleware never changes a node's
// results or error classification; the engine's composition semantics are
// untouched.
package middleware

import (
	"context"

	"github.com/agentstation/flume"
)

// Middleware modifies node behavior by wrapping it.
type Middleware func(flume.Node) flume.Node

// wrappedNode decorates a node's Call while preserving its identity.
type wrappedNode struct {
	inner flume.Node
	call  flume.CallFunc
}

func (w *wrappedNode) Name() string {
	return w.inner.Name()
}

func (w *wrappedNode) Call(ctx context.Context, input flume.Value) (flume.Value, error) {
	return w.call(ctx, input)
}

// Chain combines multiple middlewares into one. Middlewares are applied in
// reverse order, like function composition, so the first listed is the
// outermost wrapper.
func Chain(middlewares ...Middleware) Middleware {
	return func(node flume.Node) flume.Node {
		for i := len(middlewares) - 1; i >= 0; i-- {
			node = middlewares[i](node)
		}
		return node
	}
}

// Apply applies middleware to a node in the listed order.
func Apply(node flume.Node, middlewares ...Middleware) flume.Node {
	for _, mw := range middlewares {
		node = mw(node)
	}
	return node
}
