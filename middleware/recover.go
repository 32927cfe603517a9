package middleware

import (
	"context"

	"github.com/agentstation/flume"
)

// Recover converts a panicking node into an ErrUnknown failure instead of
// tearing down the container. A panic that reaches a fan-out branch would
// otherwise kill the process before its siblings settle.
func Recover() Middleware {
	return func(node flume.Node) flume.Node {
		return &wrappedNode{
			inner: node,
			call: func(ctx context.Context, input flume.Value) (output flume.Value, err error) {
				defer func() {
					if r := recover(); r != nil {
						output = nil
						err = flume.UnknownErrorf("node %s panicked: %v", node.Name(), r)
					}
				}()
				return node.Call(ctx, input)
			},
		}
	}
}
