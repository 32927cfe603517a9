package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/agentstation/flume"
)

// Logging adds structured logging around a node's call.
func Logging(logger flume.Logger) Middleware {
	return func(node flume.Node) flume.Node {
		return &wrappedNode{
			inner: node,
			call: func(ctx context.Context, input flume.Value) (flume.Value, error) {
				logger.Debug(ctx, "node starting",
					"node", node.Name(),
					"input_type", fmt.Sprintf("%T", input))
				start := time.Now()

				output, err := node.Call(ctx, input)

				if err != nil {
					logger.Error(ctx, "node failed",
						"node", node.Name(),
						"duration", time.Since(start),
						"error", err)
				} else {
					logger.Debug(ctx, "node completed",
						"node", node.Name(),
						"duration", time.Since(start))
				}

				return output, err
			},
		}
	}
}
