package middleware

import (
	"context"
	"time"

	"github.com/agentstation/flume"
)

// Collector receives per-call timing observations.
type Collector interface {
	RecordCall(node string, elapsed time.Duration, err error)
}

// CollectorFunc adapts a function to the Collector interface.
type CollectorFunc func(node string, elapsed time.Duration, err error)

func (f CollectorFunc) RecordCall(node string, elapsed time.Duration, err error) {
	f(node, elapsed, err)
}

// Timing reports each call's wall-clock duration and outcome to the
// collector. The collector must be safe for concurrent use; fan-out
// containers invoke wrapped branches simultaneously.
func Timing(collector Collector) Middleware {
	return func(node flume.Node) flume.Node {
		return &wrappedNode{
			inner: node,
			call: func(ctx context.Context, input flume.Value) (flume.Value, error) {
				start := time.Now()
				output, err := node.Call(ctx, input)
				collector.RecordCall(node.Name(), time.Since(start), err)
				return output, err
			},
		}
	}
}
