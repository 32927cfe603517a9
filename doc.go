// Package flume is a minimal workflow composition engine. Independently
// written computation units (nodes) are combined into pipelines using three
// fixed composition strategies: sequential chaining (Flow), parallel
// fan-out/fan-in over distinct nodes (ParallelFlow), and per-element fan-out
// of a single node over an array (Batch).
//
// Nodes exchange a dynamically typed, JSON-like tree (Value). No schema is
// enforced by the engine; each node validates its own input shape. Strongly
// typed computation units (Tool) are bridged into the dynamic pipeline with
// ToolNode, which performs codec round-trips at the boundary.
//
// Composition is recursive: Flow, ParallelFlow, and Batch all implement Node,
// so a sequential pipeline may contain a parallel stage whose branches are
// themselves pipelines.
//
//	double := flume.NewNode("double", func(ctx context.Context, input flume.Value) (flume.Value, error) {
//	    n, ok := flume.AsNumber(input)
//	    if !ok {
//	        return nil, flume.NodeErrorf("double: expected a number, got %T", input)
//	    }
//	    return n * 2, nil
//	})
//
//	flow := flume.NewFlow("pipeline", double, double)
//	out, err := flow.Execute(ctx, 21) // 84
//
// Error semantics are deliberate and load-bearing. A sequential Flow fails
// fast: the first error stops the pipeline. Fan-out containers instead wait
// for every branch to settle, then report the failure with the lowest
// declared index; a failing branch never cancels its siblings. There is no
// engine-level retry, timeout, or cancellation.
package flume
