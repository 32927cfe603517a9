package flume_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/agentstation/flume"
)

// waitNode sleeps for the given duration, then reports its id as done.
func waitNode(id int, wait time.Duration) flume.Node {
	return flume.NewNode("wait", func(ctx context.Context, input flume.Value) (flume.Value, error) {
		time.Sleep(wait)
		return map[string]any{"id": id, "status": "done"}, nil
	})
}

func TestParallelFlowOrderedResults(t *testing.T) {
	// The slowest node is declared first; result placement must follow the
	// declared order, not completion order.
	flow := flume.NewParallelFlow("waiters", []flume.Node{
		waitNode(1, 60*time.Millisecond),
		waitNode(2, 10*time.Millisecond),
		waitNode(3, 30*time.Millisecond),
	})

	got, err := flow.Execute(context.Background(), map[string]any{"start": true})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	arr, ok := flume.AsArray(got)
	if !ok {
		t.Fatalf("Execute() = %T, want array", got)
	}
	if len(arr) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(arr))
	}
	for i, want := range []int{1, 2, 3} {
		field, _ := flume.Field(arr[i], "id")
		if id, _ := flume.AsNumber(field); int(id) != want {
			t.Errorf("results[%d].id = %v, want %d", i, field, want)
		}
		status, _ := flume.Field(arr[i], "status")
		if status != "done" {
			t.Errorf("results[%d].status = %v, want done", i, status)
		}
	}
}

func TestParallelFlowRunsConcurrently(t *testing.T) {
	nodes := make([]flume.Node, 4)
	for i := range nodes {
		nodes[i] = waitNode(i, 30*time.Millisecond)
	}
	flow := flume.NewParallelFlow("concurrent", nodes)

	start := time.Now()
	if _, err := flow.Execute(context.Background(), nil); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed >= 120*time.Millisecond {
		t.Errorf("elapsed = %v, want < %v (sequential time)", elapsed, 120*time.Millisecond)
	}
}

func TestParallelFlowLowestIndexErrorWins(t *testing.T) {
	var calls int32
	counting := func(name string, fail bool, wait time.Duration) flume.Node {
		return flume.NewNode(name, func(ctx context.Context, input flume.Value) (flume.Value, error) {
			atomic.AddInt32(&calls, 1)
			time.Sleep(wait)
			if fail {
				return nil, flume.NodeErrorf("%s failed", name)
			}
			return input, nil
		})
	}

	// The higher-index node fails first in wall-clock time; the reported
	// error must still be the lowest declared index.
	flow := flume.NewParallelFlow("failures", []flume.Node{
		counting("n0", false, 0),
		counting("n1", true, 50*time.Millisecond),
		counting("n2", true, 0),
		counting("n3", false, 0),
	})

	_, err := flow.Execute(context.Background(), nil)
	if err == nil {
		t.Fatal("Execute() expected error, got nil")
	}
	if !errors.Is(err, flume.ErrNodeFailed) {
		t.Errorf("error = %v, want ErrNodeFailed", err)
	}
	if !containsString(err.Error(), "n1 failed") {
		t.Errorf("error = %v, want the lowest-index failure (n1)", err)
	}
	if n := atomic.LoadInt32(&calls); n != 4 {
		t.Errorf("calls = %d, want 4 (no sibling may be cancelled)", n)
	}
}

func TestParallelFlowEmpty(t *testing.T) {
	flow := flume.NewParallelFlow("empty", nil)

	got, err := flow.Execute(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	arr, ok := flume.AsArray(got)
	if !ok || len(arr) != 0 {
		t.Errorf("Execute() = %v, want empty array", got)
	}
}

func TestParallelFlowBranchIsolation(t *testing.T) {
	// A node that mutates its input must not be observable to a sibling.
	mutate := flume.NewNode("mutate", func(ctx context.Context, input flume.Value) (flume.Value, error) {
		obj, _ := flume.AsObject(input)
		obj["touched"] = true
		return obj, nil
	})
	observe := flume.NewNode("observe", func(ctx context.Context, input flume.Value) (flume.Value, error) {
		time.Sleep(20 * time.Millisecond)
		_, touched := flume.Field(input, "touched")
		return touched, nil
	})

	flow := flume.NewParallelFlow("isolated", []flume.Node{mutate, observe})

	got, err := flow.Execute(context.Background(), map[string]any{"start": true})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	arr, _ := flume.AsArray(got)
	if arr[1] != false {
		t.Error("sibling observed a mutation of its input copy")
	}
}

func TestParallelFlowMaxConcurrency(t *testing.T) {
	var inFlight, peak int32
	node := flume.NewNode("gauge", func(ctx context.Context, input flume.Value) (flume.Value, error) {
		cur := atomic.AddInt32(&inFlight, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if cur <= old || atomic.CompareAndSwapInt32(&peak, old, cur) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return input, nil
	})

	nodes := make([]flume.Node, 8)
	for i := range nodes {
		nodes[i] = node
	}
	flow := flume.NewParallelFlow("capped", nodes, flume.WithMaxConcurrency(2))

	got, err := flow.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if arr, _ := flume.AsArray(got); len(arr) != 8 {
		t.Errorf("len(results) = %d, want 8", len(arr))
	}
	if p := atomic.LoadInt32(&peak); p > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", p)
	}
}
