package flume_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/agentstation/flume"
)

// appendNode returns a node that appends a suffix to a string input.
func appendNode(suffix string) flume.Node {
	return flume.NewNode("append", func(ctx context.Context, input flume.Value) (flume.Value, error) {
		s, ok := flume.AsString(input)
		if !ok {
			return nil, flume.NodeErrorf("append: expected a string, got %T", input)
		}
		return s + suffix, nil
	})
}

func TestBatchAppliesNodePerElement(t *testing.T) {
	batch := flume.NewBatch(appendNode("_done"))

	got, err := batch.Call(context.Background(), []any{"a", "b"})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !valueEqual(got, []any{"a_done", "b_done"}) {
		t.Errorf("Call() = %v, want [a_done b_done]", got)
	}
}

func TestBatchRejectsNonArray(t *testing.T) {
	var calls int32
	node := flume.NewNode("count", func(ctx context.Context, input flume.Value) (flume.Value, error) {
		atomic.AddInt32(&calls, 1)
		return input, nil
	})
	batch := flume.NewBatch(node)

	tests := []struct {
		name  string
		input flume.Value
	}{
		{name: "object", input: map[string]any{"a": 1}},
		{name: "string", input: "not an array"},
		{name: "number", input: 42},
		{name: "nil", input: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := batch.Call(context.Background(), tt.input)
			if !errors.Is(err, flume.ErrNodeFailed) {
				t.Errorf("error = %v, want ErrNodeFailed", err)
			}
		})
	}

	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("wrapped node invoked %d times for non-array input, want 0", n)
	}
}

func TestBatchEmptyArray(t *testing.T) {
	batch := flume.NewBatch(appendNode("_x"))

	got, err := batch.Call(context.Background(), []any{})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	arr, ok := flume.AsArray(got)
	if !ok || len(arr) != 0 {
		t.Errorf("Call() = %v, want empty array", got)
	}
}

func TestBatchLowestIndexErrorWins(t *testing.T) {
	var calls int32
	picky := flume.NewNode("picky", func(ctx context.Context, input flume.Value) (flume.Value, error) {
		atomic.AddInt32(&calls, 1)
		s, ok := flume.AsString(input)
		if !ok {
			return nil, flume.NodeErrorf("picky: expected a string, got %T", input)
		}
		return s, nil
	})
	batch := flume.NewBatch(picky)

	// Elements 1 and 3 fail; the reported error must be element 1's.
	_, err := batch.Call(context.Background(), []any{"ok", 1, "ok", 2})
	if err == nil {
		t.Fatal("Call() expected error, got nil")
	}
	if !containsString(err.Error(), "got int") {
		t.Errorf("error = %v, want the first failing element's error", err)
	}
	if n := atomic.LoadInt32(&calls); n != 4 {
		t.Errorf("calls = %d, want 4 (all elements settle before the error is chosen)", n)
	}
}

func TestBatchInsideFlow(t *testing.T) {
	flow := flume.NewFlow("pipeline", flume.NewBatch(appendNode("_processed")))

	got, err := flow.Execute(context.Background(), []any{"item1", "item2", "item3"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := []any{"item1_processed", "item2_processed", "item3_processed"}
	if !valueEqual(got, want) {
		t.Errorf("Execute() = %v, want %v", got, want)
	}
}
