package codec_test

import (
	"testing"

	"github.com/agentstation/flume/codec"
)

type person struct {
	Name string   `json:"name"`
	Age  int      `json:"age"`
	Tags []string `json:"tags"`
}

func TestDecode(t *testing.T) {
	v := map[string]any{
		"name": "ada",
		"age":  36,
		"tags": []any{"math", "engines"},
	}

	got, err := codec.Decode[person](v)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Name != "ada" || got.Age != 36 {
		t.Errorf("Decode() = %+v, want name=ada age=36", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "math" {
		t.Errorf("tags = %v, want [math engines]", got.Tags)
	}
}

func TestDecodeMismatch(t *testing.T) {
	v := map[string]any{"name": "ada", "age": "not a number"}

	if _, err := codec.Decode[person](v); err == nil {
		t.Error("Decode() expected error for string in numeric field")
	}
}

func TestEncodeProducesGenericTree(t *testing.T) {
	got, err := codec.Encode(person{Name: "ada", Age: 36, Tags: []string{"math"}})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	obj, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Encode() = %T, want map[string]any", got)
	}
	if obj["name"] != "ada" {
		t.Errorf("name = %v, want ada", obj["name"])
	}
	if _, ok := obj["tags"].([]any); !ok {
		t.Errorf("tags = %T, want []any", obj["tags"])
	}
}

func TestRoundTrip(t *testing.T) {
	in := person{Name: "grace", Age: 85}

	tree, err := codec.Encode(in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out, err := codec.Decode[person](tree)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if out.Name != in.Name || out.Age != in.Age {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
