package flume

import (
	"github.com/ohler55/ojg/alt"
)

// Value is the dynamically typed tree exchanged between nodes: nil, bool,
// int64, float64, string, []any, or map[string]any (nested arbitrarily).
// It is an alias rather than a wrapper so that node implementations work
// directly with the generic trees produced by JSON parsing.
type Value = any

// Clone returns a deep copy of v. Fan-out containers clone the input for
// each branch so that mutation by one branch is never observable to a
// sibling.
func Clone(v Value) Value {
	return alt.Dup(v)
}

// AsArray reports whether v is array-shaped and returns its elements.
func AsArray(v Value) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

// AsObject reports whether v is object-shaped and returns its members.
func AsObject(v Value) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// AsString reports whether v is a string.
func AsString(v Value) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsNumber reports whether v is numeric and returns it as a float64.
// JSON parsing yields int64 for integral numbers and float64 otherwise;
// YAML configs and node code written against Go literals contribute the
// remaining integer kinds.
func AsNumber(v Value) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Field returns the named member of an object-shaped value.
func Field(v Value, key string) (Value, bool) {
	obj, ok := AsObject(v)
	if !ok {
		return nil, false
	}
	val, ok := obj[key]
	return val, ok
}
