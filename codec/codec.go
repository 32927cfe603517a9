// Package codec converts between the engine's dynamic value trees and typed
// Go shapes. Both directions round-trip through ojg's JSON encoder, so the
// mapping rules (json struct tags, number normalization) are exactly those of
// the wire format.
package codec

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
)

// Decode converts a dynamic value tree into the typed shape T. It fails when
// the tree cannot be represented as T, for example a string where a number
// field is expected.
func Decode[T any](v any) (T, error) {
	var out T
	data, err := oj.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("codec: marshal value: %w", err)
	}
	if err := oj.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("codec: decode into %T: %w", out, err)
	}
	return out, nil
}

// Encode converts a typed Go value into a dynamic value tree (nil, bool,
// int64, float64, string, []any, map[string]any).
func Encode(v any) (any, error) {
	data, err := oj.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: encode %T: %w", v, err)
	}
	tree, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("codec: reparse %T: %w", v, err)
	}
	return tree, nil
}
