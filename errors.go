package flume

import (
	"errors"
	"fmt"
)

// The error taxonomy. Every failure surfaced by the engine wraps exactly one
// of these sentinels, so callers can classify with errors.Is without losing
// the original message.
var (
	// ErrNodeFailed marks a node's own business-logic rejection, such as a
	// malformed input shape or a domain-rule violation.
	ErrNodeFailed = errors.New("flume: node failed")

	// ErrConversion marks a decode/encode mismatch between a Value and a
	// Tool's typed shape. It originates in the ToolNode adapter, never in
	// the tool's own logic, so tests can tell "my tool failed" apart from
	// "the caller sent the wrong shape".
	ErrConversion = errors.New("flume: data conversion failed")

	// ErrUnknown is the catch-all for failures that fit neither of the
	// above. Seeing it usually indicates a gap in a node's own error
	// reporting.
	ErrUnknown = errors.New("flume: unknown error")
)

// NodeErrorf returns an error wrapping ErrNodeFailed with a formatted
// message.
func NodeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNodeFailed, fmt.Sprintf(format, args...))
}

// ConversionErrorf returns an error wrapping ErrConversion with a formatted
// message.
func ConversionErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConversion, fmt.Sprintf(format, args...))
}

// UnknownErrorf returns an error wrapping ErrUnknown with a formatted
// message.
func UnknownErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnknown, fmt.Sprintf(format, args...))
}
