// Package codec provides text-interchange helpers over JSON. The
// selector core does not depend on it; it is consumed by callers that
// need to round-trip values through their textual form.
package codec

import (
	"encoding/json"
	"fmt"
)

// Encode produces the interchange text for any value. Field ordering in
// the output is not guaranteed to be stable across Go versions.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return string(data), nil
}

// EncodeIndent is Encode with two-space indentation, for human-facing
// exports.
func EncodeIndent(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return string(data), nil
}

// Decode reconstructs a typed value from interchange text. The target
// must be a pointer to the desired shape.
func Decode(data string, v any) error {
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
