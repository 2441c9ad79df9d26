// Package hexutil converts between strings and their hex-digit encodings.
package hexutil

import (
	"encoding/hex"
	"fmt"
)

// Encode returns s with each byte spelled as two lowercase hex digits.
func Encode(s string) string {
	return hex.EncodeToString([]byte(s))
}

// Decode is the inverse of Encode. It errors on odd-length input or
// characters outside [0-9a-fA-F].
func Decode(s string) (string, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("decode hex %q: %w", s, err)
	}
	return string(b), nil
}
