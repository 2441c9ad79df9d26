// Package baseconv re-expresses unsigned integers between digit bases.
package baseconv

import (
	"fmt"
	"math/big"
)

// Bases supported by Convert. Digits above 9 use the letters a-z,
// case-insensitively on input and lowercase on output.
const (
	MinBase = 2
	MaxBase = 36
)

// Convert reinterprets digits, an unsigned integer written in base from,
// as a digit string in base to. Arbitrary precision: the value is not
// limited to a machine word.
func Convert(digits string, from, to int) (string, error) {
	if from < MinBase || from > MaxBase {
		return "", fmt.Errorf("source base %d out of range [%d,%d]", from, MinBase, MaxBase)
	}
	if to < MinBase || to > MaxBase {
		return "", fmt.Errorf("target base %d out of range [%d,%d]", to, MinBase, MaxBase)
	}
	if digits == "" {
		return "", fmt.Errorf("empty digit string")
	}

	n, ok := new(big.Int).SetString(digits, from)
	if !ok || n.Sign() < 0 {
		return "", fmt.Errorf("%q is not an unsigned base-%d number", digits, from)
	}
	return n.Text(to), nil
}
