/*
Package contfrac implements a toy cipher identifying byte sequences with
rational numbers through continued fractions.

A plaintext b_0, b_1, ..., b_{n-1} maps to the rational whose continued
fraction is [b_0+2; b_1+2, ..., b_{n-1}+2]. The +2 shift keeps every
coefficient at 2 or above, which makes the expansion unambiguous: without it
a trailing coefficient of 1 could be folded into its predecessor, and two
distinct plaintexts would share a ciphertext.
*/
package contfrac

import (
	"errors"
	"fmt"
	"math/big"
)

// shift is added to every byte value before it becomes a coefficient.
const shift = 2

var (
	// ErrEmptyPlaintext is returned by Encode for zero-length input, which
	// has no continued fraction representation.
	ErrEmptyPlaintext = errors.New("cannot encode an empty plaintext")
	// ErrNoPlaintext is returned by Decode when the rational does not
	// correspond to any sequence of plaintext bytes.
	ErrNoPlaintext = errors.New("fraction does not correspond to any plaintext")
)

// Encode maps plaintext to its ciphertext rational. The plaintext must be
// non-empty.
func Encode(plaintext []byte) (*big.Rat, error) {
	if len(plaintext) == 0 {
		return nil, ErrEmptyPlaintext
	}
	// Build from the innermost coefficient outward.
	x := new(big.Rat).SetInt64(int64(plaintext[len(plaintext)-1]) + shift)
	for i := len(plaintext) - 2; i >= 0; i-- {
		x.Inv(x)
		x.Add(x, new(big.Rat).SetInt64(int64(plaintext[i])+shift))
	}
	return x, nil
}

// Decode recovers the plaintext bytes from a ciphertext rational produced by
// Encode. Rationals whose continued fraction contains a coefficient outside
// the range 2..257 do not decode to any plaintext.
func Decode(ciphertext *big.Rat) ([]byte, error) {
	if ciphertext == nil || ciphertext.Sign() <= 0 {
		return nil, fmt.Errorf("%w: not a positive rational", ErrNoPlaintext)
	}
	var out []byte
	x := new(big.Rat).Set(ciphertext)
	for {
		// x is positive, so integer division is the floor.
		coeff := new(big.Int).Quo(x.Num(), x.Denom())
		if !coeff.IsInt64() {
			return nil, fmt.Errorf("%w: coefficient %s out of range", ErrNoPlaintext, coeff)
		}
		c := coeff.Int64()
		if c < shift || c > shift+255 {
			return nil, fmt.Errorf("%w: coefficient %d out of range", ErrNoPlaintext, c)
		}
		out = append(out, byte(c-shift))
		x.Sub(x, new(big.Rat).SetInt(coeff))
		if x.Sign() == 0 {
			return out, nil
		}
		x.Inv(x)
	}
}
