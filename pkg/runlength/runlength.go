/*
Package runlength implements an alternating mask/copy transform over byte
buffers, keyed by a string of decimal digits.

The transform alternates between two kinds of run. During a transform run,
each input byte is XORed with Mask; the length of the run is the numeric
value of the current key digit, and each completed run advances to the next
digit, wrapping to the start of the key. During a skip run, a fixed number of
input bytes are copied through unchanged.

Like the bitgate transform, this is obfuscation rather than encryption: the
mask is fixed and the run structure leaks directly from the key digits.
*/
package runlength

import (
	"errors"
	"fmt"

	"github.com/urick/obfuskit/pkg/hexcode"
)

// Mask is XORed with every byte inside a transform run. It flips the low
// seven bits, mapping printable ASCII to printable ASCII in most cases.
const Mask byte = 127

var (
	// ErrEmptyKey is returned when a zero-length key is provided.
	ErrEmptyKey = errors.New("cannot use empty key")
	// ErrInvalidKey is returned when a key contains anything other than
	// ASCII decimal digits, or when the skip length is negative.
	ErrInvalidKey = errors.New("invalid key")
)

type runCursor struct {
	key      []byte
	skip     int
	keyIdx   int
	run      int
	skipping bool
}

// ValidateKey reports whether key is usable with Encode: non-empty and made
// up entirely of ASCII decimal digits.
func ValidateKey(key []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	for i, d := range key {
		if d < '0' || d > '9' {
			return fmt.Errorf("%w: non-digit character %q at position %d", ErrInvalidKey, d, i)
		}
	}
	return nil
}

func newRunCursor(key []byte, skip int) (*runCursor, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if skip < 0 {
		return nil, fmt.Errorf("%w: negative skip length %d", ErrInvalidKey, skip)
	}
	return &runCursor{key: key, skip: skip}, nil
}

// digit is the numeric value of the key digit under the cursor.
func (c *runCursor) digit() int {
	return int(c.key[c.keyIdx] - '0')
}

// settle resolves zero-length runs until the current phase can consume a
// byte. A zero digit ends its transform run immediately, and a zero skip
// length ends a skip run immediately. When the skip length is zero and every
// key digit is zero, no phase can ever consume a byte; settle reports false
// and the transform degenerates to a plain copy.
func (c *runCursor) settle() bool {
	for range c.key {
		if c.skipping {
			if c.skip > 0 {
				return true
			}
			c.skipping = false
			c.run = 0
		}
		if c.digit() > 0 {
			return true
		}
		c.keyIdx++
		if c.keyIdx >= len(c.key) {
			c.keyIdx = 0
		}
		c.skipping = true
		c.run = 0
	}
	return c.skip > 0
}

// next transforms one byte and advances the cursor.
func (c *runCursor) next(b byte) byte {
	if !c.settle() {
		return b
	}
	if c.skipping {
		c.run++
		if c.run >= c.skip {
			c.skipping = false
			c.run = 0
		}
		return b
	}
	d := c.digit()
	b ^= Mask
	c.run++
	if c.run >= d {
		c.run = 0
		c.keyIdx++
		if c.keyIdx >= len(c.key) {
			c.keyIdx = 0
		}
		c.skipping = true
	}
	return b
}

// Encode transforms plaintext using the digit key and skip length, returning
// a ciphertext of the same length. key must contain only the ASCII digits
// '0' through '9'. The inputs are not modified; an empty plaintext yields an
// empty ciphertext.
func Encode(key []byte, skip int, plaintext []byte) ([]byte, error) {
	cur, err := newRunCursor(key, skip)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))
	for i, b := range plaintext {
		out[i] = cur.next(b)
	}
	return out, nil
}

// EncodeToHex transforms plaintext using the digit key and skip length, then
// renders the result as a reversed uppercase hex string.
func EncodeToHex(key []byte, skip int, plaintext []byte) (string, error) {
	ct, err := Encode(key, skip, plaintext)
	if err != nil {
		return "", err
	}
	return hexcode.EncodeReversed(ct), nil
}
