package bitgate

import (
	"errors"

	"github.com/urick/obfuskit/pkg/hexcode"
)

// ErrEmptyKey is returned when a zero-length key is provided.
var ErrEmptyKey = errors.New("cannot use empty key")

// gateBits is how many bits of each key byte act as gates. Key material is
// treated as 7-bit ASCII; bit 7 is never consulted.
const gateBits = 7

type gateCursor struct {
	key    []byte
	keyIdx int
	bitIdx int
}

func newGateCursor(key []byte) (*gateCursor, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return &gateCursor{key: key}, nil
}

// gate transforms one byte and advances the cursor.
func (c *gateCursor) gate(b byte) byte {
	k := c.key[c.keyIdx]
	if k&(1<<c.bitIdx) != 0 {
		b ^= k
	}
	c.bitIdx++
	if c.bitIdx == gateBits {
		c.bitIdx = 0
		c.keyIdx = (c.keyIdx + 1) % len(c.key)
	}
	return b
}

// Encode transforms plaintext using key and returns the ciphertext, which is
// always the same length as the plaintext. The inputs are not modified. An
// empty plaintext yields an empty ciphertext.
func Encode(key, plaintext []byte) ([]byte, error) {
	cur, err := newGateCursor(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))
	for i, b := range plaintext {
		out[i] = cur.gate(b)
	}
	return out, nil
}

// EncodeToHex transforms plaintext using key and renders the result as an
// uppercase hex string.
func EncodeToHex(key, plaintext []byte) (string, error) {
	ct, err := Encode(key, plaintext)
	if err != nil {
		return "", err
	}
	return hexcode.Encode(ct), nil
}
