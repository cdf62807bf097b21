package runlength

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeKeyValidation(t *testing.T) {
	_, err := Encode(nil, 0, []byte("payload"))
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = Encode([]byte{}, 1, []byte("payload"))
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = Encode([]byte("1a"), 0, []byte("payload"))
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = Encode([]byte("86753 9"), 1, []byte("payload"))
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = Encode([]byte("123"), -1, []byte("payload"))
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestEncodeEmptyPlaintext(t *testing.T) {
	out, err := Encode([]byte("8675309"), 1, nil)
	assert.NoError(t, err)
	assert.Empty(t, out)
	hex, err := EncodeToHex([]byte("8675309"), 1, []byte{})
	assert.NoError(t, err)
	assert.Equal(t, "", hex)
}

func TestEncodeSingleRunAndSkip(t *testing.T) {
	// digit 1: transform one byte, then skip one byte.
	out, err := Encode([]byte("1"), 1, []byte{0x41, 0x42})
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x3e, 0x42}, out)

	hex, err := EncodeToHex([]byte("1"), 1, []byte{0x41, 0x42})
	assert.NoError(t, err)
	assert.Equal(t, "24E3", hex)
}

func TestEncodeAlternatingRuns(t *testing.T) {
	// Key "21", skip 2: transform 2, skip 2, transform 1, skip 2, wrap.
	in := []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	out, err := Encode([]byte("21"), 2, in)
	assert.NoError(t, err)
	want := []byte{127, 127, 0, 0, 127, 0, 0, 127, 127, 0}
	assert.Equal(t, want, out)
}

func TestEncodeZeroSkip(t *testing.T) {
	// With skip 0 every byte lands in a transform run.
	in := []byte("Hello, this a secret message :)")
	out, err := Encode([]byte("8675309"), 0, in)
	assert.NoError(t, err)
	for i := range in {
		assert.Equal(t, in[i]^Mask, out[i], "byte %d", i)
	}
}

func TestEncodeZeroDigitFallsThrough(t *testing.T) {
	// A zero digit produces no transformed bytes; the byte that would have
	// started its run is consumed by the following skip run instead.
	out, err := Encode([]byte("01"), 1, []byte{0x10, 0x20, 0x30})
	assert.NoError(t, err)
	// digit 0: empty run, skip 0x10; digit 1: transform 0x20, skip 0x30.
	assert.Equal(t, []byte{0x10, 0x20 ^ Mask, 0x30}, out)
}

func TestEncodeAllZeroKeyZeroSkip(t *testing.T) {
	// Nothing can consume a byte, so the transform degenerates to a copy.
	in := []byte{1, 2, 3, 4}
	out, err := Encode([]byte("000"), 0, in)
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeLengthPreserved(t *testing.T) {
	for _, size := range []int{0, 1, 2, 31, 64, 257} {
		in := make([]byte, size)
		for i := range in {
			in[i] = byte(i)
		}
		out, err := Encode([]byte("8675309"), 1, in)
		assert.NoError(t, err)
		assert.Len(t, out, size)
	}
}

func TestEncodeDoesNotAliasInput(t *testing.T) {
	in := []byte{0x41, 0x42}
	out, err := Encode([]byte("1"), 1, in)
	assert.NoError(t, err)
	out[0], out[1] = 0xff, 0xff
	assert.Equal(t, []byte{0x41, 0x42}, in)
}

func TestGenKey(t *testing.T) {
	_, err := GenKey(0)
	assert.Error(t, err)
	key, err := GenKey(16)
	assert.NoError(t, err)
	assert.Len(t, key, 16)
	for _, d := range key {
		assert.GreaterOrEqual(t, d, byte('1'))
		assert.LessOrEqual(t, d, byte('9'))
	}
	// Generated keys must be directly usable.
	_, err = Encode(key, 1, []byte("payload"))
	assert.NoError(t, err)
}
