package hexcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, "", Encode(nil))
	assert.Equal(t, "", Encode([]byte{}))
	assert.Equal(t, "00", Encode([]byte{0x00}))
	assert.Equal(t, "FF", Encode([]byte{0xff}))
	assert.Equal(t, "3E42", Encode([]byte{0x3e, 0x42}))
	assert.Equal(t, "DEADBEEF", Encode([]byte{0xde, 0xad, 0xbe, 0xef}))
}

func TestEncodeLengthAndAlphabet(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	enc := Encode(all)
	assert.Len(t, enc, 2*len(all))
	for _, c := range enc {
		valid := (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
		assert.True(t, valid, "unexpected character %q", c)
	}
}

func TestEncodeReversed(t *testing.T) {
	assert.Equal(t, "", EncodeReversed(nil))
	assert.Equal(t, "24E3", EncodeReversed([]byte{0x3e, 0x42}))

	// EncodeReversed must always equal the reversal of Encode.
	in := []byte("some sample input, odd length")
	enc := []byte(Encode(in))
	for i, j := 0, len(enc)-1; i < j; i, j = i+1, j-1 {
		enc[i], enc[j] = enc[j], enc[i]
	}
	assert.Equal(t, string(enc), EncodeReversed(in))
}
