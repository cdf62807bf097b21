// Package hexcode renders byte buffers as uppercase hexadecimal strings.
//
// The stdlib encoding/hex emits lowercase digits, and the transforms in this
// module are specified against the uppercase alphabet, so the table lives
// here instead.
package hexcode

const upperhex = "0123456789ABCDEF"

// Encode renders each byte of b as two uppercase hex digits, most significant
// nibble first. The result is always exactly 2*len(b) characters; an empty
// input yields an empty string.
func Encode(b []byte) string {
	out := make([]byte, 2*len(b))
	for i, v := range b {
		out[2*i] = upperhex[v>>4]
		out[2*i+1] = upperhex[v&0x0f]
	}
	return string(out)
}

// EncodeReversed is Encode with the character order of the whole string
// reversed, so "AB12" becomes "21BA". The reversal operates on hex digits,
// not on the input bytes.
func EncodeReversed(b []byte) string {
	out := []byte(Encode(b))
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
