package qdihedral

// Distinguished elements of the group, as bytes.
const (
	// Identity is the group identity.
	Identity byte = 0
	// R is the rotation generator, of order 128.
	R byte = 1
	// S is the reflection-like generator, of order 2.
	S byte = 128
)

// Mul returns the product ab of two group elements.
func Mul(a, b byte) byte {
	k1, k2 := int(a&0x7f), int(b&0x7f)
	j1, j2 := a>>7, b>>7

	j := j1 ^ j2
	var k int
	if j1 != 0 {
		k = (k1 + 63*k2) % 128
	} else {
		k = (k1 + k2) % 128
	}
	return j<<7 | byte(k)
}

// Inverse returns the group inverse of a, so Mul(a, Inverse(a)) == Identity.
func Inverse(a byte) byte {
	k := int(a & 0x7f)
	if a&0x80 != 0 {
		return 0x80 | byte(63*(128-k)%128)
	}
	return byte((128 - k) % 128)
}

// Encrypt sets each output byte to the product of all plaintext bytes up to
// and including that position. The output is the same length as the input.
func Encrypt(plaintext []byte) []byte {
	out := make([]byte, len(plaintext))
	st := encryptState{prod: Identity}
	for i, b := range plaintext {
		out[i] = st.crypt(b)
	}
	return out
}

// Decrypt reverses Encrypt, recovering the plaintext from a running-product
// ciphertext.
func Decrypt(ciphertext []byte) []byte {
	out := make([]byte, len(ciphertext))
	st := decryptState{last: Identity}
	for i, b := range ciphertext {
		out[i] = st.crypt(b)
	}
	return out
}

type encryptState struct {
	prod byte
}

func (s *encryptState) crypt(b byte) byte {
	s.prod = Mul(s.prod, b)
	return s.prod
}

func (s *encryptState) reset() {
	s.prod = Identity
}

type decryptState struct {
	last byte
}

func (s *decryptState) crypt(b byte) byte {
	out := Mul(Inverse(s.last), b)
	s.last = b
	return out
}

func (s *decryptState) reset() {
	s.last = Identity
}
