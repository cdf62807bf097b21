package bitgate

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// GenKey will generate a random key with the given length.
func GenKey(length int) ([]byte, error) {
	if length <= 0 {
		return nil, errors.New("asked to generate a 0-length key")
	}
	buf := make([]byte, length)
	n, err := rand.Read(buf)
	if n < length {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return buf, nil
}
