package runlength

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// GenKey will generate a random decimal-digit key with the given length,
// suitable for passing to Encode. Zero digits are excluded so that every key
// position produces a non-empty transform run.
func GenKey(length int) ([]byte, error) {
	if length <= 0 {
		return nil, errors.New("asked to generate a 0-length key")
	}
	buf := make([]byte, length)
	n, err := rand.Read(buf)
	if n < length {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	for i, b := range buf {
		buf[i] = '1' + b%9
	}
	return buf, nil
}
