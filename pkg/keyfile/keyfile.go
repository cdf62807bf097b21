// Package keyfile reads and writes cipher configuration files, so a key and
// its transform settings can be stored once and reused across invocations.
package keyfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"

	"github.com/urick/obfuskit/pkg/runlength"
)

const (
	magicBytes uint16 = 0x0b1f
	// maxKeyLen bounds the key length field read from untrusted input.
	maxKeyLen uint64 = 1 << 16
)

var endian = binary.BigEndian

var (
	// ErrInvalidConfig is returned when a Config cannot be written or used.
	ErrInvalidConfig = errors.New("invalid cipher config")
	// ErrMalformedFile is returned when input data is not a valid keyfile.
	ErrMalformedFile = errors.New("malformed keyfile")
)

// Kind selects which transform a Config applies to.
type Kind uint8

const (
	// BitGate selects the bit-gated XOR transform.
	BitGate Kind = iota + 1
	// RunLength selects the run-length mask transform.
	RunLength
)

func (k Kind) String() string {
	switch k {
	case BitGate:
		return "bitgate"
	case RunLength:
		return "runlength"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ParseKind maps a cipher name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "bitgate":
		return BitGate, nil
	case "runlength":
		return RunLength, nil
	default:
		return 0, fmt.Errorf("%w: unknown cipher %q", ErrInvalidConfig, name)
	}
}

// Config is the stored configuration for one transform: which cipher to run,
// the key material, and the skip length for run-length keys.
type Config struct {
	Cipher Kind
	Skip   uint64
	Key    []byte
}

func (c *Config) mapper(keyLen *uint64) bin.Mapper {
	return bin.MapSequence(
		bin.Byte((*uint8)(&c.Cipher)),
		bin.Int(&c.Skip),
		bin.Int(keyLen),
	)
}

// Validate checks that the Config can drive its selected transform.
func (c *Config) Validate() error {
	switch c.Cipher {
	case BitGate:
		if len(c.Key) == 0 {
			return fmt.Errorf("%w: empty key", ErrInvalidConfig)
		}
	case RunLength:
		if err := runlength.ValidateKey(c.Key); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	default:
		return fmt.Errorf("%w: unknown cipher kind %d", ErrInvalidConfig, uint8(c.Cipher))
	}
	if uint64(len(c.Key)) > maxKeyLen {
		return fmt.Errorf("%w: key longer than %d bytes", ErrInvalidConfig, maxKeyLen)
	}
	return nil
}

// Write serializes the Config to w in the keyfile format.
func (c *Config) Write(w io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := binary.Write(w, endian, magicBytes); err != nil {
		return err
	}
	keyLen := uint64(len(c.Key))
	if err := c.mapper(&keyLen).Write(w, endian); err != nil {
		return err
	}
	_, err := w.Write(c.Key)
	return err
}

// ReadConfig deserializes a Config from r, validating it before returning.
func ReadConfig(r io.Reader) (*Config, error) {
	var magic uint16
	if err := binary.Read(r, endian, &magic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if magic != magicBytes {
		return nil, fmt.Errorf("%w: bad magic bytes", ErrMalformedFile)
	}
	var (
		c      Config
		keyLen uint64
	)
	if err := c.mapper(&keyLen).Read(r, endian); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if keyLen == 0 || keyLen > maxKeyLen {
		return nil, fmt.Errorf("%w: key length %d out of range", ErrMalformedFile, keyLen)
	}
	c.Key = make([]byte, keyLen)
	if _, err := io.ReadFull(r, c.Key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
