package qdihedral

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteRoundTrip(t *testing.T) {
	data := "A string with some text"
	var output strings.Builder

	in := NewEncryptReader(strings.NewReader(data))
	assert.NotNil(t, in)
	out := NewDecryptWriter(&output)
	assert.NotNil(t, out)

	n, err := io.Copy(out, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, data, output.String())
}

func TestEncryptReaderMatchesEncrypt(t *testing.T) {
	data := []byte{5, 9, 130, 77, 0, 255}
	r := NewEncryptReader(bytes.NewReader(data))
	got, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, Encrypt(data), got)
}

func TestEncryptWriterMatchesEncrypt(t *testing.T) {
	data := []byte("running products all the way down")
	var buf bytes.Buffer
	w := NewEncryptWriter(&buf)
	n, err := w.Write(data)
	assert.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, Encrypt(data), buf.Bytes())
}

func TestReaderReset(t *testing.T) {
	data := []byte{10, 20, 30}
	r := NewEncryptReader(bytes.NewReader(data))
	first, err := io.ReadAll(r)
	assert.NoError(t, err)

	r.Reset(bytes.NewReader(data))
	second, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriterReset(t *testing.T) {
	data := []byte{10, 20, 30}
	var outA, outB bytes.Buffer
	w := NewDecryptWriter(&outA)
	_, err := w.Write(Encrypt(data))
	assert.NoError(t, err)
	assert.Equal(t, data, outA.Bytes())

	w.Reset(&outB)
	_, err = w.Write(Encrypt(data))
	assert.NoError(t, err)
	assert.Equal(t, data, outB.Bytes())
}
