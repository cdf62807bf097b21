package qdihedral

import (
	"bytes"
	"io"
)

// cryptor transforms one byte at a time and can rewind to its initial state.
type cryptor interface {
	crypt(b byte) byte
	reset()
}

// Reader extends io.Reader, but also provides a way to restart the stream
// with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader and rewind the cipher state.
	Reset(source io.Reader)
}

// Writer extends io.Writer, but also provides a way to restart the stream
// with a different target.
type Writer interface {
	io.Writer
	// Reset will use the provided io.Writer and rewind the cipher state.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	st     cryptor
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	for i := 0; i < n; i++ {
		out[i] = r.st.crypt(out[i])
	}
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.st.reset()
}

// NewEncryptReader constructs a Reader that encrypts all bytes read from r.
func NewEncryptReader(r io.Reader) Reader {
	return &reader{source: r, st: &encryptState{}}
}

// NewDecryptReader constructs a Reader that decrypts all bytes read from r.
func NewDecryptReader(r io.Reader) Reader {
	return &reader{source: r, st: &decryptState{}}
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	st     cryptor
}

func (w *writer) Write(in []byte) (n int, err error) {
	var buf bytes.Buffer
	for i := 0; i < len(in); i++ {
		buf.WriteByte(w.st.crypt(in[i]))
	}
	return w.target.Write(buf.Bytes())
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.st.reset()
}

// NewEncryptWriter constructs a Writer that encrypts all bytes written to it.
func NewEncryptWriter(target io.Writer) Writer {
	return &writer{target: target, st: &encryptState{}}
}

// NewDecryptWriter constructs a Writer that decrypts all bytes written to it.
func NewDecryptWriter(target io.Writer) Writer {
	return &writer{target: target, st: &decryptState{}}
}
