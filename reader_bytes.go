package codec

import (
	"fmt"
	"io"
)

// BytesReader is an io.Reader over a byte slice that remembers how much of it
// has been consumed. Decoders use it to take frames off the input.
type BytesReader struct {
	B []byte // source slice
	N int    // current read position
}

// NewBytesReader creates a new BytesReader.
func NewBytesReader(b []byte) *BytesReader {
	return &BytesReader{B: b}
}

// Read implements the [io.Reader] interface.
func (r *BytesReader) Read(p []byte) (int, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	n := copy(p, r.B[r.N:])
	r.N += n
	return n, nil
}

// ReadByte implements the [io.ByteReader] interface.
func (r *BytesReader) ReadByte() (byte, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	b := r.B[r.N]
	r.N++
	return b, nil
}

// Peek returns the next n bytes without consuming them.
func (r *BytesReader) Peek(n int) ([]byte, error) {
	if n < 0 || n > r.Available() {
		return nil, fmt.Errorf("%w: want %d bytes, have %d", ErrTruncatedData, n, r.Available())
	}
	return r.B[r.N : r.N+n], nil
}

// Next consumes and returns the next n bytes. The result aliases the source slice.
func (r *BytesReader) Next(n int) ([]byte, error) {
	b, err := r.Peek(n)
	if err != nil {
		return nil, err
	}
	r.N += n
	return b, nil
}

// Reset allows the underlying byte slice to be reused.
func (r *BytesReader) Reset() {
	r.N = 0
}

// Len returns the number of bytes read.
func (r *BytesReader) Len() int {
	return r.N
}

// Available returns the number of bytes available for reading.
func (r *BytesReader) Available() int {
	length := len(r.B) - r.N
	if length <= 0 {
		return 0
	}
	return length
}
