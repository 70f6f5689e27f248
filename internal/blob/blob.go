// Package blob provides a seekable little-endian byte cursor over an
// in-memory buffer. It is the reader that container parsers hand to the dib
// package.
package blob

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a read or seek would leave the buffer.
var ErrOutOfRange = errors.New("blob: out of range")

// Blob is a read cursor over a byte slice. The zero value is an empty blob.
type Blob struct {
	data []byte
	pos  int64
}

// New returns a Blob positioned at offset 0. The slice is not copied.
func New(data []byte) *Blob {
	return &Blob{data: data}
}

// Len returns the length of the underlying buffer.
func (b *Blob) Len() int64 { return int64(len(b.data)) }

// Pos returns the current read offset.
func (b *Blob) Pos() int64 { return b.pos }

// Seek moves the cursor to an absolute offset. Seeking to Len() is allowed.
func (b *Blob) Seek(pos int64) error {
	if pos < 0 || pos > b.Len() {
		return fmt.Errorf("%w: seek to %d, length %d", ErrOutOfRange, pos, b.Len())
	}
	b.pos = pos
	return nil
}

// Skip advances the cursor by n bytes.
func (b *Blob) Skip(n int64) error {
	return b.Seek(b.pos + n)
}

// ReadUint16 reads a little-endian 16-bit value.
func (b *Blob) ReadUint16() (uint16, error) {
	p, err := b.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(p), nil
}

// ReadUint32 reads a little-endian 32-bit value.
func (b *Blob) ReadUint32() (uint32, error) {
	p, err := b.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

// ReadInt32 reads a little-endian signed 32-bit value.
func (b *Blob) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()
	return int32(v), err
}

// ReadBinary returns a copy of the next size bytes.
func (b *Blob) ReadBinary(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative read size %d", ErrOutOfRange, size)
	}
	p, err := b.take(size)
	if err != nil {
		return nil, err
	}
	out := make([]byte, size)
	copy(out, p)
	return out, nil
}

// take returns the next n bytes and advances. The cursor does not move on
// failure.
func (b *Blob) take(n int) ([]byte, error) {
	end := b.pos + int64(n)
	if end > b.Len() {
		return nil, fmt.Errorf("%w: reading %d bytes at offset %d, length %d", ErrOutOfRange, n, b.pos, b.Len())
	}
	p := b.data[b.pos:end]
	b.pos = end
	return p, nil
}
