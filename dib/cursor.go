package dib

// Cursor is a seekable little-endian byte reader positioned inside the
// container that holds the bitmap. *blob.Blob satisfies it.
type Cursor interface {
	Pos() int64
	Seek(pos int64) error
	Skip(n int64) error
	ReadUint16() (uint16, error)
	ReadInt32() (int32, error)
	ReadUint32() (uint32, error)
	ReadBinary(size int) ([]byte, error)
}

// withPos runs fn and then puts the cursor back where it was, whatever fn
// returned. A failed restore is reported only if fn itself succeeded.
func withPos(c Cursor, fn func() error) (err error) {
	saved := c.Pos()
	defer func() {
		if serr := c.Seek(saved); serr != nil && err == nil {
			err = &FormatError{Op: "restore position", Offset: saved, Err: serr}
		}
	}()
	return fn()
}
