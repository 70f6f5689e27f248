package dib

import (
	"errors"
	"fmt"
)

// ErrSizeOverflow means a header or bitmap size does not fit the 32-bit
// fields of a BMP file header.
var ErrSizeOverflow = errors.New("dib: size exceeds 32 bits")

// FormatError reports a malformed or truncated bitmap. Err is the cursor
// failure that caused it and is reachable through errors.Is / errors.As.
type FormatError struct {
	Op     string // what was being read, e.g. "info header"
	Offset int64  // cursor offset where the operation started
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dib: %s at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatErr(op string, offset int64, err error) error {
	if err == nil {
		return nil
	}
	return &FormatError{Op: op, Offset: offset, Err: err}
}
