// Package rtfdom renders rich text instruction streams, including embedded
// device-independent bitmaps, into HTML node trees.
//
// Basic usage:
//
//	doc := render.NewDocument()
//	doc.AddText("Hello")
//	html, warnings, err := rtfdom.Render(doc).HTML()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", rtfdom.FormatWarnings(warnings))
//	}
//
// With options:
//
//	html, _, err := rtfdom.Render(doc).
//	    WithConfigFile("render.yaml").
//	    WithAltText(ocrClient.AltText).
//	    HTML()
//
// Embedded bitmaps can be extracted on their own:
//
//	uri, err := rtfdom.ExtractDIB(data, offset, loc)
//
// The dib, render and htmlout packages are available for lower-level use.
package rtfdom

import (
	"github.com/tsawler/rtfdom/dib"
	"github.com/tsawler/rtfdom/internal/blob"
)

// ExtractDIB parses the DIB header at offset in data and returns the bitmap
// as a data URI. loc gives the header and pixel ranges within data.
func ExtractDIB(data []byte, offset int64, loc dib.Location) (string, error) {
	c := blob.New(data)
	if err := c.Seek(offset); err != nil {
		return "", &dib.FormatError{Op: "seek to header", Offset: offset, Err: err}
	}
	b, err := dib.NewBitmap(c, loc)
	if err != nil {
		return "", err
	}
	return b.Extract()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	uri := rtfdom.Must(rtfdom.ExtractDIB(data, 0, loc))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustHTML is a helper that wraps a call to HTML() or Nodes() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	html := rtfdom.MustHTML(rtfdom.Render(doc).HTML())
func MustHTML[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
