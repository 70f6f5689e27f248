//go:build !ocr

// Package ocr produces alt text for embedded pictures with the Tesseract
// engine.
//
// This build has no OCR support: New and NewWithOptions fail with
// ErrOCRNotEnabled. Rebuild with the "ocr" tag, which needs Tesseract
// installed:
//
//	go build -tags ocr
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR support was not compiled in.
var ErrOCRNotEnabled = errors.New("ocr: support not enabled; rebuild with -tags ocr")

// Recognizer is the placeholder type of builds without OCR.
type Recognizer struct {
	opts Options
}

// New fails with ErrOCRNotEnabled.
func New() (*Recognizer, error) {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions fails with ErrOCRNotEnabled.
func NewWithOptions(opts Options) (*Recognizer, error) {
	return nil, ErrOCRNotEnabled
}

// Options returns the zero Options.
func (r *Recognizer) Options() Options {
	if r == nil {
		return Options{}
	}
	return r.opts
}

// Close does nothing. It is safe to call on a nil Recognizer.
func (r *Recognizer) Close() error {
	return nil
}

// Recognize fails with ErrOCRNotEnabled.
func (r *Recognizer) Recognize(data []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// AltText gives "" for pictures OCR would skip and ErrOCRNotEnabled for the
// rest, so renderers record a warning only for pictures that could have had
// alt text.
func (r *Recognizer) AltText(mime string, data []byte) (string, error) {
	if !recognizable(mime) {
		return "", nil
	}
	return "", ErrOCRNotEnabled
}
