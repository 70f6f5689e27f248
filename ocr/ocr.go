//go:build ocr

// Package ocr produces alt text for embedded pictures with the Tesseract
// engine, through gosseract. Tesseract and its language data must be
// installed:
//
//	brew install tesseract         # macOS
//	apt-get install tesseract-ocr  # Ubuntu/Debian
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Recognizer runs OCR over picture data. It is not safe for concurrent use;
// Close releases the underlying Tesseract handle.
type Recognizer struct {
	client *gosseract.Client
	opts   Options
}

// New returns a Recognizer with DefaultOptions.
func New() (*Recognizer, error) {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions returns a Recognizer configured with opts.
func NewWithOptions(opts Options) (*Recognizer, error) {
	client := gosseract.NewClient()
	if len(opts.Languages) > 0 {
		if err := client.SetLanguage(opts.Languages...); err != nil {
			client.Close()
			return nil, fmt.Errorf("ocr: setting languages %v: %w", opts.Languages, err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(opts.PageSegMode)); err != nil {
		client.Close()
		return nil, fmt.Errorf("ocr: setting page segmentation mode %d: %w", opts.PageSegMode, err)
	}
	return &Recognizer{client: client, opts: opts}, nil
}

// Options returns the options the recognizer was created with.
func (r *Recognizer) Options() Options { return r.opts }

// Close releases OCR resources. It is safe to call on a nil Recognizer.
func (r *Recognizer) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	err := r.client.Close()
	r.client = nil
	return err
}

// Recognize returns the text found in encoded image data (BMP, PNG, JPEG,
// GIF or TIFF), trimmed of surrounding whitespace.
func (r *Recognizer) Recognize(data []byte) (string, error) {
	if err := r.client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("ocr: loading image: %w", err)
	}
	text, err := r.client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: recognizing text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// AltText recognizes text in a picture for its alt attribute. Metafiles and
// unknown types give "" without error. Bound as a method value it is a
// render.AltTextFunc.
func (r *Recognizer) AltText(mime string, data []byte) (string, error) {
	if !recognizable(mime) {
		return "", nil
	}
	text, err := r.Recognize(data)
	if err != nil {
		return "", err
	}
	return altText(text, r.opts.MaxLength), nil
}
