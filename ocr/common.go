package ocr

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/rtfdom/format"
)

// PageSegMode is a Tesseract page segmentation mode.
type PageSegMode int

// Page segmentation modes, numbered as in Tesseract.
const (
	PSM_OSD_ONLY               PageSegMode = 0  // Orientation and script detection only
	PSM_AUTO_OSD               PageSegMode = 1  // Automatic with OSD
	PSM_AUTO_ONLY              PageSegMode = 2  // Automatic, no OSD or OCR
	PSM_AUTO                   PageSegMode = 3  // Fully automatic
	PSM_SINGLE_COLUMN          PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK_VERT_TEXT PageSegMode = 5  // Single uniform block of vertically aligned text
	PSM_SINGLE_BLOCK           PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE            PageSegMode = 7  // Single text line
	PSM_SINGLE_WORD            PageSegMode = 8  // Single word
	PSM_CIRCLE_WORD            PageSegMode = 9  // Single word in a circle
	PSM_SINGLE_CHAR            PageSegMode = 10 // Single character
	PSM_SPARSE_TEXT            PageSegMode = 11 // Find as much text as possible
	PSM_SPARSE_TEXT_OSD        PageSegMode = 12 // Sparse text with OSD
	PSM_RAW_LINE               PageSegMode = 13 // Treat image as single text line
)

// Options configures a Recognizer.
type Options struct {
	// Languages are Tesseract language codes, e.g. "eng" or "deu".
	Languages []string
	// PageSegMode is the layout analysis mode.
	PageSegMode PageSegMode
	// MaxLength limits alt text to this many runes. 0 means no limit.
	MaxLength int
}

// DefaultOptions returns options suited to figures and screenshots, where
// text is scattered rather than laid out in columns.
func DefaultOptions() Options {
	return Options{
		Languages:   []string{"eng"},
		PageSegMode: PSM_SPARSE_TEXT,
		MaxLength:   250,
	}
}

// recognizable reports whether Tesseract can read pictures of this type.
// Metafiles are vector drawings and are skipped.
func recognizable(mime string) bool {
	switch format.FromMIME(mime) {
	case format.BMP, format.PNG, format.JPEG, format.GIF, format.TIFF:
		return true
	default:
		return false
	}
}

// altText folds recognized text onto one line and cuts it to max runes,
// backing up to the last space when one is available.
func altText(text string, max int) string {
	s := strings.Join(strings.Fields(text), " ")
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}

	cut := 0
	for i := range s {
		if max == 0 {
			cut = i
			break
		}
		max--
	}
	if s[cut] == ' ' {
		return s[:cut]
	}
	if sp := strings.LastIndexByte(s[:cut], ' '); sp > 0 {
		cut = sp
	}
	return s[:cut]
}
