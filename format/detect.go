// Package format provides picture format detection for embedded images.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a picture format found in documents and metafiles.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// BMP indicates a Windows bitmap file.
	BMP
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// GIF indicates a GIF image.
	GIF
	// TIFF indicates a TIFF image.
	TIFF
	// EMF indicates an Enhanced Metafile.
	EMF
	// WMF indicates a Windows Metafile.
	WMF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case BMP:
		return "BMP"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case TIFF:
		return "TIFF"
	case EMF:
		return "EMF"
	case WMF:
		return "WMF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case BMP:
		return ".bmp"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case GIF:
		return ".gif"
	case TIFF:
		return ".tiff"
	case EMF:
		return ".emf"
	case WMF:
		return ".wmf"
	default:
		return ""
	}
}

// MIMEType returns the media type, or "" for Unknown.
func (f Format) MIMEType() string {
	switch f {
	case BMP:
		return "image/bmp"
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case GIF:
		return "image/gif"
	case TIFF:
		return "image/tiff"
	case EMF:
		return "image/emf"
	case WMF:
		return "image/wmf"
	default:
		return ""
	}
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".bmp", ".dib":
		return BMP
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".gif":
		return GIF
	case ".tif", ".tiff":
		return TIFF
	case ".emf":
		return EMF
	case ".wmf":
		return WMF
	default:
		return Unknown
	}
}

// FromMIME maps a media type to a format. Parameters after ';' are ignored.
func FromMIME(mime string) Format {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/bmp", "image/x-bmp", "image/x-ms-bmp":
		return BMP
	case "image/png":
		return PNG
	case "image/jpeg", "image/jpg", "image/pjpeg":
		return JPEG
	case "image/gif":
		return GIF
	case "image/tiff":
		return TIFF
	case "image/emf", "image/x-emf":
		return EMF
	case "image/wmf", "image/x-wmf":
		return WMF
	default:
		return Unknown
	}
}

var (
	pngMagic       = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
	jpegMagic      = []byte{0xFF, 0xD8, 0xFF}
	tiffLEMagic    = []byte{'I', 'I', 0x2A, 0x00}
	tiffBEMagic    = []byte{'M', 'M', 0x00, 0x2A}
	wmfPlaceable   = []byte{0xD7, 0xCD, 0xC6, 0x9A}
	wmfMemoryMagic = []byte{0x01, 0x00, 0x09, 0x00}
	wmfDiskMagic   = []byte{0x02, 0x00, 0x09, 0x00}
)

// DetectFromMagic checks leading magic bytes to determine the format.
// Returns Unknown if the format cannot be determined.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return PNG
	case bytes.HasPrefix(data, jpegMagic):
		return JPEG
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return GIF
	case bytes.HasPrefix(data, tiffLEMagic), bytes.HasPrefix(data, tiffBEMagic):
		return TIFF
	case len(data) >= 6 && data[0] == 'B' && data[1] == 'M':
		return BMP
	case detectEMF(data):
		return EMF
	case bytes.HasPrefix(data, wmfPlaceable),
		bytes.HasPrefix(data, wmfMemoryMagic),
		bytes.HasPrefix(data, wmfDiskMagic):
		return WMF
	default:
		return Unknown
	}
}

// detectEMF looks for an EMR_HEADER record (type 1) carrying the " EMF"
// signature at offset 40.
func detectEMF(data []byte) bool {
	if len(data) < 44 {
		return false
	}
	if data[0] != 0x01 || data[1] != 0 || data[2] != 0 || data[3] != 0 {
		return false
	}
	return string(data[40:44]) == " EMF"
}
