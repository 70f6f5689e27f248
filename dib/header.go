package dib

// Header sizes and the BITMAPFILEHEADER length.
const (
	CoreHeaderSize = 12 // BITMAPCOREHEADER
	InfoHeaderSize = 40 // BITMAPINFOHEADER
	FileHeaderSize = 14 // BITMAPFILEHEADER
)

// Compression is the biCompression field of an info header.
type Compression uint32

const (
	BI_RGB            Compression = 0
	BI_RLE8           Compression = 1
	BI_RLE4           Compression = 2
	BI_BITFIELDS      Compression = 3
	BI_JPEG           Compression = 4
	BI_PNG            Compression = 5
	BI_ALPHABITFIELDS Compression = 6
	BI_CMYK           Compression = 11
	BI_CMYKRLE8       Compression = 12
	BI_CMYKRLE4       Compression = 13
)

func (c Compression) String() string {
	switch c {
	case BI_RGB:
		return "BI_RGB"
	case BI_RLE8:
		return "BI_RLE8"
	case BI_RLE4:
		return "BI_RLE4"
	case BI_BITFIELDS:
		return "BI_BITFIELDS"
	case BI_JPEG:
		return "BI_JPEG"
	case BI_PNG:
		return "BI_PNG"
	case BI_ALPHABITFIELDS:
		return "BI_ALPHABITFIELDS"
	case BI_CMYK:
		return "BI_CMYK"
	case BI_CMYKRLE8:
		return "BI_CMYKRLE8"
	case BI_CMYKRLE4:
		return "BI_CMYKRLE4"
	default:
		return "Unknown"
	}
}

// Header is one of the two DIB header layouts. The set of implementations
// is closed: *CoreHeader and *InfoHeader.
type Header interface {
	// PixelWidth returns the stored width.
	PixelWidth() int
	// PixelHeight returns the stored height, negative for top-down rows.
	PixelHeight() int
	// Bits returns bits per pixel.
	Bits() uint16
	// Colors returns the number of colour table entries.
	Colors() int

	header()
}

// CoreHeader is the BITMAPCOREHEADER layout (declared size 12).
type CoreHeader struct {
	Width    uint16
	Height   uint16
	Planes   uint16
	BitCount uint16
}

func (h *CoreHeader) PixelWidth() int  { return int(h.Width) }
func (h *CoreHeader) PixelHeight() int { return int(h.Height) }
func (h *CoreHeader) Bits() uint16     { return h.BitCount }
func (h *CoreHeader) header()          {}

// Colors returns 2^BitCount for palettised images and 0 otherwise.
func (h *CoreHeader) Colors() int {
	if h.BitCount <= 8 {
		return 1 << h.BitCount
	}
	return 0
}

// InfoHeader is the BITMAPINFOHEADER layout. V4 and V5 headers are read
// through their leading 40 bytes only.
type InfoHeader struct {
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   Compression
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

func (h *InfoHeader) PixelWidth() int  { return int(h.Width) }
func (h *InfoHeader) PixelHeight() int { return int(h.Height) }
func (h *InfoHeader) Bits() uint16     { return h.BitCount }
func (h *InfoHeader) header()          {}

// Colors returns ClrUsed capped at 256, or 2^BitCount for palettised images
// that leave ClrUsed at zero.
func (h *InfoHeader) Colors() int {
	if h.ClrUsed != 0 {
		if h.ClrUsed < 256 {
			return int(h.ClrUsed)
		}
		return 256
	}
	if h.BitCount > 8 {
		return 0
	}
	return 1 << h.BitCount
}

// ReadCoreHeader reads a BITMAPCOREHEADER. If skipSize is set the leading
// 32-bit size field is still in the stream and is skipped.
func ReadCoreHeader(c Cursor, skipSize bool) (*CoreHeader, error) {
	r := fieldReader{c: c, offset: c.Pos()}
	if skipSize {
		r.skip(4)
	}
	h := &CoreHeader{
		Width:    r.u16(),
		Height:   r.u16(),
		Planes:   r.u16(),
		BitCount: r.u16(),
	}
	if r.err != nil {
		return nil, formatErr("core header", r.offset, r.err)
	}
	return h, nil
}

// ReadInfoHeader reads a BITMAPINFOHEADER. If skipSize is set the leading
// 32-bit size field is still in the stream and is skipped.
func ReadInfoHeader(c Cursor, skipSize bool) (*InfoHeader, error) {
	r := fieldReader{c: c, offset: c.Pos()}
	if skipSize {
		r.skip(4)
	}
	h := &InfoHeader{
		Width:         r.i32(),
		Height:        r.i32(),
		Planes:        r.u16(),
		BitCount:      r.u16(),
		Compression:   Compression(r.u32()),
		SizeImage:     r.u32(),
		XPelsPerMeter: r.i32(),
		YPelsPerMeter: r.i32(),
		ClrUsed:       r.u32(),
		ClrImportant:  r.u32(),
	}
	if r.err != nil {
		return nil, formatErr("info header", r.offset, r.err)
	}
	return h, nil
}

// fieldReader reads consecutive fields and keeps the first error. Reads
// after an error return zero.
type fieldReader struct {
	c      Cursor
	offset int64
	err    error
}

func (r *fieldReader) skip(n int64) {
	if r.err == nil {
		r.err = r.c.Skip(n)
	}
}

func (r *fieldReader) u16() uint16 {
	if r.err != nil {
		return 0
	}
	var v uint16
	v, r.err = r.c.ReadUint16()
	return v
}

func (r *fieldReader) u32() uint32 {
	if r.err != nil {
		return 0
	}
	var v uint32
	v, r.err = r.c.ReadUint32()
	return v
}

func (r *fieldReader) i32() int32 {
	if r.err != nil {
		return 0
	}
	var v int32
	v, r.err = r.c.ReadInt32()
	return v
}
