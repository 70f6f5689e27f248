package dib

import (
	"fmt"
	"math"
)

// ColorUsage says how colour table entries are stored (the iUsage argument
// of the GDI bitmap records).
type ColorUsage int

const (
	// RGBColors tables hold RGB triples (core) or RGBQUADs (info).
	RGBColors ColorUsage = iota
	// PaletteColors tables hold 16-bit palette indices.
	PaletteColors
)

// BitmapInfo is a parsed DIB header together with the size of its header
// segment (header, bitfield masks and colour table).
type BitmapInfo struct {
	header   Header
	offset   int64
	usage    ColorUsage
	declared uint32
	infoSize uint32
}

// ReadBitmapInfo parses the header that starts at the cursor's current
// position, size field included. The cursor is left after the fixed header
// fields.
func ReadBitmapInfo(c Cursor, usage ColorUsage) (*BitmapInfo, error) {
	offset := c.Pos()
	size, err := c.ReadUint32()
	if err != nil {
		return nil, formatErr("header size", offset, err)
	}

	bi := &BitmapInfo{
		offset:   offset,
		usage:    usage,
		declared: size,
		infoSize: size,
	}

	if size == CoreHeaderSize {
		h, err := ReadCoreHeader(c, false)
		if err != nil {
			return nil, err
		}
		bi.header = h
		return bi.withColorTable(uint64(size), h.Colors(), 3)
	}

	h, err := ReadInfoHeader(c, false)
	if err != nil {
		return nil, err
	}
	bi.header = h

	// Some producers write the three BI_BITFIELDS masks without counting
	// them in the declared size, so never reserve less than header + masks.
	masks := uint64(0)
	if h.Compression == BI_BITFIELDS {
		masks = 3
	}
	base := uint64(size)
	if base <= InfoHeaderSize+masks*4 {
		base = InfoHeaderSize + masks*4
	}
	return bi.withColorTable(base, h.Colors(), 4)
}

// withColorTable sets the info size to base plus the colour table. The
// result, with the file header in front of it, must fit in 32 bits.
func (bi *BitmapInfo) withColorTable(base uint64, colors int, rgb uint32) (*BitmapInfo, error) {
	n := base + uint64(colors)*uint64(bi.entrySize(rgb))
	if n+FileHeaderSize > math.MaxUint32 {
		return nil, formatErr("header size", bi.offset, fmt.Errorf("%w: info size %d", ErrSizeOverflow, n))
	}
	bi.infoSize = uint32(n)
	return bi, nil
}

// entrySize is the byte width of one colour table entry; rgb is the width
// used for RGBColors tables.
func (bi *BitmapInfo) entrySize(rgb uint32) uint32 {
	if bi.usage == RGBColors {
		return rgb
	}
	return 2
}

// Header returns the parsed header variant.
func (bi *BitmapInfo) Header() Header { return bi.header }

// Offset returns the cursor offset at which the header (size field) began.
func (bi *BitmapInfo) Offset() int64 { return bi.offset }

// DeclaredSize returns the header size field as stored.
func (bi *BitmapInfo) DeclaredSize() uint32 { return bi.declared }

// InfoSize returns the size of the header segment including bitfield masks
// and colour table. It is never smaller than DeclaredSize.
func (bi *BitmapInfo) InfoSize() uint32 { return bi.infoSize }

// Usage returns the colour usage the header was parsed with.
func (bi *BitmapInfo) Usage() ColorUsage { return bi.usage }

// Width returns the bitmap width in pixels.
func (bi *BitmapInfo) Width() int { return bi.header.PixelWidth() }

// Height returns the bitmap height in pixels, always non-negative.
func (bi *BitmapInfo) Height() int {
	h := bi.header.PixelHeight()
	if h < 0 {
		return -h
	}
	return h
}

// TopDown reports whether rows are stored top to bottom (negative height).
func (bi *BitmapInfo) TopDown() bool { return bi.header.PixelHeight() < 0 }

// Compression returns the compression of an info header, BI_RGB for core
// headers.
func (bi *BitmapInfo) Compression() Compression {
	if h, ok := bi.header.(*InfoHeader); ok {
		return h.Compression
	}
	return BI_RGB
}
