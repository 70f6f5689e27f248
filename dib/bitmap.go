package dib

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG for Config
	_ "image/png"  // register PNG for Config
	"math"

	_ "golang.org/x/image/bmp" // register BMP for Config
)

// ByteRange is a span of bytes in the container.
type ByteRange struct {
	Offset uint32
	Size   uint32
}

// Location holds where a bitmap's header segment and pixel data live in the
// container. It is supplied by the container parser.
type Location struct {
	Header ByteRange
	Data   ByteRange
}

// Encoding is the standalone image format an embedded bitmap is emitted as.
type Encoding int

const (
	// EncodingBMP is an uncompressed or RLE bitmap wrapped in a file header.
	EncodingBMP Encoding = iota
	// EncodingJPEG is a BI_JPEG bitmap whose pixel data is a JPEG stream.
	EncodingJPEG
	// EncodingPNG is a BI_PNG bitmap whose pixel data is a PNG stream.
	EncodingPNG
)

func (e Encoding) String() string {
	switch e {
	case EncodingJPEG:
		return "JPEG"
	case EncodingPNG:
		return "PNG"
	default:
		return "BMP"
	}
}

// MIMEType returns the media type used in data URIs.
func (e Encoding) MIMEType() string {
	switch e {
	case EncodingJPEG:
		return "image/jpeg"
	case EncodingPNG:
		return "image/png"
	default:
		return "image/bmp"
	}
}

// EncodingFor maps a compression code to the output encoding.
func EncodingFor(c Compression) Encoding {
	switch c {
	case BI_JPEG:
		return EncodingJPEG
	case BI_PNG:
		return EncodingPNG
	default:
		return EncodingBMP
	}
}

// Bitmap is a DIB embedded in a container.
type Bitmap struct {
	cursor Cursor
	offset int64
	loc    Location
	info   *BitmapInfo
}

// NewBitmap parses the DIB header at the cursor's current position. The
// header size field must not have been consumed yet. The two ranges of loc,
// plus the file header, must fit in 32 bits.
func NewBitmap(c Cursor, loc Location) (*Bitmap, error) {
	offset := c.Pos()
	if total := uint64(loc.Header.Size) + uint64(loc.Data.Size); total+FileHeaderSize > math.MaxUint32 {
		return nil, formatErr("bitmap size", offset, fmt.Errorf("%w: total size %d", ErrSizeOverflow, total))
	}
	info, err := ReadBitmapInfo(c, RGBColors)
	if err != nil {
		return nil, err
	}
	return &Bitmap{
		cursor: c,
		offset: offset,
		loc:    loc,
		info:   info,
	}, nil
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.info.Width() }

// Height returns the absolute bitmap height in pixels.
func (b *Bitmap) Height() int { return b.info.Height() }

// Info returns the parsed header.
func (b *Bitmap) Info() *BitmapInfo { return b.info }

// Location returns the header and data ranges.
func (b *Bitmap) Location() Location { return b.loc }

// TotalSize is the header segment size plus the pixel data size.
func (b *Bitmap) TotalSize() uint32 {
	return b.loc.Header.Size + b.loc.Data.Size
}

// FileHeader returns the 14-byte BITMAPFILEHEADER placed in front of raw
// bitmaps: "BM", file size, two reserved words, pixel data offset.
func (b *Bitmap) FileHeader() []byte {
	return fileHeader(b.TotalSize(), b.info.InfoSize())
}

func fileHeader(total, infoSize uint32) []byte {
	buf := make([]byte, FileHeaderSize)
	buf[0] = 'B'
	buf[1] = 'M'
	binary.LittleEndian.PutUint32(buf[2:], total+FileHeaderSize)
	binary.LittleEndian.PutUint32(buf[10:], infoSize+FileHeaderSize)
	return buf
}

// Bytes returns the bitmap as a standalone image file and its encoding. The
// cursor position is the same before and after the call.
func (b *Bitmap) Bytes() (Encoding, []byte, error) {
	var (
		enc  Encoding
		data []byte
	)
	err := withPos(b.cursor, func() error {
		if err := b.cursor.Seek(b.offset); err != nil {
			return formatErr("seek to bitmap", b.offset, err)
		}
		info, err := ReadBitmapInfo(b.cursor, b.info.Usage())
		if err != nil {
			return err
		}
		enc = EncodingFor(info.Compression())

		var buf bytes.Buffer
		if enc == EncodingBMP {
			buf.Write(fileHeader(b.TotalSize(), info.InfoSize()))
		}
		for _, seg := range []struct {
			op string
			r  ByteRange
		}{
			{"header segment", b.loc.Header},
			{"pixel data", b.loc.Data},
		} {
			p, err := b.readRange(seg.r)
			if err != nil {
				return formatErr(seg.op, int64(seg.r.Offset), err)
			}
			buf.Write(p)
		}
		data = buf.Bytes()
		return nil
	})
	if err != nil {
		return enc, nil, err
	}
	return enc, data, nil
}

func (b *Bitmap) readRange(r ByteRange) ([]byte, error) {
	if err := b.cursor.Seek(int64(r.Offset)); err != nil {
		return nil, err
	}
	return b.cursor.ReadBinary(int(r.Size))
}

// Extract returns the bitmap as a data URI:
// "data:<mime>;base64,<payload>".
func (b *Bitmap) Extract() (string, error) {
	enc, data, err := b.Bytes()
	if err != nil {
		return "", err
	}
	return DataURI(enc.MIMEType(), data), nil
}

// DataURI formats data as a base64 data URI.
func DataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Config decodes only the header of the extracted image and returns its
// dimensions, colour model and format name ("bmp", "jpeg" or "png").
// Formats the BMP decoder does not accept, such as core headers, return an
// error.
func (b *Bitmap) Config() (image.Config, string, error) {
	_, data, err := b.Bytes()
	if err != nil {
		return image.Config{}, "", err
	}
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, "", fmt.Errorf("probing extracted bitmap: %w", err)
	}
	return cfg, name, nil
}
