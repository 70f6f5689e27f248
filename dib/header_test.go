package dib

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/tsawler/rtfdom/internal/blob"
)

type rawInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type rawCoreHeader struct {
	Size     uint32
	Width    uint16
	Height   uint16
	Planes   uint16
	BitCount uint16
}

func encode(t *testing.T, v interface{}) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		t.Fatalf("binary.Write: %v", err)
	}
	return buf.Bytes()
}

// ============================================================================
// Colour table size
// ============================================================================

func TestCoreHeaderColors(t *testing.T) {
	tests := []struct {
		bitcount uint16
		want     int
	}{
		{1, 2},
		{4, 16},
		{8, 256},
		{24, 0},
	}

	for _, tt := range tests {
		h := &CoreHeader{BitCount: tt.bitcount}
		if got := h.Colors(); got != tt.want {
			t.Errorf("CoreHeader{BitCount: %d}.Colors() = %d, want %d", tt.bitcount, got, tt.want)
		}
	}
}

func TestInfoHeaderColors(t *testing.T) {
	tests := []struct {
		name     string
		bitcount uint16
		clrused  uint32
		want     int
	}{
		{"explicit count", 8, 10, 10},
		{"capped at 256", 8, 300, 256},
		{"exactly 256", 8, 256, 256},
		{"implied 1bpp", 1, 0, 2},
		{"implied 8bpp", 8, 0, 256},
		{"truecolor", 24, 0, 0},
		{"truecolor with palette hint", 24, 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &InfoHeader{BitCount: tt.bitcount, ClrUsed: tt.clrused}
			if got := h.Colors(); got != tt.want {
				t.Errorf("Colors() = %d, want %d", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Header parsing
// ============================================================================

func TestReadCoreHeaderSkipSize(t *testing.T) {
	data := encode(t, rawCoreHeader{Size: 12, Width: 3, Height: 5, Planes: 1, BitCount: 4})

	h, err := ReadCoreHeader(blob.New(data), true)
	if err != nil {
		t.Fatalf("ReadCoreHeader() error: %v", err)
	}
	want := CoreHeader{Width: 3, Height: 5, Planes: 1, BitCount: 4}
	if *h != want {
		t.Errorf("ReadCoreHeader() = %+v, want %+v", *h, want)
	}
}

func TestReadInfoHeaderSkipSize(t *testing.T) {
	raw := rawInfoHeader{
		Size: 40, Width: 7, Height: -9, Planes: 1, BitCount: 32,
		Compression: uint32(BI_BITFIELDS), SizeImage: 252,
		XPelsPerMeter: 2835, YPelsPerMeter: 2835, ClrUsed: 0, ClrImportant: 0,
	}

	c := blob.New(encode(t, raw))
	h, err := ReadInfoHeader(c, true)
	if err != nil {
		t.Fatalf("ReadInfoHeader() error: %v", err)
	}
	if h.Width != 7 || h.Height != -9 || h.BitCount != 32 || h.Compression != BI_BITFIELDS {
		t.Errorf("ReadInfoHeader() = %+v", *h)
	}
	if h.XPelsPerMeter != 2835 || h.SizeImage != 252 {
		t.Errorf("ReadInfoHeader() resolution/size = %d/%d", h.XPelsPerMeter, h.SizeImage)
	}
	if c.Pos() != 40 {
		t.Errorf("cursor at %d after header, want 40", c.Pos())
	}
}

func TestReadBitmapInfoSelectsVariant(t *testing.T) {
	core := encode(t, rawCoreHeader{Size: 12, Width: 2, Height: 2, Planes: 1, BitCount: 24})
	info := encode(t, rawInfoHeader{Size: 40, Width: 2, Height: 2, Planes: 1, BitCount: 24})

	bi, err := ReadBitmapInfo(blob.New(core), RGBColors)
	if err != nil {
		t.Fatalf("core: %v", err)
	}
	if _, ok := bi.Header().(*CoreHeader); !ok {
		t.Errorf("core: Header() is %T, want *CoreHeader", bi.Header())
	}
	if bi.Compression() != BI_RGB {
		t.Errorf("core: Compression() = %v, want BI_RGB", bi.Compression())
	}

	bi, err = ReadBitmapInfo(blob.New(info), RGBColors)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if _, ok := bi.Header().(*InfoHeader); !ok {
		t.Errorf("info: Header() is %T, want *InfoHeader", bi.Header())
	}
}

func TestInfoSize(t *testing.T) {
	tests := []struct {
		name  string
		data    func(t *testing.T) []byte
		usage   ColorUsage
		want    uint32
		wantErr bool
	}{
		{
			name: "core 1bpp rgb triples",
			data: func(t *testing.T) []byte {
				return encode(t, rawCoreHeader{Size: 12, BitCount: 1})
			},
			usage: RGBColors,
			want:  12 + 2*3,
		},
		{
			name: "core 8bpp palette indices",
			data: func(t *testing.T) []byte {
				return encode(t, rawCoreHeader{Size: 12, BitCount: 8})
			},
			usage: PaletteColors,
			want:  12 + 256*2,
		},
		{
			name: "info 24bpp",
			data: func(t *testing.T) []byte {
				return encode(t, rawInfoHeader{Size: 40, BitCount: 24})
			},
			usage: RGBColors,
			want:  40,
		},
		{
			name: "info 8bpp rgbquads",
			data: func(t *testing.T) []byte {
				return encode(t, rawInfoHeader{Size: 40, BitCount: 8})
			},
			usage: RGBColors,
			want:  40 + 256*4,
		},
		{
			name: "info 4bpp clrused palette indices",
			data: func(t *testing.T) []byte {
				return encode(t, rawInfoHeader{Size: 40, BitCount: 4, ClrUsed: 5})
			},
			usage: PaletteColors,
			want:  40 + 5*2,
		},
		{
			name: "bitfields under-reported size",
			data: func(t *testing.T) []byte {
				return encode(t, rawInfoHeader{Size: 40, BitCount: 16, Compression: uint32(BI_BITFIELDS)})
			},
			usage: RGBColors,
			want:  52,
		},
		{
			name: "bitfields declared with masks",
			data: func(t *testing.T) []byte {
				return encode(t, rawInfoHeader{Size: 52, BitCount: 32, Compression: uint32(BI_BITFIELDS)})
			},
			usage: RGBColors,
			want:  52,
		},
		{
			name: "v5 header keeps declared size",
			data: func(t *testing.T) []byte {
				return append(encode(t, rawInfoHeader{Size: 124, BitCount: 32, Compression: uint32(BI_BITFIELDS)}), make([]byte, 84)...)
			},
			usage: RGBColors,
			want:  124,
		},
		{
			name: "declared size below legacy is clamped",
			data: func(t *testing.T) []byte {
				return encode(t, rawInfoHeader{Size: 16, BitCount: 24})
			},
			usage: RGBColors,
			want:  40,
		},
		{
			name: "colour table past 32 bits",
			data: func(t *testing.T) []byte {
				return encode(t, rawInfoHeader{Size: 0xFFFFFF00, BitCount: 8})
			},
			usage:   RGBColors,
			wantErr: true,
		},
		{
			name: "file header past 32 bits",
			data: func(t *testing.T) []byte {
				return encode(t, rawInfoHeader{Size: 0xFFFFFFF8, BitCount: 24})
			},
			usage:   RGBColors,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bi, err := ReadBitmapInfo(blob.New(tt.data(t)), tt.usage)
			if tt.wantErr {
				var fe *FormatError
				if !errors.As(err, &fe) || fe.Op != "header size" {
					t.Fatalf("ReadBitmapInfo() error = %v, want header size FormatError", err)
				}
				if !errors.Is(err, ErrSizeOverflow) {
					t.Errorf("error %v does not wrap ErrSizeOverflow", err)
				}
				if bi != nil {
					t.Errorf("ReadBitmapInfo() returned %+v alongside error", bi)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadBitmapInfo() error: %v", err)
			}
			if got := bi.InfoSize(); got != tt.want {
				t.Errorf("InfoSize() = %d, want %d", got, tt.want)
			}
			if bi.InfoSize() < bi.DeclaredSize() {
				t.Errorf("InfoSize() %d < DeclaredSize() %d", bi.InfoSize(), bi.DeclaredSize())
			}
		})
	}
}

func TestBitmapInfoDimensions(t *testing.T) {
	data := encode(t, rawInfoHeader{Size: 40, Width: 10, Height: -20, Planes: 1, BitCount: 24})

	bi, err := ReadBitmapInfo(blob.New(data), RGBColors)
	if err != nil {
		t.Fatal(err)
	}
	if bi.Width() != 10 || bi.Height() != 20 {
		t.Errorf("Width/Height = %d/%d, want 10/20", bi.Width(), bi.Height())
	}
	if !bi.TopDown() {
		t.Error("TopDown() = false for negative height")
	}
	if bi.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", bi.Offset())
	}
}

func TestReadBitmapInfoTruncated(t *testing.T) {
	data := encode(t, rawInfoHeader{Size: 40, Width: 1, Height: 1})[:20]

	_, err := ReadBitmapInfo(blob.New(data), RGBColors)
	if err == nil {
		t.Fatal("expected error for truncated header")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error %v is not a *FormatError", err)
	}
	if fe.Op != "info header" {
		t.Errorf("FormatError.Op = %q, want %q", fe.Op, "info header")
	}
	if !errors.Is(err, blob.ErrOutOfRange) {
		t.Errorf("error %v does not wrap blob.ErrOutOfRange", err)
	}
}

func TestCompressionString(t *testing.T) {
	tests := []struct {
		c    Compression
		want string
	}{
		{BI_RGB, "BI_RGB"},
		{BI_BITFIELDS, "BI_BITFIELDS"},
		{BI_JPEG, "BI_JPEG"},
		{BI_PNG, "BI_PNG"},
		{Compression(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Compression(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
