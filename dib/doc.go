// Package dib decodes device-independent bitmap (DIB) headers embedded in
// document and metafile containers and re-packages the embedded image as a
// standalone file.
//
// # Header Variants
//
// A DIB header starts with a 32-bit size field. A size of [CoreHeaderSize]
// selects the legacy [CoreHeader] layout; any other size selects the
// [InfoHeader] layout, read at the fixed 40-byte offsets. Larger declared
// sizes (V4/V5 headers) carry vendor fields that are skipped but still
// counted in the header segment.
//
//	info, err := dib.ReadBitmapInfo(cursor, dib.RGBColors)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(info.Width(), info.Height(), info.InfoSize())
//
// # Embedded Bitmaps
//
// A [Bitmap] pairs the parsed header with the byte ranges of its header and
// pixel segments, as reported by the enclosing container:
//
//	bmp, err := dib.NewBitmap(cursor, dib.Location{
//	    Header: dib.ByteRange{Offset: 100, Size: 40},
//	    Data:   dib.ByteRange{Offset: 140, Size: 1000},
//	})
//	uri, err := bmp.Extract() // "data:image/bmp;base64,..."
//
// Uncompressed bitmaps get a synthesized 14-byte BITMAPFILEHEADER so the
// result is a valid .bmp file. BI_JPEG and BI_PNG bitmaps are emitted as the
// raw embedded stream with the matching MIME type.
//
// Extraction never moves the cursor: the position is restored on return,
// including when a read fails.
package dib
