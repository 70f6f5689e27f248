package render

import (
	"fmt"

	"github.com/tsawler/rtfdom/dib"
	"github.com/tsawler/rtfdom/format"
	"github.com/tsawler/rtfdom/internal/filters"
)

// AltTextFunc produces alternative text for picture data, e.g. via OCR.
type AltTextFunc func(mime string, data []byte) (string, error)

// SetAltText installs an alt text generator for pictures. Nil disables it.
func (r *Renderer) SetAltText(fn AltTextFunc) {
	r.altText = fn
}

// BuildRenderedPicture returns n, or a placeholder run when n is nil.
func (r *Renderer) BuildRenderedPicture(n Node) Node {
	if n == nil {
		return r.failedPicture("picture renderer returned no element")
	}
	return n
}

// RenderedPicture appends a picture rendered elsewhere. A nil node becomes
// the failed-image placeholder.
func (r *Renderer) RenderedPicture(n Node) {
	r.AppendElement(r.BuildRenderedPicture(n))
}

func (r *Renderer) failedPicture(reason string) Node {
	r.warn(WarningFailedImage, "%s", reason)
	return r.placeholder(r.cfg.FailedImageText)
}

func (r *Renderer) placeholder(text string) Node {
	span := r.out.Element(r.cfg.RunTag)
	r.out.AppendChild(span, r.out.Text(text))
	return span
}

// BuildPicture returns an image element with data embedded as a data URI.
// An empty mime is sniffed from the data. Without data, or when the type
// cannot be determined, a bracketed placeholder run is returned instead.
func (r *Renderer) BuildPicture(mime string, data []byte) Node {
	if data == nil {
		if mime == "" {
			r.warn(WarningUnsupportedImage, "picture without data or type")
			return r.placeholder(r.cfg.UnsupportedImageText)
		}
		r.warn(WarningUnsupportedImage, "no data for %s picture", mime)
		return r.placeholder("[" + mime + "]")
	}

	if mime == "" {
		mime = format.DetectFromMagic(data).MIMEType()
		if mime == "" {
			r.warn(WarningUnsupportedImage, "unrecognized picture data (%d bytes)", len(data))
			return r.placeholder(r.cfg.UnsupportedImageText)
		}
	}

	img := r.out.Element(r.cfg.ImageTag)
	r.out.SetAttr(img, "src", dib.DataURI(mime, data))
	if r.altText != nil {
		alt, err := r.altText(mime, data)
		if err != nil {
			r.warn(WarningAltText, "%s picture: %v", mime, err)
		} else if alt != "" {
			r.out.SetAttr(img, "alt", alt)
		}
	}
	return img
}

// Picture appends a picture built by BuildPicture.
func (r *Renderer) Picture(mime string, data []byte) {
	r.AppendElement(r.BuildPicture(mime, data))
}

// HexPicture decodes hex-encoded picture data, as stored in \pict groups,
// and appends it.
func (r *Renderer) HexPicture(mime string, hex []byte) error {
	data, err := filters.ASCIIHexDecode(hex)
	if err != nil {
		return fmt.Errorf("decoding picture data: %w", err)
	}
	r.Picture(mime, data)
	return nil
}

// Bitmap appends an embedded DIB as a standalone image. Extraction
// failures produce the failed-image placeholder rather than an error.
func (r *Renderer) Bitmap(b *dib.Bitmap) {
	if b == nil {
		r.RenderedPicture(nil)
		return
	}
	enc, data, err := b.Bytes()
	if err != nil {
		r.AppendElement(r.failedPicture(fmt.Sprintf("extracting bitmap: %v", err)))
		return
	}
	if len(data) == 0 {
		r.AppendElement(r.failedPicture(fmt.Sprintf("extracting bitmap: empty %s stream", enc)))
		return
	}
	r.Picture(enc.MIMEType(), data)
}
