package render

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrUnsupportedCodePage is returned by SetCodePage for unknown code pages.
var ErrUnsupportedCodePage = errors.New("render: unsupported code page")

// Instruction is one step of a Document: Text or Action.
type Instruction interface {
	instruction()
}

// Text is literal run text.
type Text string

// Action is executed with the renderer as its context.
type Action func(r *Renderer) error

func (Text) instruction()   {}
func (Action) instruction() {}

// CodePageUTF8 marks text that needs no conversion.
const CodePageUTF8 = 65001

var codePages = map[int]*charmap.Charmap{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	10000: charmap.Macintosh,
	10007: charmap.MacintoshCyrillic,
	20866: charmap.KOI8R,
	21866: charmap.KOI8U,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28595: charmap.ISO8859_5,
	28597: charmap.ISO8859_7,
	28605: charmap.ISO8859_15,
}

// Document is an ordered list of instructions produced by a control-word
// parser. Byte text added through AddEncodedText is converted from the
// document's ANSI code page (Windows-1252 unless set otherwise).
type Document struct {
	ins      []Instruction
	codePage int
	decoder  *encoding.Decoder
}

// NewDocument returns an empty document using code page 1252.
func NewDocument() *Document {
	return &Document{
		codePage: 1252,
		decoder:  charmap.Windows1252.NewDecoder(),
	}
}

// CodePage returns the current ANSI code page.
func (d *Document) CodePage() int { return d.codePage }

// SetCodePage selects the code page used by AddEncodedText.
func (d *Document) SetCodePage(cp int) error {
	if cp == CodePageUTF8 {
		d.codePage, d.decoder = cp, nil
		return nil
	}
	cm, ok := codePages[cp]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedCodePage, cp)
	}
	d.codePage, d.decoder = cp, cm.NewDecoder()
	return nil
}

// AddText appends a text instruction.
func (d *Document) AddText(s string) {
	d.ins = append(d.ins, Text(s))
}

// AddEncodedText decodes b from the document code page and appends it as a
// text instruction.
func (d *Document) AddEncodedText(b []byte) error {
	if d.decoder == nil {
		d.AddText(string(b))
		return nil
	}
	s, err := d.decoder.Bytes(b)
	if err != nil {
		return fmt.Errorf("decoding code page %d text: %w", d.codePage, err)
	}
	d.AddText(string(s))
	return nil
}

// AddAction appends an action instruction.
func (d *Document) AddAction(a Action) {
	d.ins = append(d.ins, a)
}

// Instructions returns the instructions in order. The slice must not be
// modified.
func (d *Document) Instructions() []Instruction { return d.ins }

// Len returns the number of instructions.
func (d *Document) Len() int { return len(d.ins) }
