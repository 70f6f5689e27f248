package render

import (
	"errors"
	"testing"
)

func TestDocumentInstructions(t *testing.T) {
	doc := NewDocument()
	doc.AddText("a")
	doc.AddAction(func(*Renderer) error { return nil })
	doc.AddText("b")

	if doc.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", doc.Len())
	}
	ins := doc.Instructions()
	if _, ok := ins[0].(Text); !ok {
		t.Errorf("instruction 0 is %T, want Text", ins[0])
	}
	if _, ok := ins[1].(Action); !ok {
		t.Errorf("instruction 1 is %T, want Action", ins[1])
	}
}

func TestAddEncodedText(t *testing.T) {
	tests := []struct {
		name     string
		codePage int
		in       []byte
		want     string
	}{
		{"windows-1252 default", 0, []byte{'c', 'a', 'f', 0xE9}, "café"},
		{"windows-1252 euro", 1252, []byte{0x80}, "€"},
		{"windows-1251 cyrillic", 1251, []byte{0xCF, 0xF0, 0xE8}, "При"},
		{"cp437 box drawing", 437, []byte{0xC9, 0xCD}, "╔═"},
		{"mac roman", 10000, []byte{0x8A}, "ä"},
		{"utf-8 passthrough", CodePageUTF8, []byte("naïve"), "naïve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument()
			if tt.codePage != 0 {
				if err := doc.SetCodePage(tt.codePage); err != nil {
					t.Fatalf("SetCodePage(%d) error: %v", tt.codePage, err)
				}
			}
			if err := doc.AddEncodedText(tt.in); err != nil {
				t.Fatalf("AddEncodedText() error: %v", err)
			}
			got, ok := doc.Instructions()[0].(Text)
			if !ok || string(got) != tt.want {
				t.Errorf("decoded %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetCodePageUnsupported(t *testing.T) {
	doc := NewDocument()
	err := doc.SetCodePage(932)
	if !errors.Is(err, ErrUnsupportedCodePage) {
		t.Fatalf("SetCodePage(932) err = %v, want ErrUnsupportedCodePage", err)
	}
	if doc.CodePage() != 1252 {
		t.Errorf("CodePage() = %d after failed set, want 1252", doc.CodePage())
	}
}
