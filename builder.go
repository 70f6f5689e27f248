package rtfdom

import (
	"fmt"
	"strings"

	"github.com/tsawler/rtfdom/htmlout"
	"github.com/tsawler/rtfdom/render"
)

// Warning is a non-fatal problem found while rendering, such as a picture
// that was replaced by a placeholder.
type Warning = render.Warning

// FormatWarnings joins warnings into a single human-readable line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// Builder provides a fluent interface for rendering a document to HTML.
// Each configuration method returns a new Builder instance, so partially
// configured builders can be shared and reused.
type Builder struct {
	doc     *render.Document
	options RenderOptions

	// Accumulated error (fail-fast)
	err error
}

// Render returns a Builder for doc with default options.
func Render(doc *render.Document) *Builder {
	return &Builder{
		doc:     doc,
		options: defaultOptions(),
	}
}

// clone creates a shallow copy of the Builder with a deep copy of options.
func (b *Builder) clone() *Builder {
	return &Builder{
		doc:     b.doc,
		options: b.options.clone(),
		err:     b.err,
	}
}

// WithConfig sets the tag names and placeholder texts.
func (b *Builder) WithConfig(cfg render.Config) *Builder {
	nb := b.clone()
	if err := cfg.Validate(); err != nil {
		nb.err = err
		return nb
	}
	nb.options.config = cfg
	return nb
}

// WithConfigFile loads the configuration from a YAML file.
func (b *Builder) WithConfigFile(path string) *Builder {
	nb := b.clone()
	cfg, err := render.LoadConfig(path)
	if err != nil {
		nb.err = err
		return nb
	}
	nb.options.config = cfg
	return nb
}

// WithAltText sets a generator for picture alt text, e.g. an OCR client's
// AltText method.
func (b *Builder) WithAltText(fn render.AltTextFunc) *Builder {
	nb := b.clone()
	nb.options.altText = fn
	return nb
}

// Nodes builds the document and returns the top-level *html.Node values.
func (b *Builder) Nodes() ([]render.Node, []Warning, error) {
	if b.err != nil {
		return nil, nil, b.err
	}
	if b.doc == nil {
		return nil, nil, fmt.Errorf("no document specified")
	}

	r := render.NewRendererWithConfig(b.doc, htmlout.NewBuilder(), b.options.config)
	r.SetAltText(b.options.altText)

	nodes, err := r.BuildDOM()
	if err != nil {
		return nil, r.Warnings(), fmt.Errorf("building document: %w", err)
	}
	return nodes, r.Warnings(), nil
}

// HTML builds the document and renders it as an HTML fragment.
func (b *Builder) HTML() (string, []Warning, error) {
	nodes, warnings, err := b.Nodes()
	if err != nil {
		return "", warnings, err
	}
	html, err := htmlout.String(nodes)
	if err != nil {
		return "", warnings, err
	}
	return html, warnings, nil
}
