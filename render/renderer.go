package render

import (
	"fmt"
)

// Renderer turns a Document into a tree of Output nodes. It is not safe
// for concurrent use.
type Renderer struct {
	doc *Document
	out Output
	cfg Config

	dom   []Node
	built bool

	chp    CharStyle
	pap    ParaStyle
	par    Node
	subpar Node
	conts  []Container

	altText  AltTextFunc
	warnings []Warning
}

// NewRenderer returns a renderer using DefaultConfig.
func NewRenderer(doc *Document, out Output) *Renderer {
	return NewRendererWithConfig(doc, out, DefaultConfig())
}

// NewRendererWithConfig returns a renderer with custom tags and
// placeholders.
func NewRendererWithConfig(doc *Document, out Output, cfg Config) *Renderer {
	return &Renderer{
		doc: doc,
		out: out,
		cfg: cfg,
	}
}

// Output returns the node factory the renderer builds with.
func (r *Renderer) Output() Output { return r.out }

// Config returns the renderer configuration.
func (r *Renderer) Config() Config { return r.cfg }

// Nodes returns the top-level paragraphs built so far.
func (r *Renderer) Nodes() []Node { return r.dom }

// Warnings returns the non-fatal problems recorded by the last build.
func (r *Renderer) Warnings() []Warning { return r.warnings }

// ContainerDepth returns the number of open containers.
func (r *Renderer) ContainerDepth() int { return len(r.conts) }

// BuildDOM executes every instruction once, in order, and returns the
// top-level paragraph nodes. Later calls return the same nodes without
// re-executing anything. If an action fails the build stops, nothing is
// cached and the error is returned.
func (r *Renderer) BuildDOM() ([]Node, error) {
	if r.built {
		return r.dom, nil
	}

	r.dom = []Node{}
	r.chp = nil
	r.pap = nil
	r.par = nil
	r.subpar = nil
	r.conts = nil
	r.warnings = nil

	for i, ins := range r.doc.Instructions() {
		switch ins := ins.(type) {
		case Text:
			r.appendText(string(ins))
		case Action:
			if err := ins(r); err != nil {
				r.dom = nil
				return nil, fmt.Errorf("instruction %d: %w", i, err)
			}
		}
	}

	r.built = true
	return r.dom, nil
}

func (r *Renderer) appendText(s string) {
	run := r.out.Element(r.cfg.RunTag)
	if r.chp != nil {
		r.chp.ApplyChp(r.out, run)
	}
	r.out.AppendChild(run, r.out.Text(s))
	r.AppendElement(run)
}

// StartPar begins a new top-level paragraph. Open containers are discarded
// and the active paragraph style is applied in both phases.
func (r *Renderer) StartPar() {
	par := r.out.Element(r.cfg.ParagraphTag)
	if r.pap != nil {
		r.pap.ApplyPap(r.out, par, r.chp, PhaseInitial)
		r.pap.ApplyPap(r.out, par, r.chp, PhaseFinal)
	}
	r.par = par
	r.subpar = nil
	r.conts = nil
	r.dom = append(r.dom, par)
}

// LineBreak starts a new sub-paragraph. On the first break of a paragraph
// the content so far is moved into its own sub-paragraph.
func (r *Renderer) LineBreak() {
	if r.par == nil {
		r.StartPar()
	}
	if r.subpar == nil {
		lead := r.out.Element(r.cfg.SubParagraphTag)
		r.out.MoveChildren(r.par, lead)
		r.out.AppendChild(r.par, lead)
	}

	sub := r.out.Element(r.cfg.SubParagraphTag)
	if r.pap != nil {
		r.pap.ApplyPap(r.out, sub, r.chp, PhaseFinal)
	}
	r.subpar = sub
	r.out.AppendChild(r.par, sub)
}

// SetChp sets the character style for subsequent text runs.
func (r *Renderer) SetChp(chp CharStyle) {
	r.chp = chp
}

// SetPap sets the paragraph style and applies it at once: the final phase
// to an active sub-paragraph, or both phases to an active paragraph.
func (r *Renderer) SetPap(pap ParaStyle) {
	r.pap = pap
	if pap == nil {
		return
	}
	switch {
	case r.subpar != nil:
		pap.ApplyPap(r.out, r.subpar, nil, PhaseFinal)
	case r.par != nil:
		pap.ApplyPap(r.out, r.par, nil, PhaseInitial)
		pap.ApplyPap(r.out, r.par, nil, PhaseFinal)
	}
}

// PushContainer attaches c.Element to the current scope and makes
// c.Content the target for subsequent content.
func (r *Renderer) PushContainer(c Container) {
	if r.par == nil {
		r.StartPar()
	}
	r.out.AppendChild(r.scope(), c.Element)
	r.conts = append(r.conts, c)
}

// PopContainer closes the innermost container.
func (r *Renderer) PopContainer() error {
	n := len(r.conts)
	if n == 0 {
		return &StructuralError{Op: "pop container", Err: ErrNoContainer}
	}
	r.conts[n-1] = Container{}
	r.conts = r.conts[:n-1]
	return nil
}

// PushHyperlink opens a link container pointing at url.
func (r *Renderer) PushHyperlink(url string) {
	a := r.HyperlinkElement(url)
	r.PushContainer(Container{Element: a, Content: a})
}

// HyperlinkElement returns an unattached link element.
func (r *Renderer) HyperlinkElement(url string) Node {
	a := r.out.Element(r.cfg.LinkTag)
	r.out.SetAttr(a, "href", url)
	return a
}

// AppendElement adds n to the current scope, starting a paragraph if none
// is active. Nil nodes are ignored.
func (r *Renderer) AppendElement(n Node) {
	if n == nil {
		return
	}
	if r.par == nil {
		r.StartPar()
	}
	r.out.AppendChild(r.scope(), n)
}

// scope is where content goes: the innermost container, else the
// sub-paragraph, else the paragraph.
func (r *Renderer) scope() Node {
	if n := len(r.conts); n > 0 {
		return r.conts[n-1].Content
	}
	if r.subpar != nil {
		return r.subpar
	}
	return r.par
}

func (r *Renderer) warn(kind WarningKind, format string, args ...any) {
	r.warnings = append(r.warnings, Warning{Kind: kind, Message: fmt.Sprintf(format, args...)})
}
