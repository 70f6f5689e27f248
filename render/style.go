package render

// Phase selects which part of a paragraph style is applied.
type Phase int

const (
	// PhaseInitial applies container-level defaults such as outer spacing.
	PhaseInitial Phase = iota
	// PhaseFinal applies content-dependent attributes.
	PhaseFinal
)

func (p Phase) String() string {
	if p == PhaseInitial {
		return "initial"
	}
	return "final"
}

// CharStyle decorates a text run.
type CharStyle interface {
	ApplyChp(out Output, n Node)
}

// ParaStyle decorates a paragraph or sub-paragraph. chp is the character
// style active at the time, or nil.
type ParaStyle interface {
	ApplyPap(out Output, n Node, chp CharStyle, phase Phase)
}

// CharStyleFunc adapts a function to CharStyle.
type CharStyleFunc func(out Output, n Node)

// ApplyChp calls f(out, n).
func (f CharStyleFunc) ApplyChp(out Output, n Node) { f(out, n) }

// ParaStyleFunc adapts a function to ParaStyle.
type ParaStyleFunc func(out Output, n Node, chp CharStyle, phase Phase)

// ApplyPap calls f(out, n, chp, phase).
func (f ParaStyleFunc) ApplyPap(out Output, n Node, chp CharStyle, phase Phase) {
	f(out, n, chp, phase)
}
