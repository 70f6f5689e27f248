// Package render builds a nested paragraph tree from a linear stream of
// content instructions.
//
// A [Document] holds the instructions in order. Each instruction is either
// literal [Text], which becomes a styled run, or an [Action] that drives the
// [Renderer] directly: starting paragraphs, breaking lines, opening and
// closing containers, changing styles and embedding pictures.
//
//	doc := render.NewDocument()
//	doc.AddText("Hello ")
//	doc.AddAction(func(r *render.Renderer) error {
//	    r.LineBreak()
//	    return nil
//	})
//	doc.AddText("world")
//
//	r := render.NewRenderer(doc, htmlout.NewBuilder())
//	nodes, err := r.BuildDOM()
//
// # Output
//
// The renderer never inspects the nodes it builds. Construction and
// attachment go through the [Output] capability, so the same instruction
// stream can produce an x/net/html tree (see package htmlout) or any other
// representation.
//
// # Styles
//
// Character styles ([CharStyle]) are applied to every text run. Paragraph
// styles ([ParaStyle]) are applied in two phases: [PhaseInitial] for the
// paragraph's outer attributes when it starts, and [PhaseFinal] for
// content-dependent attributes, which is re-applied to each sub-paragraph
// created by a line break and whenever the paragraph style changes.
//
// # Failures
//
// Pictures that cannot be rendered are replaced by a placeholder run and a
// [Warning]; they never abort the build. Popping an empty container stack
// is a [StructuralError].
package render
