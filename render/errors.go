package render

import "errors"

// ErrNoContainer is the cause of a PopContainer on an empty stack.
var ErrNoContainer = errors.New("no container on rendering stack")

// StructuralError reports an instruction stream that drives the renderer
// out of contract, such as an unbalanced PopContainer.
type StructuralError struct {
	Op  string
	Err error
}

func (e *StructuralError) Error() string {
	return "render: " + e.Op + ": " + e.Err.Error()
}

func (e *StructuralError) Unwrap() error { return e.Err }

// WarningKind classifies a non-fatal rendering problem.
type WarningKind int

const (
	// WarningFailedImage means a picture was replaced by a placeholder.
	WarningFailedImage WarningKind = iota
	// WarningUnsupportedImage means a picture had no usable data or type.
	WarningUnsupportedImage
	// WarningAltText means alt text generation failed; the picture is kept.
	WarningAltText
)

func (k WarningKind) String() string {
	switch k {
	case WarningFailedImage:
		return "failed image"
	case WarningUnsupportedImage:
		return "unsupported image"
	case WarningAltText:
		return "alt text"
	default:
		return "unknown"
	}
}

// Warning is a problem that did not stop the build.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Kind.String() + ": " + w.Message
}
