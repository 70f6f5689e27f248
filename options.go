package rtfdom

import (
	"github.com/tsawler/rtfdom/render"
)

// RenderOptions holds configuration for rendering.
type RenderOptions struct {
	config  render.Config
	altText render.AltTextFunc
}

// defaultOptions returns the default rendering options.
func defaultOptions() RenderOptions {
	return RenderOptions{
		config:  render.DefaultConfig(),
		altText: nil, // nil means no alt text
	}
}

// clone returns a copy of RenderOptions. Config is a value type, so a
// plain copy is already deep.
func (o RenderOptions) clone() RenderOptions {
	return RenderOptions{
		config:  o.config,
		altText: o.altText,
	}
}
