package render

import (
	"github.com/lixenwraith/dirline/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Editor snapshot taken after the last applied event
	State engine.State

	// Screen geometry for the current terminal size
	Layout Layout

	Theme Theme
}

// NewRenderContext bundles a snapshot with the layout and theme
func NewRenderContext(state engine.State, layout Layout, theme Theme) RenderContext {
	return RenderContext{
		State:  state,
		Layout: layout,
		Theme:  theme,
	}
}
