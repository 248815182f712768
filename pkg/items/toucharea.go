package items

import (
	"github.com/sjinzh/slint/pkg/graphics"
	"github.com/sjinzh/slint/pkg/rendering"
)

// TouchArea is an invisible interactive region. It tracks whether the
// mouse is currently pressed inside it.
type TouchArea struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	// Pressed is true while the mouse is held down on the area.
	Pressed bool

	cached rendering.CachedRenderingData
}

func (t *TouchArea) Geometry() graphics.Rect {
	return graphics.Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

// RenderingPrimitive returns NoContents; touch areas are invisible.
func (t *TouchArea) RenderingPrimitive() rendering.Primitive {
	return rendering.NoContents{}
}

func (t *TouchArea) LayoutingInfo() LayoutInfo {
	return DefaultLayoutInfo()
}

// InputEvent updates the pressed flag. This is the only side effect.
func (t *TouchArea) InputEvent(event MouseEvent) {
	switch event.Kind {
	case MousePressed:
		t.Pressed = true
	case MouseReleased:
		t.Pressed = false
	}
}

func (t *TouchArea) CachedRenderingData() *rendering.CachedRenderingData {
	return &t.cached
}
