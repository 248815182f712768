package items

import (
	"github.com/sjinzh/slint/pkg/graphics"
	"github.com/sjinzh/slint/pkg/rendering"
)

// Rectangle is a filled rectangle item.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  graphics.Color

	cached rendering.CachedRenderingData
}

// Geometry returns the rectangle's bounds relative to its parent.
func (r *Rectangle) Geometry() graphics.Rect {
	return graphics.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// RenderingPrimitive describes the rectangle for the backend.
func (r *Rectangle) RenderingPrimitive() rendering.Primitive {
	return rendering.Rectangle{
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
		Color:  r.Color,
	}
}

// LayoutingInfo reports unconstrained layout.
func (r *Rectangle) LayoutingInfo() LayoutInfo {
	return DefaultLayoutInfo()
}

// InputEvent ignores input; rectangles are not interactive.
func (r *Rectangle) InputEvent(event MouseEvent) {}

// CachedRenderingData returns the embedded cache slot.
func (r *Rectangle) CachedRenderingData() *rendering.CachedRenderingData {
	return &r.cached
}
