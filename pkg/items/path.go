package items

import (
	"math"

	"github.com/sjinzh/slint/pkg/graphics"
	"github.com/sjinzh/slint/pkg/rendering"
)

// Path draws vector geometry fitted into the item's bounds.
type Path struct {
	X           float64
	Y           float64
	Width       float64
	Height      float64
	Elements    graphics.PathData
	FillColor   graphics.Color
	StrokeColor graphics.Color
	StrokeWidth float64

	cached rendering.CachedRenderingData
}

func (p *Path) Geometry() graphics.Rect {
	return graphics.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *Path) RenderingPrimitive() rendering.Primitive {
	return rendering.Path{
		X:           p.X,
		Y:           p.Y,
		Width:       p.Width,
		Height:      p.Height,
		Elements:    p.Elements,
		FillColor:   p.FillColor,
		StrokeColor: p.StrokeColor,
		StrokeWidth: math.Max(p.StrokeWidth, 0),
	}
}

func (p *Path) LayoutingInfo() LayoutInfo {
	return DefaultLayoutInfo()
}

func (p *Path) InputEvent(event MouseEvent) {}

func (p *Path) CachedRenderingData() *rendering.CachedRenderingData {
	return &p.cached
}
