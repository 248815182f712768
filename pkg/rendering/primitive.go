// Package rendering defines the backend-agnostic contract between the
// item model and a rendering backend: the primitive union describing
// what to draw, and the per-item cache slot the backend uses to avoid
// rebuilding low-level draw objects every frame.
package rendering

import (
	"github.com/sjinzh/slint/pkg/graphics"
	"github.com/sjinzh/slint/pkg/resource"
)

// Primitive describes what an item wants drawn, independent of any
// backend. It is a closed union: NoContents, Rectangle, Image, Text, or
// Path. The backend is the sole consumer.
//
// Primitives are produced on demand from an item's current property
// values and are safe to produce repeatedly.
type Primitive interface {
	isPrimitive()
}

// NoContents indicates there is nothing to draw.
type NoContents struct{}

// Rectangle is a filled axis-aligned rectangle.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  graphics.Color
}

// Image draws an image resource at a position.
type Image struct {
	X      float64
	Y      float64
	Source resource.Resource
}

// Text draws a string with the given font request.
type Text struct {
	X             float64
	Y             float64
	Text          string
	FontFamily    string
	FontPixelSize float64
	Color         graphics.Color
}

// Path draws vector geometry, optionally filled and stroked. The
// geometry is fitted into the (Width, Height) box when both are set.
type Path struct {
	X           float64
	Y           float64
	Width       float64
	Height      float64
	Elements    graphics.PathData
	FillColor   graphics.Color
	StrokeColor graphics.Color
	StrokeWidth float64
}

func (NoContents) isPrimitive() {}
func (Rectangle) isPrimitive()  {}
func (Image) isPrimitive()      {}
func (Text) isPrimitive()       {}
func (Path) isPrimitive()       {}
