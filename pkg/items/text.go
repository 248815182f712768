package items

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/sjinzh/slint/pkg/graphics"
	"github.com/sjinzh/slint/pkg/rendering"
)

// defaultFontPixelSize is used when no font size is specified.
const defaultFontPixelSize = 16

// Text draws a string. Measurement uses bundled font metrics; shaping
// and glyph rendering belong to the backend.
type Text struct {
	X             float64
	Y             float64
	Text          string
	FontFamily    string
	FontPixelSize float64
	Color         graphics.Color

	cached rendering.CachedRenderingData
}

// Geometry returns the text's natural bounds at its position.
func (t *Text) Geometry() graphics.Rect {
	size := t.naturalSize()
	return graphics.Rect{X: t.X, Y: t.Y, Width: size.Width, Height: size.Height}
}

func (t *Text) RenderingPrimitive() rendering.Primitive {
	return rendering.Text{
		X:             t.X,
		Y:             t.Y,
		Text:          t.Text,
		FontFamily:    t.FontFamily,
		FontPixelSize: t.pixelSize(),
		Color:         t.Color,
	}
}

// LayoutingInfo constrains the minimum to the text's natural size.
func (t *Text) LayoutingInfo() LayoutInfo {
	info := DefaultLayoutInfo()
	size := t.naturalSize()
	info.MinWidth = size.Width
	info.MinHeight = size.Height
	return info
}

func (t *Text) InputEvent(event MouseEvent) {}

func (t *Text) CachedRenderingData() *rendering.CachedRenderingData {
	return &t.cached
}

func (t *Text) pixelSize() float64 {
	if t.FontPixelSize > 0 {
		return t.FontPixelSize
	}
	return defaultFontPixelSize
}

// naturalSize measures the string with the bundled face and scales the
// metrics to the requested pixel size.
func (t *Text) naturalSize() graphics.Size {
	if t.Text == "" {
		return graphics.Size{}
	}
	face := basicfont.Face7x13
	metrics := face.Metrics()
	lineHeight := float64(metrics.Height.Ceil())
	width := float64(font.MeasureString(face, t.Text).Ceil())

	scale := t.pixelSize() / lineHeight
	return graphics.Size{Width: width * scale, Height: lineHeight * scale}
}
