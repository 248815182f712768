package items

import (
	"github.com/sjinzh/slint/pkg/graphics"
	"github.com/sjinzh/slint/pkg/rendering"
	"github.com/sjinzh/slint/pkg/resource"
)

// Image draws an image resource. When Width or Height is not set, the
// decoded natural size of the source is used.
type Image struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Source resource.Resource

	cached rendering.CachedRenderingData

	// Natural size memo, tied to the cache slot: a source change
	// invalidates the slot, which forces a re-measure here.
	naturalValid bool
	natural      graphics.Size
}

func (i *Image) Geometry() graphics.Rect {
	width, height := i.Width, i.Height
	if width <= 0 || height <= 0 {
		natural := i.naturalSize()
		if width <= 0 {
			width = natural.Width
		}
		if height <= 0 {
			height = natural.Height
		}
	}
	return graphics.Rect{X: i.X, Y: i.Y, Width: width, Height: height}
}

func (i *Image) RenderingPrimitive() rendering.Primitive {
	return rendering.Image{X: i.X, Y: i.Y, Source: i.source()}
}

func (i *Image) LayoutingInfo() LayoutInfo {
	return DefaultLayoutInfo()
}

func (i *Image) InputEvent(event MouseEvent) {}

func (i *Image) CachedRenderingData() *rendering.CachedRenderingData {
	return &i.cached
}

func (i *Image) source() resource.Resource {
	if i.Source == nil {
		return resource.None{}
	}
	return i.Source
}

// naturalSize returns the decoded pixel dimensions of the source, or a
// zero size when the source has no decodable data.
func (i *Image) naturalSize() graphics.Size {
	if i.naturalValid && i.cached.Valid() {
		return i.natural
	}
	width, height, err := resource.DecodeSize(i.source())
	if err != nil {
		width, height = 0, 0
	}
	i.naturalValid = true
	i.natural = graphics.Size{Width: float64(width), Height: float64(height)}
	return i.natural
}
