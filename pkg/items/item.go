// Package items defines the capability contract every concrete item
// kind implements, and the closed set of built-in items: Rectangle,
// Image, Text, TouchArea, and Path.
//
// Items are the nodes of the render tree. They are owned by value by
// their component and are never copied or relocated after construction;
// all collaborators address them through the Item interface.
package items

import (
	"fmt"
	"math"

	"github.com/sjinzh/slint/pkg/graphics"
	"github.com/sjinzh/slint/pkg/rendering"
)

// Item is the polymorphic contract every concrete item kind implements.
//
// All operations are total: they execute on every frame and every
// interaction, so out-of-range property values clamp or degrade
// visually rather than fail. Geometry and RenderingPrimitive are pure
// over the item's current property values; InputEvent may mutate
// item-local state only and never re-enters traversal.
type Item interface {
	// Geometry returns the item's position and size relative to its
	// parent item, never in absolute coordinates.
	Geometry() graphics.Rect

	// RenderingPrimitive returns the backend-agnostic description of
	// what to draw for this item.
	RenderingPrimitive() rendering.Primitive

	// LayoutingInfo returns the item's constraint contribution to an
	// enclosing layout.
	LayoutingInfo() LayoutInfo

	// InputEvent handles a mouse event with a position in item-local
	// coordinates.
	InputEvent(event MouseEvent)

	// CachedRenderingData returns the item's embedded cache slot. The
	// pointer is stable for the item's lifetime.
	CachedRenderingData() *rendering.CachedRenderingData
}

// LayoutInfo is the layout constraint an item or component contributes
// to its surroundings.
type LayoutInfo struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// DefaultLayoutInfo returns the unconstrained layout info: zero minima
// and unbounded maxima.
func DefaultLayoutInfo() LayoutInfo {
	return LayoutInfo{
		MaxWidth:  math.Inf(1),
		MaxHeight: math.Inf(1),
	}
}

// Merge combines two constraints: the tighter minimum and maximum wins
// on each axis.
func (l LayoutInfo) Merge(other LayoutInfo) LayoutInfo {
	return LayoutInfo{
		MinWidth:  math.Max(l.MinWidth, other.MinWidth),
		MaxWidth:  math.Min(l.MaxWidth, other.MaxWidth),
		MinHeight: math.Max(l.MinHeight, other.MinHeight),
		MaxHeight: math.Min(l.MaxHeight, other.MaxHeight),
	}
}

// MouseEventKind is the type of a mouse event.
type MouseEventKind int

const (
	// MousePressed indicates the mouse was pressed.
	MousePressed MouseEventKind = iota
	// MouseReleased indicates the mouse was released.
	MouseReleased
	// MouseMoved indicates the mouse position changed.
	MouseMoved
)

// String returns a human-readable representation of the event kind.
func (k MouseEventKind) String() string {
	switch k {
	case MousePressed:
		return "pressed"
	case MouseReleased:
		return "released"
	case MouseMoved:
		return "moved"
	default:
		return fmt.Sprintf("MouseEventKind(%d)", int(k))
	}
}

// MouseEvent is a mouse interaction delivered to an item. Position is
// in the item's local coordinate space.
type MouseEvent struct {
	Position graphics.Point
	Kind     MouseEventKind
}
