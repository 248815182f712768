package graphics

import "math"

// Point represents a 2D point or vector in logical pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty returns true if the size has zero or negative area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle by its origin and size.
// Item geometry is always expressed in this form, relative to the
// parent item, never in absolute coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromPoints constructs the smallest Rect containing both points.
func RectFromPoints(a, b Point) Rect {
	left := math.Min(a.X, b.X)
	top := math.Min(a.Y, b.Y)
	return Rect{
		X:      left,
		Y:      top,
		Width:  math.Max(a.X, b.X) - left,
		Height: math.Max(a.Y, b.Y) - top,
	}
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.Width && p.Y <= r.Y+r.Height
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Union returns the smallest rect containing both r and other.
// An empty rect is the identity element.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	left := math.Min(r.X, other.X)
	top := math.Min(r.Y, other.Y)
	right := math.Max(r.X+r.Width, other.X+other.Width)
	bottom := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// ExpandToInclude grows the rect so that it contains the given point.
func (r Rect) ExpandToInclude(p Point) Rect {
	left := math.Min(r.X, p.X)
	top := math.Min(r.Y, p.Y)
	right := math.Max(r.X+r.Width, p.X)
	bottom := math.Max(r.Y+r.Height, p.Y)
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}
