package graphics

import (
	"fmt"
	"math"
)

// PathElement describes a single high-level element on a path, such as
// line-to or arc-to. It is the authoring-level form; paths can also be
// described directly by pre-flattened low-level events (see PathEvent).
type PathElement interface {
	isPathElement()
}

// PathLineTo moves the cursor to the specified location along a straight line.
type PathLineTo struct {
	X float64
	Y float64
}

// PathArcTo moves the cursor across an elliptical arc to the specified
// coordinates, SVG endpoint style.
type PathArcTo struct {
	// X, Y is the point where the arc ends up.
	X float64
	Y float64
	// RadiusX, RadiusY are the radii of the ellipse the arc follows.
	RadiusX float64
	RadiusY float64
	// XRotation is the rotation of the ellipse along the x-axis, in degrees.
	XRotation float64
	// LargeArc selects the longer of the two candidate sweeps.
	LargeArc bool
	// Sweep selects the clockwise direction when true.
	Sweep bool
}

// PathClose closes the current subpath by connecting to its starting point.
type PathClose struct{}

func (PathLineTo) isPathElement() {}
func (PathArcTo) isPathElement()  {}
func (PathClose) isPathElement()  {}

// PathEvent is a low-level tag describing one step in a flattened path.
// Typically generated at compile time from a higher-level description.
//
// Each tag consumes a fixed number of coordinates from the path's
// coordinate sequence, in strict order:
//
//	Begin     0  (marks a subpath start; the start point is the next
//	              unconsumed coordinate, which the following segment
//	              carries as its from-point)
//	Line      2  (from, to)
//	Quadratic 3  (from, control, to)
//	Cubic     4  (from, control 1, control 2, to)
//	EndOpen   0  (references the overall first/last coordinates)
//	EndClosed 0  (references the overall first/last coordinates)
type PathEvent uint8

const (
	// PathEventBegin marks the beginning of a subpath.
	PathEventBegin PathEvent = iota
	// PathEventLine is a straight line segment.
	PathEventLine
	// PathEventQuadratic is a quadratic bezier segment.
	PathEventQuadratic
	// PathEventCubic is a cubic bezier segment.
	PathEventCubic
	// PathEventEndOpen ends a subpath that remains open.
	PathEventEndOpen
	// PathEventEndClosed ends a subpath that is closed back to its start.
	PathEventEndClosed
)

// String returns a human-readable representation of the path event.
func (e PathEvent) String() string {
	switch e {
	case PathEventBegin:
		return "begin"
	case PathEventLine:
		return "line"
	case PathEventQuadratic:
		return "quadratic"
	case PathEventCubic:
		return "cubic"
	case PathEventEndOpen:
		return "end_open"
	case PathEventEndClosed:
		return "end_closed"
	default:
		return fmt.Sprintf("PathEvent(%d)", uint8(e))
	}
}

// coordinateCount returns how many coordinates the event consumes.
func (e PathEvent) coordinateCount() int {
	switch e {
	case PathEventLine:
		return 2
	case PathEventQuadratic:
		return 3
	case PathEventCubic:
		return 4
	default:
		return 0
	}
}

// PathSegment is one decoded step of path iteration, backend-agnostic.
// Which fields are meaningful depends on Event:
//
//	Begin               At
//	Line                From, To
//	Quadratic           From, Ctrl1, To
//	Cubic               From, Ctrl1, Ctrl2, To
//	EndOpen, EndClosed  First, Last
type PathSegment struct {
	Event PathEvent
	At    Point
	From  Point
	Ctrl1 Point
	Ctrl2 Point
	To    Point
	First Point
	Last  Point
}

type pathDataKind uint8

const (
	pathDataNone pathDataKind = iota
	pathDataElements
	pathDataEvents
)

// PathData represents path geometry described by either high-level
// elements or pre-flattened low-level events with coordinates. Both
// forms iterate identically through Iter.
//
// The zero value is the empty path.
type PathData struct {
	kind        pathDataKind
	elements    []PathElement
	events      []PathEvent
	coordinates []Point
}

// PathDataFromElements builds PathData from high-level elements.
func PathDataFromElements(elements []PathElement) PathData {
	return PathData{kind: pathDataElements, elements: elements}
}

// PathDataFromEvents builds PathData from a pre-flattened event and
// coordinate sequence. The caller guarantees that the coordinate count
// matches what the events consume.
func PathDataFromEvents(events []PathEvent, coordinates []Point) PathData {
	return PathData{kind: pathDataEvents, events: events, coordinates: coordinates}
}

// IsEmpty returns true for a path with no geometry.
func (d PathData) IsEmpty() bool {
	switch d.kind {
	case pathDataElements:
		return len(d.elements) == 0
	case pathDataEvents:
		return len(d.events) == 0
	default:
		return true
	}
}

// Elements returns the high-level elements, or nil for other forms.
func (d PathData) Elements() []PathElement {
	return d.elements
}

// Events returns the low-level event and coordinate sequences, or nil
// for other forms.
func (d PathData) Events() ([]PathEvent, []Point) {
	return d.events, d.coordinates
}

// Iter returns a fresh iterator over the low-level events of the path.
// Elements-form paths are flattened on demand; events-form paths
// iterate with no conversion.
func (d PathData) Iter() *PathIterator {
	events, coordinates := d.events, d.coordinates
	if d.kind == pathDataElements {
		events, coordinates = flattenElements(d.elements)
	}
	return &PathIterator{events: events, coordinates: coordinates}
}

// PathIterator is a lazy, finite, restartable iterator over decoded path
// segments, optionally applying one affine transform to every yielded
// coordinate.
type PathIterator struct {
	events      []PathEvent
	coordinates []Point
	transform   Transform
	transformed bool
	eventPos    int
	coordPos    int
}

// Fitted changes the iterator to apply a transform that fits the path's
// bounding box into the (width, height) rectangle anchored at the
// origin, preserving aspect ratio with the minimal scale. Targets with
// neither width nor height positive leave the iterator untouched
// (identity pass-through).
func (it *PathIterator) Fitted(width, height float64) *PathIterator {
	if width > 0 || height > 0 {
		bounds := it.boundingRect()
		if transform, ok := fitRectangle(bounds, width, height); ok {
			if it.transformed {
				transform = transform.After(it.transform)
			}
			it.transform = transform
			it.transformed = true
		}
	}
	it.Reset()
	return it
}

// Reset restarts iteration from the first event.
func (it *PathIterator) Reset() {
	it.eventPos = 0
	it.coordPos = 0
}

// Next decodes and returns the next segment. The second return value is
// false when the path is exhausted.
func (it *PathIterator) Next() (PathSegment, bool) {
	if it.eventPos >= len(it.events) {
		return PathSegment{}, false
	}
	event := it.events[it.eventPos]
	it.eventPos++

	segment := PathSegment{Event: event}
	switch event {
	case PathEventBegin:
		// The subpath start is carried by the following segment; peek
		// without consuming.
		segment.At = it.transformPoint(it.peek())
	case PathEventLine:
		segment.From = it.transformPoint(it.consume())
		segment.To = it.transformPoint(it.consume())
	case PathEventQuadratic:
		segment.From = it.transformPoint(it.consume())
		segment.Ctrl1 = it.transformPoint(it.consume())
		segment.To = it.transformPoint(it.consume())
	case PathEventCubic:
		segment.From = it.transformPoint(it.consume())
		segment.Ctrl1 = it.transformPoint(it.consume())
		segment.Ctrl2 = it.transformPoint(it.consume())
		segment.To = it.transformPoint(it.consume())
	case PathEventEndOpen, PathEventEndClosed:
		if len(it.coordinates) > 0 {
			segment.First = it.transformPoint(it.coordinates[0])
			segment.Last = it.transformPoint(it.coordinates[len(it.coordinates)-1])
		}
	}
	return segment, true
}

func (it *PathIterator) peek() Point {
	if it.coordPos < len(it.coordinates) {
		return it.coordinates[it.coordPos]
	}
	return Point{}
}

func (it *PathIterator) consume() Point {
	p := it.peek()
	if it.coordPos < len(it.coordinates) {
		it.coordPos++
	}
	return p
}

func (it *PathIterator) transformPoint(p Point) Point {
	if !it.transformed {
		return p
	}
	return it.transform.Apply(p)
}

// boundingRect computes the axis-aligned bounding box over all
// coordinates of the path, control points included, with the current
// transform applied. The box is conservative for curves.
func (it *PathIterator) boundingRect() Rect {
	first := true
	var bounds Rect
	for _, p := range it.coordinates {
		p = it.transformPoint(p)
		if first {
			bounds = Rect{X: p.X, Y: p.Y}
			first = false
			continue
		}
		bounds = bounds.ExpandToInclude(p)
	}
	return bounds
}

// fitRectangle derives the transform that maps src into the
// (width, height) rectangle at the origin: uniform scale by the smaller
// of the two axis ratios, anchored so that the minimum corner of src
// maps to the origin. Returns false when no finite scale exists.
func fitRectangle(src Rect, width, height float64) (Transform, bool) {
	scaleX := math.Inf(1)
	if src.Width > 0 {
		scaleX = width / src.Width
	}
	scaleY := math.Inf(1)
	if src.Height > 0 {
		scaleY = height / src.Height
	}
	scale := math.Min(scaleX, scaleY)
	if math.IsInf(scale, 0) {
		return Transform{}, false
	}
	return ScaleTranslate(scale, -src.X*scale, -src.Y*scale), true
}

// pathFlattener converts high-level path elements into the event form,
// tracking the cursor position as it goes.
type pathFlattener struct {
	events      []PathEvent
	coordinates []Point
	cursor      Point
	open        bool
}

// flattenElements walks the elements in order and produces the
// equivalent low-level event and coordinate sequences.
func flattenElements(elements []PathElement) ([]PathEvent, []Point) {
	var f pathFlattener
	for _, element := range elements {
		switch e := element.(type) {
		case PathLineTo:
			f.lineTo(Point{X: e.X, Y: e.Y})
		case PathArcTo:
			f.arcTo(e)
		case PathClose:
			f.close()
		}
	}
	f.finish()
	return f.events, f.coordinates
}

// begin opens a subpath at the given point. A line-to or arc-to without
// an open subpath acts as a move to its target.
func (f *pathFlattener) begin(at Point) {
	f.events = append(f.events, PathEventBegin)
	f.cursor = at
	f.open = true
}

func (f *pathFlattener) lineTo(to Point) {
	if !f.open {
		f.begin(to)
		return
	}
	f.events = append(f.events, PathEventLine)
	f.coordinates = append(f.coordinates, f.cursor, to)
	f.cursor = to
}

func (f *pathFlattener) cubicTo(ctrl1, ctrl2, to Point) {
	f.events = append(f.events, PathEventCubic)
	f.coordinates = append(f.coordinates, f.cursor, ctrl1, ctrl2, to)
	f.cursor = to
}

func (f *pathFlattener) close() {
	if !f.open {
		return
	}
	f.events = append(f.events, PathEventEndClosed)
	f.open = false
}

func (f *pathFlattener) finish() {
	if f.open {
		f.events = append(f.events, PathEventEndOpen)
		f.open = false
	}
}

// arcTo appends an SVG endpoint-style elliptical arc. Degenerate arcs
// (zero radius, coincident endpoints, zero curvature) become a straight
// line to the target, never an error or NaN.
func (f *pathFlattener) arcTo(arc PathArcTo) {
	to := Point{X: arc.X, Y: arc.Y}
	if !f.open {
		f.begin(to)
		return
	}
	from := f.cursor

	rx := math.Abs(arc.RadiusX)
	ry := math.Abs(arc.RadiusY)
	if rx == 0 || ry == 0 || from == to {
		f.lineTo(to)
		return
	}

	// Endpoint to center parameterization, following the SVG
	// implementation notes (F.6.5).
	phi := arc.XRotation * math.Pi / 180
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	dx := (from.X - to.X) / 2
	dy := (from.Y - to.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// Scale radii up if the endpoints cannot be joined with them.
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	radicand := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if radicand < 0 || math.IsNaN(radicand) {
		// Rounding pushed the radicand negative, or the chord is
		// collinear with the radii (zero curvature).
		radicand = 0
	}
	coefficient := math.Sqrt(radicand)
	if arc.LargeArc == arc.Sweep {
		coefficient = -coefficient
	}
	cxp := coefficient * rx * y1p / ry
	cyp := -coefficient * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (from.X+to.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (from.Y+to.Y)/2

	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	delta := theta2 - theta1
	if !arc.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if arc.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	if delta == 0 || math.IsNaN(delta) {
		f.lineTo(to)
		return
	}

	// Split into cubic segments of at most a quarter turn each.
	segments := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	step := delta / float64(segments)
	k := 4.0 / 3.0 * math.Tan(step/4)

	pointAt := func(angle float64) Point {
		x := rx * math.Cos(angle)
		y := ry * math.Sin(angle)
		return Point{
			X: cosPhi*x - sinPhi*y + cx,
			Y: sinPhi*x + cosPhi*y + cy,
		}
	}
	derivativeAt := func(angle float64) Point {
		x := -rx * math.Sin(angle)
		y := ry * math.Cos(angle)
		return Point{
			X: cosPhi*x - sinPhi*y,
			Y: sinPhi*x + cosPhi*y,
		}
	}

	angle := theta1
	for i := 0; i < segments; i++ {
		next := angle + step
		p0 := pointAt(angle)
		p3 := pointAt(next)
		if i == segments-1 {
			// Land exactly on the requested endpoint.
			p3 = to
		}
		d0 := derivativeAt(angle)
		d3 := derivativeAt(next)
		ctrl1 := Point{X: p0.X + k*d0.X, Y: p0.Y + k*d0.Y}
		ctrl2 := Point{X: p3.X - k*d3.X, Y: p3.Y - k*d3.Y}
		f.cubicTo(ctrl1, ctrl2, p3)
		angle = next
	}
}
