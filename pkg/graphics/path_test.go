package graphics

import (
	"math"
	"testing"
)

func collectSegments(t *testing.T, it *PathIterator) []PathSegment {
	t.Helper()
	var segments []PathSegment
	for {
		segment, ok := it.Next()
		if !ok {
			return segments
		}
		segments = append(segments, segment)
		if len(segments) > 10000 {
			t.Fatal("iterator did not terminate")
		}
	}
}

func squareElements() []PathElement {
	return []PathElement{
		PathLineTo{X: 0, Y: 0},
		PathLineTo{X: 10, Y: 0},
		PathLineTo{X: 10, Y: 10},
		PathClose{},
	}
}

func TestFlattenElementsRoundTrip(t *testing.T) {
	events, coordinates := flattenElements(squareElements())

	wantEvents := []PathEvent{PathEventBegin, PathEventLine, PathEventLine, PathEventEndClosed}
	if len(events) != len(wantEvents) {
		t.Fatalf("got %d events %v, want %v", len(events), events, wantEvents)
	}
	for i, event := range events {
		if event != wantEvents[i] {
			t.Fatalf("event %d = %v, want %v", i, event, wantEvents[i])
		}
	}

	wantCoords := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	if len(coordinates) != len(wantCoords) {
		t.Fatalf("got %d coordinates %v, want %v", len(coordinates), coordinates, wantCoords)
	}
	for i, coord := range coordinates {
		if coord != wantCoords[i] {
			t.Fatalf("coordinate %d = %v, want %v", i, coord, wantCoords[i])
		}
	}
}

func TestElementsIterationDecodesSegments(t *testing.T) {
	data := PathDataFromElements(squareElements())
	segments := collectSegments(t, data.Iter())

	if len(segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segments))
	}
	if segments[0].Event != PathEventBegin || segments[0].At != (Point{X: 0, Y: 0}) {
		t.Fatalf("unexpected begin segment: %+v", segments[0])
	}
	if segments[1].From != (Point{X: 0, Y: 0}) || segments[1].To != (Point{X: 10, Y: 0}) {
		t.Fatalf("unexpected first line: %+v", segments[1])
	}
	if segments[2].From != (Point{X: 10, Y: 0}) || segments[2].To != (Point{X: 10, Y: 10}) {
		t.Fatalf("unexpected second line: %+v", segments[2])
	}
	end := segments[3]
	if end.Event != PathEventEndClosed {
		t.Fatalf("expected end_closed, got %v", end.Event)
	}
	if end.First != (Point{X: 0, Y: 0}) || end.Last != (Point{X: 10, Y: 10}) {
		t.Fatalf("end references first=%v last=%v", end.First, end.Last)
	}
}

func TestEventsFormIteratesWithoutConversion(t *testing.T) {
	events := []PathEvent{PathEventBegin, PathEventLine, PathEventEndOpen}
	coordinates := []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	data := PathDataFromEvents(events, coordinates)

	segments := collectSegments(t, data.Iter())
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	if segments[1].From != (Point{X: 1, Y: 2}) || segments[1].To != (Point{X: 3, Y: 4}) {
		t.Fatalf("unexpected line: %+v", segments[1])
	}
	if segments[2].First != (Point{X: 1, Y: 2}) || segments[2].Last != (Point{X: 3, Y: 4}) {
		t.Fatalf("unexpected end: %+v", segments[2])
	}
}

func TestIteratorIsRestartable(t *testing.T) {
	data := PathDataFromElements(squareElements())
	it := data.Iter()

	first := collectSegments(t, it)
	it.Reset()
	second := collectSegments(t, it)

	if len(first) != len(second) {
		t.Fatalf("restarted iteration yielded %d segments, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("segment %d differs after reset: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestArcWithZeroRadiiDegeneratesToLine(t *testing.T) {
	elements := []PathElement{
		PathLineTo{X: 0, Y: 0},
		PathArcTo{X: 5, Y: 5, RadiusX: 0, RadiusY: 0},
	}
	segments := collectSegments(t, PathDataFromElements(elements).Iter())

	if len(segments) != 3 {
		t.Fatalf("expected begin + line + end, got %d segments", len(segments))
	}
	line := segments[1]
	if line.Event != PathEventLine || line.To != (Point{X: 5, Y: 5}) {
		t.Fatalf("expected line to (5,5), got %+v", line)
	}
	assertNoNaN(t, segments)
}

func TestArcToSamePointDegeneratesToLine(t *testing.T) {
	elements := []PathElement{
		PathLineTo{X: 3, Y: 3},
		PathArcTo{X: 3, Y: 3, RadiusX: 10, RadiusY: 10},
	}
	segments := collectSegments(t, PathDataFromElements(elements).Iter())

	if len(segments) != 3 {
		t.Fatalf("expected begin + line + end, got %d segments", len(segments))
	}
	line := segments[1]
	if line.Event != PathEventLine || line.To != (Point{X: 3, Y: 3}) {
		t.Fatalf("expected line to (3,3), got %+v", line)
	}
	assertNoNaN(t, segments)
}

func TestArcProducesCubicSegmentsEndingAtTarget(t *testing.T) {
	elements := []PathElement{
		PathLineTo{X: 0, Y: 0},
		PathArcTo{X: 10, Y: 10, RadiusX: 10, RadiusY: 10, Sweep: true},
	}
	segments := collectSegments(t, PathDataFromElements(elements).Iter())
	assertNoNaN(t, segments)

	var cubics []PathSegment
	for _, segment := range segments {
		if segment.Event == PathEventCubic {
			cubics = append(cubics, segment)
		}
	}
	if len(cubics) == 0 {
		t.Fatal("expected at least one cubic segment")
	}
	last := cubics[len(cubics)-1]
	if last.To != (Point{X: 10, Y: 10}) {
		t.Fatalf("arc should end at (10,10), got %v", last.To)
	}
	if cubics[0].From != (Point{X: 0, Y: 0}) {
		t.Fatalf("arc should start at (0,0), got %v", cubics[0].From)
	}
}

func TestClosedSubpathStartsAndEndsAtSameCoordinate(t *testing.T) {
	segments := collectSegments(t, PathDataFromElements(squareElements()).Iter())

	var begin, end PathSegment
	for _, segment := range segments {
		switch segment.Event {
		case PathEventBegin:
			begin = segment
		case PathEventEndClosed:
			end = segment
		}
	}
	if end.First != begin.At {
		t.Fatalf("closed subpath first %v does not match begin %v", end.First, begin.At)
	}
}

func TestFittedScalesIntoTarget(t *testing.T) {
	it := PathDataFromElements(squareElements()).Iter().Fitted(20, 40)
	segments := collectSegments(t, it)

	// Bounding box is 10x10; min scale of (20/10, 40/10) is 2.
	if segments[1].To != (Point{X: 20, Y: 0}) {
		t.Fatalf("expected scaled endpoint (20,0), got %v", segments[1].To)
	}
	if segments[2].To != (Point{X: 20, Y: 20}) {
		t.Fatalf("expected scaled endpoint (20,20), got %v", segments[2].To)
	}
}

func TestFittedIsIdempotent(t *testing.T) {
	once := collectSegments(t, PathDataFromElements(squareElements()).Iter().Fitted(20, 20))
	twice := collectSegments(t, PathDataFromElements(squareElements()).Iter().Fitted(20, 20).Fitted(20, 20))

	if len(once) != len(twice) {
		t.Fatalf("segment counts differ: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if !segmentsClose(once[i], twice[i]) {
			t.Fatalf("segment %d differs after refit: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestFittedNonPositiveTargetIsIdentity(t *testing.T) {
	plain := collectSegments(t, PathDataFromElements(squareElements()).Iter())
	fitted := collectSegments(t, PathDataFromElements(squareElements()).Iter().Fitted(0, -5))

	for i := range plain {
		if plain[i] != fitted[i] {
			t.Fatalf("segment %d changed under degenerate fit: %+v vs %+v", i, plain[i], fitted[i])
		}
	}
}

func assertNoNaN(t *testing.T, segments []PathSegment) {
	t.Helper()
	for i, segment := range segments {
		points := []Point{segment.At, segment.From, segment.Ctrl1, segment.Ctrl2, segment.To, segment.First, segment.Last}
		for _, p := range points {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				t.Fatalf("segment %d contains NaN: %+v", i, segment)
			}
		}
	}
}

func segmentsClose(a, b PathSegment) bool {
	if a.Event != b.Event {
		return false
	}
	pointsA := []Point{a.At, a.From, a.Ctrl1, a.Ctrl2, a.To, a.First, a.Last}
	pointsB := []Point{b.At, b.From, b.Ctrl1, b.Ctrl2, b.To, b.First, b.Last}
	const tolerance = 1e-9
	for i := range pointsA {
		if math.Abs(pointsA[i].X-pointsB[i].X) > tolerance || math.Abs(pointsA[i].Y-pointsB[i].Y) > tolerance {
			return false
		}
	}
	return true
}
