package graphics

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 5}
	cases := []struct {
		point Point
		want  bool
	}{
		{Point{X: 10, Y: 10}, true},
		{Point{X: 30, Y: 15}, true},
		{Point{X: 20, Y: 12}, true},
		{Point{X: 9.9, Y: 12}, false},
		{Point{X: 20, Y: 15.1}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.point); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.point, got, tc.want)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: -5, Width: 10, Height: 10}
	got := a.Union(b)
	want := Rect{X: 0, Y: -5, Width: 15, Height: 15}
	if got != want {
		t.Fatalf("Union = %v, want %v", got, want)
	}
}

func TestRectUnionEmptyIdentity(t *testing.T) {
	r := Rect{X: 3, Y: 4, Width: 5, Height: 6}
	if got := (Rect{}).Union(r); got != r {
		t.Fatalf("empty.Union(r) = %v, want %v", got, r)
	}
	if got := r.Union(Rect{}); got != r {
		t.Fatalf("r.Union(empty) = %v, want %v", got, r)
	}
}

func TestRectTranslate(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}
	got := r.Translate(10, -2)
	want := Rect{X: 11, Y: 0, Width: 3, Height: 4}
	if got != want {
		t.Fatalf("Translate = %v, want %v", got, want)
	}
}

func TestTransformAfter(t *testing.T) {
	inner := ScaleTranslate(2, 1, 1)
	outer := ScaleTranslate(3, -1, 0)
	combined := outer.After(inner)

	p := Point{X: 1, Y: 2}
	direct := outer.Apply(inner.Apply(p))
	if got := combined.Apply(p); got != direct {
		t.Fatalf("composed transform = %v, want %v", got, direct)
	}
}
