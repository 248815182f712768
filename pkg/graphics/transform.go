package graphics

// Transform is a 2D affine transform:
//
//	| ScaleX SkewX  TranslateX |
//	| SkewY  ScaleY TranslateY |
type Transform struct {
	ScaleX     float64
	SkewX      float64
	TranslateX float64
	SkewY      float64
	ScaleY     float64
	TranslateY float64
}

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// ScaleTranslate builds a transform that scales uniformly by s and then
// translates by (tx, ty).
func ScaleTranslate(s, tx, ty float64) Transform {
	return Transform{ScaleX: s, ScaleY: s, TranslateX: tx, TranslateY: ty}
}

// Apply maps the point through the transform.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.ScaleX*p.X + t.SkewX*p.Y + t.TranslateX,
		Y: t.SkewY*p.X + t.ScaleY*p.Y + t.TranslateY,
	}
}

// After returns the transform equivalent to applying inner first and
// then t.
func (t Transform) After(inner Transform) Transform {
	return Transform{
		ScaleX:     t.ScaleX*inner.ScaleX + t.SkewX*inner.SkewY,
		SkewX:      t.ScaleX*inner.SkewX + t.SkewX*inner.ScaleY,
		TranslateX: t.ScaleX*inner.TranslateX + t.SkewX*inner.TranslateY + t.TranslateX,
		SkewY:      t.SkewY*inner.ScaleX + t.ScaleY*inner.SkewY,
		ScaleY:     t.SkewY*inner.SkewX + t.ScaleY*inner.ScaleY,
		TranslateY: t.SkewY*inner.TranslateX + t.ScaleY*inner.TranslateY + t.TranslateY,
	}
}

// IsIdentity reports whether the transform leaves points unchanged.
func (t Transform) IsIdentity() bool {
	return t == Transform{ScaleX: 1, ScaleY: 1}
}
