package animation

import "github.com/sjinzh/slint/pkg/rendering"

// PropertyBinding drives an animated float value into an item property
// and invalidates the item's rendering cache entry whenever the value
// changes, so the backend rebuilds the primitive on the next frame.
type PropertyBinding struct {
	animation *FloatAnimation
	target    *float64
	cache     *rendering.CachedRenderingData
}

// BindFloat attaches an animation to a property field. cache may be nil
// when the property does not affect a cached primitive.
func BindFloat(animation *FloatAnimation, target *float64, cache *rendering.CachedRenderingData) *PropertyBinding {
	return &PropertyBinding{animation: animation, target: target, cache: cache}
}

// Update advances the animation, writes the value to the bound property
// and reports whether the animation has finished. The cache entry is
// invalidated only when the value actually changed.
func (b *PropertyBinding) Update(dt float64) bool {
	if b.animation.Done() {
		return true
	}
	value, finished := b.animation.Update(dt)
	if *b.target != value {
		*b.target = value
		if b.cache != nil {
			b.cache.Invalidate()
		}
	}
	return finished
}
