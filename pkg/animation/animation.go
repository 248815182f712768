// Package animation animates item property values over time.
//
// Animations are pull-driven: the embedder advances them with Update(dt)
// from its frame loop and writes the produced values back into item
// properties. There is no global animation manager.
package animation

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/sjinzh/slint/pkg/graphics"
)

// FloatAnimation animates a single float64 value from its current value
// to a target over a fixed duration.
type FloatAnimation struct {
	tween *gween.Tween
	value float64
	done  bool
}

// NewFloatAnimation creates an animation from from to to lasting
// duration seconds, shaped by the easing function fn.
func NewFloatAnimation(from, to float64, duration float64, fn ease.TweenFunc) *FloatAnimation {
	return &FloatAnimation{
		tween: gween.New(float32(from), float32(to), float32(duration), fn),
		value: from,
	}
}

// Update advances the animation by dt seconds and returns the current
// value and whether the animation has finished. Once finished the value
// stays at the target.
func (a *FloatAnimation) Update(dt float64) (float64, bool) {
	if a.done {
		return a.value, true
	}
	v, finished := a.tween.Update(float32(dt))
	a.value = float64(v)
	a.done = finished
	return a.value, finished
}

// Value returns the animation's current value without advancing it.
func (a *FloatAnimation) Value() float64 {
	return a.value
}

// Done reports whether the animation has reached its target.
func (a *FloatAnimation) Done() bool {
	return a.done
}

// ColorAnimation animates all four channels of a color in lockstep.
type ColorAnimation struct {
	channels [4]*gween.Tween
	value    graphics.Color
	done     bool
}

// NewColorAnimation creates an animation between two colors lasting
// duration seconds, shaped by the easing function fn.
func NewColorAnimation(from, to graphics.Color, duration float64, fn ease.TweenFunc) *ColorAnimation {
	a := &ColorAnimation{value: from}
	fr, fg, fb, fa := from.AsRGBAUint8()
	tr, tg, tb, ta := to.AsRGBAUint8()
	d := float32(duration)
	a.channels[0] = gween.New(float32(fr), float32(tr), d, fn)
	a.channels[1] = gween.New(float32(fg), float32(tg), d, fn)
	a.channels[2] = gween.New(float32(fb), float32(tb), d, fn)
	a.channels[3] = gween.New(float32(fa), float32(ta), d, fn)
	return a
}

// Update advances the animation by dt seconds and returns the current
// color and whether the animation has finished.
func (a *ColorAnimation) Update(dt float64) (graphics.Color, bool) {
	if a.done {
		return a.value, true
	}
	var rgba [4]uint8
	finished := true
	for i, tween := range a.channels {
		v, channelDone := tween.Update(float32(dt))
		rgba[i] = clampChannel(v)
		if !channelDone {
			finished = false
		}
	}
	a.value = graphics.ColorFromRGBA(rgba[0], rgba[1], rgba[2], rgba[3])
	a.done = finished
	return a.value, finished
}

// Value returns the animation's current color without advancing it.
func (a *ColorAnimation) Value() graphics.Color {
	return a.value
}

// Done reports whether the animation has reached its target.
func (a *ColorAnimation) Done() bool {
	return a.done
}

func clampChannel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
