package graphics

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is an 8-bit-per-channel RGBA color.
//
// Colors travel by value through rendering primitives and can be
// interpolated per channel for property animation.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
	Alpha uint8
}

// ColorFromARGBEncoded constructs a Color from an integer encoded as 0xAARRGGBB.
func ColorFromARGBEncoded(encoded uint32) Color {
	return Color{
		Red:   uint8(encoded >> 16),
		Green: uint8(encoded >> 8),
		Blue:  uint8(encoded),
		Alpha: uint8(encoded >> 24),
	}
}

// ColorFromRGBA constructs a Color from its red, green, blue, alpha bytes.
func ColorFromRGBA(r, g, b, a uint8) Color {
	return Color{Red: r, Green: g, Blue: b, Alpha: a}
}

// ColorFromRGB constructs an opaque Color from its red, green, blue bytes.
func ColorFromRGB(r, g, b uint8) Color {
	return ColorFromRGBA(r, g, b, 0xFF)
}

// AsRGBAUint8 returns the (red, green, blue, alpha) channels as bytes.
func (c Color) AsRGBAUint8() (r, g, b, a uint8) {
	return c.Red, c.Green, c.Blue, c.Alpha
}

// AsRGBAFloat returns the channels normalized to the 0.0 to 1.0 range.
func (c Color) AsRGBAFloat() (r, g, b, a float64) {
	return float64(c.Red) / maxByte,
		float64(c.Green) / maxByte,
		float64(c.Blue) / maxByte,
		float64(c.Alpha) / maxByte
}

// AsARGBEncoded returns the color encoded as 0xAARRGGBB.
func (c Color) AsARGBEncoded() uint32 {
	return uint32(c.Red)<<16 | uint32(c.Green)<<8 | uint32(c.Blue) | uint32(c.Alpha)<<24
}

// Interpolate linearly interpolates each channel towards target.
// t is the animation progress in [0, 1].
func (c Color) Interpolate(target Color, t float64) Color {
	return Color{
		Red:   lerpByte(c.Red, target.Red, t),
		Green: lerpByte(c.Green, target.Green, t),
		Blue:  lerpByte(c.Blue, target.Blue, t),
		Alpha: lerpByte(c.Alpha, target.Alpha, t),
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	if v <= 0 {
		return 0
	}
	if v >= maxByte {
		return 0xFF
	}
	return uint8(v + 0.5)
}

// Common colors.
var (
	ColorTransparent = ColorFromRGBA(0, 0, 0, 0)
	ColorBlack       = ColorFromRGB(0, 0, 0)
	ColorWhite       = ColorFromRGB(255, 255, 255)
)
