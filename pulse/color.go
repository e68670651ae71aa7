package pulse

import (
	"math"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var ColorWhite = ColorLinearRGBA(1, 1, 1, 1)
var ColorBlack = ColorLinearRGBA(0, 0, 0, 1)

// Color is an a straight rgba color value with alpha in linear rgb color space.
// The default value of a Color value is fully opaque white.
type Color struct {
	r1, g1, b1, a1 float32
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

// ColorSRGBA creates a Color value from non linear srgb encoded values. The color values
// will be transferred into linear rgb space.
// This is the usual color format on most devices.
func ColorSRGBA(r, g, b, a float32) Color {
	return ColorLinearRGBA(degamma(r), degamma(g), degamma(b), a)
}

// ColorRGBA8 creates a Color from srgb encoded bytes, as found
// in a pixel buffer.
func ColorRGBA8(r, g, b, a uint8) Color {
	return ColorSRGBA(float32(r)/255, float32(g)/255, float32(b)/255, float32(a)/255)
}

// Components returns the color components in linear rgb space.
func (c Color) Components() (r, g, b, a float32) {
	return c.r1 + 1, c.g1 + 1, c.b1 + 1, c.a1 + 1
}

// RGBA8 encodes the color as srgb bytes, the format of a pixel buffer.
func (c Color) RGBA8() [4]uint8 {
	r, g, b, a := c.Components()

	return [4]uint8{
		toByte(gamma(r)),
		toByte(gamma(g)),
		toByte(gamma(b)),
		toByte(a),
	}
}

// Lerp blends linearly between two colors in linear rgb space.
func (c Color) Lerp(other Color, t float32) Color {
	r0, g0, b0, a0 := c.Components()
	r1, g1, b1, a1 := other.Components()

	return ColorLinearRGBA(
		r0+(r1-r0)*t,
		g0+(g1-g0)*t,
		b0+(b1-b0)*t,
		a0+(a1-a0)*t,
	)
}

// toWGPU returns the srgb encoded color. The surface uses a unorm
// format, so pixel values are written without conversion.
func (c Color) toWGPU() wgpu.Color {
	rgba := c.RGBA8()

	return wgpu.Color{
		R: float64(rgba[0]) / 255,
		G: float64(rgba[1]) / 255,
		B: float64(rgba[2]) / 255,
		A: float64(rgba[3]) / 255,
	}
}

func toByte(value float32) uint8 {
	return uint8(math.Round(float64(max(0, min(1, value)) * 255)))
}

func degamma(value float32) float32 {
	x := float64(value)

	// https://www.w3.org/TR/css-color-4/#color-conversion-code
	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.04045 {
		return float32(x / 12.92)
	}

	return float32(sign * math.Pow((abs+0.055)/1.055, 2.4))
}

func gamma(value float32) float32 {
	x := float64(value)

	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.0031308 {
		return float32(x * 12.92)
	}

	return float32(sign * (1.055*math.Pow(abs, 1/2.4) - 0.055))
}
