// Package palette holds renderer-agnostic colors shared by scene targets and projectiles.
package palette

import "math"

// RGB is an 8-bit per channel color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// FromArray converts a parameter color triple
func FromArray(c [3]uint8) RGB {
	return RGB{R: c[0], G: c[1], B: c[2]}
}

// clamp converts float to uint8 with rounding
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// FromHSL converts hue, saturation, lightness in [0,1] to RGB
// Hue wraps, so negative hues are valid
func FromHSL(h, s, l float64) RGB {
	h = h - math.Floor(h)
	s = math.Max(0, math.Min(1, s))
	l = math.Max(0, math.Min(1, l))

	if s == 0 {
		v := clamp(l * 255)
		return RGB{v, v, v}
	}

	var q float64
	if l <= 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: clamp(hueToChannel(p, q, h+1.0/3) * 255),
		G: clamp(hueToChannel(p, q, h) * 255),
		B: clamp(hueToChannel(p, q, h-1.0/3) * 255),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// Lerp blends a toward b by t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: clamp(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clamp(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clamp(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// Scale multiplies every channel by f, used for depth and opacity fades
func (c RGB) Scale(f float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * f),
		G: clamp(float64(c.G) * f),
		B: clamp(float64(c.B) * f),
	}
}
