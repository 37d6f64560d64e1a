package fractal

import (
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA implements color.Color. The returned values are alpha-premultiplied
// and scaled to [0, 0xffff].
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A) * 0xffff)
	r = uint32(clamp01(c.R) * clamp01(c.A) * 0xffff)
	g = uint32(clamp01(c.G) * clamp01(c.A) * 0xffff)
	b = uint32(clamp01(c.B) * clamp01(c.A) * 0xffff)
	return r, g, b, a
}

// NRGBA converts c to an 8-bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)

// HSV creates an opaque color from hue, saturation and value.
// h is hue in degrees and wraps modulo 360, s and v are in [0, 1].
//
// The conversion splits the hue circle into six 60° sectors and
// interpolates one channel linearly inside each sector.
func HSV(h, s, v float64) RGBA {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		h = 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	v = clamp01(v)
	if s == 0 {
		return RGB(v, v, v)
	}

	hh := h / 60
	sector := math.Floor(hh)
	f := hh - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(sector) % 6 {
	case 0:
		return RGB(v, t, p)
	case 1:
		return RGB(q, v, p)
	case 2:
		return RGB(p, v, t)
	case 3:
		return RGB(p, q, v)
	case 4:
		return RGB(t, p, v)
	default:
		return RGB(v, p, q)
	}
}

// MapColor maps a normalized escape value to a color.
//
// The hue sweeps the full circle as n goes from 0 to 1 at full saturation.
// Values at or above 1 did not escape within the iteration cap and map to
// black regardless of hue.
func MapColor(n float64) RGBA {
	v := 1.0
	if n >= 1 {
		v = 0
	}
	return HSV(n*360, 1, v)
}
