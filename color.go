package drawbot

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Alpha is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Gray creates an opaque gray. Gray(0) is black, Gray(1) is white.
func Gray(v float64) RGBA {
	return RGBA{R: v, G: v, B: v, A: 1}
}

// GrayAlpha creates a gray with an explicit alpha.
func GrayAlpha(v, a float64) RGBA {
	return RGBA{R: v, G: v, B: v, A: a}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Black and White are the paint defaults.
var (
	Black = RGBA{R: 0, G: 0, B: 0, A: 1}
	White = RGBA{R: 1, G: 1, B: 1, A: 1}
)

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
