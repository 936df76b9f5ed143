package rowan

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common editor colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{0, 0, 0, 0}
)

// ColorFromHex parses a CSS-style hex color: "#rgb", "#rrggbb", or
// "#rrggbbaa" (leading '#' optional). Returns an error on malformed input.
func ColorFromHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	expand := func(h string) string {
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String()
	}

	switch len(hex) {
	case 3:
		hex = expand(hex) + "ff"
	case 6:
		hex += "ff"
	case 8:
		// full rrggbbaa
	default:
		return Color{}, fmt.Errorf("rowan: invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("rowan: invalid hex color %q", s)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Lerp linearly interpolates from c to other. t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Scaled returns the color with R, G, and B multiplied by f, clamped to [0, 1].
// Alpha is unchanged. Useful for darkening (f < 1) or brightening palette
// entries.
func (c Color) Scaled(f float64) Color {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	return Color{R: clamp(c.R * f), G: clamp(c.G * f), B: clamp(c.B * f), A: c.A}
}

// toRGBA converts to a straight-alpha color.RGBA for the drawing primitives.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
