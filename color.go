package uidraw

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("uidraw: invalid hex color")

// Color is an 8-bit-per-channel, non-premultiplied RGBA color.
// It is the storage form carried by recorded commands.
type Color struct {
	R, G, B, A uint8
}

// ColorF is a normalized floating-point RGBA color used during
// tessellation and vertex serialization. Channels are nominally in [0, 1].
type ColorF struct {
	R, G, B, A float32
}

// RGBA creates a Color from its four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Float converts c to its normalized representation.
func (c Color) Float() ColorF {
	return ColorF{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// ScaleAlpha returns c with its alpha multiplied by f and truncated.
// f is clamped to [0, 1].
func (c Color) ScaleAlpha(f float32) Color {
	c.A = uint8(float32(c.A) * clamp01(f))
	return c
}

// Color converts c to 8 bits per channel. Each channel is saturated to
// [0, 1], scaled by 255 and rounded half away from zero, so 0.5 maps to 128.
func (c ColorF) Color() Color {
	return Color{
		R: unorm8(c.R),
		G: unorm8(c.G),
		B: unorm8(c.B),
		A: unorm8(c.A),
	}
}

// Clamp returns c with every channel saturated to [0, 1].
func (c ColorF) Clamp() ColorF {
	return ColorF{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

func unorm8(v float32) uint8 {
	return uint8(math32.Round(clamp01(v) * 255))
}

// clamp01 saturates v to [0, 1]. NaN maps to 0.
func clamp01(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParseHex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa" (the leading
// '#' is optional). Short forms expand each digit, so "f" becomes 0xff.
func ParseHex(s string) (Color, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint8
	v[3] = 255

	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			d, ok := hexDigit(hex[i])
			if !ok {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// HSV creates an opaque color from hue in degrees and saturation and value
// in [0, 1]. Hue wraps around, so 360 and 0 are the same.
func HSV(h, s, v float32) ColorF {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	v = clamp01(v)

	c := v * s
	x := c * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float32
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return ColorF{R: r + m, G: g + m, B: b + m, A: 1}
}

// Common colors.
var (
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Red         = Color{R: 255, A: 255}
	Green       = Color{G: 255, A: 255}
	Blue        = Color{B: 255, A: 255}
	Transparent = Color{}
)
