package uidraw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFloatRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := Color{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2), A: uint8(v)}
		assert.Equal(t, c, c.Float().Color(), "channel value %d", v)
	}
}

func TestColorFRounding(t *testing.T) {
	tests := []struct {
		name string
		in   ColorF
		want Color
	}{
		{"half rounds up", ColorF{R: 1, G: 0.5, B: 0, A: 1}, Color{R: 255, G: 128, B: 0, A: 255}},
		{"saturates high", ColorF{R: 2, G: 1.5, B: 1.0001, A: 10}, Color{R: 255, G: 255, B: 255, A: 255}},
		{"saturates low", ColorF{R: -1, G: -0.1, B: 0, A: -5}, Color{}},
		{"quarter", ColorF{R: 0.25, G: 0.75, B: 0.2, A: 0.8}, Color{R: 64, G: 191, B: 51, A: 204}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Color())
		})
	}
}

func TestColorScaleAlpha(t *testing.T) {
	c := RGBA(10, 20, 30, 200)
	assert.Equal(t, RGBA(10, 20, 30, 100), c.ScaleAlpha(0.5))
	assert.Equal(t, c, c.ScaleAlpha(1))
	assert.Equal(t, uint8(0), c.ScaleAlpha(0).A)
	assert.Equal(t, c, c.ScaleAlpha(3), "factor is clamped to 1")
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff8000", Color{R: 255, G: 128, B: 0, A: 255}},
		{"FF800080", Color{R: 255, G: 128, B: 0, A: 128}},
		{"#f80", Color{R: 255, G: 136, B: 0, A: 255}},
		{"#f808", Color{R: 255, G: 136, B: 0, A: 136}},
		{"#000", Black},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#ggg", "#12345z"} {
		_, err := ParseHex(in)
		assert.True(t, errors.Is(err, ErrInvalidHex), "ParseHex(%q) error = %v", in, err)
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		h, s, v float32
		want    Color
	}{
		{0, 1, 1, Red},
		{120, 1, 1, Green},
		{240, 1, 1, Blue},
		{360, 1, 1, Red},
		{-120, 1, 1, Blue},
		{0, 0, 1, White},
		{200, 0, 0, Black},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HSV(tt.h, tt.s, tt.v).Color(), "HSV(%v, %v, %v)", tt.h, tt.s, tt.v)
	}
}
