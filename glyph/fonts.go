package glyph

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/uidraw"
)

// DefaultSize is the pixel size Default bakes Go Regular at.
const DefaultSize = 16

// Default returns an atlas of the Go Regular font at DefaultSize.
func Default(h uidraw.Handle, opts ...Option) (*Atlas, error) {
	return FromTTF(goregular.TTF, DefaultSize, append([]Option{WithHandle(h)}, opts...)...)
}

// FromTTF parses an OpenType or TrueType font and bakes it at size pixels.
func FromTTF(data []byte, size float64, opts ...Option) (*Atlas, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()
	return NewAtlas(face, opts...)
}

// Basic returns an atlas of the 7x13 bitmap font. It needs no parsing
// and is useful for tests and debug overlays.
func Basic(h uidraw.Handle, opts ...Option) (*Atlas, error) {
	return NewAtlas(basicfont.Face7x13, append([]Option{WithHandle(h)}, opts...)...)
}
