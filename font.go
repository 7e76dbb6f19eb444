package uidraw

// FontMetrics holds the vertical metrics of a font at one pixel height.
type FontMetrics struct {
	Height    float32
	Ascender  float32
	Descender float32
}

// Glyph describes one code point in a font texture. UV0 and UV1 are the
// top-left and bottom-right texture coordinates. Offset.X is the distance
// from the pen to the left edge of the quad, Offset.Y the distance from
// the baseline up to its top edge.
type Glyph struct {
	UV0, UV1      Vec2
	Offset        Vec2
	Width, Height float32
	Advance       float32
}

// Font provides glyph metadata for text emission. Implementations own
// the texture; uidraw only reads metrics and forwards the handle.
type Font interface {
	// Texture returns the texture holding the rasterized glyphs.
	Texture() Handle

	// Metrics returns vertical metrics scaled to height pixels.
	Metrics(height float32) FontMetrics

	// Glyph returns glyph metadata scaled to height pixels.
	// ok is false when the font has no glyph for r.
	Glyph(height float32, r rune) (g Glyph, ok bool)
}

// TextWidth returns the summed advance of s at the given height.
// Code points without a glyph contribute nothing.
func TextWidth(f Font, height float32, s string) float32 {
	var w float32
	for _, r := range s {
		if g, ok := f.Glyph(height, r); ok {
			w += g.Advance
		}
	}
	return w
}
