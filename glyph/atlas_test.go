package glyph

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/uidraw"
)

func TestBasicAtlas(t *testing.T) {
	a, err := Basic(uidraw.HandleID(2))
	require.NoError(t, err)

	assert.Equal(t, uidraw.HandleID(2), a.Texture())
	assert.Equal(t, float32(13), a.LineHeight())
	assert.GreaterOrEqual(t, a.Len(), 95)

	g, ok := a.Glyph(13, 'A')
	require.True(t, ok)
	assert.Equal(t, float32(7), g.Advance)
	assert.Equal(t, float32(13), g.Height)
	assert.Equal(t, float32(11), g.Offset.Y)
	assert.Greater(t, g.Width, float32(0))
}

func TestAtlasWhiteTexel(t *testing.T) {
	a, err := Basic(uidraw.HandleID(1))
	require.NoError(t, err)

	img := a.Image()
	size := img.Bounds().Size()
	null := a.NullTexture()
	assert.Equal(t, uidraw.HandleID(1), null.Texture)

	x := int(null.UV.X * float32(size.X))
	y := int(null.UV.Y * float32(size.Y))
	assert.Equal(t, image.Pt(0, 0), image.Pt(x, y))
	assert.Equal(t, uint8(0xff), img.AlphaAt(x, y).A)
}

func TestAtlasGlyphPixels(t *testing.T) {
	a, err := Basic(uidraw.HandleID(1))
	require.NoError(t, err)

	g, ok := a.Glyph(13, 'M')
	require.True(t, ok)

	img := a.Image()
	size := img.Bounds().Size()
	r := image.Rect(
		int(g.UV0.X*float32(size.X)+0.5), int(g.UV0.Y*float32(size.Y)+0.5),
		int(g.UV1.X*float32(size.X)+0.5), int(g.UV1.Y*float32(size.Y)+0.5))
	require.False(t, r.Empty())

	var coverage int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			coverage += int(img.AlphaAt(x, y).A)
		}
	}
	assert.Positive(t, coverage)
}

func TestAtlasScaling(t *testing.T) {
	a, err := Basic(uidraw.HandleID(1))
	require.NoError(t, err)

	m := a.Metrics(26)
	assert.Equal(t, float32(26), m.Height)
	assert.Equal(t, float32(22), m.Ascender)
	assert.Equal(t, float32(-4), m.Descender)

	base, ok := a.Glyph(13, 'x')
	require.True(t, ok)
	big, ok := a.Glyph(26, 'x')
	require.True(t, ok)
	assert.Equal(t, 2*base.Advance, big.Advance)
	assert.Equal(t, 2*base.Height, big.Height)
	assert.Equal(t, base.UV0, big.UV0, "scaling reuses the baked texels")

	again, ok := a.Glyph(26, 'x')
	require.True(t, ok)
	assert.Equal(t, big, again)
}

func TestAtlasMissingRune(t *testing.T) {
	a, err := Basic(uidraw.HandleID(1), WithRunes('a', 'b'))
	require.NoError(t, err)
	assert.Equal(t, 2, a.Len())

	_, ok := a.Glyph(13, 'z')
	assert.False(t, ok)
	_, ok = a.Glyph(13, 'z')
	assert.False(t, ok, "cached miss")

	assert.Equal(t, float32(14), uidraw.TextWidth(a, 13, "abz"))
}

func TestAtlasFull(t *testing.T) {
	_, err := Basic(uidraw.HandleID(1), WithWidth(4))
	assert.ErrorIs(t, err, ErrAtlasFull)
}

func TestNewAtlasNilFace(t *testing.T) {
	_, err := NewAtlas(nil)
	assert.Error(t, err)
}

func TestDefaultAtlas(t *testing.T) {
	a, err := Default(uidraw.HandleID(3))
	require.NoError(t, err)
	assert.Equal(t, uidraw.HandleID(3), a.Texture())

	for r := 'A'; r <= 'z'; r++ {
		if r > 'Z' && r < 'a' {
			continue
		}
		g, ok := a.Glyph(DefaultSize, r)
		require.True(t, ok, "rune %q", r)
		assert.Positive(t, g.Advance, "rune %q", r)
		assert.Positive(t, g.Width, "rune %q", r)
	}

	space, ok := a.Glyph(DefaultSize, ' ')
	require.True(t, ok)
	assert.Positive(t, space.Advance)
}

func TestFromTTFInvalid(t *testing.T) {
	_, err := FromTTF([]byte("not a font"), 12)
	assert.Error(t, err)
}

func TestDefaultRunes(t *testing.T) {
	rs := DefaultRunes()
	assert.Len(t, rs, 95+96)
	assert.Equal(t, ' ', rs[0])
	assert.Equal(t, rune(0xff), rs[len(rs)-1])
}
