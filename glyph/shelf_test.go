package glyph

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShelfPacker(t *testing.T) {
	p := newShelfPacker(20, 20, 1)

	var placed []image.Rectangle
	for i := 0; i < 6; i++ {
		pos, ok := p.alloc(5, 4)
		require.True(t, ok, "alloc %d", i)
		r := image.Rectangle{Min: pos, Max: pos.Add(image.Pt(5, 4))}
		for j, o := range placed {
			assert.False(t, r.Overlaps(o), "rect %d %v overlaps rect %d %v", i, r, j, o)
		}
		assert.True(t, r.In(image.Rect(0, 0, 20, 20)), "rect %d %v outside packer", i, r)
		placed = append(placed, r)
	}

	// Three 6-wide cells fit per 20-wide shelf.
	assert.Equal(t, image.Pt(0, 5), placed[3].Min)
	assert.Equal(t, 10, p.used())
}

func TestShelfPackerFull(t *testing.T) {
	p := newShelfPacker(10, 10, 0)
	_, ok := p.alloc(11, 1)
	assert.False(t, ok, "wider than packer")
	_, ok = p.alloc(10, 10)
	require.True(t, ok, "exact fit")
	_, ok = p.alloc(1, 1)
	assert.False(t, ok, "packer full")
}

func TestShelfPackerGrowsLastShelf(t *testing.T) {
	p := newShelfPacker(10, 10, 0)
	p.alloc(2, 2)
	pos, ok := p.alloc(2, 5)
	require.True(t, ok)
	assert.Equal(t, image.Pt(2, 0), pos)
	assert.Equal(t, 5, p.used())
}
