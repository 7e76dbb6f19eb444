package uidraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	r := R(0, 0, 10, 10)
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"overlap", R(5, 5, 10, 10), true},
		{"inside", R(2, 2, 2, 2), true},
		{"contains", R(-5, -5, 30, 30), true},
		{"touching right edge", R(10, 0, 5, 5), true},
		{"touching bottom edge", R(0, 10, 5, 5), true},
		{"right", R(11, 0, 5, 5), false},
		{"left", R(-6, 0, 5, 5), false},
		{"below", R(0, 11, 5, 5), false},
		{"above", R(0, -6, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Intersects(tt.o))
			assert.Equal(t, tt.want, tt.o.Intersects(r), "symmetric")
		})
	}
}

func TestRectContainsPointInclusive(t *testing.T) {
	r := R(0, 0, 10, 10)
	for _, p := range []Vec2{V2(0, 0), V2(10, 10), V2(0, 10), V2(10, 0), V2(5, 5)} {
		assert.True(t, r.ContainsPoint(p), "%v", p)
	}
	for _, p := range []Vec2{V2(-0.01, 5), V2(10.01, 5), V2(5, -0.01), V2(5, 10.01)} {
		assert.False(t, r.ContainsPoint(p), "%v", p)
	}
}

func TestNullRectCoversScreen(t *testing.T) {
	assert.True(t, NullRect.Intersects(R(0, 0, 4096, 4096)))
	assert.True(t, NullRect.ContainsPoint(V2(-8192, 8192)))
}

func TestBounds(t *testing.T) {
	assert.Equal(t, Rect{}, Bounds())
	assert.Equal(t, R(-1, 2, 4, 6), Bounds(V2(3, 2), V2(-1, 8), V2(0, 5)))
}

func TestHandleEquality(t *testing.T) {
	assert.Equal(t, HandleID(7), HandleID(7))
	assert.NotEqual(t, HandleID(7), HandleID(8))
	assert.NotEqual(t, HandleID(7), HandlePtr(7), "kinds differ")
	assert.True(t, Handle{}.IsZero())

	id, ok := HandleID(42).ID()
	assert.True(t, ok)
	assert.Equal(t, uint32(42), id)
	_, ok = HandleID(42).Ptr()
	assert.False(t, ok)
	assert.Equal(t, "ptr:0x10", HandlePtr(16).String())
}

func TestImageIsSubimage(t *testing.T) {
	h := HandleID(1)
	assert.False(t, ImageHandle(h).IsSubimage())
	assert.True(t, SubImage(h, 64, 32, [4]uint16{0, 0, 16, 16}).IsSubimage())
	assert.False(t, Image{Handle: h, W: 64}.IsSubimage())
}
