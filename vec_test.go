package uidraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a, b := V2(3, 4), V2(1, -2)
	assert.Equal(t, V2(4, 2), a.Add(b))
	assert.Equal(t, V2(2, 6), a.Sub(b))
	assert.Equal(t, V2(1.5, 2), a.Scale(0.5))
	assert.InDelta(t, 5, a.Len(), 1e-6)
}

func TestVec2Normalize(t *testing.T) {
	n := V2(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.8, n.Y, 1e-6)
	assert.InDelta(t, 1, n.Len(), 1e-6)
}

func TestVec2NormalizeZero(t *testing.T) {
	var z Vec2
	assert.Equal(t, z, z.Normalize())
}

func TestVec2iFloat(t *testing.T) {
	assert.Equal(t, V2(-3, 7), Vec2i{X: -3, Y: 7}.Float())
}
