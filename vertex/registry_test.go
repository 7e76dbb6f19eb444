package vertex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLayouts(t *testing.T) {
	names := Names()
	assert.Contains(t, names, PTCFloat)
	assert.Contains(t, names, PTCRGBA8)

	l, ok := Lookup(PTCRGBA8)
	require.True(t, ok)
	assert.Equal(t, 20, l.Stride())
	e, ok := l.Element(Color)
	require.True(t, ok)
	assert.Equal(t, Element{Attribute: Color, Format: R8G8B8A8, Offset: 16}, e)
}

func TestRegisterAndLookup(t *testing.T) {
	const name = "test-pos-only"
	t.Cleanup(func() { Unregister(name) })

	l := MustLayout(8, Element{Position, Float, 0})
	Register(name, l)

	got, ok := Lookup(name)
	require.True(t, ok)
	assert.Equal(t, l, got)

	_, ok = Lookup("does-not-exist")
	assert.False(t, ok)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.PanicsWithValue(t, "vertex: Register called twice for layout "+PTCFloat, func() {
		Register(PTCFloat, MustLayout(8, Element{Position, Float, 0}))
	})
}

func TestRegisterZeroPanics(t *testing.T) {
	assert.Panics(t, func() { Register("zero", Layout{}) })
}

func TestNamesSorted(t *testing.T) {
	t.Cleanup(func() {
		Unregister("a-first")
		Unregister("z-last")
	})
	Register("z-last", MustLayout(8, Element{Position, Float, 0}))
	Register("a-first", MustLayout(8, Element{Position, Float, 0}))

	names := Names()
	assert.IsNonDecreasing(t, names)
	assert.Equal(t, "a-first", names[0])
}
