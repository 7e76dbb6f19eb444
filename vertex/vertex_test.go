package vertex

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/uidraw"
)

func TestFormatString(t *testing.T) {
	assert.Equal(t, "Float", Float.String())
	assert.Equal(t, "B8G8R8A8", B8G8R8A8.String())
	assert.Equal(t, "Unknown", colorBegin.String())
	assert.Equal(t, "Unknown", Format(200).String())
	assert.Equal(t, "TexCoord", TexCoord.String())
	assert.Equal(t, "Unknown", Attribute(9).String())
}

func TestFormatClassification(t *testing.T) {
	for f := SChar; f < colorBegin; f++ {
		assert.False(t, f.IsColor(), "%v", f)
		assert.True(t, f.Valid(), "%v", f)
		assert.Equal(t, 2*f.ComponentSize(), f.Size(), "%v", f)
	}
	for f := R8G8B8; f < formatCount; f++ {
		assert.True(t, f.IsColor(), "%v", f)
		assert.True(t, f.Valid(), "%v", f)
		assert.Positive(t, f.Size(), "%v", f)
	}
	assert.False(t, colorBegin.Valid())
	assert.False(t, formatCount.Valid())
}

func TestColorFormatsFollowSentinel(t *testing.T) {
	assert.Equal(t, colorBegin+1, R8G8B8)
	assert.True(t, R8G8B8.Valid())
	assert.True(t, R8G8B8.IsColor())
	assert.Equal(t, "R8G8B8", R8G8B8.String())

	l, err := NewLayout(3, Element{Color, R8G8B8, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, l.Stride())

	seen := map[Format]bool{}
	for f := R8G8B8; f < formatCount; f++ {
		assert.NotEqual(t, colorBegin, f)
		assert.False(t, seen[f], "%v", f)
		seen[f] = true
	}
	assert.Len(t, seen, 11)
}

func TestNewLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		stride int
		elems  []Element
	}{
		{"zero stride", 0, []Element{{Position, Float, 0}}},
		{"no elements", 16, nil},
		{"color format on position", 16, []Element{{Position, R8G8B8A8, 0}}},
		{"numeric format on color", 16, []Element{{Color, Float, 0}}},
		{"unknown format", 16, []Element{{Position, Format(99), 0}}},
		{"unknown attribute", 16, []Element{{Attribute(7), Float, 0}}},
		{"exceeds stride", 12, []Element{{Position, Float, 0}, {TexCoord, Float, 8}}},
		{"negative offset", 16, []Element{{Position, Float, -1}}},
		{"overlap", 24, []Element{{Position, Float, 0}, {TexCoord, Float, 4}}},
		{"duplicate attribute", 24, []Element{{Position, Float, 0}, {Position, Float, 8}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLayout(tt.stride, tt.elems...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLayout))
			var le *LayoutError
			assert.True(t, errors.As(err, &le))
		})
	}
}

func TestNewLayoutCopiesElements(t *testing.T) {
	elems := []Element{{Position, Float, 0}, {Color, R8G8B8A8, 8}}
	l, err := NewLayout(12, elems...)
	require.NoError(t, err)
	elems[0].Offset = 4
	e, ok := l.Element(Position)
	require.True(t, ok)
	assert.Equal(t, 0, e.Offset)
	assert.Equal(t, 12, l.Stride())
	_, ok = l.Element(TexCoord)
	assert.False(t, ok)
}

func TestRGBA8RoundTrip(t *testing.T) {
	l := MustLayout(4, Element{Color, R8G8B8A8, 0})
	buf := make([]byte, 4)
	l.Write(buf, uidraw.Vec2{}, uidraw.Vec2{}, uidraw.ColorF{R: 1, G: 0.5, B: 0, A: 1})

	assert.Equal(t, []byte{255, 128, 0, 255}, buf)
	c, ok := l.ReadColor(buf)
	require.True(t, ok)
	assert.Equal(t, uidraw.Color{R: 255, G: 128, B: 0, A: 255}, c.Color())
}

func TestNumericRoundTrip(t *testing.T) {
	pos := uidraw.V2(1.7, -3.2)
	uv := uidraw.V2(300.9, -70000)

	tests := []struct {
		f       Format
		pos, uv uidraw.Vec2
	}{
		{SChar, uidraw.V2(1, -3), uidraw.V2(127, -128)},
		{UChar, uidraw.V2(1, 0), uidraw.V2(255, 0)},
		{SShort, uidraw.V2(1, -3), uidraw.V2(300, -32768)},
		{UShort, uidraw.V2(1, 0), uidraw.V2(300, 0)},
		{SInt, uidraw.V2(1, -3), uidraw.V2(300, -70000)},
		{UInt, uidraw.V2(1, 0), uidraw.V2(300, 0)},
		{Float, pos, uv},
		{Double, pos, uv},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			size := tt.f.Size()
			l := MustLayout(2*size, Element{Position, tt.f, 0}, Element{TexCoord, tt.f, size})
			buf := make([]byte, l.Stride())
			l.Write(buf, pos, uv, uidraw.ColorF{})

			v := l.Read(buf)
			assert.Equal(t, tt.pos, v.Pos)
			assert.Equal(t, tt.uv, v.UV)

			p, ok := l.ReadElement(buf, Position)
			require.True(t, ok)
			assert.Equal(t, tt.pos, p)
		})
	}
}

func TestNumericCursorPacksComponents(t *testing.T) {
	l := MustLayout(4, Element{Position, SShort, 0})
	buf := make([]byte, 4)
	l.Write(buf, uidraw.V2(1, 2), uidraw.Vec2{}, uidraw.ColorF{})
	assert.Equal(t, []byte{1, 0, 2, 0}, buf)
}

func TestLargeIntegerClamp(t *testing.T) {
	l := MustLayout(16, Element{Position, SInt, 0}, Element{TexCoord, UInt, 8})
	buf := make([]byte, 16)
	l.Write(buf, uidraw.V2(1e20, -1e20), uidraw.V2(1e20, -1), uidraw.ColorF{})

	assert.Equal(t, uint32(math.MaxInt32), binary.LittleEndian.Uint32(buf[0:]))
	assert.Equal(t, uint32(0x80000000), binary.LittleEndian.Uint32(buf[4:]))
	assert.Equal(t, uint32(math.MaxUint32), binary.LittleEndian.Uint32(buf[8:]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[12:]))
}

func TestColorRoundTrip(t *testing.T) {
	in := uidraw.ColorF{R: 1, G: 0.5, B: 0, A: 0.25}
	half8 := float32(128) / 255
	quarter8 := float32(64) / 255
	half16 := float32(float64(32768) / math.MaxUint16)
	quarter16 := float32(float64(16384) / math.MaxUint16)
	half32 := float32(float64(2147483648) / math.MaxUint32)
	quarter32 := float32(float64(1073741824) / math.MaxUint32)

	tests := []struct {
		f    Format
		want uidraw.ColorF
	}{
		{R8G8B8, uidraw.ColorF{R: 1, G: half8, B: 0, A: 1}},
		{R8G8B8A8, uidraw.ColorF{R: 1, G: half8, B: 0, A: quarter8}},
		{B8G8R8A8, uidraw.ColorF{R: 1, G: half8, B: 0, A: quarter8}},
		{R16G16B16, uidraw.ColorF{R: 1, G: half16, B: 0, A: 1}},
		{R16G16B16A16, uidraw.ColorF{R: 1, G: half16, B: 0, A: quarter16}},
		{R32G32B32, uidraw.ColorF{R: 1, G: half32, B: 0, A: 1}},
		{R32G32B32A32, uidraw.ColorF{R: 1, G: half32, B: 0, A: quarter32}},
		{R32G32B32A32Float, in},
		{R32G32B32A32Double, in},
		{RGB32, uidraw.ColorF{R: 1, G: half8, B: 0, A: 1}},
		{RGBA32, uidraw.ColorF{R: 1, G: half8, B: 0, A: quarter8}},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			l := MustLayout(tt.f.Size(), Element{Color, tt.f, 0})
			buf := make([]byte, l.Stride())
			l.Write(buf, uidraw.Vec2{}, uidraw.Vec2{}, in)

			got, ok := l.ReadColor(buf)
			require.True(t, ok)
			assert.InDelta(t, tt.want.R, got.R, 1e-7)
			assert.InDelta(t, tt.want.G, got.G, 1e-7)
			assert.InDelta(t, tt.want.B, got.B, 1e-7)
			assert.InDelta(t, tt.want.A, got.A, 1e-7)
		})
	}
}

func TestColorByteOrder(t *testing.T) {
	col := uidraw.ColorF{R: 1, G: 0.5, B: 0, A: 0.25}
	tests := []struct {
		f    Format
		want []byte
	}{
		{R8G8B8, []byte{255, 128, 0}},
		{B8G8R8A8, []byte{0, 128, 255, 64}},
		{RGB32, []byte{255, 128, 0, 255}},
		{RGBA32, []byte{255, 128, 0, 64}},
		{R16G16B16, []byte{0xff, 0xff, 0x00, 0x80, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			l := MustLayout(len(tt.want), Element{Color, tt.f, 0})
			buf := make([]byte, len(tt.want))
			l.Write(buf, uidraw.Vec2{}, uidraw.Vec2{}, col)
			assert.Equal(t, tt.want, buf)
		})
	}
}

func TestColorSaturates(t *testing.T) {
	l := MustLayout(16, Element{Color, R32G32B32A32Float, 0})
	buf := make([]byte, 16)
	l.Write(buf, uidraw.Vec2{}, uidraw.Vec2{}, uidraw.ColorF{R: 2, G: -1, B: 0.5, A: 1})
	c, _ := l.ReadColor(buf)
	assert.Equal(t, uidraw.ColorF{R: 1, G: 0, B: 0.5, A: 1}, c)
}

func TestWriteLeavesGapsUntouched(t *testing.T) {
	l := MustLayout(16, Element{Position, Float, 0}, Element{Color, R8G8B8A8, 12})
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 0xaa}
	l.Write(buf, uidraw.V2(0, 0), uidraw.V2(5, 5), uidraw.ColorF{R: 1, A: 1})
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 9, 9, 9, 9, 255, 0, 0, 255, 0xaa}, buf)
}

func TestReadMissingAttributes(t *testing.T) {
	l := MustLayout(8, Element{Position, Float, 0})
	buf := make([]byte, 8)
	l.Write(buf, uidraw.V2(3, 4), uidraw.V2(1, 1), uidraw.ColorF{})

	v := l.Read(buf)
	assert.Equal(t, uidraw.V2(3, 4), v.Pos)
	assert.Equal(t, uidraw.Vec2{}, v.UV)
	assert.Equal(t, uidraw.ColorF{R: 1, G: 1, B: 1, A: 1}, v.Color)

	_, ok := l.ReadColor(buf)
	assert.False(t, ok)
	_, ok = l.ReadElement(buf, Color)
	assert.False(t, ok)
}

func TestInvalidFormatPanics(t *testing.T) {
	b := make([]byte, 32)
	assert.PanicsWithValue(t, "vertex: invalid color format Float", func() {
		putColor(b, Float, uidraw.ColorF{})
	})
	assert.PanicsWithValue(t, "vertex: invalid numeric format R8G8B8A8", func() {
		putComponent(b, R8G8B8A8, 0)
	})
	assert.Panics(t, func() { getColor(b, Format(99)) })
}

func TestLayoutGPU(t *testing.T) {
	l, ok := Lookup(PTCFloat)
	require.True(t, ok)

	g, err := l.GPU()
	require.NoError(t, err)
	assert.Equal(t, uint64(32), g.ArrayStride)
	assert.Equal(t, gputypes.VertexStepModeVertex, g.StepMode)
	require.Len(t, g.Attributes, 3)
	assert.Equal(t, gputypes.VertexAttribute{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, g.Attributes[0])
	assert.Equal(t, gputypes.VertexAttribute{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, g.Attributes[1])
	assert.Equal(t, gputypes.VertexAttribute{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2}, g.Attributes[2])

	l, _ = Lookup(PTCRGBA8)
	g, err = l.GPU()
	require.NoError(t, err)
	assert.Equal(t, uint64(20), g.ArrayStride)
	assert.Equal(t, gputypes.VertexFormatUnorm8x4, g.Attributes[2].Format)

	assert.Equal(t, gputypes.IndexFormatUint16, IndexFormat)
	assert.Equal(t, gputypes.PrimitiveTopologyTriangleList, Topology)
}

func TestLayoutGPUUnsupported(t *testing.T) {
	for _, f := range []Format{R8G8B8, R16G16B16, R32G32B32A32Double} {
		l := MustLayout(f.Size(), Element{Color, f, 0})
		_, err := l.GPU()
		assert.True(t, errors.Is(err, ErrNoGPUFormat), "%v", f)
	}
	l := MustLayout(16, Element{Position, Double, 0})
	_, err := l.GPU()
	assert.True(t, errors.Is(err, ErrNoGPUFormat))
}
