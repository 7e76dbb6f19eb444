package vertex

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/uidraw"
)

// Vertex is a decoded vertex.
type Vertex struct {
	Pos   uidraw.Vec2
	UV    uidraw.Vec2
	Color uidraw.ColorF
}

// Read decodes one vertex from src. Attributes missing from the layout
// decode as zero, except Color which decodes as opaque white.
// The result is the quantized value that was stored, not the value
// originally passed to Write.
func (l Layout) Read(src []byte) Vertex {
	v := Vertex{Color: uidraw.ColorF{R: 1, G: 1, B: 1, A: 1}}
	for _, e := range l.elements {
		b := src[e.Offset:]
		switch e.Attribute {
		case Position:
			v.Pos = getVec2(b, e.Format)
		case TexCoord:
			v.UV = getVec2(b, e.Format)
		case Color:
			v.Color = getColor(b, e.Format)
		}
	}
	return v
}

// ReadElement decodes the Position or TexCoord element of the vertex in
// src. ok is false if the layout has no such element.
func (l Layout) ReadElement(src []byte, a Attribute) (v uidraw.Vec2, ok bool) {
	if a == Color {
		return uidraw.Vec2{}, false
	}
	e, ok := l.Element(a)
	if !ok {
		return uidraw.Vec2{}, false
	}
	return getVec2(src[e.Offset:], e.Format), true
}

// ReadColor decodes the Color element of the vertex in src.
// ok is false if the layout has no color.
func (l Layout) ReadColor(src []byte) (c uidraw.ColorF, ok bool) {
	e, ok := l.Element(Color)
	if !ok {
		return uidraw.ColorF{}, false
	}
	return getColor(src[e.Offset:], e.Format), true
}

func getVec2(b []byte, f Format) uidraw.Vec2 {
	x, n := getComponent(b, f)
	y, _ := getComponent(b[n:], f)
	return uidraw.Vec2{X: x, Y: y}
}

func getComponent(b []byte, f Format) (float32, int) {
	switch f {
	case SChar:
		return float32(int8(b[0])), 1
	case UChar:
		return float32(b[0]), 1
	case SShort:
		return float32(int16(binary.LittleEndian.Uint16(b))), 2
	case UShort:
		return float32(binary.LittleEndian.Uint16(b)), 2
	case SInt:
		return float32(int32(binary.LittleEndian.Uint32(b))), 4
	case UInt:
		return float32(binary.LittleEndian.Uint32(b)), 4
	case Float:
		return math.Float32frombits(binary.LittleEndian.Uint32(b)), 4
	case Double:
		return float32(math.Float64frombits(binary.LittleEndian.Uint64(b))), 8
	}
	panic(fmt.Sprintf("vertex: invalid numeric format %v", f))
}

func getColor(b []byte, f Format) uidraw.ColorF {
	switch f {
	case R8G8B8:
		return uidraw.Color{R: b[0], G: b[1], B: b[2], A: 0xff}.Float()
	case R8G8B8A8:
		return uidraw.Color{R: b[0], G: b[1], B: b[2], A: b[3]}.Float()
	case B8G8R8A8:
		return uidraw.Color{R: b[2], G: b[1], B: b[0], A: b[3]}.Float()
	case R16G16B16, R16G16B16A16:
		c := uidraw.ColorF{A: 1}
		ch := []*float32{&c.R, &c.G, &c.B, &c.A}[:f.Size()/2]
		for i, p := range ch {
			*p = float32(float64(binary.LittleEndian.Uint16(b[2*i:])) / math.MaxUint16)
		}
		return c
	case R32G32B32, R32G32B32A32:
		c := uidraw.ColorF{A: 1}
		ch := []*float32{&c.R, &c.G, &c.B, &c.A}[:f.Size()/4]
		for i, p := range ch {
			*p = float32(float64(binary.LittleEndian.Uint32(b[4*i:])) / math.MaxUint32)
		}
		return c
	case R32G32B32A32Float:
		var v [4]float32
		for i := range v {
			v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
		}
		return uidraw.ColorF{R: v[0], G: v[1], B: v[2], A: v[3]}
	case R32G32B32A32Double:
		var v [4]float32
		for i := range v {
			v[i] = float32(math.Float64frombits(binary.LittleEndian.Uint64(b[8*i:])))
		}
		return uidraw.ColorF{R: v[0], G: v[1], B: v[2], A: v[3]}
	case RGB32, RGBA32:
		p := binary.LittleEndian.Uint32(b)
		c := uidraw.Color{R: uint8(p), G: uint8(p >> 8), B: uint8(p >> 16), A: uint8(p >> 24)}
		return c.Float()
	}
	panic(fmt.Sprintf("vertex: invalid color format %v", f))
}
