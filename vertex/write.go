package vertex

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/uidraw"
)

// Write encodes one vertex into dst, which must hold at least Stride bytes.
// Bytes not covered by an element are left untouched.
func (l Layout) Write(dst []byte, pos, uv uidraw.Vec2, col uidraw.ColorF) {
	_ = dst[l.stride-1]
	for _, e := range l.elements {
		b := dst[e.Offset:]
		switch e.Attribute {
		case Position:
			putVec2(b, e.Format, pos)
		case TexCoord:
			putVec2(b, e.Format, uv)
		case Color:
			putColor(b, e.Format, col)
		}
	}
}

func putVec2(b []byte, f Format, v uidraw.Vec2) {
	n := putComponent(b, f, v.X)
	putComponent(b[n:], f, v.Y)
}

// putComponent writes v in format f and returns the number of bytes
// written. Integer formats clamp to the type range and truncate.
func putComponent(b []byte, f Format, v float32) int {
	switch f {
	case SChar:
		b[0] = byte(int8(clampF(v, math.MinInt8, math.MaxInt8)))
		return 1
	case UChar:
		b[0] = uint8(clampF(v, 0, math.MaxUint8))
		return 1
	case SShort:
		binary.LittleEndian.PutUint16(b, uint16(int16(clampF(v, math.MinInt16, math.MaxInt16))))
		return 2
	case UShort:
		binary.LittleEndian.PutUint16(b, uint16(clampF(v, 0, math.MaxUint16)))
		return 2
	case SInt:
		// float32 cannot represent MaxInt32; clamp in float64.
		binary.LittleEndian.PutUint32(b, uint32(int32(clampF64(float64(v), math.MinInt32, math.MaxInt32))))
		return 4
	case UInt:
		binary.LittleEndian.PutUint32(b, uint32(clampF64(float64(v), 0, math.MaxUint32)))
		return 4
	case Float:
		binary.LittleEndian.PutUint32(b, math.Float32bits(v))
		return 4
	case Double:
		binary.LittleEndian.PutUint64(b, math.Float64bits(float64(v)))
		return 8
	}
	panic(fmt.Sprintf("vertex: invalid numeric format %v", f))
}

func putColor(b []byte, f Format, col uidraw.ColorF) {
	col = col.Clamp()
	switch f {
	case R8G8B8:
		c := col.Color()
		b[0], b[1], b[2] = c.R, c.G, c.B
	case R8G8B8A8:
		c := col.Color()
		b[0], b[1], b[2], b[3] = c.R, c.G, c.B, c.A
	case B8G8R8A8:
		c := col.Color()
		b[0], b[1], b[2], b[3] = c.B, c.G, c.R, c.A
	case R16G16B16:
		putUnorm16(b, col.R, col.G, col.B)
	case R16G16B16A16:
		putUnorm16(b, col.R, col.G, col.B, col.A)
	case R32G32B32:
		putUnorm32(b, col.R, col.G, col.B)
	case R32G32B32A32:
		putUnorm32(b, col.R, col.G, col.B, col.A)
	case R32G32B32A32Float:
		for i, v := range [4]float32{col.R, col.G, col.B, col.A} {
			binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
		}
	case R32G32B32A32Double:
		for i, v := range [4]float32{col.R, col.G, col.B, col.A} {
			binary.LittleEndian.PutUint64(b[8*i:], math.Float64bits(float64(v)))
		}
	case RGB32:
		c := col.Color()
		binary.LittleEndian.PutUint32(b, packRGBA(c.R, c.G, c.B, 0xff))
	case RGBA32:
		c := col.Color()
		binary.LittleEndian.PutUint32(b, packRGBA(c.R, c.G, c.B, c.A))
	default:
		panic(fmt.Sprintf("vertex: invalid color format %v", f))
	}
}

func putUnorm16(b []byte, vs ...float32) {
	for i, v := range vs {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(math.Round(float64(v)*math.MaxUint16)))
	}
}

func putUnorm32(b []byte, vs ...float32) {
	for i, v := range vs {
		binary.LittleEndian.PutUint32(b[4*i:], uint32(math.Round(float64(v)*math.MaxUint32)))
	}
}

func packRGBA(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// clampF saturates v to [lo, hi]. NaN maps to lo.
func clampF(v, lo, hi float32) float32 {
	if !(v > lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF64(v, lo, hi float64) float64 {
	if !(v > lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
