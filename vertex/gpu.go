package vertex

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// ErrNoGPUFormat is returned by Layout.GPU for formats WebGPU cannot
// consume as a vertex attribute.
var ErrNoGPUFormat = errors.New("vertex: format has no GPU vertex format")

var (
	// IndexFormat is the index format of every compiled frame.
	IndexFormat = gputypes.IndexFormatUint16

	// Topology is the primitive topology of every compiled frame.
	Topology = gputypes.PrimitiveTopologyTriangleList
)

// ShaderLocation returns the shader location assigned to attribute a by
// Layout.GPU: position 0, texcoord 1, color 2.
func ShaderLocation(a Attribute) uint32 {
	return uint32(a)
}

// GPU returns the WebGPU vertex buffer layout matching l, so a pipeline
// can be built from the same descriptor the compiler writes with.
//
// Numeric formats map to their 2-component GPU format. 8- and 16-bit
// color channels map to unorm formats; 32-bit integer channels map to
// uint32 formats and must be normalized in the shader. Three-channel 8-
// and 16-bit colors and double precision data return ErrNoGPUFormat.
func (l Layout) GPU() (gputypes.VertexBufferLayout, error) {
	attrs := make([]gputypes.VertexAttribute, 0, len(l.elements))
	for _, e := range l.elements {
		f, ok := gpuFormat(e.Format)
		if !ok {
			return gputypes.VertexBufferLayout{}, fmt.Errorf("%w: %v %v", ErrNoGPUFormat, e.Attribute, e.Format)
		}
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         f,
			Offset:         uint64(e.Offset),
			ShaderLocation: ShaderLocation(e.Attribute),
		})
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: uint64(l.stride),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}, nil
}

func gpuFormat(f Format) (vf gputypes.VertexFormat, ok bool) {
	switch f {
	case SChar:
		return gputypes.VertexFormatSint8x2, true
	case UChar:
		return gputypes.VertexFormatUint8x2, true
	case SShort:
		return gputypes.VertexFormatSint16x2, true
	case UShort:
		return gputypes.VertexFormatUint16x2, true
	case SInt:
		return gputypes.VertexFormatSint32x2, true
	case UInt:
		return gputypes.VertexFormatUint32x2, true
	case Float:
		return gputypes.VertexFormatFloat32x2, true
	case R8G8B8A8, RGB32, RGBA32:
		// Packed RGBA32 stores R in the low byte, the same bytes as R8G8B8A8.
		return gputypes.VertexFormatUnorm8x4, true
	case R16G16B16A16:
		return gputypes.VertexFormatUnorm16x4, true
	case R32G32B32:
		return gputypes.VertexFormatUint32x3, true
	case R32G32B32A32:
		return gputypes.VertexFormatUint32x4, true
	case R32G32B32A32Float:
		return gputypes.VertexFormatFloat32x4, true
	}
	return vf, false
}
