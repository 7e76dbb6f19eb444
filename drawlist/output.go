package drawlist

import (
	"errors"
	"fmt"

	"github.com/gogpu/uidraw"
	"github.com/gogpu/uidraw/buffer"
)

// ErrInvalidOutput is returned by Convert when the output buffers cannot
// be written.
var ErrInvalidOutput = errors.New("drawlist: invalid output")

// MaxVertices is the number of vertices addressable by 16-bit indices.
const MaxVertices = 1 << 16

// Batch is a contiguous run of indices drawn with one clip rectangle and
// one texture.
type Batch struct {
	// ElementCount is the total number of indices emitted up to and
	// including this batch. The batch's own count is the difference to
	// the previous batch; see Ranges.
	ElementCount uint32
	Clip         uidraw.Rect
	Texture      uidraw.Handle
}

// Output groups the caller-owned buffers a frame is compiled into.
// Convert appends; the caller clears the buffers between frames.
type Output struct {
	Vertices buffer.Buffer[byte]
	Indices  buffer.Buffer[uint16]
	Batches  buffer.Buffer[Batch]
}

// NewOutput returns an Output backed by growable buffers.
func NewOutput() *Output {
	return &Output{
		Vertices: buffer.NewGrowable[byte](4096),
		Indices:  buffer.NewGrowable[uint16](1024),
		Batches:  buffer.NewGrowable[Batch](16),
	}
}

// NewFixedOutput returns an Output that writes into the given slices and
// fails with a capacity error instead of reallocating.
func NewFixedOutput(vertices []byte, indices []uint16, batches []Batch) *Output {
	return &Output{
		Vertices: buffer.NewFixed("vertices", vertices),
		Indices:  buffer.NewFixed("indices", indices),
		Batches:  buffer.NewFixed("batches", batches),
	}
}

// Clear empties all three buffers.
func (o *Output) Clear() {
	o.Vertices.Clear()
	o.Indices.Clear()
	o.Batches.Clear()
}

func (o *Output) check(stride int) error {
	if o == nil || o.Vertices == nil || o.Indices == nil || o.Batches == nil {
		return fmt.Errorf("%w: missing buffer", ErrInvalidOutput)
	}
	if n := o.Vertices.Len(); n%stride != 0 {
		return fmt.Errorf("%w: %d vertex bytes is not a multiple of stride %d", ErrInvalidOutput, n, stride)
	}
	return nil
}

// Range is the index range of one batch.
type Range struct {
	Offset, Count uint32
	Clip          uidraw.Rect
	Texture       uidraw.Handle
}

// Ranges converts cumulative batch counts into per-batch index ranges.
// Empty batches yield a range with Count 0; frontends skip them.
func Ranges(batches []Batch) []Range {
	ranges := make([]Range, len(batches))
	var prev uint32
	for i, b := range batches {
		ranges[i] = Range{
			Offset:  prev,
			Count:   b.ElementCount - prev,
			Clip:    b.Clip,
			Texture: b.Texture,
		}
		prev = b.ElementCount
	}
	return ranges
}
