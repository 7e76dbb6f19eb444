// Package vertex serializes vertices into arbitrarily laid out,
// stride-addressed byte buffers.
//
// A [Layout] lists which attributes a vertex carries (position, texture
// coordinate, color), the encoding of each and its byte offset. The geometry
// compiler writes every vertex through [Layout.Write], so it never depends
// on a particular GPU vertex struct:
//
//	l, err := vertex.NewLayout(20,
//	    vertex.Element{Attribute: vertex.Position, Format: vertex.Float, Offset: 0},
//	    vertex.Element{Attribute: vertex.TexCoord, Format: vertex.Float, Offset: 8},
//	    vertex.Element{Attribute: vertex.Color, Format: vertex.R8G8B8A8, Offset: 16},
//	)
//
// Every write is exact for its destination format: integer components are
// clamped to the type range and truncated, normalized color channels are
// rounded half away from zero. [Layout.Read] decodes the stored value.
//
// Layouts can be registered by name (see [Register]) and exported to a
// WebGPU pipeline descriptor with [Layout.GPU].
package vertex
