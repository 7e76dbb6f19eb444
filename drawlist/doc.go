// Package drawlist compiles recorded draw commands into GPU-ready vertex
// data, 16-bit indices and draw batches.
//
// # Overview
//
// A [Compiler] replays a command list in order. Each shape is first built
// as a path (a list of points: lines, quarter-circle table arcs, general
// arcs, cubic curves, rectangles) and then either filled as a convex
// triangle fan or stroked with one independent quad per segment. Images
// and glyphs are emitted directly as UV-mapped quads.
//
// Vertices are written through a [vertex.Layout], so the same compiler
// serves any vertex format the frontend's pipeline expects.
//
// # Batches
//
// Consecutive geometry sharing a clip rectangle and a texture is grouped
// into a [Batch]. Batch.ElementCount is cumulative; [Ranges] turns the
// batch list into one (offset, count) range per indexed draw call:
//
//	c, _ := drawlist.New(drawlist.DefaultConfig())
//	out := drawlist.NewOutput()
//	if err := c.Convert(rec.Commands(), out); err != nil {
//	    return err // frame too large for the output buffers
//	}
//	for _, r := range drawlist.Ranges(out.Batches.Elements()) {
//	    if r.Count == 0 {
//	        continue
//	    }
//	    setScissor(r.Clip)
//	    bindTexture(r.Texture)
//	    drawIndexed(r.Offset, r.Count)
//	}
//	out.Clear()
//
// # Capacity
//
// Indices are 16-bit, so one Output addresses at most [MaxVertices]
// vertices. A frame that needs more, or that overruns a fixed buffer,
// makes Convert return an error wrapping buffer.ErrCapacityExceeded.
package drawlist
