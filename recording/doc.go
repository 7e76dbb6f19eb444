// Package recording captures one frame of immediate-mode drawing requests
// as an ordered list of typed commands.
//
// # Architecture
//
// Widgets call the Recorder's stroke, fill, image and text methods while
// laying out a frame. The Recorder performs cheap, conservative culling
// against the active clip rectangle and stores each surviving request as
// a value-typed [Command]. No geometry is computed here; the command list
// is handed to the drawlist compiler, which tessellates and batches it.
//
// Commands carry 16-bit pixel geometry. Coordinates outside the int16
// range, and extents outside uint16, are clamped when recorded.
//
// # Basic Usage
//
//	rec := recording.NewRecorder()
//
//	rec.PushScissor(uidraw.R(0, 0, 320, 200))
//	rec.FillRect(uidraw.R(8, 8, 120, 24), 4, uidraw.RGB(50, 50, 50))
//	rec.StrokeRect(uidraw.R(8, 8, 120, 24), 4, 1, uidraw.RGB(200, 200, 200))
//	rec.DrawText(uidraw.R(12, 12, 112, 16), "OK", font, uidraw.Transparent, uidraw.White, 13)
//
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
//	rec.Clear() // next frame; the clip is kept
//
// # Culling
//
// Rectangles, circles and text are dropped when their rectangle misses the
// clip. Lines, curves, arcs and polygons use their bounding box grown by
// half the stroke thickness. Triangles use a cheaper test that drops a
// triangle when none of its vertices is inside the clip.
package recording
