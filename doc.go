// Package uidraw turns one frame of immediate-mode GUI drawing requests
// into a batched, GPU-consumable geometry stream.
//
// # Overview
//
// A frame flows through the packages in one direction:
//
//	recording.Recorder  ->  []recording.Command
//	drawlist.Compiler   ->  vertices, 16-bit indices, batches
//	frontend            ->  one indexed draw per batch
//
// The root package holds the shared data model: [Color] and [ColorF],
// [Vec2], [Rect], opaque texture [Handle] values, [Image] references and
// the [Font] collaborator interface queried during text emission.
//
// # Quick Start
//
//	rec := recording.NewRecorder(recording.WithClip(uidraw.R(0, 0, 800, 600)))
//	rec.FillRect(uidraw.R(10, 10, 100, 40), 4, uidraw.RGB(40, 120, 200))
//	rec.StrokeLine(uidraw.V2(0, 0), uidraw.V2(100, 100), 2, uidraw.White)
//
//	c, err := drawlist.New(drawlist.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	out := drawlist.NewOutput()
//	if err := c.Convert(rec.Commands(), out); err != nil {
//	    return err
//	}
//	for i, r := range drawlist.Ranges(out.Batches.Elements()) {
//	    // set scissor and texture, then draw r.Count indices from r.Offset
//	}
//
// # Coordinate System
//
// Origin at top-left, X grows right, Y grows down, angles in radians
// measured clockwise on screen (positive Y is down).
//
// # Logging
//
// uidraw is silent by default. Call [SetLogger] to route diagnostics to a
// [log/slog] logger.
package uidraw

// Version is the current version of the module.
const Version = "0.1.0"
