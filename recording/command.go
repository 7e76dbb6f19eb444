package recording

import "github.com/gogpu/uidraw"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdNop            CommandType = iota // No operation
	CmdScissor                           // Replace the clip rectangle
	CmdLine                              // Stroked line
	CmdCurve                             // Stroked cubic Bézier curve
	CmdRect                              // Stroked rectangle
	CmdRectFilled                        // Filled rectangle
	CmdRectMulticolor                    // Filled rectangle with per-corner colors
	CmdTriangle                          // Stroked triangle
	CmdTriangleFilled                    // Filled triangle
	CmdCircle                            // Stroked circle
	CmdCircleFilled                      // Filled circle
	CmdArc                               // Stroked pie slice
	CmdArcFilled                         // Filled pie slice
	CmdPolygon                           // Stroked closed polygon
	CmdPolygonFilled                     // Filled convex polygon
	CmdPolyline                          // Stroked open polyline
	CmdImage                             // Textured rectangle
	CmdText                              // Text run
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdNop:            "Nop",
	CmdScissor:        "Scissor",
	CmdLine:           "Line",
	CmdCurve:          "Curve",
	CmdRect:           "Rect",
	CmdRectFilled:     "RectFilled",
	CmdRectMulticolor: "RectMulticolor",
	CmdTriangle:       "Triangle",
	CmdTriangleFilled: "TriangleFilled",
	CmdCircle:         "Circle",
	CmdCircleFilled:   "CircleFilled",
	CmdArc:            "Arc",
	CmdArcFilled:      "ArcFilled",
	CmdPolygon:        "Polygon",
	CmdPolygonFilled:  "PolygonFilled",
	CmdPolyline:       "Polyline",
	CmdImage:          "Image",
	CmdText:           "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands are plain values; once recorded they are never modified.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Box is an axis-aligned rectangle in 16-bit pixel space.
type Box struct {
	X, Y int16
	W, H uint16
}

// Rect converts b to floating point.
func (b Box) Rect() uidraw.Rect {
	return uidraw.Rect{X: float32(b.X), Y: float32(b.Y), W: float32(b.W), H: float32(b.H)}
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// NopCommand does nothing. Compilers skip it.
type NopCommand struct{}

// Type implements Command.
func (NopCommand) Type() CommandType { return CmdNop }

// ScissorCommand replaces the clip rectangle for subsequent geometry.
type ScissorCommand struct {
	Box
}

// Type implements Command.
func (ScissorCommand) Type() CommandType { return CmdScissor }

// --------------------------------------------------------------------------
// Stroke Commands
// --------------------------------------------------------------------------

// LineCommand strokes a straight segment.
type LineCommand struct {
	Thickness  uint16
	Begin, End uidraw.Vec2i
	Color      uidraw.Color
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// CurveCommand strokes a cubic Bézier curve from Begin to End.
type CurveCommand struct {
	Thickness  uint16
	Begin, End uidraw.Vec2i
	// Ctrl holds the two control points in order.
	Ctrl  [2]uidraw.Vec2i
	Color uidraw.Color
}

// Type implements Command.
func (CurveCommand) Type() CommandType { return CmdCurve }

// RectCommand strokes a rectangle with optionally rounded corners.
type RectCommand struct {
	Box
	Rounding  uint16
	Thickness uint16
	Color     uidraw.Color
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// TriangleCommand strokes the outline of a triangle.
type TriangleCommand struct {
	Thickness uint16
	A, B, C   uidraw.Vec2i
	Color     uidraw.Color
}

// Type implements Command.
func (TriangleCommand) Type() CommandType { return CmdTriangle }

// CircleCommand strokes the circle inscribed in Box. The radius is
// derived from the width.
type CircleCommand struct {
	Box
	Thickness uint16
	Color     uidraw.Color
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

// ArcCommand strokes a pie slice: two radii and the arc between them.
// Angles are in radians.
type ArcCommand struct {
	Center     uidraw.Vec2i
	Radius     uint16
	Thickness  uint16
	AMin, AMax float32
	Color      uidraw.Color
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// PolygonCommand strokes a closed polygon.
type PolygonCommand struct {
	Thickness uint16
	Points    []uidraw.Vec2i
	Color     uidraw.Color
}

// Type implements Command.
func (PolygonCommand) Type() CommandType { return CmdPolygon }

// PolylineCommand strokes an open polyline.
type PolylineCommand struct {
	Thickness uint16
	Points    []uidraw.Vec2i
	Color     uidraw.Color
}

// Type implements Command.
func (PolylineCommand) Type() CommandType { return CmdPolyline }

// --------------------------------------------------------------------------
// Fill Commands
// --------------------------------------------------------------------------

// RectFilledCommand fills a rectangle with optionally rounded corners.
type RectFilledCommand struct {
	Box
	Rounding uint16
	Color    uidraw.Color
}

// Type implements Command.
func (RectFilledCommand) Type() CommandType { return CmdRectFilled }

// RectMulticolorCommand fills a rectangle with a color per corner:
// Left at the top-left, Top at the top-right, Right at the bottom-right
// and Bottom at the bottom-left.
type RectMulticolorCommand struct {
	Box
	Left, Top, Right, Bottom uidraw.Color
}

// Type implements Command.
func (RectMulticolorCommand) Type() CommandType { return CmdRectMulticolor }

// TriangleFilledCommand fills a triangle.
type TriangleFilledCommand struct {
	A, B, C uidraw.Vec2i
	Color   uidraw.Color
}

// Type implements Command.
func (TriangleFilledCommand) Type() CommandType { return CmdTriangleFilled }

// CircleFilledCommand fills the circle inscribed in Box.
type CircleFilledCommand struct {
	Box
	Color uidraw.Color
}

// Type implements Command.
func (CircleFilledCommand) Type() CommandType { return CmdCircleFilled }

// ArcFilledCommand fills a pie slice.
type ArcFilledCommand struct {
	Center     uidraw.Vec2i
	Radius     uint16
	AMin, AMax float32
	Color      uidraw.Color
}

// Type implements Command.
func (ArcFilledCommand) Type() CommandType { return CmdArcFilled }

// PolygonFilledCommand fills a convex polygon.
type PolygonFilledCommand struct {
	Points []uidraw.Vec2i
	Color  uidraw.Color
}

// Type implements Command.
func (PolygonFilledCommand) Type() CommandType { return CmdPolygonFilled }

// --------------------------------------------------------------------------
// Texture Commands
// --------------------------------------------------------------------------

// ImageCommand draws an image stretched over Box, tinted by Color.
type ImageCommand struct {
	Box
	Image uidraw.Image
	Color uidraw.Color
}

// Type implements Command.
func (ImageCommand) Type() CommandType { return CmdImage }

// TextCommand draws a single line of text inside Box. The first line's
// baseline sits at the font ascender below the top edge.
type TextCommand struct {
	Box
	Font       uidraw.Font
	Background uidraw.Color
	Foreground uidraw.Color
	// Height is the font pixel height.
	Height float32
	Text   string
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }
