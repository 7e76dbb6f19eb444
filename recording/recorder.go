package recording

import (
	"math"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/uidraw"
)

// Recorder accumulates the draw commands of one frame.
//
// Every method converts its floating-point geometry to 16-bit pixel space
// and silently drops requests that cannot produce visible output: a zero
// alpha, a non-positive thickness, an empty rectangle, too few points, or
// geometry that misses the active clip rectangle. Culling is conservative:
// a recorded command may still be fully clipped later, a dropped one never
// would have been visible.
//
// Example:
//
//	rec := recording.NewRecorder(recording.WithClip(uidraw.R(0, 0, 800, 600)))
//	rec.FillRect(uidraw.R(10, 10, 200, 40), 4, uidraw.RGB(60, 60, 60))
//	rec.StrokeLine(uidraw.V2(10, 60), uidraw.V2(210, 60), 1, uidraw.White)
//	cmds := rec.Commands()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	clip     uidraw.Rect
	hasClip  bool
	commands []Command
	points   pointPool
}

// Option configures a Recorder.
type Option func(*recorderOptions)

type recorderOptions struct {
	clip     uidraw.Rect
	hasClip  bool
	capacity int
}

// WithClip sets the initial clip rectangle. Without it nothing is culled
// until the first PushScissor.
func WithClip(r uidraw.Rect) Option {
	return func(o *recorderOptions) {
		o.clip = r
		o.hasClip = true
	}
}

// WithCapacity preallocates room for n commands.
func WithCapacity(n int) Option {
	return func(o *recorderOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// NewRecorder creates an empty Recorder.
func NewRecorder(opts ...Option) *Recorder {
	o := recorderOptions{capacity: 256}
	for _, opt := range opts {
		opt(&o)
	}
	return &Recorder{
		clip:     o.clip,
		hasClip:  o.hasClip,
		commands: make([]Command, 0, o.capacity),
		points:   newPointPool(4 * o.capacity),
	}
}

// Clear removes all commands. The clip rectangle is kept.
// Point slices of previously returned commands may be reused.
func (r *Recorder) Clear() {
	clear(r.commands)
	r.commands = r.commands[:0]
	r.points.reset()
}

// Commands returns the recorded commands in order. The slice is owned by
// the Recorder and valid until the next Clear.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Clip returns the active clip rectangle and whether one is set.
func (r *Recorder) Clip() (uidraw.Rect, bool) {
	return r.clip, r.hasClip
}

func (r *Recorder) push(c Command) {
	r.commands = append(r.commands, c)
}

// culled reports whether bounds lies entirely outside the clip.
func (r *Recorder) culled(bounds uidraw.Rect) bool {
	return r.hasClip && !r.clip.Intersects(bounds)
}

// PushScissor replaces the clip rectangle and records a Scissor command.
// All later commands are tested against the new rectangle.
func (r *Recorder) PushScissor(rect uidraw.Rect) {
	r.clip = rect
	r.hasClip = true
	r.push(ScissorCommand{Box: Box{
		X: toI16(rect.X),
		Y: toI16(rect.Y),
		W: toU16(rect.W),
		H: toU16(rect.H),
	}})
}

// --------------------------------------------------------------------------
// Strokes
// --------------------------------------------------------------------------

// StrokeLine records a line from a to b.
func (r *Recorder) StrokeLine(a, b uidraw.Vec2, thickness float32, c uidraw.Color) {
	if c.A == 0 || thickness <= 0 {
		return
	}
	if r.culled(grow(uidraw.Bounds(a, b), thickness/2)) {
		return
	}
	r.push(LineCommand{
		Thickness: toU16(thickness),
		Begin:     toVec2i(a),
		End:       toVec2i(b),
		Color:     c,
	})
}

// StrokeCurve records a cubic Bézier curve from a to b with control
// points ctrl0 and ctrl1.
func (r *Recorder) StrokeCurve(a, ctrl0, ctrl1, b uidraw.Vec2, thickness float32, c uidraw.Color) {
	if c.A == 0 || thickness <= 0 {
		return
	}
	// The curve lies inside the hull of its control points.
	if r.culled(grow(uidraw.Bounds(a, ctrl0, ctrl1, b), thickness/2)) {
		return
	}
	r.push(CurveCommand{
		Thickness: toU16(thickness),
		Begin:     toVec2i(a),
		End:       toVec2i(b),
		Ctrl:      [2]uidraw.Vec2i{toVec2i(ctrl0), toVec2i(ctrl1)},
		Color:     c,
	})
}

// StrokeRect records the outline of rect with corner radius rounding.
func (r *Recorder) StrokeRect(rect uidraw.Rect, rounding, thickness float32, c uidraw.Color) {
	if c.A == 0 || rect.W == 0 || rect.H == 0 || thickness <= 0 {
		return
	}
	if r.culled(rect) {
		return
	}
	r.push(RectCommand{
		Box:       toBox(rect),
		Rounding:  toU16(rounding),
		Thickness: toU16(thickness),
		Color:     c,
	})
}

// StrokeCircle records the outline of the circle inscribed in rect.
func (r *Recorder) StrokeCircle(rect uidraw.Rect, thickness float32, c uidraw.Color) {
	if c.A == 0 || rect.W == 0 || rect.H == 0 || thickness <= 0 {
		return
	}
	if r.culled(rect) {
		return
	}
	r.push(CircleCommand{
		Box:       toBox(rect),
		Thickness: toU16(thickness),
		Color:     c,
	})
}

// StrokeArc records the outline of a pie slice around center from angle
// aMin to aMax, in radians.
func (r *Recorder) StrokeArc(center uidraw.Vec2, radius, aMin, aMax, thickness float32, c uidraw.Color) {
	if c.A == 0 || thickness <= 0 || radius < 1 {
		return
	}
	if r.culled(circleBounds(center, radius+thickness/2)) {
		return
	}
	r.push(ArcCommand{
		Center:    toVec2i(center),
		Radius:    toU16(radius),
		Thickness: toU16(thickness),
		AMin:      aMin,
		AMax:      aMax,
		Color:     c,
	})
}

// StrokeTriangle records the outline of triangle abc.
func (r *Recorder) StrokeTriangle(a, b, cc uidraw.Vec2, thickness float32, c uidraw.Color) {
	if c.A == 0 || thickness <= 0 {
		return
	}
	if r.triangleCulled(a, b, cc) {
		return
	}
	r.push(TriangleCommand{
		Thickness: toU16(thickness),
		A:         toVec2i(a),
		B:         toVec2i(b),
		C:         toVec2i(cc),
		Color:     c,
	})
}

// StrokePolygon records a closed outline through pts.
// At least two points are required.
func (r *Recorder) StrokePolygon(pts []uidraw.Vec2, thickness float32, c uidraw.Color) {
	if c.A == 0 || thickness <= 0 || len(pts) < 2 {
		return
	}
	if r.culled(grow(uidraw.Bounds(pts...), thickness/2)) {
		return
	}
	r.push(PolygonCommand{
		Thickness: toU16(thickness),
		Points:    r.points.add(pts),
		Color:     c,
	})
}

// StrokePolyline records an open line through pts.
// At least two points are required.
func (r *Recorder) StrokePolyline(pts []uidraw.Vec2, thickness float32, c uidraw.Color) {
	if c.A == 0 || thickness <= 0 || len(pts) < 2 {
		return
	}
	if r.culled(grow(uidraw.Bounds(pts...), thickness/2)) {
		return
	}
	r.push(PolylineCommand{
		Thickness: toU16(thickness),
		Points:    r.points.add(pts),
		Color:     c,
	})
}

// --------------------------------------------------------------------------
// Fills
// --------------------------------------------------------------------------

// FillRect records a filled rect with corner radius rounding.
func (r *Recorder) FillRect(rect uidraw.Rect, rounding float32, c uidraw.Color) {
	if c.A == 0 || rect.W == 0 || rect.H == 0 {
		return
	}
	if r.culled(rect) {
		return
	}
	r.push(RectFilledCommand{
		Box:      toBox(rect),
		Rounding: toU16(rounding),
		Color:    c,
	})
}

// FillRectMultiColor records a rect whose corners are colored left
// (top-left), top (top-right), right (bottom-right) and bottom
// (bottom-left).
func (r *Recorder) FillRectMultiColor(rect uidraw.Rect, left, top, right, bottom uidraw.Color) {
	if rect.W == 0 || rect.H == 0 {
		return
	}
	if left.A == 0 && top.A == 0 && right.A == 0 && bottom.A == 0 {
		return
	}
	if r.culled(rect) {
		return
	}
	r.push(RectMulticolorCommand{
		Box:    toBox(rect),
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
	})
}

// FillCircle records the filled circle inscribed in rect.
func (r *Recorder) FillCircle(rect uidraw.Rect, c uidraw.Color) {
	if c.A == 0 || rect.W == 0 || rect.H == 0 {
		return
	}
	if r.culled(rect) {
		return
	}
	r.push(CircleFilledCommand{Box: toBox(rect), Color: c})
}

// FillArc records a filled pie slice around center from angle aMin to
// aMax, in radians.
func (r *Recorder) FillArc(center uidraw.Vec2, radius, aMin, aMax float32, c uidraw.Color) {
	if c.A == 0 || radius < 1 {
		return
	}
	if r.culled(circleBounds(center, radius)) {
		return
	}
	r.push(ArcFilledCommand{
		Center: toVec2i(center),
		Radius: toU16(radius),
		AMin:   aMin,
		AMax:   aMax,
		Color:  c,
	})
}

// FillTriangle records the filled triangle abc.
func (r *Recorder) FillTriangle(a, b, cc uidraw.Vec2, c uidraw.Color) {
	if c.A == 0 {
		return
	}
	if r.triangleCulled(a, b, cc) {
		return
	}
	r.push(TriangleFilledCommand{
		A:     toVec2i(a),
		B:     toVec2i(b),
		C:     toVec2i(cc),
		Color: c,
	})
}

// FillPolygon records a filled convex polygon. At least three points are
// required. Concave polygons are recorded but render incorrectly.
func (r *Recorder) FillPolygon(pts []uidraw.Vec2, c uidraw.Color) {
	if c.A == 0 || len(pts) < 3 {
		return
	}
	if r.culled(uidraw.Bounds(pts...)) {
		return
	}
	r.push(PolygonFilledCommand{
		Points: r.points.add(pts),
		Color:  c,
	})
}

// --------------------------------------------------------------------------
// Images and text
// --------------------------------------------------------------------------

// DrawImage records img stretched over rect and tinted by c.
// It is dropped when c is fully transparent, the clip has no area or the
// clip misses rect.
func (r *Recorder) DrawImage(rect uidraw.Rect, img uidraw.Image, c uidraw.Color) {
	if c.A == 0 {
		return
	}
	if r.hasClip && (r.clip.W == 0 || r.clip.H == 0 || !r.clip.Intersects(rect)) {
		return
	}
	r.push(ImageCommand{Box: toBox(rect), Image: img, Color: c})
}

// DrawText records s laid out in one line inside rect, using font at the
// given pixel height. A background with non-zero alpha is filled behind
// the text. The text is normalized to NFC so composed characters map to
// a single glyph.
func (r *Recorder) DrawText(rect uidraw.Rect, s string, font uidraw.Font, bg, fg uidraw.Color, height float32) {
	if s == "" || font == nil || fg.A == 0 || height <= 0 {
		return
	}
	if r.culled(rect) {
		return
	}
	r.push(TextCommand{
		Box:        toBox(rect),
		Font:       font,
		Background: bg,
		Foreground: fg,
		Height:     height,
		Text:       norm.NFC.String(s),
	})
}

// triangleCulled uses the cheap test "no vertex lies inside the clip".
// It can drop a large triangle that covers the clip without a vertex in it.
func (r *Recorder) triangleCulled(a, b, c uidraw.Vec2) bool {
	return r.hasClip &&
		!r.clip.ContainsPoint(a) &&
		!r.clip.ContainsPoint(b) &&
		!r.clip.ContainsPoint(c)
}

// --------------------------------------------------------------------------
// Conversion helpers
// --------------------------------------------------------------------------

// toI16 clamps v to the int16 range and truncates.
func toI16(v float32) int16 {
	switch {
	case !(v > math.MinInt16):
		return math.MinInt16
	case v > math.MaxInt16:
		return math.MaxInt16
	}
	return int16(v)
}

// toU16 clamps v to the uint16 range and truncates.
func toU16(v float32) uint16 {
	switch {
	case !(v > 0):
		return 0
	case v > math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(v)
}

func toVec2i(v uidraw.Vec2) uidraw.Vec2i {
	return uidraw.Vec2i{X: toI16(v.X), Y: toI16(v.Y)}
}

func toBox(r uidraw.Rect) Box {
	return Box{X: toI16(r.X), Y: toI16(r.Y), W: toU16(r.W), H: toU16(r.H)}
}

func grow(r uidraw.Rect, d float32) uidraw.Rect {
	return uidraw.Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

func circleBounds(center uidraw.Vec2, radius float32) uidraw.Rect {
	return uidraw.Rect{X: center.X - radius, Y: center.Y - radius, W: 2 * radius, H: 2 * radius}
}
