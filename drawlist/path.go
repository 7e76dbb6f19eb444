package drawlist

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/uidraw"
)

// unitCircle holds 12 points on the unit circle, 30° apart, starting at
// (1, 0) and turning clockwise on screen (y down).
var unitCircle = func() (t [12]uidraw.Vec2) {
	for i := range t {
		s, c := math32.Sincos(float32(i) / 12 * 2 * math32.Pi)
		t[i] = uidraw.V2(c, s)
	}
	return t
}()

// pathClear drops the points of the current path.
func (c *Compiler) pathClear() {
	c.path = c.path[:0]
}

// pathLineTo appends p to the current path. Path geometry is untextured,
// so the active batch is switched to the null texture first.
func (c *Compiler) pathLineTo(p uidraw.Vec2) {
	if c.out.Batches.Len() == 0 {
		c.addClip(uidraw.NullRect)
	}
	if last := c.out.Batches.Last(); last.Texture != c.cfg.Null.Texture {
		c.pushImage(c.cfg.Null.Texture)
	}
	c.path = append(c.path, p)
}

// pathArcToFast appends the table points aMin..aMax (inclusive, in
// twelfths of a turn) around center.
func (c *Compiler) pathArcToFast(center uidraw.Vec2, r float32, aMin, aMax int) {
	if aMin > aMax {
		return
	}
	for a := aMin; a <= aMax; a++ {
		c.pathLineTo(center.Add(unitCircle[a%len(unitCircle)].Scale(r)))
	}
}

// pathArcTo appends segments+1 points on the arc from aMin to aMax.
// Successive points are produced by rotating the previous offset, so only
// one sine/cosine pair is evaluated per arc.
func (c *Compiler) pathArcTo(center uidraw.Vec2, r, aMin, aMax float32, segments int) {
	if r == 0 {
		return
	}
	segments = max(segments, 1)
	sinD, cosD := math32.Sincos((aMax - aMin) / float32(segments))
	s, co := math32.Sincos(aMin)
	d := uidraw.V2(co*r, s*r)
	for i := 0; i <= segments; i++ {
		c.pathLineTo(center.Add(d))
		d = uidraw.V2(d.X*cosD-d.Y*sinD, d.Y*cosD+d.X*sinD)
	}
}

// pathRectTo appends the outline of the rectangle a-b, clockwise from the
// top-left corner. A positive rounding replaces each corner with a
// quarter circle whose radius is clamped to half the width and height.
func (c *Compiler) pathRectTo(a, b uidraw.Vec2, rounding float32) {
	r := min(rounding,
		math32.Abs(b.X-a.X)/2,
		math32.Abs(b.Y-a.Y)/2)
	if r <= 0 {
		c.pathLineTo(a)
		c.pathLineTo(uidraw.V2(b.X, a.Y))
		c.pathLineTo(b)
		c.pathLineTo(uidraw.V2(a.X, b.Y))
		return
	}
	c.pathArcToFast(uidraw.V2(a.X+r, a.Y+r), r, 6, 9)
	c.pathArcToFast(uidraw.V2(b.X-r, a.Y+r), r, 9, 12)
	c.pathArcToFast(uidraw.V2(b.X-r, b.Y-r), r, 0, 3)
	c.pathArcToFast(uidraw.V2(a.X+r, b.Y-r), r, 3, 6)
}

// pathCurveTo flattens the cubic Bézier from the last path point through
// p2 and p3 to p4 into segments line segments.
func (c *Compiler) pathCurveTo(p2, p3, p4 uidraw.Vec2, segments int) {
	if len(c.path) == 0 {
		return
	}
	segments = max(segments, 1)
	p1 := c.path[len(c.path)-1]
	step := 1 / float32(segments)
	for i := 1; i <= segments; i++ {
		t := step * float32(i)
		u := 1 - t
		w1 := u * u * u
		w2 := 3 * u * u * t
		w3 := 3 * u * t * t
		w4 := t * t * t
		c.pathLineTo(uidraw.V2(
			w1*p1.X+w2*p2.X+w3*p3.X+w4*p4.X,
			w1*p1.Y+w2*p2.Y+w3*p3.Y+w4*p4.Y,
		))
	}
}

// pathFill fills the current path as a convex polygon and clears it.
func (c *Compiler) pathFill(col uidraw.Color) {
	if len(c.path) == 0 {
		panic("drawlist: fill of empty path")
	}
	c.fillPolyConvex(c.path, col)
	c.pathClear()
}

// pathStroke strokes the current path and clears it.
func (c *Compiler) pathStroke(col uidraw.Color, closed bool, thickness float32) {
	if len(c.path) == 0 {
		panic("drawlist: stroke of empty path")
	}
	c.strokePolyLine(c.path, col, closed, thickness)
	c.pathClear()
}
