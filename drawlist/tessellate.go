package drawlist

import (
	"github.com/gogpu/uidraw"
	"github.com/gogpu/uidraw/buffer"
)

// quadIndices triangulates a quad given as four corners in order.
var quadIndices = [6]uint16{0, 1, 2, 0, 2, 3}

// allocVertices reserves n vertices and returns the index of the first
// one and the bytes to write them to.
func (c *Compiler) allocVertices(n int) (first uint16, dst []byte) {
	base := c.out.Vertices.Len() / c.stride
	if base+n > MaxVertices {
		panic(&buffer.CapacityError{What: "vertex indices", Requested: base + n, Capacity: MaxVertices})
	}
	return uint16(base), c.out.Vertices.Alloc(n * c.stride)
}

// putVertex writes vertex i of dst.
func (c *Compiler) putVertex(dst []byte, i int, pos, uv uidraw.Vec2, col uidraw.ColorF) {
	c.cfg.Layout.Write(dst[i*c.stride:(i+1)*c.stride], pos, uv, col)
}

func (c *Compiler) putQuadIndices(first uint16) {
	idx := c.out.Indices.Alloc(len(quadIndices))
	for i, q := range quadIndices {
		idx[i] = first + q
	}
}

// fillPolyConvex emits a triangle fan over points: one vertex per point
// and 3(n-2) indices. Fewer than three points emit nothing.
func (c *Compiler) fillPolyConvex(points []uidraw.Vec2, col uidraw.Color) {
	n := len(points)
	if n < 3 {
		return
	}
	colF := col.Float()
	first, dst := c.allocVertices(n)
	for i, p := range points {
		c.putVertex(dst, i, p, c.cfg.Null.UV, colF)
	}
	idx := c.out.Indices.Alloc(3 * (n - 2))
	for i := 2; i < n; i++ {
		j := 3 * (i - 2)
		idx[j] = first
		idx[j+1] = first + uint16(i-1)
		idx[j+2] = first + uint16(i)
	}
	c.commit()
}

// strokePolyLine emits one quad per segment, offset by half the thickness
// on each side. Segments are not joined. A closed stroke adds the segment
// from the last point back to the first.
func (c *Compiler) strokePolyLine(points []uidraw.Vec2, col uidraw.Color, closed bool, thickness float32) {
	n := len(points)
	if n < 2 {
		return
	}
	count := n
	if !closed {
		count = n - 1
	}
	colF := col.Float()
	uv := c.cfg.Null.UV
	half := thickness * 0.5
	for i1 := 0; i1 < count; i1++ {
		i2 := i1 + 1
		if i2 == n {
			i2 = 0
		}
		p1, p2 := points[i1], points[i2]
		d := p2.Sub(p1).Normalize().Scale(half)
		left := uidraw.V2(d.Y, -d.X)
		right := uidraw.V2(-d.Y, d.X)

		first, dst := c.allocVertices(4)
		c.putVertex(dst, 0, p1.Add(left), uv, colF)
		c.putVertex(dst, 1, p2.Add(left), uv, colF)
		c.putVertex(dst, 2, p2.Add(right), uv, colF)
		c.putVertex(dst, 3, p1.Add(right), uv, colF)
		c.putQuadIndices(first)
	}
	c.commit()
}

// fillRectMultiColor emits one quad with a color per corner, bypassing
// the path.
func (c *Compiler) fillRectMultiColor(r uidraw.Rect, left, top, right, bottom uidraw.Color) {
	c.pushImage(c.cfg.Null.Texture)
	uv := c.cfg.Null.UV
	first, dst := c.allocVertices(4)
	c.putVertex(dst, 0, uidraw.V2(r.X, r.Y), uv, left.Float())
	c.putVertex(dst, 1, uidraw.V2(r.X+r.W, r.Y), uv, top.Float())
	c.putVertex(dst, 2, uidraw.V2(r.X+r.W, r.Y+r.H), uv, right.Float())
	c.putVertex(dst, 3, uidraw.V2(r.X, r.Y+r.H), uv, bottom.Float())
	c.putQuadIndices(first)
	c.commit()
}

// pushRectUV emits the quad a-cc mapped to the texture region uva-uvc.
func (c *Compiler) pushRectUV(a, cc, uva, uvc uidraw.Vec2, col uidraw.Color) {
	colF := col.Float()
	first, dst := c.allocVertices(4)
	c.putVertex(dst, 0, a, uva, colF)
	c.putVertex(dst, 1, uidraw.V2(cc.X, a.Y), uidraw.V2(uvc.X, uva.Y), colF)
	c.putVertex(dst, 2, cc, uvc, colF)
	c.putVertex(dst, 3, uidraw.V2(a.X, cc.Y), uidraw.V2(uva.X, uvc.Y), colF)
	c.putQuadIndices(first)
	c.commit()
}

// addImage emits a textured quad. A sub-image maps its region through
// the declared texture size; otherwise the whole texture is used.
func (c *Compiler) addImage(img uidraw.Image, r uidraw.Rect, col uidraw.Color) {
	c.pushImage(img.Handle)
	uv0, uv1 := uidraw.V2(0, 0), uidraw.V2(1, 1)
	if img.IsSubimage() {
		w, h := float32(img.W), float32(img.H)
		x, y := float32(img.Region[0]), float32(img.Region[1])
		rw, rh := float32(img.Region[2]), float32(img.Region[3])
		uv0 = uidraw.V2(x/w, y/h)
		uv1 = uidraw.V2((x+rw)/w, (y+rh)/h)
	}
	c.pushRectUV(r.Min(), r.Max(), uv0, uv1, col)
}

// addText emits an optional background rectangle and one textured quad
// per glyph. Text whose rectangle misses the active clip is skipped, as
// are code points the font has no glyph for.
func (c *Compiler) addText(f uidraw.Font, r uidraw.Rect, s string, height float32, bg, fg uidraw.Color) {
	if f == nil || s == "" || !r.Intersects(c.clip) {
		return
	}
	if bg.A > 0 {
		c.pathRectTo(r.Min(), r.Max(), 0)
		c.pathFill(bg)
	}

	baseline := r.Y + f.Metrics(height).Ascender
	c.pushImage(f.Texture())
	pen := r.X
	for _, ch := range s {
		g, ok := f.Glyph(height, ch)
		if !ok {
			continue
		}
		if g.Width > 0 && g.Height > 0 {
			gx := pen + g.Offset.X
			gy := baseline - g.Offset.Y
			c.pushRectUV(uidraw.V2(gx, gy), uidraw.V2(gx+g.Width, gy+g.Height), g.UV0, g.UV1, fg)
		}
		pen += g.Advance
	}
}
