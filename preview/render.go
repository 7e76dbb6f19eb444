// Package preview rasterizes compiled frames on the CPU for inspection and tests.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"github.com/gogpu/uidraw"
	"github.com/gogpu/uidraw/drawlist"
	"github.com/gogpu/uidraw/vertex"
)

// ErrInvalidFrame is returned when the output buffers are inconsistent.
var ErrInvalidFrame = errors.New("preview: invalid frame")

// Textures maps texture handles to their pixels. Handles without an
// entry sample as opaque white, so the default null texture needs none.
type Textures map[uidraw.Handle]image.Image

// Render rasterizes a compiled frame onto dst with Porter-Duff over.
//
// Each batch is clipped to its rectangle. Triangles with a constant color
// and a constant texture coordinate are filled through an anti-aliasing
// vector rasterizer; the others are shaded per pixel with interpolated
// color and nearest-neighbour texture sampling.
func Render(dst *image.RGBA, layout vertex.Layout, out *drawlist.Output, textures Textures) error {
	stride := layout.Stride()
	if stride == 0 {
		return fmt.Errorf("%w: zero layout", ErrInvalidFrame)
	}
	verts := out.Vertices.Elements()
	if len(verts)%stride != 0 {
		return fmt.Errorf("%w: %d vertex bytes with stride %d", ErrInvalidFrame, len(verts), stride)
	}
	indices := out.Indices.Elements()
	nverts := len(verts) / stride

	r := renderer{dst: dst}
	triangles := 0
	for _, rg := range drawlist.Ranges(out.Batches.Elements()) {
		if rg.Count == 0 {
			continue
		}
		end := rg.Offset + rg.Count
		if int(end) > len(indices) || rg.Count%3 != 0 {
			return fmt.Errorf("%w: batch [%d, %d) with %d indices", ErrInvalidFrame, rg.Offset, end, len(indices))
		}
		clip := pixelRect(rg.Clip).Intersect(dst.Bounds())
		if clip.Empty() {
			continue
		}
		r.begin(clip, textures[rg.Texture])
		for i := rg.Offset; i < end; i += 3 {
			var tri [3]vertex.Vertex
			for k := range tri {
				j := int(indices[int(i)+k])
				if j >= nverts {
					return fmt.Errorf("%w: index %d of %d vertices", ErrInvalidFrame, j, nverts)
				}
				tri[k] = layout.Read(verts[j*stride : (j+1)*stride])
			}
			r.triangle(tri)
			triangles++
		}
		r.flush()
	}

	uidraw.Logger().Debug("preview: frame rendered",
		"triangles", triangles,
		"batches", out.Batches.Len())
	return nil
}

// SavePNG encodes img as PNG.
func SavePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("preview: encode png: %w", err)
	}
	return nil
}

// pixelRect returns the smallest pixel rectangle covering r.
func pixelRect(r uidraw.Rect) image.Rectangle {
	return image.Rect(
		int(math32.Floor(r.X)), int(math32.Floor(r.Y)),
		int(math32.Ceil(r.X+r.W)), int(math32.Ceil(r.Y+r.H)))
}

// premul is a premultiplied color with components in [0, 1].
type premul struct {
	r, g, b, a float32
}

func (p premul) rgba64() color.RGBA64 {
	return color.RGBA64{
		R: uint16(p.r*0xffff + 0.5),
		G: uint16(p.g*0xffff + 0.5),
		B: uint16(p.b*0xffff + 0.5),
		A: uint16(p.a*0xffff + 0.5),
	}
}

func (p premul) mul(o premul) premul {
	return premul{p.r * o.r, p.g * o.g, p.b * o.b, p.a * o.a}
}

func premultiply(c uidraw.ColorF) premul {
	c = c.Clamp()
	return premul{c.R * c.A, c.G * c.A, c.B * c.A, c.A}
}

// renderer draws the triangles of one batch.
type renderer struct {
	dst  *image.RGBA
	clip image.Rectangle
	tex  image.Image
	z    *vector.Rasterizer

	// Consecutive flat triangles of one color share a path, so edges
	// shared inside a fan or quad do not leave seams.
	pending bool
	flat    premul
}

func (r *renderer) begin(clip image.Rectangle, tex image.Image) {
	r.clip = clip
	r.tex = tex
	if r.z == nil {
		r.z = vector.NewRasterizer(clip.Dx(), clip.Dy())
	} else {
		r.z.Reset(clip.Dx(), clip.Dy())
	}
	r.pending = false
}

func (r *renderer) flush() {
	if !r.pending {
		return
	}
	r.z.Draw(r.dst, r.clip, image.NewUniform(r.flat.rgba64()), image.Point{})
	r.z.Reset(r.clip.Dx(), r.clip.Dy())
	r.pending = false
}

func (r *renderer) triangle(t [3]vertex.Vertex) {
	if t[0].Color == t[1].Color && t[1].Color == t[2].Color &&
		t[0].UV == t[1].UV && t[1].UV == t[2].UV {
		c := premultiply(t[0].Color).mul(r.sample(t[0].UV))
		if r.pending && c != r.flat {
			r.flush()
		}
		r.flat = c
		r.pending = true
		ox, oy := float32(r.clip.Min.X), float32(r.clip.Min.Y)
		r.z.MoveTo(t[0].Pos.X-ox, t[0].Pos.Y-oy)
		r.z.LineTo(t[1].Pos.X-ox, t[1].Pos.Y-oy)
		r.z.LineTo(t[2].Pos.X-ox, t[2].Pos.Y-oy)
		r.z.ClosePath()
		return
	}
	r.flush()
	r.shade(t)
}

// sample returns the texel at uv, or opaque white without a texture.
func (r *renderer) sample(uv uidraw.Vec2) premul {
	if r.tex == nil {
		return premul{1, 1, 1, 1}
	}
	b := r.tex.Bounds()
	x := b.Min.X + clampInt(int(math32.Floor(uv.X*float32(b.Dx()))), 0, b.Dx()-1)
	y := b.Min.Y + clampInt(int(math32.Floor(uv.Y*float32(b.Dy()))), 0, b.Dy()-1)
	cr, cg, cb, ca := r.tex.At(x, y).RGBA()
	return premul{float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff}
}

// shade fills t pixel by pixel, sampling pixel centers.
func (r *renderer) shade(t [3]vertex.Vertex) {
	p0, p1, p2 := t[0].Pos, t[1].Pos, t[2].Pos
	area := edge(p0, p1, p2)
	if area == 0 {
		return
	}
	bounds := pixelRect(uidraw.Bounds(p0, p1, p2)).Intersect(r.clip)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p := uidraw.V2(float32(x)+0.5, float32(y)+0.5)
			w0 := edge(p1, p2, p) / area
			w1 := edge(p2, p0, p) / area
			w2 := edge(p0, p1, p) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			uv := t[0].UV.Scale(w0).Add(t[1].UV.Scale(w1)).Add(t[2].UV.Scale(w2))
			col := uidraw.ColorF{
				R: t[0].Color.R*w0 + t[1].Color.R*w1 + t[2].Color.R*w2,
				G: t[0].Color.G*w0 + t[1].Color.G*w1 + t[2].Color.G*w2,
				B: t[0].Color.B*w0 + t[1].Color.B*w1 + t[2].Color.B*w2,
				A: t[0].Color.A*w0 + t[1].Color.A*w1 + t[2].Color.A*w2,
			}
			r.blend(x, y, premultiply(col).mul(r.sample(uv)))
		}
	}
}

// blend composites src over the destination pixel.
func (r *renderer) blend(x, y int, src premul) {
	if src.a <= 0 {
		return
	}
	i := r.dst.PixOffset(x, y)
	px := r.dst.Pix[i : i+4 : i+4]
	k := 1 - src.a
	px[0] = unorm8(src.r + float32(px[0])/0xff*k)
	px[1] = unorm8(src.g + float32(px[1])/0xff*k)
	px[2] = unorm8(src.b + float32(px[2])/0xff*k)
	px[3] = unorm8(src.a + float32(px[3])/0xff*k)
}

// edge is twice the signed area of the triangle a, b, c.
func edge(a, b, c uidraw.Vec2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func unorm8(v float32) uint8 {
	return uint8(math32.Round(min(max(v, 0), 1) * 0xff))
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
