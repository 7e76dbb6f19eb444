package drawlist

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/uidraw"
	"github.com/gogpu/uidraw/buffer"
	"github.com/gogpu/uidraw/recording"
)

// Compiler turns recorded commands into vertices, 16-bit indices and
// draw batches.
//
// A Compiler keeps a scratch path between calls to avoid allocation; it
// is not safe for concurrent use. Use one Compiler per goroutine.
type Compiler struct {
	cfg    Config
	stride int

	// Per-Convert state.
	out  *Output
	clip uidraw.Rect
	path []uidraw.Vec2
}

// New creates a Compiler for cfg.
func New(cfg Config) (*Compiler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	uidraw.Logger().Info("drawlist: compiler created",
		"layout", cfg.Layout.String(),
		"circleSegments", cfg.CircleSegments,
		"arcSegments", cfg.ArcSegments,
		"curveSegments", cfg.CurveSegments)
	return &Compiler{
		cfg:    cfg,
		stride: cfg.Layout.Stride(),
		path:   make([]uidraw.Vec2, 0, 64),
	}, nil
}

// Config returns the configuration the Compiler was created with.
func (c *Compiler) Config() Config { return c.cfg }

// Convert appends the geometry of cmds to out.
//
// Commands are processed in order. If a buffer of out runs out of
// capacity, or the frame needs more vertices than 16-bit indices can
// address, Convert stops and returns an error wrapping
// buffer.ErrCapacityExceeded; out then holds a partial frame that must be
// discarded.
func (c *Compiler) Convert(cmds []recording.Command, out *Output) (err error) {
	if err := out.check(c.stride); err != nil {
		return err
	}
	c.out = out
	c.clip = uidraw.NullRect
	if last := out.Batches.Last(); last != nil {
		c.clip = last.Clip
	}
	c.pathClear()

	defer func() {
		c.out = nil
		if r := recover(); r != nil {
			ce, ok := r.(*buffer.CapacityError)
			if !ok {
				panic(r)
			}
			c.pathClear()
			uidraw.Logger().Warn("drawlist: frame does not fit",
				"what", ce.What, "requested", ce.Requested, "capacity", ce.Capacity)
			err = fmt.Errorf("drawlist: convert: %w", ce)
		}
	}()

	for _, cmd := range cmds {
		c.convert(cmd)
	}

	uidraw.Logger().Debug("drawlist: frame converted",
		"commands", len(cmds),
		"vertices", out.Vertices.Len()/c.stride,
		"indices", out.Indices.Len(),
		"batches", out.Batches.Len())
	return nil
}

// color applies the global alpha.
func (c *Compiler) color(col uidraw.Color) uidraw.Color {
	return col.ScaleAlpha(c.cfg.GlobalAlpha)
}

// aaOffset returns the half-pixel shift applied when anti-aliasing is off.
func aaOffset(aa bool) float32 {
	if aa {
		return 0
	}
	return 0.5
}

func (c *Compiler) convert(cmd recording.Command) {
	switch cmd := cmd.(type) {
	case recording.NopCommand:

	case recording.ScissorCommand:
		c.addClip(cmd.Rect())

	case recording.LineCommand:
		col := c.color(cmd.Color)
		if col.A == 0 || cmd.Thickness == 0 {
			return
		}
		off := uidraw.V2(aaOffset(c.cfg.LineAA), aaOffset(c.cfg.LineAA))
		c.pathLineTo(cmd.Begin.Float().Sub(off))
		c.pathLineTo(cmd.End.Float().Sub(off))
		c.pathStroke(col, false, float32(cmd.Thickness))

	case recording.CurveCommand:
		col := c.color(cmd.Color)
		if col.A == 0 || cmd.Thickness == 0 {
			return
		}
		c.pathLineTo(cmd.Begin.Float())
		c.pathCurveTo(cmd.Ctrl[0].Float(), cmd.Ctrl[1].Float(), cmd.End.Float(), c.cfg.CurveSegments)
		c.pathStroke(col, false, float32(cmd.Thickness))

	case recording.RectCommand:
		col := c.color(cmd.Color)
		if col.A == 0 || cmd.Thickness == 0 || cmd.W == 0 || cmd.H == 0 {
			return
		}
		a, b := rectCorners(cmd.Box, c.cfg.LineAA)
		c.pathRectTo(a, b, float32(cmd.Rounding))
		c.pathStroke(col, true, float32(cmd.Thickness))

	case recording.RectFilledCommand:
		col := c.color(cmd.Color)
		if col.A == 0 || cmd.W == 0 || cmd.H == 0 {
			return
		}
		a, b := rectCorners(cmd.Box, c.cfg.ShapeAA)
		c.pathRectTo(a, b, float32(cmd.Rounding))
		c.pathFill(col)

	case recording.RectMulticolorCommand:
		l, t, r, b := c.color(cmd.Left), c.color(cmd.Top), c.color(cmd.Right), c.color(cmd.Bottom)
		if l.A == 0 && t.A == 0 && r.A == 0 && b.A == 0 {
			return
		}
		c.fillRectMultiColor(cmd.Rect(), l, t, r, b)

	case recording.TriangleCommand:
		col := c.color(cmd.Color)
		if col.A == 0 || cmd.Thickness == 0 {
			return
		}
		c.pathLineTo(cmd.A.Float())
		c.pathLineTo(cmd.B.Float())
		c.pathLineTo(cmd.C.Float())
		c.pathStroke(col, true, float32(cmd.Thickness))

	case recording.TriangleFilledCommand:
		col := c.color(cmd.Color)
		if col.A == 0 {
			return
		}
		c.pathLineTo(cmd.A.Float())
		c.pathLineTo(cmd.B.Float())
		c.pathLineTo(cmd.C.Float())
		c.pathFill(col)

	case recording.CircleCommand:
		col := c.color(cmd.Color)
		if col.A == 0 || cmd.Thickness == 0 || cmd.W < 2 {
			return
		}
		c.pathCircle(cmd.Box)
		c.pathStroke(col, true, float32(cmd.Thickness))

	case recording.CircleFilledCommand:
		col := c.color(cmd.Color)
		if col.A == 0 || cmd.W < 2 {
			return
		}
		c.pathCircle(cmd.Box)
		c.pathFill(col)

	case recording.ArcCommand:
		col := c.color(cmd.Color)
		if col.A == 0 || cmd.Thickness == 0 || cmd.Radius == 0 {
			return
		}
		center := cmd.Center.Float()
		c.pathLineTo(center)
		c.pathArcTo(center, float32(cmd.Radius), cmd.AMin, cmd.AMax, c.cfg.ArcSegments)
		c.pathStroke(col, true, float32(cmd.Thickness))

	case recording.ArcFilledCommand:
		col := c.color(cmd.Color)
		if col.A == 0 || cmd.Radius == 0 {
			return
		}
		center := cmd.Center.Float()
		c.pathLineTo(center)
		c.pathArcTo(center, float32(cmd.Radius), cmd.AMin, cmd.AMax, c.cfg.ArcSegments)
		c.pathFill(col)

	case recording.PolygonCommand:
		col := c.color(cmd.Color)
		if col.A == 0 || cmd.Thickness == 0 || len(cmd.Points) < 2 {
			return
		}
		c.pathPoints(cmd.Points)
		c.pathStroke(col, true, float32(cmd.Thickness))

	case recording.PolylineCommand:
		col := c.color(cmd.Color)
		if col.A == 0 || cmd.Thickness == 0 || len(cmd.Points) < 2 {
			return
		}
		c.pathPoints(cmd.Points)
		c.pathStroke(col, false, float32(cmd.Thickness))

	case recording.PolygonFilledCommand:
		col := c.color(cmd.Color)
		if col.A == 0 || len(cmd.Points) < 3 {
			return
		}
		c.pathPoints(cmd.Points)
		c.pathFill(col)

	case recording.ImageCommand:
		col := c.color(cmd.Color)
		if col.A == 0 {
			return
		}
		c.addImage(cmd.Image, cmd.Rect(), col)

	case recording.TextCommand:
		fg := c.color(cmd.Foreground)
		if fg.A == 0 {
			return
		}
		c.addText(cmd.Font, cmd.Rect(), cmd.Text, cmd.Height, c.color(cmd.Background), fg)

	default:
		panic(fmt.Sprintf("drawlist: unknown command %T", cmd))
	}
}

// rectCorners returns the top-left and bottom-right corners of box,
// shifting the top-left corner by half a pixel when aa is off.
func rectCorners(box recording.Box, aa bool) (a, b uidraw.Vec2) {
	r := box.Rect()
	off := aaOffset(aa)
	return uidraw.V2(r.X-off, r.Y-off), r.Max()
}

// pathCircle appends CircleSegments+1 points on the circle inscribed in
// box, spanning (n-1)/n of a full turn.
func (c *Compiler) pathCircle(box recording.Box) {
	n := c.cfg.CircleSegments
	r := float32(box.W / 2)
	center := uidraw.V2(float32(box.X)+float32(box.W/2), float32(box.Y)+float32(box.H/2))
	aMax := 2 * math32.Pi * float32(n-1) / float32(n)
	c.pathArcTo(center, r, 0, aMax, n)
}

func (c *Compiler) pathPoints(pts []uidraw.Vec2i) {
	for _, p := range pts {
		c.pathLineTo(p.Float())
	}
}
