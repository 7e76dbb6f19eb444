// Command uidraw records a demo widget frame, compiles it into vertex and
// index buffers and writes a software-rendered preview.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/chewxy/math32"

	"github.com/gogpu/uidraw"
	"github.com/gogpu/uidraw/drawlist"
	"github.com/gogpu/uidraw/glyph"
	"github.com/gogpu/uidraw/preview"
	"github.com/gogpu/uidraw/recording"
)

// Texture handles used by the demo.
var (
	fontTexture    = uidraw.HandleID(1)
	checkerTexture = uidraw.HandleID(2)
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML compiler config (default settings if empty)")
		width      = flag.Int("width", 480, "image width")
		height     = flag.Int("height", 320, "image height")
		output     = flag.String("output", "uidraw.png", "output file")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		uidraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	atlas, err := glyph.Default(fontTexture)
	if err != nil {
		log.Fatalf("Failed to build font atlas: %v", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	// Untextured geometry samples the atlas's white texel.
	cfg.Null = atlas.NullTexture()

	compiler, err := drawlist.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create compiler: %v", err)
	}

	rec := recording.NewRecorder(recording.WithClip(uidraw.R(0, 0, float32(*width), float32(*height))))
	drawFrame(rec, atlas, float32(*width), float32(*height))

	out := drawlist.NewOutput()
	if err := compiler.Convert(rec.Commands(), out); err != nil {
		log.Fatalf("Failed to compile frame: %v", err)
	}

	fmt.Printf("%d commands, %d vertices (%s), %d indices\n",
		rec.Len(), out.Vertices.Len()/cfg.Layout.Stride(), cfg.Layout, out.Indices.Len())
	for i, r := range drawlist.Ranges(out.Batches.Elements()) {
		fmt.Printf("batch %2d: offset %5d count %5d texture %-6v clip %v\n", i, r.Offset, r.Count, r.Texture, r.Clip)
	}

	dst := image.NewRGBA(image.Rect(0, 0, *width, *height))
	textures := preview.Textures{
		fontTexture:    atlas.Image(),
		checkerTexture: checker(8, 8),
	}
	if err := preview.Render(dst, cfg.Layout, out, textures); err != nil {
		log.Fatalf("Failed to render preview: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if err := preview.SavePNG(f, dst); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Preview saved to %s (%dx%d)\n", *output, *width, *height)
}

func loadConfig(path string) (drawlist.Config, error) {
	if path == "" {
		return drawlist.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return drawlist.Config{}, err
	}
	defer func() {
		_ = f.Close()
	}()
	return drawlist.LoadConfig(f)
}

// drawFrame records a window with a title bar, a few widgets and a chart.
func drawFrame(rec *recording.Recorder, font uidraw.Font, w, h float32) {
	var (
		background = uidraw.RGB(45, 45, 48)
		panel      = uidraw.RGB(60, 60, 64)
		accent     = uidraw.RGB(0, 122, 204)
		border     = uidraw.RGB(90, 90, 96)
		text       = uidraw.RGB(230, 230, 230)
	)
	const lineHeight = 16

	rec.FillRect(uidraw.R(0, 0, w, h), 0, background)

	// Window with title bar.
	win := uidraw.R(16, 16, w-32, h-32)
	rec.FillRectMultiColor(uidraw.R(win.X, win.Y, win.W, 24), accent, accent, panel, panel)
	rec.DrawText(uidraw.R(win.X+8, win.Y+4, win.W-16, lineHeight), "uidraw demo", font, uidraw.Transparent, text, lineHeight)
	rec.FillRect(uidraw.R(win.X, win.Y+24, win.W, win.H-24), 0, panel)
	rec.StrokeRect(win, 0, 1, border)

	// Widgets are clipped to the window body.
	body := uidraw.R(win.X+8, win.Y+32, win.W-16, win.H-40)
	rec.PushScissor(body)

	y := body.Y
	rec.FillRect(uidraw.R(body.X, y, 96, 24), 4, accent)
	rec.DrawText(uidraw.R(body.X+12, y+4, 80, lineHeight), "Button", font, uidraw.Transparent, text, lineHeight)

	rec.StrokeCircle(uidraw.R(body.X+112, y+4, 16, 16), 1, text)
	rec.FillCircle(uidraw.R(body.X+116, y+8, 8, 8), accent)
	rec.DrawText(uidraw.R(body.X+134, y+4, 80, lineHeight), "Option", font, uidraw.Transparent, text, lineHeight)

	rec.StrokeRect(uidraw.R(body.X+220, y+4, 16, 16), 2, 1, text)
	rec.StrokePolyline([]uidraw.Vec2{
		uidraw.V2(body.X+223, y+12), uidraw.V2(body.X+227, y+16), uidraw.V2(body.X+233, y+7),
	}, 2, accent)

	// Slider.
	y += 36
	rec.FillRect(uidraw.R(body.X, y+10, 200, 4), 2, border)
	rec.FillRect(uidraw.R(body.X, y+10, 120, 4), 2, accent)
	rec.FillCircle(uidraw.R(body.X+112, y+4, 16, 16), text)

	// Image and a pie chart.
	y += 32
	rec.DrawImage(uidraw.R(body.X, y, 64, 64), uidraw.ImageHandle(checkerTexture), uidraw.White)
	center := uidraw.V2(body.X+120, y+32)
	slices := []uidraw.Color{accent, uidraw.RGB(220, 80, 60), uidraw.RGB(90, 180, 90)}
	a0 := float32(0)
	for i, share := range []float32{0.5, 0.3, 0.2} {
		a1 := a0 + share*2*math32.Pi
		rec.FillArc(center, 30, a0, a1, slices[i])
		a0 = a1
	}
	rec.StrokeCircle(uidraw.R(center.X-30, center.Y-30, 60, 60), 1, border)

	// Line chart.
	chart := uidraw.R(body.X+170, y, 160, 64)
	rec.StrokeRect(chart, 0, 1, border)
	pts := make([]uidraw.Vec2, 0, 16)
	for i := range 16 {
		x := chart.X + float32(i)*chart.W/15
		pts = append(pts, uidraw.V2(x, chart.Y+chart.H/2-math32.Sin(float32(i)*0.6)*chart.H/3))
	}
	rec.StrokePolyline(pts, 1.5, uidraw.RGB(220, 180, 60))
	rec.StrokeCurve(
		uidraw.V2(chart.X, chart.Y+chart.H),
		uidraw.V2(chart.X+chart.W/3, chart.Y),
		uidraw.V2(chart.X+2*chart.W/3, chart.Y+chart.H),
		uidraw.V2(chart.X+chart.W, chart.Y),
		1, accent)

	// Status line with a triangle marker.
	y += 76
	rec.FillTriangle(uidraw.V2(body.X, y), uidraw.V2(body.X+10, y+6), uidraw.V2(body.X, y+12), accent)
	rec.FillPolygon([]uidraw.Vec2{
		uidraw.V2(body.X+16, y), uidraw.V2(body.X+28, y), uidraw.V2(body.X+32, y+6),
		uidraw.V2(body.X+28, y+12), uidraw.V2(body.X+16, y+12),
	}, border)
	rec.StrokeLine(uidraw.V2(body.X+40, y+6), uidraw.V2(body.X+body.W, y+6), 1, border)
	rec.DrawText(uidraw.R(body.X+44, y-8, 200, lineHeight), "ready", font, panel, text, lineHeight)
}

// checker returns a w×h two-tone checkerboard.
func checker(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	light := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	dark := color.RGBA{R: 120, G: 120, B: 120, A: 255}
	for y := range h {
		for x := range w {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}
