package glyph

import (
	"errors"
	"fmt"
	"image"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/uidraw"
)

// ErrAtlasFull is returned when the requested glyphs do not fit.
var ErrAtlasFull = errors.New("glyph: atlas full")

// Atlas is a single-texture glyph atlas baked from a font.Face at one
// size. It implements uidraw.Font; other sizes are served by scaling the
// baked quads, which keeps one texture per face.
//
// An Atlas is immutable after creation and safe for concurrent use.
type Atlas struct {
	handle  uidraw.Handle
	img     *image.Alpha
	height  float32 // baked line height, ascent plus descent
	ascent  float32
	descent float32
	white   uidraw.Vec2
	glyphs  map[rune]baked
	cache   *lru.Cache
}

// baked is a glyph at the baked size.
type baked struct {
	rect    image.Rectangle // in atlas pixels, empty for blank glyphs
	offset  uidraw.Vec2
	advance float32
}

type cacheKey struct {
	height float32
	r      rune
}

type cacheEntry struct {
	g  uidraw.Glyph
	ok bool
}

// NewAtlas rasterizes the configured runes of face into a new atlas.
// Runes the face has no glyph for are left out. The top-left pixel of the
// atlas is opaque and serves as the null texture for untextured geometry.
func NewAtlas(face font.Face, opts ...Option) (*Atlas, error) {
	if face == nil {
		return nil, errors.New("glyph: nil face")
	}
	cfg := defaultAtlasConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cache, err := lru.New(cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("glyph: create cache: %w", err)
	}

	m := face.Metrics()
	a := &Atlas{
		handle:  cfg.handle,
		ascent:  fix(m.Ascent),
		descent: fix(m.Descent),
		glyphs:  make(map[rune]baked, len(cfg.runes)),
		cache:   cache,
	}
	a.height = a.ascent + a.descent
	if a.height <= 0 {
		return nil, errors.New("glyph: face has no vertical extent")
	}

	packer := newShelfPacker(cfg.width, cfg.maxHeight, cfg.padding)
	canvas := image.NewAlpha(image.Rect(0, 0, cfg.width, cfg.maxHeight))

	whitePos, ok := packer.alloc(1, 1)
	if !ok {
		return nil, fmt.Errorf("%w: no room for the white pixel", ErrAtlasFull)
	}
	canvas.Pix[canvas.PixOffset(whitePos.X, whitePos.Y)] = 0xff

	for _, r := range cfg.runes {
		if _, dup := a.glyphs[r]; dup {
			continue
		}
		// The mask is only valid until the next call to Glyph.
		dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}
		b := baked{
			offset:  uidraw.V2(float32(dr.Min.X), float32(-dr.Min.Y)),
			advance: fix(advance),
		}
		if !dr.Empty() {
			pos, ok := packer.alloc(dr.Dx(), dr.Dy())
			if !ok {
				return nil, fmt.Errorf("%w: rune %q (%dx%d) in %d pixels wide atlas",
					ErrAtlasFull, r, dr.Dx(), dr.Dy(), cfg.width)
			}
			b.rect = image.Rectangle{Min: pos, Max: pos.Add(dr.Size())}
			draw.DrawMask(canvas, b.rect, image.Opaque, image.Point{}, mask, maskp, draw.Over)
		}
		a.glyphs[r] = b
	}

	a.img = crop(canvas, packer.used())
	size := a.img.Bounds().Size()
	a.white = uidraw.V2(
		(float32(whitePos.X)+0.5)/float32(size.X),
		(float32(whitePos.Y)+0.5)/float32(size.Y))

	uidraw.Logger().Info("glyph: atlas built",
		"glyphs", len(a.glyphs),
		"width", size.X,
		"height", size.Y,
		"lineHeight", a.height)
	return a, nil
}

// crop copies the top h rows of canvas into a right-sized image whose
// height is rounded up to a power of two.
func crop(canvas *image.Alpha, h int) *image.Alpha {
	h = max(h, 1)
	pot := 1
	for pot < h {
		pot <<= 1
	}
	w := canvas.Bounds().Dx()
	img := image.NewAlpha(image.Rect(0, 0, w, pot))
	copy(img.Pix, canvas.Pix[:min(len(canvas.Pix), w*h)])
	return img
}

func fix(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Texture implements uidraw.Font.
func (a *Atlas) Texture() uidraw.Handle { return a.handle }

// Image returns the atlas pixels for upload. It must not be modified.
func (a *Atlas) Image() *image.Alpha { return a.img }

// NullTexture returns the atlas's opaque texel, suitable for
// drawlist.Config.Null when the atlas is the only texture in use.
func (a *Atlas) NullTexture() uidraw.NullTexture {
	return uidraw.NullTexture{Texture: a.handle, UV: a.white}
}

// Len returns the number of baked glyphs.
func (a *Atlas) Len() int { return len(a.glyphs) }

// LineHeight returns the baked ascent plus descent in pixels.
func (a *Atlas) LineHeight() float32 { return a.height }

// Metrics implements uidraw.Font.
func (a *Atlas) Metrics(height float32) uidraw.FontMetrics {
	s := height / a.height
	return uidraw.FontMetrics{
		Height:    height,
		Ascender:  a.ascent * s,
		Descender: -a.descent * s,
	}
}

// Glyph implements uidraw.Font.
func (a *Atlas) Glyph(height float32, r rune) (uidraw.Glyph, bool) {
	key := cacheKey{height: height, r: r}
	if v, ok := a.cache.Get(key); ok {
		e := v.(cacheEntry)
		return e.g, e.ok
	}

	b, ok := a.glyphs[r]
	var g uidraw.Glyph
	if ok {
		g = a.scale(b, height/a.height)
	}
	a.cache.Add(key, cacheEntry{g: g, ok: ok})
	return g, ok
}

func (a *Atlas) scale(b baked, s float32) uidraw.Glyph {
	size := a.img.Bounds().Size()
	w, h := float32(size.X), float32(size.Y)
	return uidraw.Glyph{
		UV0:     uidraw.V2(float32(b.rect.Min.X)/w, float32(b.rect.Min.Y)/h),
		UV1:     uidraw.V2(float32(b.rect.Max.X)/w, float32(b.rect.Max.Y)/h),
		Offset:  b.offset.Scale(s),
		Width:   float32(b.rect.Dx()) * s,
		Height:  float32(b.rect.Dy()) * s,
		Advance: b.advance * s,
	}
}
