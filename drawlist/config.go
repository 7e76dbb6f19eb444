package drawlist

import (
	"errors"
	"fmt"
	"io"

	"github.com/chewxy/math32"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/uidraw"
	"github.com/gogpu/uidraw/vertex"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("drawlist: invalid config")

// Config controls how commands are tessellated and serialized.
type Config struct {
	// GlobalAlpha scales the alpha of every color, in [0, 1].
	GlobalAlpha float32

	// LineAA and ShapeAA enable anti-aliased placement for strokes and
	// filled rectangles. With AA off, geometry is shifted by half a pixel
	// so edges land on pixel centers.
	LineAA  bool
	ShapeAA bool

	// Segment counts used to flatten circles, arcs and curves.
	CircleSegments int
	ArcSegments    int
	CurveSegments  int

	// Null is the white texel sampled by untextured geometry.
	Null uidraw.NullTexture

	// Layout describes the vertex bytes written to Output.Vertices.
	Layout vertex.Layout
}

// DefaultConfig returns the configuration used when none is given:
// opaque, anti-aliased, 22 segments per curve, "ptc-float" vertices and
// a null texture at UV (0, 0) of texture id 0.
func DefaultConfig() Config {
	layout, _ := vertex.Lookup(vertex.PTCFloat)
	return Config{
		GlobalAlpha:    1,
		LineAA:         true,
		ShapeAA:        true,
		CircleSegments: 22,
		ArcSegments:    22,
		CurveSegments:  22,
		Null:           uidraw.NullTexture{Texture: uidraw.HandleID(0)},
		Layout:         layout,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case math32.IsNaN(c.GlobalAlpha) || c.GlobalAlpha < 0 || c.GlobalAlpha > 1:
		return fmt.Errorf("%w: global alpha %v out of [0, 1]", ErrInvalidConfig, c.GlobalAlpha)
	case c.CircleSegments < 3:
		return fmt.Errorf("%w: circle segments %d < 3", ErrInvalidConfig, c.CircleSegments)
	case c.ArcSegments < 1:
		return fmt.Errorf("%w: arc segments %d < 1", ErrInvalidConfig, c.ArcSegments)
	case c.CurveSegments < 1:
		return fmt.Errorf("%w: curve segments %d < 1", ErrInvalidConfig, c.CurveSegments)
	case c.Layout.IsZero():
		return fmt.Errorf("%w: no vertex layout", ErrInvalidConfig)
	}
	if _, ok := c.Layout.Element(vertex.Position); !ok {
		return fmt.Errorf("%w: layout %v has no position", ErrInvalidConfig, c.Layout)
	}
	return nil
}

// FileConfig is the TOML form of Config. The vertex layout is referred to
// by its registered name.
//
//	global_alpha = 0.9
//	line_aa = false
//	circle_segments = 32
//	layout = "ptc-rgba8"
//	null_texture = 1
//	null_uv = [0.0, 0.0]
type FileConfig struct {
	GlobalAlpha    float32    `toml:"global_alpha"`
	LineAA         bool       `toml:"line_aa"`
	ShapeAA        bool       `toml:"shape_aa"`
	CircleSegments int        `toml:"circle_segments"`
	ArcSegments    int        `toml:"arc_segments"`
	CurveSegments  int        `toml:"curve_segments"`
	Layout         string     `toml:"layout"`
	NullTexture    uint32     `toml:"null_texture"`
	NullUV         [2]float32 `toml:"null_uv"`
}

// DefaultFileConfig mirrors DefaultConfig.
func DefaultFileConfig() FileConfig {
	d := DefaultConfig()
	return FileConfig{
		GlobalAlpha:    d.GlobalAlpha,
		LineAA:         d.LineAA,
		ShapeAA:        d.ShapeAA,
		CircleSegments: d.CircleSegments,
		ArcSegments:    d.ArcSegments,
		CurveSegments:  d.CurveSegments,
		Layout:         vertex.PTCFloat,
	}
}

// Config resolves the layout name and validates the result.
func (fc FileConfig) Config() (Config, error) {
	layout, ok := vertex.Lookup(fc.Layout)
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown layout %q (registered: %v)", ErrInvalidConfig, fc.Layout, vertex.Names())
	}
	cfg := Config{
		GlobalAlpha:    fc.GlobalAlpha,
		LineAA:         fc.LineAA,
		ShapeAA:        fc.ShapeAA,
		CircleSegments: fc.CircleSegments,
		ArcSegments:    fc.ArcSegments,
		CurveSegments:  fc.CurveSegments,
		Null: uidraw.NullTexture{
			Texture: uidraw.HandleID(fc.NullTexture),
			UV:      uidraw.V2(fc.NullUV[0], fc.NullUV[1]),
		},
		Layout: layout,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig decodes a TOML document into a Config. Keys that are absent
// keep their DefaultConfig value; unknown keys are an error.
func LoadConfig(r io.Reader) (Config, error) {
	fc := DefaultFileConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return Config{}, fmt.Errorf("drawlist: decode config: %w", err)
	}
	return fc.Config()
}
