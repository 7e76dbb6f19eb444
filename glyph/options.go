package glyph

import "github.com/gogpu/uidraw"

// Option configures atlas creation.
type Option func(*atlasConfig)

type atlasConfig struct {
	handle    uidraw.Handle
	runes     []rune
	width     int
	maxHeight int
	padding   int
	cacheSize int
}

func defaultAtlasConfig() atlasConfig {
	return atlasConfig{
		runes:     DefaultRunes(),
		width:     256,
		maxHeight: 4096,
		padding:   1,
		cacheSize: 512,
	}
}

// DefaultRunes returns printable ASCII followed by printable Latin-1.
func DefaultRunes() []rune {
	rs := make([]rune, 0, 95+96)
	for r := rune(0x20); r <= 0x7e; r++ {
		rs = append(rs, r)
	}
	for r := rune(0xa0); r <= 0xff; r++ {
		rs = append(rs, r)
	}
	return rs
}

// WithHandle sets the texture handle the atlas reports. The frontend
// uploads Atlas.Image under this handle.
func WithHandle(h uidraw.Handle) Option {
	return func(c *atlasConfig) {
		c.handle = h
	}
}

// WithRunes replaces the set of code points baked into the atlas.
func WithRunes(rs ...rune) Option {
	return func(c *atlasConfig) {
		c.runes = rs
	}
}

// WithWidth sets the atlas width in pixels. The height is chosen to fit.
func WithWidth(w int) Option {
	return func(c *atlasConfig) {
		if w > 0 {
			c.width = w
		}
	}
}

// WithPadding sets the empty border between glyphs.
func WithPadding(p int) Option {
	return func(c *atlasConfig) {
		if p >= 0 {
			c.padding = p
		}
	}
}

// WithCacheSize sets how many scaled glyphs are memoized.
func WithCacheSize(n int) Option {
	return func(c *atlasConfig) {
		if n > 0 {
			c.cacheSize = n
		}
	}
}
