// Package glyph bakes font.Face glyphs into a single alpha texture and
// serves them through the uidraw.Font interface.
//
// An [Atlas] is built once per face and size. Glyph lookups at other
// pixel heights scale the baked quad and are memoized in an LRU cache.
// The atlas also reserves one opaque texel, so a frontend with a single
// texture can point drawlist.Config.Null at it:
//
//	atlas, err := glyph.Default(uidraw.HandleID(1))
//	if err != nil {
//	    return err
//	}
//	cfg := drawlist.DefaultConfig()
//	cfg.Null = atlas.NullTexture()
//	upload(atlas.Texture(), atlas.Image())
package glyph
