package uidraw

// Image references a texture, optionally restricted to a sub-region.
// W and H are the full texture size in pixels; Region is (x, y, w, h)
// within it. An image is a sub-image only when both W and H are set.
type Image struct {
	Handle Handle
	W, H   uint16
	Region [4]uint16
}

// ImageHandle returns an Image covering the whole texture.
func ImageHandle(h Handle) Image {
	return Image{Handle: h}
}

// SubImage returns an Image covering region of a w×h texture.
func SubImage(h Handle, w, hgt uint16, region [4]uint16) Image {
	return Image{Handle: h, W: w, H: hgt, Region: region}
}

// IsSubimage reports whether img declares a texture size and thus a region.
func (img Image) IsSubimage() bool {
	return img.W != 0 && img.H != 0
}

// NullTexture names the 1x1 opaque-white texel used for untextured
// geometry, so flat and textured primitives share one pipeline.
type NullTexture struct {
	Texture Handle
	UV      Vec2
}
