package drawlist

import "github.com/gogpu/uidraw"

// pushBatch opens a new batch starting at the current index count.
func (c *Compiler) pushBatch(clip uidraw.Rect, tex uidraw.Handle) {
	c.out.Batches.Push(Batch{
		ElementCount: uint32(c.out.Indices.Len()),
		Clip:         clip,
		Texture:      tex,
	})
	c.clip = clip
}

// lastBatch returns the active batch and whether it holds no indices yet.
func (c *Compiler) lastBatch() (last *Batch, empty bool) {
	batches := c.out.Batches.Elements()
	n := len(batches)
	if n == 0 {
		return nil, false
	}
	var prev uint32
	if n > 1 {
		prev = batches[n-2].ElementCount
	}
	last = &batches[n-1]
	return last, last.ElementCount == prev
}

// addClip makes r the clip of subsequent geometry.
func (c *Compiler) addClip(r uidraw.Rect) {
	last, empty := c.lastBatch()
	switch {
	case last == nil:
		c.pushBatch(r, c.cfg.Null.Texture)
	case empty:
		last.Clip = r
		c.clip = r
	case last.Clip != r:
		c.pushBatch(r, last.Texture)
	}
}

// pushImage makes tex the texture of subsequent geometry.
func (c *Compiler) pushImage(tex uidraw.Handle) {
	last, empty := c.lastBatch()
	switch {
	case last == nil:
		c.pushBatch(uidraw.NullRect, tex)
	case empty:
		last.Texture = tex
	case last.Texture != tex:
		c.pushBatch(last.Clip, tex)
	}
}

// commit records the current index count in the active batch.
func (c *Compiler) commit() {
	if last := c.out.Batches.Last(); last != nil {
		last.ElementCount = uint32(c.out.Indices.Len())
	}
}
