package glyph

import "image"

// shelfPacker places rectangles left to right on horizontal shelves.
// A shelf is as tall as the tallest rectangle placed on it; when a
// rectangle does not fit on any shelf a new one is opened below.
// Glyph masks of one face have similar heights, so little space is lost.
type shelfPacker struct {
	width, height int
	padding       int
	shelves       []shelf
}

type shelf struct {
	y, height int
	x         int // next free column
}

func newShelfPacker(width, height, padding int) *shelfPacker {
	return &shelfPacker{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// alloc reserves a w×h rectangle and returns its position.
func (p *shelfPacker) alloc(w, h int) (image.Point, bool) {
	pw, ph := w+p.padding, h+p.padding
	for i := range p.shelves {
		s := &p.shelves[i]
		if s.x+pw > p.width {
			continue
		}
		if h > s.height {
			// Only the last shelf can grow.
			if i != len(p.shelves)-1 || s.y+ph > p.height {
				continue
			}
			s.height = h
		}
		pos := image.Pt(s.x, s.y)
		s.x += pw
		return pos, true
	}

	y := 0
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		y = last.y + last.height + p.padding
	}
	if pw > p.width || y+ph > p.height {
		return image.Point{}, false
	}
	p.shelves = append(p.shelves, shelf{y: y, height: h, x: pw})
	return image.Pt(0, y), true
}

// used returns the height covered by shelves so far.
func (p *shelfPacker) used() int {
	n := len(p.shelves)
	if n == 0 {
		return 0
	}
	last := p.shelves[n-1]
	return last.y + last.height + p.padding
}
