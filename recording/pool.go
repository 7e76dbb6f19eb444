package recording

import "github.com/gogpu/uidraw"

// pointPool stores the points of every polygon and polyline recorded in a
// frame in one backing slice, so recording a frame does not allocate per
// command once the pool has warmed up.
//
// Slices handed out are capped at their length; appending to one never
// writes into a neighbour. After reset the storage is reused, so points of
// commands recorded before the reset are overwritten by later frames.
type pointPool struct {
	points []uidraw.Vec2i
}

func newPointPool(capacity int) pointPool {
	return pointPool{points: make([]uidraw.Vec2i, 0, capacity)}
}

// add converts pts to 16-bit pixel space and returns the pooled copy.
func (p *pointPool) add(pts []uidraw.Vec2) []uidraw.Vec2i {
	start := len(p.points)
	for _, v := range pts {
		p.points = append(p.points, toVec2i(v))
	}
	return p.points[start:len(p.points):len(p.points)]
}

func (p *pointPool) reset() {
	p.points = p.points[:0]
}
