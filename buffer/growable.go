package buffer

// Growable is a slice-backed Buffer that reallocates as needed.
// The zero value is ready to use.
type Growable[E any] struct {
	data []E
}

// NewGrowable creates a Growable with room for capacity elements.
func NewGrowable[E any](capacity int) *Growable[E] {
	return &Growable[E]{data: make([]E, 0, capacity)}
}

// Len implements Buffer.
func (b *Growable[E]) Len() int { return len(b.data) }

// Cap implements Buffer.
func (b *Growable[E]) Cap() int { return cap(b.data) }

// Alloc implements Buffer.
func (b *Growable[E]) Alloc(n int) []E {
	start := len(b.data)
	if start+n > cap(b.data) {
		grown := make([]E, start, max(2*cap(b.data), start+n, 16))
		copy(grown, b.data)
		b.data = grown
	}
	b.data = b.data[:start+n]
	s := b.data[start:]
	clear(s)
	return s
}

// Push implements Buffer.
func (b *Growable[E]) Push(e E) {
	b.data = append(b.data, e)
}

// Clear implements Buffer.
func (b *Growable[E]) Clear() {
	b.data = b.data[:0]
}

// Elements implements Buffer.
func (b *Growable[E]) Elements() []E { return b.data }

// Last implements Buffer.
func (b *Growable[E]) Last() *E {
	if len(b.data) == 0 {
		return nil
	}
	return &b.data[len(b.data)-1]
}
