package buffer

// Fixed is a Buffer over a caller-provided slice that never reallocates.
// Writes past the slice capacity panic with *CapacityError.
type Fixed[E any] struct {
	what string
	data []E
}

// NewFixed wraps storage. The buffer starts empty and may hold up to
// cap(storage) elements. what names the buffer in capacity errors.
func NewFixed[E any](what string, storage []E) *Fixed[E] {
	return &Fixed[E]{what: what, data: storage[:0]}
}

// Len implements Buffer.
func (b *Fixed[E]) Len() int { return len(b.data) }

// Cap implements Buffer.
func (b *Fixed[E]) Cap() int { return cap(b.data) }

// Alloc implements Buffer.
func (b *Fixed[E]) Alloc(n int) []E {
	start := len(b.data)
	b.ensure(start + n)
	b.data = b.data[:start+n]
	s := b.data[start:]
	clear(s)
	return s
}

// Push implements Buffer.
func (b *Fixed[E]) Push(e E) {
	b.ensure(len(b.data) + 1)
	b.data = append(b.data, e)
}

// Clear implements Buffer.
func (b *Fixed[E]) Clear() {
	b.data = b.data[:0]
}

// Elements implements Buffer.
func (b *Fixed[E]) Elements() []E { return b.data }

// Last implements Buffer.
func (b *Fixed[E]) Last() *E {
	if len(b.data) == 0 {
		return nil
	}
	return &b.data[len(b.data)-1]
}

func (b *Fixed[E]) ensure(n int) {
	if n > cap(b.data) {
		panic(&CapacityError{What: b.what, Requested: n, Capacity: cap(b.data)})
	}
}
