package vertex

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is wrapped by every error NewLayout returns.
var ErrInvalidLayout = errors.New("vertex: invalid layout")

// LayoutError describes why a layout was rejected.
type LayoutError struct {
	// Index is the offending element, or -1 for layout-wide problems.
	Index  int
	Reason string
}

func (e *LayoutError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("vertex: invalid layout: %s", e.Reason)
	}
	return fmt.Sprintf("vertex: invalid layout: element %d: %s", e.Index, e.Reason)
}

// Unwrap returns ErrInvalidLayout.
func (e *LayoutError) Unwrap() error { return ErrInvalidLayout }

// Element places one attribute at a byte offset within a vertex.
type Element struct {
	Attribute Attribute
	Format    Format
	Offset    int
}

// Layout describes how one vertex is stored. Elements are written in
// order; attributes absent from the layout are not written.
//
// A Layout is immutable once built. Use NewLayout to construct one.
type Layout struct {
	elements []Element
	stride   int
}

// NewLayout validates elements against stride and returns the layout.
//
// Color formats are only accepted on the Color attribute and numeric
// formats only on Position and TexCoord. Each attribute may appear once,
// every element must fit in the stride and no two elements may share bytes.
func NewLayout(stride int, elems ...Element) (Layout, error) {
	if stride <= 0 {
		return Layout{}, &LayoutError{Index: -1, Reason: fmt.Sprintf("stride %d must be positive", stride)}
	}
	if len(elems) == 0 {
		return Layout{}, &LayoutError{Index: -1, Reason: "no elements"}
	}

	var seen [attributeCount]bool
	for i, e := range elems {
		if e.Attribute >= attributeCount {
			return Layout{}, &LayoutError{Index: i, Reason: fmt.Sprintf("unknown attribute %d", e.Attribute)}
		}
		if !e.Format.Valid() {
			return Layout{}, &LayoutError{Index: i, Reason: fmt.Sprintf("unknown format %d", e.Format)}
		}
		if seen[e.Attribute] {
			return Layout{}, &LayoutError{Index: i, Reason: fmt.Sprintf("duplicate %v attribute", e.Attribute)}
		}
		seen[e.Attribute] = true

		if (e.Attribute == Color) != e.Format.IsColor() {
			return Layout{}, &LayoutError{Index: i, Reason: fmt.Sprintf("format %v not allowed for %v", e.Format, e.Attribute)}
		}
		if e.Offset < 0 || e.Offset+e.Format.Size() > stride {
			return Layout{}, &LayoutError{Index: i, Reason: fmt.Sprintf("%v at offset %d (%d bytes) exceeds stride %d",
				e.Attribute, e.Offset, e.Format.Size(), stride)}
		}
		for j := 0; j < i; j++ {
			o := elems[j]
			if e.Offset < o.Offset+o.Format.Size() && o.Offset < e.Offset+e.Format.Size() {
				return Layout{}, &LayoutError{Index: i, Reason: fmt.Sprintf("%v overlaps %v", e.Attribute, o.Attribute)}
			}
		}
	}

	l := Layout{elements: make([]Element, len(elems)), stride: stride}
	copy(l.elements, elems)
	return l, nil
}

// MustLayout is like NewLayout but panics on error.
// It is intended for package-level layout definitions.
func MustLayout(stride int, elems ...Element) Layout {
	l, err := NewLayout(stride, elems...)
	if err != nil {
		panic(err)
	}
	return l
}

// Stride returns the byte distance between consecutive vertices.
func (l Layout) Stride() int { return l.stride }

// Elements returns a copy of the layout elements.
func (l Layout) Elements() []Element {
	out := make([]Element, len(l.elements))
	copy(out, l.elements)
	return out
}

// Element returns the element for attribute a.
func (l Layout) Element(a Attribute) (Element, bool) {
	for _, e := range l.elements {
		if e.Attribute == a {
			return e, true
		}
	}
	return Element{}, false
}

// IsZero reports whether l is the zero Layout.
func (l Layout) IsZero() bool { return l.stride == 0 }

func (l Layout) String() string {
	s := fmt.Sprintf("stride=%d", l.stride)
	for _, e := range l.elements {
		s += fmt.Sprintf(" %v:%v@%d", e.Attribute, e.Format, e.Offset)
	}
	return s
}
