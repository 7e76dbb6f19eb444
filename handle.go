package uidraw

import "fmt"

// HandleKind tells which representation a Handle carries.
type HandleKind uint8

const (
	// HandleNone is the zero Handle.
	HandleNone HandleKind = iota
	// HandleKindID is a numeric texture identifier.
	HandleKindID
	// HandleKindPtr is an address-sized token owned by the backend.
	HandleKindPtr
)

// Handle is an opaque texture reference. uidraw never dereferences it;
// it only compares handles with == for batching and passes them on.
type Handle struct {
	kind HandleKind
	id   uint32
	ptr  uintptr
}

// HandleID returns a Handle wrapping a numeric texture identifier.
func HandleID(id uint32) Handle {
	return Handle{kind: HandleKindID, id: id}
}

// HandlePtr returns a Handle wrapping an address-sized token.
func HandlePtr(p uintptr) Handle {
	return Handle{kind: HandleKindPtr, ptr: p}
}

// Kind returns the handle representation.
func (h Handle) Kind() HandleKind { return h.kind }

// ID returns the numeric identifier and whether h holds one.
func (h Handle) ID() (uint32, bool) {
	return h.id, h.kind == HandleKindID
}

// Ptr returns the token and whether h holds one.
func (h Handle) Ptr() (uintptr, bool) {
	return h.ptr, h.kind == HandleKindPtr
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.kind == HandleNone }

func (h Handle) String() string {
	switch h.kind {
	case HandleKindID:
		return fmt.Sprintf("id:%d", h.id)
	case HandleKindPtr:
		return fmt.Sprintf("ptr:%#x", h.ptr)
	default:
		return "none"
	}
}
