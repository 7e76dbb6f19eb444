package vertex

import (
	"sort"
	"sync"
)

// Registry of named layouts, following the database/sql driver pattern:
// layouts register themselves at init and are looked up by name, so
// configuration files can refer to a layout by name.
var (
	registryMu sync.RWMutex
	layouts    = make(map[string]Layout)
)

// Built-in layout names.
const (
	// PTCFloat is position float2, texcoord float2, color float4; stride 32.
	PTCFloat = "ptc-float"
	// PTCRGBA8 is position float2, texcoord float2, color R8G8B8A8; stride 20.
	PTCRGBA8 = "ptc-rgba8"
)

func init() {
	Register(PTCFloat, MustLayout(32,
		Element{Attribute: Position, Format: Float, Offset: 0},
		Element{Attribute: TexCoord, Format: Float, Offset: 8},
		Element{Attribute: Color, Format: R32G32B32A32Float, Offset: 16},
	))
	Register(PTCRGBA8, MustLayout(20,
		Element{Attribute: Position, Format: Float, Offset: 0},
		Element{Attribute: TexCoord, Format: Float, Offset: 8},
		Element{Attribute: Color, Format: R8G8B8A8, Offset: 16},
	))
}

// Register makes a layout available by name.
// If Register is called twice with the same name or with a zero layout,
// it panics.
func Register(name string, l Layout) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if l.IsZero() {
		panic("vertex: Register layout is zero")
	}
	if _, dup := layouts[name]; dup {
		panic("vertex: Register called twice for layout " + name)
	}
	layouts[name] = l
}

// Lookup returns the layout registered under name.
func Lookup(name string) (Layout, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	l, ok := layouts[name]
	return l, ok
}

// Names returns a sorted list of registered layout names.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unregister removes a layout from the registry.
// If no layout is registered under name, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(layouts, name)
}
