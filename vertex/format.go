package vertex

// Attribute is the semantic of one vertex element.
type Attribute uint8

const (
	// Position is the 2-component vertex position.
	Position Attribute = iota
	// TexCoord is the 2-component texture coordinate.
	TexCoord
	// Color is the vertex color.
	Color

	attributeCount
)

var attributeNames = [...]string{
	Position: "Position",
	TexCoord: "TexCoord",
	Color:    "Color",
}

// String returns the attribute name.
func (a Attribute) String() string {
	if int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return "Unknown"
}

// Format is the encoding of one vertex element.
//
// Numeric formats (SChar through Double) apply to Position and TexCoord and
// encode two components of that type. Color formats apply to Color only.
type Format uint8

// Numeric formats come first, then color formats. Integer color channels
// are unsigned normalized: 0 maps to 0.0 and the type maximum to 1.0.
const (
	SChar Format = iota
	SShort
	SInt
	UChar
	UShort
	UInt
	Float
	Double

	colorBegin

	R8G8B8
	R16G16B16
	R32G32B32
	R8G8B8A8
	B8G8R8A8
	R16G16B16A16
	R32G32B32A32
	R32G32B32A32Float
	R32G32B32A32Double
	// RGB32 packs an opaque color into one uint32, R in the low byte.
	RGB32
	// RGBA32 packs a color into one uint32, R in the low byte.
	RGBA32

	formatCount
)

var formatNames = [...]string{
	SChar:              "SChar",
	SShort:             "SShort",
	SInt:               "SInt",
	UChar:              "UChar",
	UShort:             "UShort",
	UInt:               "UInt",
	Float:              "Float",
	Double:             "Double",
	R8G8B8:             "R8G8B8",
	R16G16B16:          "R16G16B16",
	R32G32B32:          "R32G32B32",
	R8G8B8A8:           "R8G8B8A8",
	B8G8R8A8:           "B8G8R8A8",
	R16G16B16A16:       "R16G16B16A16",
	R32G32B32A32:       "R32G32B32A32",
	R32G32B32A32Float:  "R32G32B32A32Float",
	R32G32B32A32Double: "R32G32B32A32Double",
	RGB32:              "RGB32",
	RGBA32:             "RGBA32",
}

// String returns the format name.
func (f Format) String() string {
	if int(f) < len(formatNames) && formatNames[f] != "" {
		return formatNames[f]
	}
	return "Unknown"
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f < formatCount && f != colorBegin
}

// IsColor reports whether f is a color format.
func (f Format) IsColor() bool {
	return f > colorBegin && f < formatCount
}

// ComponentSize returns the byte size of one component of a numeric format,
// or 0 for color and unknown formats.
func (f Format) ComponentSize() int {
	switch f {
	case SChar, UChar:
		return 1
	case SShort, UShort:
		return 2
	case SInt, UInt, Float:
		return 4
	case Double:
		return 8
	}
	return 0
}

// Size returns the number of bytes one element of format f occupies:
// two components for numeric formats, all channels for color formats.
// Unknown formats report 0.
func (f Format) Size() int {
	if c := f.ComponentSize(); c > 0 {
		return 2 * c
	}
	switch f {
	case R8G8B8:
		return 3
	case R8G8B8A8, B8G8R8A8, RGB32, RGBA32:
		return 4
	case R16G16B16:
		return 6
	case R16G16B16A16:
		return 8
	case R32G32B32:
		return 12
	case R32G32B32A32, R32G32B32A32Float:
		return 16
	case R32G32B32A32Double:
		return 32
	}
	return 0
}
