package domain

import "strings"

// DefaultIconSize is the edge length used when a render request carries no usable size.
const DefaultIconSize = 24

// IconName is the stable external identifier of an icon inside its library.
type IconName string

// String returns the icon name.
func (n IconName) String() string {
	return string(n)
}

// Valid reports whether the name may be used as an identifier.
// A valid name is non-empty and never contains the selection separator.
func (n IconName) Valid() bool {
	return n != "" && !strings.Contains(string(n), SelectionSeparator)
}

// RenderKind tags the representation carried by a RenderableIcon.
type RenderKind uint8

const (
	// KindNone marks the zero RenderableIcon.
	KindNone RenderKind = iota
	// KindComponent marks a structured list of vector elements.
	KindComponent
	// KindPath marks a single raw path-data string.
	KindPath
)

// String returns a readable label for the kind.
func (k RenderKind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindPath:
		return "path"
	default:
		return "none"
	}
}

// Attr is one attribute of a vector element. Order is preserved from the manifest.
type Attr struct {
	Key   string
	Value string
}

// Node is a single vector element of a component icon, e.g. a path or a circle.
type Node struct {
	Tag   string
	Attrs []Attr
}

// RenderableIcon is a drawable descriptor produced by the source that owns the icon.
// Exactly one of Nodes (KindComponent) or Path (KindPath) is populated.
type RenderableIcon struct {
	Library LibraryID
	Name    IconName
	Kind    RenderKind
	Size    int
	Nodes   []Node
	Path    string
}

// IsZero reports whether the descriptor is the absent value.
func (r RenderableIcon) IsZero() bool {
	return r.Kind == KindNone
}

// NormalizeSize maps non-positive sizes to DefaultIconSize.
func NormalizeSize(size int) int {
	if size <= 0 {
		return DefaultIconSize
	}
	return size
}
