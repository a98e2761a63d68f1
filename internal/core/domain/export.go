package domain

// ExportKind classifies a raw symbol exported by a bundled icon library.
type ExportKind string

const (
	// ExportComponent is a renderable component built from vector nodes.
	ExportComponent ExportKind = "component"
	// ExportPath is a raw path-data string.
	ExportPath ExportKind = "path"
	// ExportFunction is a helper such as an icon factory.
	ExportFunction ExportKind = "function"
	// ExportType is a type-only export.
	ExportType ExportKind = "type"
	// ExportObject is an aggregate such as a name-to-icon map.
	ExportObject ExportKind = "object"
	// ExportNull is an export whose value is absent.
	ExportNull ExportKind = "null"
)

// Export is one entry of a library's export table, before any validation.
// Sources decide which exports are icons; nothing else should interpret them.
// Tags are the search keywords the library publishes alongside an icon.
type Export struct {
	Name  string
	Kind  ExportKind
	Nodes []Node
	Path  string
	Tags  []string
}
