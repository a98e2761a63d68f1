// Package domain holds the value types shared by the icon catalog, the selection codec
// and the picker.
package domain

// LibraryID identifies one of the bundled icon libraries.
// The set is closed: adding a library requires code, not data.
type LibraryID string

const (
	// LibraryLucide is the component-based outline icon library.
	LibraryLucide LibraryID = "lucide"
	// LibraryDuo is the path-string based duotone icon library.
	LibraryDuo LibraryID = "duo"
)

// Libraries returns every bundled library in display order.
func Libraries() []LibraryID {
	return []LibraryID{LibraryLucide, LibraryDuo}
}

// ParseLibraryID matches a token against the known libraries.
// Matching is case-sensitive: "Lucide" is not a library.
func ParseLibraryID(token string) (LibraryID, bool) {
	switch LibraryID(token) {
	case LibraryLucide:
		return LibraryLucide, true
	case LibraryDuo:
		return LibraryDuo, true
	default:
		return "", false
	}
}

// Known reports whether the id names a bundled library.
func (id LibraryID) Known() bool {
	_, ok := ParseLibraryID(string(id))
	return ok
}

// String returns the library token.
func (id LibraryID) String() string {
	return string(id)
}

// Next returns the library following id in display order, wrapping around.
// Unknown ids yield the first library.
func (id LibraryID) Next() LibraryID {
	libs := Libraries()
	for i, lib := range libs {
		if lib == id {
			return libs[(i+1)%len(libs)]
		}
	}
	return libs[0]
}
