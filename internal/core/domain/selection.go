package domain

import "strings"

// SelectionSeparator joins the library token and the icon name in a stored value.
const SelectionSeparator = ":"

// Selection is the editor's chosen icon. The zero value means "no icon chosen".
type Selection struct {
	Library LibraryID
	Name    IconName
}

// NewSelection builds a selection for the given pair.
func NewSelection(lib LibraryID, name IconName) Selection {
	return Selection{Library: lib, Name: name}
}

// IsZero reports whether no icon is selected.
func (s Selection) IsZero() bool {
	return s.Library == "" && s.Name == ""
}

// String returns the stored representation, see EncodeSelection.
func (s Selection) String() string {
	return EncodeSelection(s)
}

// EncodeSelection returns the stored field value for sel: "" when absent,
// "library:name" otherwise.
func EncodeSelection(sel Selection) string {
	if sel.IsZero() {
		return ""
	}
	return string(sel.Library) + SelectionSeparator + string(sel.Name)
}

// DecodeSelection parses a stored field value. It never fails: empty, malformed
// and unknown-library values all decode to the absent selection, so stale content
// keeps loading. Whether the name still exists in the library is not checked here.
func DecodeSelection(value string) Selection {
	if value == "" {
		return Selection{}
	}

	token, rest, found := strings.Cut(value, SelectionSeparator)
	if !found || token == "" || rest == "" {
		return Selection{}
	}

	lib, ok := ParseLibraryID(token)
	if !ok {
		return Selection{}
	}

	name := IconName(rest)
	if !name.Valid() {
		return Selection{}
	}

	return Selection{Library: lib, Name: name}
}
