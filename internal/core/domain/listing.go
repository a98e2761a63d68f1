package domain

// Listing is one materialized window of a filtered library.
type Listing struct {
	Library LibraryID
	Query   string
	// Total is the number of matching icons, Names the materialized prefix.
	Total int
	Names []IconName
}

// Selections returns the stored values of the listed icons.
func (l Listing) Selections() []string {
	values := make([]string, len(l.Names))
	for i, name := range l.Names {
		values[i] = EncodeSelection(NewSelection(l.Library, name))
	}
	return values
}

// LibraryInfo summarizes one library of the catalog.
type LibraryInfo struct {
	Library     LibraryID
	Count       int
	Fingerprint uint64
}
