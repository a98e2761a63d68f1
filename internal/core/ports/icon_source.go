// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/iconpick/internal/core/domain"

// IconSource is the validated, frozen view of one bundled icon library.
//
//go:generate mockgen -source=icon_source.go -destination=mocks/mock_icon_source.go -package=mocks
type IconSource interface {
	// Library returns the library this source serves.
	Library() domain.LibraryID

	// Names returns every valid icon name, sorted ascending and free of duplicates.
	// Callers must not modify the returned slice.
	Names() []domain.IconName

	// Contains reports whether name is a valid icon of this source.
	Contains(name domain.IconName) bool

	// Render turns name into a drawable descriptor at the given size.
	// It returns false for names the source does not know.
	Render(name domain.IconName, size int) (domain.RenderableIcon, bool)

	// Keywords returns the search keywords of name, nil for unknown names.
	Keywords(name domain.IconName) []string
}

// Catalog aggregates the icon sources of every bundled library.
type Catalog interface {
	// Libraries returns the libraries that have a registered source, in display order.
	Libraries() []domain.LibraryID

	// Names returns the icon names of lib. Unknown libraries yield nil.
	Names(lib domain.LibraryID) []domain.IconName

	// Render dispatches to the source of lib. Unknown libraries and names yield false.
	Render(lib domain.LibraryID, name domain.IconName, size int) (domain.RenderableIcon, bool)

	// Keywords returns the search keywords of name in lib.
	Keywords(lib domain.LibraryID, name domain.IconName) []string

	// Fingerprint returns a stable digest of the names of lib.
	Fingerprint(lib domain.LibraryID) uint64
}
