package catalog

import (
	"sync"

	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/core/ports"
)

var _ ports.Catalog = (*Lazy)(nil)

// Lazy defers building the catalog until first access and then serves the same
// instance for the rest of the process. Concurrent first calls build once.
type Lazy struct {
	once  sync.Once
	build func() *Catalog
	cat   *Catalog
}

// NewLazy wraps build. A nil result from build is replaced by an empty catalog.
func NewLazy(build func() *Catalog) *Lazy {
	return &Lazy{build: build}
}

// Get returns the catalog, building it on the first call.
func (l *Lazy) Get() *Catalog {
	l.once.Do(func() {
		if l.build != nil {
			l.cat = l.build()
		}
		if l.cat == nil {
			l.cat = New()
		}
	})
	return l.cat
}

// Libraries delegates to the built catalog.
func (l *Lazy) Libraries() []domain.LibraryID {
	return l.Get().Libraries()
}

// Names delegates to the built catalog.
func (l *Lazy) Names(lib domain.LibraryID) []domain.IconName {
	return l.Get().Names(lib)
}

// Render delegates to the built catalog.
func (l *Lazy) Render(lib domain.LibraryID, name domain.IconName, size int) (domain.RenderableIcon, bool) {
	return l.Get().Render(lib, name, size)
}

// Keywords delegates to the built catalog.
func (l *Lazy) Keywords(lib domain.LibraryID, name domain.IconName) []string {
	return l.Get().Keywords(lib, name)
}

// Fingerprint delegates to the built catalog.
func (l *Lazy) Fingerprint(lib domain.LibraryID) uint64 {
	return l.Get().Fingerprint(lib)
}
