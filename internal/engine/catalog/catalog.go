package catalog

import (
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/core/ports"
)

var _ ports.Catalog = (*Catalog)(nil)

// Catalog aggregates one source per library. It is immutable once built.
type Catalog struct {
	sources      map[domain.LibraryID]ports.IconSource
	order        []domain.LibraryID
	fingerprints map[domain.LibraryID]uint64
}

// New builds a catalog from the given sources. A later source for the same
// library replaces an earlier one.
func New(sources ...ports.IconSource) *Catalog {
	c := &Catalog{
		sources:      make(map[domain.LibraryID]ports.IconSource, len(sources)),
		fingerprints: make(map[domain.LibraryID]uint64, len(sources)),
	}
	for _, src := range sources {
		if src == nil {
			continue
		}
		lib := src.Library()
		if _, seen := c.sources[lib]; !seen {
			c.order = append(c.order, lib)
		}
		c.sources[lib] = src
		c.fingerprints[lib] = fingerprint(src.Names())
	}
	return c
}

// Libraries returns the registered libraries in registration order.
func (c *Catalog) Libraries() []domain.LibraryID {
	return c.order
}

// Source returns the source registered for lib.
func (c *Catalog) Source(lib domain.LibraryID) (ports.IconSource, bool) {
	src, ok := c.sources[lib]
	return src, ok
}

// Names returns the icon names of lib, nil for unknown libraries.
func (c *Catalog) Names(lib domain.LibraryID) []domain.IconName {
	src, ok := c.sources[lib]
	if !ok {
		return nil
	}
	return src.Names()
}

// Render dispatches to the source of lib. Unknown libraries render as absent so
// that values written by builds with more libraries stay loadable.
func (c *Catalog) Render(lib domain.LibraryID, name domain.IconName, size int) (domain.RenderableIcon, bool) {
	src, ok := c.sources[lib]
	if !ok {
		return domain.RenderableIcon{}, false
	}
	return src.Render(name, size)
}

// Keywords returns the search keywords of name in lib, nil when either is unknown.
func (c *Catalog) Keywords(lib domain.LibraryID, name domain.IconName) []string {
	src, ok := c.sources[lib]
	if !ok {
		return nil
	}
	return src.Keywords(name)
}

// Fingerprint returns the xxhash digest of the sorted names of lib, 0 for unknown libraries.
func (c *Catalog) Fingerprint(lib domain.LibraryID) uint64 {
	return c.fingerprints[lib]
}

func fingerprint(names []domain.IconName) uint64 {
	h := xxhash.New()
	for _, name := range names {
		_, _ = h.WriteString(string(name))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
