// Package catalog builds validated icon sources from raw export tables and
// aggregates them by library.
package catalog

import (
	"slices"
	"strings"

	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/core/ports"
)

const (
	// componentAliasSuffix marks re-exports such as "HouseIcon" of the icon "House".
	componentAliasSuffix = "Icon"
	// componentAliasPrefix marks re-exports such as "LucideHouse" of the icon "House".
	componentAliasPrefix = "Lucide"
)

// reservedPathExports are module plumbing keys, never icons.
var reservedPathExports = map[string]bool{
	"default":    true,
	"__esModule": true,
}

// RejectReason explains why an export did not become an icon.
type RejectReason string

const (
	// RejectNull is an export without a value.
	RejectNull RejectReason = "null"
	// RejectKind is an export of a representation the source does not render.
	RejectKind RejectReason = "kind"
	// RejectEmpty is an icon export without drawable content.
	RejectEmpty RejectReason = "empty"
	// RejectName is an export whose name cannot be an identifier.
	RejectName RejectReason = "name"
	// RejectCase is an export whose name breaks the library's case convention.
	RejectCase RejectReason = "case"
	// RejectAlias is a re-export of an icon under a decorated name.
	RejectAlias RejectReason = "alias"
	// RejectReserved is a reserved module key.
	RejectReserved RejectReason = "reserved"
	// RejectDuplicate is a second export under an already accepted name.
	RejectDuplicate RejectReason = "duplicate"
)

// Rejection records one excluded export.
type Rejection struct {
	Name   string
	Reason RejectReason
}

// Report summarises how an export table was filtered.
type Report struct {
	Library  domain.LibraryID
	Exports  int
	Accepted int
	Rejected []Rejection
}

var _ ports.IconSource = (*Source)(nil)

// Source is an immutable, validated icon source.
type Source struct {
	library domain.LibraryID
	kind    domain.RenderKind
	names   []domain.IconName
	entries map[domain.IconName]domain.Export
}

// NewSource builds the source for lib using that library's export convention.
// Unknown libraries yield an empty source.
func NewSource(lib domain.LibraryID, exports []domain.Export) (*Source, Report) {
	switch lib {
	case domain.LibraryLucide:
		return NewComponentSource(lib, exports)
	case domain.LibraryDuo:
		return NewPathSource(lib, exports)
	default:
		return build(lib, domain.KindNone, nil, func(domain.Export) RejectReason { return RejectKind })
	}
}

// NewComponentSource accepts component exports whose name starts with an upper-case
// ASCII letter. "Icon"-suffixed names are dropped, and so are "Lucide"-prefixed
// names whose plain form is also an icon.
func NewComponentSource(lib domain.LibraryID, exports []domain.Export) (*Source, Report) {
	src, report := build(lib, domain.KindComponent, exports, acceptComponent)

	kept := src.names[:0]
	for _, name := range src.names {
		plain, ok := strings.CutPrefix(string(name), componentAliasPrefix)
		if ok && plain != "" {
			if _, exists := src.entries[domain.IconName(plain)]; exists {
				delete(src.entries, name)
				report.Rejected = append(report.Rejected, Rejection{Name: string(name), Reason: RejectAlias})
				continue
			}
		}
		kept = append(kept, name)
	}
	src.names = slices.Clip(kept)
	report.Accepted = len(src.names)

	return src, report
}

// NewPathSource accepts path exports with non-empty data under any non-reserved name.
// No case convention applies. A path export whose data is empty or only
// whitespace is rejected with RejectEmpty since it cannot draw anything.
func NewPathSource(lib domain.LibraryID, exports []domain.Export) (*Source, Report) {
	return build(lib, domain.KindPath, exports, acceptPath)
}

func acceptComponent(e domain.Export) RejectReason {
	switch {
	case e.Kind == domain.ExportNull:
		return RejectNull
	case e.Kind != domain.ExportComponent:
		return RejectKind
	case len(e.Nodes) == 0:
		return RejectEmpty
	case !domain.IconName(e.Name).Valid():
		return RejectName
	case e.Name[0] < 'A' || e.Name[0] > 'Z':
		return RejectCase
	case strings.HasSuffix(e.Name, componentAliasSuffix):
		return RejectAlias
	default:
		return ""
	}
}

func acceptPath(e domain.Export) RejectReason {
	switch {
	case e.Kind == domain.ExportNull:
		return RejectNull
	case e.Kind != domain.ExportPath:
		return RejectKind
	case strings.TrimSpace(e.Path) == "":
		return RejectEmpty
	case reservedPathExports[e.Name]:
		return RejectReserved
	case !domain.IconName(e.Name).Valid():
		return RejectName
	default:
		return ""
	}
}

func build(
	lib domain.LibraryID,
	kind domain.RenderKind,
	exports []domain.Export,
	accept func(domain.Export) RejectReason,
) (*Source, Report) {
	src := &Source{
		library: lib,
		kind:    kind,
		entries: make(map[domain.IconName]domain.Export, len(exports)),
	}
	report := Report{Library: lib, Exports: len(exports)}

	for _, e := range exports {
		if reason := accept(e); reason != "" {
			report.Rejected = append(report.Rejected, Rejection{Name: e.Name, Reason: reason})
			continue
		}
		name := domain.IconName(e.Name)
		if _, dup := src.entries[name]; dup {
			report.Rejected = append(report.Rejected, Rejection{Name: e.Name, Reason: RejectDuplicate})
			continue
		}
		src.entries[name] = e
		src.names = append(src.names, name)
	}

	slices.Sort(src.names)
	report.Accepted = len(src.names)

	return src, report
}

// Library returns the library this source serves.
func (s *Source) Library() domain.LibraryID {
	return s.library
}

// Kind returns the representation every icon of this source renders to.
func (s *Source) Kind() domain.RenderKind {
	return s.kind
}

// Names returns the sorted, deduplicated icon names.
func (s *Source) Names() []domain.IconName {
	return s.names
}

// Contains reports whether name is an icon of this source.
func (s *Source) Contains(name domain.IconName) bool {
	_, ok := s.entries[name]
	return ok
}

// Keywords returns the search tags published for name.
func (s *Source) Keywords(name domain.IconName) []string {
	e, ok := s.entries[name]
	if !ok {
		return nil
	}
	return e.Tags
}

// Render returns the drawable descriptor of name, or false when the name is unknown.
func (s *Source) Render(name domain.IconName, size int) (domain.RenderableIcon, bool) {
	e, ok := s.entries[name]
	if !ok {
		return domain.RenderableIcon{}, false
	}

	icon := domain.RenderableIcon{
		Library: s.library,
		Name:    name,
		Kind:    s.kind,
		Size:    domain.NormalizeSize(size),
	}
	switch s.kind {
	case domain.KindComponent:
		icon.Nodes = e.Nodes
	case domain.KindPath:
		icon.Path = e.Path
	default:
		return domain.RenderableIcon{}, false
	}
	return icon, true
}
