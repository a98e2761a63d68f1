package picker

import (
	"strings"

	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/core/ports"
	"golang.org/x/text/cases"
)

// keywordSeparator joins a name and its keywords into one haystack. User input
// never contains it, so a match cannot span two keywords.
const keywordSeparator = "\x00"

// Matcher filters icon names by case-insensitive substring over the name and its
// published keywords. It caches folded haystacks per library and is not safe for
// concurrent use.
type Matcher struct {
	caser     cases.Caser
	haystacks map[domain.LibraryID][]string
}

// NewMatcher creates a Matcher using Unicode case folding.
func NewMatcher() *Matcher {
	return &Matcher{
		caser:     cases.Fold(),
		haystacks: make(map[domain.LibraryID][]string),
	}
}

// Filter returns the names of lib matching query, in catalog order.
// A blank query matches everything.
func (m *Matcher) Filter(cat ports.Catalog, lib domain.LibraryID, query string) []domain.IconName {
	names := cat.Names(lib)

	needle := strings.TrimSpace(query)
	if needle == "" {
		return names
	}
	needle = m.caser.String(needle)

	haystacks := m.haystacksFor(cat, lib, names)
	matches := make([]domain.IconName, 0, len(names)/4)
	for i, name := range names {
		if strings.Contains(haystacks[i], needle) {
			matches = append(matches, name)
		}
	}
	return matches
}

func (m *Matcher) haystacksFor(cat ports.Catalog, lib domain.LibraryID, names []domain.IconName) []string {
	if cached, ok := m.haystacks[lib]; ok && len(cached) == len(names) {
		return cached
	}

	haystacks := make([]string, len(names))
	for i, name := range names {
		parts := append([]string{string(name)}, cat.Keywords(lib, name)...)
		haystacks[i] = m.caser.String(strings.Join(parts, keywordSeparator))
	}
	m.haystacks[lib] = haystacks
	return haystacks
}
