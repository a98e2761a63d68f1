package picker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/core/ports/mocks"
	"go.trai.ch/iconpick/internal/engine/picker"
	"go.uber.org/mock/gomock"
)

func TestMatcher_Filter(t *testing.T) {
	cat := homeCatalog()
	m := picker.NewMatcher()

	tests := []struct {
		name  string
		lib   domain.LibraryID
		query string
		want  []domain.IconName
	}{
		{name: "blank", lib: domain.LibraryLucide, query: "   ", want: []domain.IconName{"Anchor", "Home", "House"}},
		{name: "name substring", lib: domain.LibraryLucide, query: "ous", want: []domain.IconName{"House"}},
		{name: "case insensitive", lib: domain.LibraryLucide, query: "ANCH", want: []domain.IconName{"Anchor"}},
		{name: "keyword", lib: domain.LibraryLucide, query: "living", want: []domain.IconName{"House"}},
		{name: "other library", lib: domain.LibraryDuo, query: "HOUSE", want: []domain.IconName{"house"}},
		{name: "no match", lib: domain.LibraryLucide, query: "zzz", want: []domain.IconName{}},
		{name: "unknown library", lib: "bogus", query: "a", want: []domain.IconName{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Filter(cat, tt.lib, tt.query))
		})
	}
}

func TestMatcher_KeywordsDoNotJoin(t *testing.T) {
	m := picker.NewMatcher()

	// A match never spans the name and one of its keywords.
	assert.Empty(t, m.Filter(homeCatalog(), domain.LibraryLucide, "houseliving"))
}

func TestMatcher_CachesKeywordsPerLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	cat := mocks.NewMockCatalog(ctrl)
	names := []domain.IconName{"bell", "home"}

	cat.EXPECT().Names(domain.LibraryDuo).Return(names).Times(3)
	cat.EXPECT().Keywords(domain.LibraryDuo, domain.IconName("bell")).Return([]string{"alarm"}).Times(1)
	cat.EXPECT().Keywords(domain.LibraryDuo, domain.IconName("home")).Return(nil).Times(1)

	m := picker.NewMatcher()
	assert.Equal(t, []domain.IconName{"bell"}, m.Filter(cat, domain.LibraryDuo, "alarm"))
	assert.Equal(t, []domain.IconName{"home"}, m.Filter(cat, domain.LibraryDuo, "HOM"))
	assert.Equal(t, names, m.Filter(cat, domain.LibraryDuo, ""))
}
