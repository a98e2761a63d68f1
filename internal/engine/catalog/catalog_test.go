package catalog_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/core/ports/mocks"
	"go.trai.ch/iconpick/internal/engine/catalog"
	"go.uber.org/mock/gomock"
)

func testCatalog() *catalog.Catalog {
	lucide, _ := catalog.NewComponentSource(domain.LibraryLucide, []domain.Export{
		component("House"), component("Home"), component("Anchor"),
	})
	duo, _ := catalog.NewPathSource(domain.LibraryDuo, []domain.Export{
		path("bell", "M12 2v2"), path("house", "M3 10 12 3l9 7"),
	})
	return catalog.New(lucide, duo)
}

func TestCatalog_Names(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, []domain.LibraryID{domain.LibraryLucide, domain.LibraryDuo}, c.Libraries())
	assert.Equal(t, []domain.IconName{"Anchor", "Home", "House"}, c.Names(domain.LibraryLucide))
	assert.Equal(t, []domain.IconName{"bell", "house"}, c.Names(domain.LibraryDuo))
	assert.Nil(t, c.Names("bogus"))
}

func TestCatalog_RenderMembership(t *testing.T) {
	c := testCatalog()

	for _, lib := range c.Libraries() {
		for _, name := range c.Names(lib) {
			icon, ok := c.Render(lib, name, 24)
			require.True(t, ok, "%s:%s must render", lib, name)
			assert.False(t, icon.IsZero())
		}
	}

	notListed := []struct {
		lib  domain.LibraryID
		name domain.IconName
	}{
		{domain.LibraryLucide, "house"},
		{domain.LibraryDuo, "House"},
		{domain.LibraryLucide, "HouseIcon"},
		{"bogus", "House"},
	}
	for _, tt := range notListed {
		_, ok := c.Render(tt.lib, tt.name, 24)
		assert.False(t, ok, "%s:%s must be absent", tt.lib, tt.name)
	}
}

func TestCatalog_Fingerprint(t *testing.T) {
	a := testCatalog()
	b := testCatalog()

	assert.Equal(t, a.Fingerprint(domain.LibraryLucide), b.Fingerprint(domain.LibraryLucide))
	assert.NotEqual(t, a.Fingerprint(domain.LibraryLucide), a.Fingerprint(domain.LibraryDuo))
	assert.Zero(t, a.Fingerprint("bogus"))

	grown, _ := catalog.NewComponentSource(domain.LibraryLucide, []domain.Export{
		component("House"), component("Home"), component("Anchor"), component("Zap"),
	})
	assert.NotEqual(t, a.Fingerprint(domain.LibraryLucide), catalog.New(grown).Fingerprint(domain.LibraryLucide))
}

func TestCatalog_DispatchesToRegisteredSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockIconSource(ctrl)
	want := domain.RenderableIcon{Library: domain.LibraryDuo, Name: "x", Kind: domain.KindPath, Path: "M0 0", Size: 16}

	src.EXPECT().Library().Return(domain.LibraryDuo).AnyTimes()
	src.EXPECT().Names().Return([]domain.IconName{"x"}).AnyTimes()
	src.EXPECT().Render(domain.IconName("x"), 16).Return(want, true)

	c := catalog.New(src)
	got, ok := c.Render(domain.LibraryDuo, "x", 16)

	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = c.Render(domain.LibraryLucide, "x", 16)
	assert.False(t, ok)
}

func TestLazy_BuildsOnce(t *testing.T) {
	var builds atomic.Int32
	lazy := catalog.NewLazy(func() *catalog.Catalog {
		builds.Add(1)
		return testCatalog()
	})

	assert.Zero(t, builds.Load(), "nothing is built before first access")

	var wg sync.WaitGroup
	results := make([]*catalog.Catalog, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = lazy.Get()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), builds.Load())
	for _, got := range results {
		assert.Same(t, results[0], got)
	}
	assert.Equal(t, []domain.IconName{"bell", "house"}, lazy.Names(domain.LibraryDuo))
	assert.Equal(t, int32(1), builds.Load())
}

func TestLazy_NilBuildYieldsEmptyCatalog(t *testing.T) {
	lazy := catalog.NewLazy(func() *catalog.Catalog { return nil })

	assert.Empty(t, lazy.Libraries())
	assert.Nil(t, lazy.Names(domain.LibraryLucide))
	_, ok := lazy.Render(domain.LibraryLucide, "House", 24)
	assert.False(t, ok)
	assert.Zero(t, lazy.Fingerprint(domain.LibraryLucide))
}

func TestCatalog_Keywords(t *testing.T) {
	house := component("House")
	house.Tags = []string{"home", "living"}
	lucide, _ := catalog.NewComponentSource(domain.LibraryLucide, []domain.Export{house, component("Anchor")})
	c := catalog.New(lucide)

	assert.Equal(t, []string{"home", "living"}, c.Keywords(domain.LibraryLucide, "House"))
	assert.Empty(t, c.Keywords(domain.LibraryLucide, "Anchor"))
	assert.Nil(t, c.Keywords(domain.LibraryLucide, "Missing"))
	assert.Nil(t, c.Keywords(domain.LibraryDuo, "House"))
}
