package picker_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/engine/catalog"
	"go.trai.ch/iconpick/internal/engine/picker"
)

const (
	lucideCount = 3800
	duoCount    = 91
)

var dot = []domain.Node{{Tag: "circle", Attrs: []domain.Attr{{Key: "r", Value: "1"}}}}

// largeCatalog mirrors the shipped libraries: a few thousand components and a
// single page of path icons.
func largeCatalog() *catalog.Catalog {
	components := make([]domain.Export, 0, lucideCount)
	for i := range lucideCount {
		components = append(components, domain.Export{
			Name:  fmt.Sprintf("Glyph%04d", i),
			Kind:  domain.ExportComponent,
			Nodes: dot,
		})
	}
	paths := make([]domain.Export, 0, duoCount)
	for i := range duoCount {
		paths = append(paths, domain.Export{
			Name: fmt.Sprintf("glyph-%02d", i),
			Kind: domain.ExportPath,
			Path: "M0 0h24v24H0z",
		})
	}

	lucide, _ := catalog.NewComponentSource(domain.LibraryLucide, components)
	duo, _ := catalog.NewPathSource(domain.LibraryDuo, paths)
	return catalog.New(lucide, duo)
}

func homeCatalog() *catalog.Catalog {
	house := domain.Export{Name: "House", Kind: domain.ExportComponent, Nodes: dot, Tags: []string{"home", "living"}}
	home := domain.Export{Name: "Home", Kind: domain.ExportComponent, Nodes: dot}
	anchor := domain.Export{Name: "Anchor", Kind: domain.ExportComponent, Nodes: dot, Tags: []string{"ship"}}
	lucide, _ := catalog.NewComponentSource(domain.LibraryLucide, []domain.Export{house, home, anchor})
	duo, _ := catalog.NewPathSource(domain.LibraryDuo, []domain.Export{
		{Name: "house", Kind: domain.ExportPath, Path: "M3 10 12 3l9 7"},
	})
	return catalog.New(lucide, duo)
}

func TestViewModel_StartsClosed(t *testing.T) {
	vm := picker.New(largeCatalog())

	view := vm.Snapshot()
	assert.Equal(t, picker.StateClosed, view.State)
	assert.Equal(t, domain.LibraryLucide, view.Library)
	assert.Zero(t, view.VisibleCount)
	assert.Empty(t, view.Visible)

	vm.SetQuery("Glyph")
	assert.False(t, vm.RequestMore())
	assert.Empty(t, vm.Snapshot().Query)
}

func TestViewModel_Pagination(t *testing.T) {
	vm := picker.New(largeCatalog())
	vm.Open()

	view := vm.Snapshot()
	require.Equal(t, picker.StateOpen, view.State)
	assert.Equal(t, lucideCount, view.Total)
	assert.Equal(t, 100, view.VisibleCount)
	assert.Len(t, view.Visible, 100)
	assert.Equal(t, domain.IconName("Glyph0000"), view.Visible[0])

	require.True(t, vm.RequestMore())
	assert.Equal(t, 200, vm.Snapshot().VisibleCount)

	for vm.RequestMore() {
	}
	view = vm.Snapshot()
	assert.Equal(t, lucideCount, view.VisibleCount)
	assert.False(t, view.HasMore())

	assert.False(t, vm.RequestMore())
	assert.Equal(t, lucideCount, vm.Snapshot().VisibleCount)
}

func TestViewModel_SmallLibraryFitsOnePage(t *testing.T) {
	vm := picker.New(largeCatalog())
	vm.Open()
	vm.SetActiveLibrary(domain.LibraryDuo)

	view := vm.Snapshot()
	assert.Equal(t, domain.LibraryDuo, view.Library)
	assert.Equal(t, duoCount, view.Total)
	assert.Equal(t, duoCount, view.VisibleCount)
	assert.False(t, view.HasMore())

	assert.False(t, vm.RequestMore())
	assert.False(t, vm.OnScroll(0))
	assert.False(t, vm.OnItemVisible(duoCount-1))
	assert.False(t, vm.PendingTriggers())
	assert.Equal(t, duoCount, vm.Snapshot().VisibleCount)
}

func TestViewModel_QueryMatchesNamesAndKeywords(t *testing.T) {
	vm := picker.New(homeCatalog())
	vm.Open()

	vm.SetQuery("home")
	view := vm.Snapshot()
	assert.Equal(t, []domain.IconName{"Home", "House"}, view.Visible)
	assert.Equal(t, 2, view.VisibleCount)

	vm.SetQuery("  SHIP ")
	assert.Equal(t, []domain.IconName{"Anchor"}, vm.Snapshot().Visible)

	vm.SetQuery("nothing")
	view = vm.Snapshot()
	assert.Zero(t, view.Total)
	assert.Empty(t, view.Visible)

	vm.SetQuery("")
	assert.Equal(t, 3, vm.Snapshot().Total)
}

func TestViewModel_QueryResetsPagination(t *testing.T) {
	vm := picker.New(largeCatalog())
	vm.Open()
	vm.RequestMore()
	vm.RequestMore()
	require.Equal(t, 300, vm.Snapshot().VisibleCount)

	vm.SetQuery("glyph0")
	view := vm.Snapshot()
	assert.Equal(t, 1000, view.Total)
	assert.Equal(t, 100, view.VisibleCount)

	vm.RequestMore()
	vm.SetActiveLibrary(domain.LibraryDuo)
	vm.SetActiveLibrary(domain.LibraryLucide)
	assert.Equal(t, 100, vm.Snapshot().VisibleCount)
}

func TestViewModel_LibrarySwitching(t *testing.T) {
	vm := picker.New(homeCatalog())
	vm.Open()

	vm.SetActiveLibrary("bogus")
	assert.Equal(t, domain.LibraryLucide, vm.Snapshot().Library)

	vm.NextLibrary()
	view := vm.Snapshot()
	assert.Equal(t, domain.LibraryDuo, view.Library)
	assert.Equal(t, []domain.IconName{"house"}, view.Visible)

	vm.NextLibrary()
	assert.Equal(t, domain.LibraryLucide, vm.Snapshot().Library)
}

func TestViewModel_OpenAtSelection(t *testing.T) {
	vm := picker.New(homeCatalog())

	vm.OpenAt(domain.NewSelection(domain.LibraryDuo, "house"))
	assert.Equal(t, domain.LibraryDuo, vm.Snapshot().Library)

	vm.Close()
	vm.OpenAt(domain.Selection{})
	assert.Equal(t, domain.LibraryDuo, vm.Snapshot().Library, "absent selection keeps the last library")
}

func TestViewModel_SelectEmitsAndCloses(t *testing.T) {
	var emitted []string
	vm := picker.New(homeCatalog(), picker.WithSelectionSink(func(sel domain.Selection) {
		emitted = append(emitted, domain.EncodeSelection(sel))
	}))
	vm.Open()
	vm.SetQuery("house")

	sel := vm.Select(domain.LibraryLucide, "House")
	assert.Equal(t, "lucide:House", sel.String())
	assert.Equal(t, picker.StateClosed, vm.Snapshot().State)
	assert.Empty(t, vm.Snapshot().Query)

	cleared := vm.Clear()
	assert.True(t, cleared.IsZero())
	assert.Equal(t, []string{"lucide:House", ""}, emitted)
}

func TestViewModel_SelectIgnoresInvalidIdentifiers(t *testing.T) {
	var emitted []string
	vm := picker.New(homeCatalog(), picker.WithSelectionSink(func(sel domain.Selection) {
		emitted = append(emitted, domain.EncodeSelection(sel))
	}))
	vm.Open()

	assert.True(t, vm.Select(domain.LibraryLucide, "").IsZero())
	assert.True(t, vm.Select(domain.LibraryLucide, "a:b").IsZero())
	assert.True(t, vm.Select("material", "House").IsZero())
	assert.Empty(t, emitted)
	assert.Equal(t, picker.StateOpen, vm.Snapshot().State)
}

func TestViewModel_OnItemVisible(t *testing.T) {
	vm := picker.New(largeCatalog())
	vm.Open()

	assert.False(t, vm.OnItemVisible(50))
	assert.False(t, vm.OnItemVisible(-1))
	assert.False(t, vm.OnItemVisible(500))

	assert.True(t, vm.OnItemVisible(99))
	assert.Equal(t, 200, vm.Snapshot().VisibleCount)

	assert.False(t, vm.OnItemVisible(99))
	assert.True(t, vm.OnItemVisible(199))
	assert.Equal(t, 300, vm.Snapshot().VisibleCount)
}

func TestViewModel_WithTuning(t *testing.T) {
	vm := picker.New(largeCatalog(), picker.WithTuning(domain.PickerTuning{
		PageSize:            25,
		ScrollMargin:        -1,
		VisibilityProximity: 5,
		DefaultLibrary:      domain.LibraryDuo,
	}))

	tuning := vm.Tuning()
	assert.Equal(t, 25, tuning.PageSize)
	assert.InDelta(t, domain.DefaultScrollMargin, tuning.ScrollMargin, 0)
	assert.Equal(t, domain.LibraryDuo, tuning.DefaultLibrary)

	vm.Open()
	assert.Equal(t, 25, vm.Snapshot().VisibleCount)
	assert.True(t, vm.OnItemVisible(20))
	assert.Equal(t, 50, vm.Snapshot().VisibleCount)

	fallback := picker.New(largeCatalog(), picker.WithTuning(domain.PickerTuning{}))
	assert.Equal(t, domain.DefaultPickerTuning().PageSize, fallback.Tuning().PageSize)
	assert.Equal(t, domain.LibraryLucide, fallback.Tuning().DefaultLibrary)
}

func TestViewModel_ScrollThrottle(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var refreshed atomic.Int32
		vm := picker.New(largeCatalog(), picker.WithRefresh(func() { refreshed.Add(1) }))
		vm.Open()

		assert.False(t, vm.OnScroll(domain.DefaultScrollMargin), "far from the end")
		assert.False(t, vm.PendingTriggers())

		assert.True(t, vm.OnScroll(10))
		assert.Equal(t, 200, vm.Snapshot().VisibleCount)

		assert.False(t, vm.OnScroll(10))
		assert.False(t, vm.OnScroll(5))
		assert.True(t, vm.PendingTriggers())
		assert.Equal(t, 200, vm.Snapshot().VisibleCount)

		time.Sleep(domain.DefaultScrollThrottle + time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 300, vm.Snapshot().VisibleCount, "one trailing advance per window")
		assert.Equal(t, int32(1), refreshed.Load())
		assert.False(t, vm.PendingTriggers())

		time.Sleep(domain.DefaultScrollThrottle)
		assert.True(t, vm.OnScroll(0))
		assert.Equal(t, 400, vm.Snapshot().VisibleCount)
	})
}

func TestViewModel_CloseCancelsPendingTriggers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var refreshed atomic.Int32
		vm := picker.New(largeCatalog(), picker.WithRefresh(func() { refreshed.Add(1) }))
		vm.Open()

		require.True(t, vm.OnScroll(0))
		require.False(t, vm.OnScroll(0))
		require.True(t, vm.PendingTriggers())

		vm.Close()
		assert.False(t, vm.PendingTriggers())

		time.Sleep(time.Second)
		synctest.Wait()

		view := vm.Snapshot()
		assert.Equal(t, picker.StateClosed, view.State)
		assert.Zero(t, view.VisibleCount)
		assert.Zero(t, refreshed.Load())
	})
}

func TestViewModel_QueryChangeDiscardsPendingTriggers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var refreshed atomic.Int32
		vm := picker.New(largeCatalog(), picker.WithRefresh(func() { refreshed.Add(1) }))
		vm.Open()

		require.True(t, vm.OnScroll(0))
		require.False(t, vm.OnScroll(0))

		vm.SetQuery("glyph1")
		assert.False(t, vm.PendingTriggers())

		time.Sleep(time.Second)
		synctest.Wait()

		view := vm.Snapshot()
		assert.Equal(t, 1000, view.Total)
		assert.Equal(t, 100, view.VisibleCount)
		assert.Zero(t, refreshed.Load())
	})
}
