// Package picker implements the icon picker state machine: search, library tabs,
// and incremental materialization of large result sets.
package picker

import (
	"slices"
	"sync"
	"time"

	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/core/ports"
)

// State is the lifecycle state of a picker.
type State uint8

const (
	// StateClosed is the initial state; no search or pagination state exists.
	StateClosed State = iota
	// StateOpen means the picker is showing results.
	StateOpen
)

// String returns a readable label for the state.
func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// View is an immutable snapshot of the picker for rendering.
type View struct {
	State        State
	Query        string
	Library      domain.LibraryID
	Total        int
	VisibleCount int
	Visible      []domain.IconName
}

// HasMore reports whether further pages can be materialized.
func (v View) HasMore() bool {
	return v.VisibleCount < v.Total
}

// Option configures a ViewModel.
type Option func(*ViewModel)

// WithTuning overrides the pagination and trigger tuning.
// Out-of-range values fall back to the defaults.
func WithTuning(t domain.PickerTuning) Option {
	return func(vm *ViewModel) {
		vm.tuning = sanitize(t)
		vm.library = vm.tuning.DefaultLibrary
	}
}

// WithSelectionSink registers the receiver of emitted selections.
func WithSelectionSink(sink func(domain.Selection)) Option {
	return func(vm *ViewModel) {
		vm.sink = sink
	}
}

// WithRefresh registers a callback invoked after a timer-driven page advance,
// so the view layer can redraw outside of a user event.
func WithRefresh(refresh func()) Option {
	return func(vm *ViewModel) {
		vm.refresh = refresh
	}
}

// ViewModel owns the transient state of one picker instance.
// It is not shared between pickers.
type ViewModel struct {
	mu      sync.Mutex
	catalog ports.Catalog
	matcher *Matcher
	tuning  domain.PickerTuning
	sink    func(domain.Selection)
	refresh func()

	state    State
	query    string
	library  domain.LibraryID
	filtered []domain.IconName
	visible  int

	// generation invalidates timers armed before the last reset or close.
	generation  uint64
	lastAdvance time.Time
	trailing    *time.Timer
}

// New creates a closed picker over the catalog.
func New(cat ports.Catalog, opts ...Option) *ViewModel {
	tuning := domain.DefaultPickerTuning()
	vm := &ViewModel{
		catalog: cat,
		matcher: NewMatcher(),
		tuning:  tuning,
		library: tuning.DefaultLibrary,
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Tuning returns the effective tuning values.
func (vm *ViewModel) Tuning() domain.PickerTuning {
	return vm.tuning
}

// Open shows the picker on the active library with an empty query and the first page.
func (vm *ViewModel) Open() {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.state = StateOpen
	vm.query = ""
	vm.resetLocked()
}

// OpenAt opens the picker on the library of the current selection, if it is known.
func (vm *ViewModel) OpenAt(current domain.Selection) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if current.Library.Known() {
		vm.library = current.Library
	}
	vm.state = StateOpen
	vm.query = ""
	vm.resetLocked()
}

// SetQuery filters the active library. Pagination restarts when the query changes.
func (vm *ViewModel) SetQuery(q string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.state != StateOpen || q == vm.query {
		return
	}
	vm.query = q
	vm.resetLocked()
}

// SetActiveLibrary switches the active tab. Unknown libraries are ignored.
// Pagination restarts when the library changes.
func (vm *ViewModel) SetActiveLibrary(lib domain.LibraryID) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if !lib.Known() || lib == vm.library {
		return
	}
	vm.library = lib
	if vm.state == StateOpen {
		vm.resetLocked()
	}
}

// NextLibrary switches to the library after the active one.
func (vm *ViewModel) NextLibrary() {
	vm.mu.Lock()
	next := vm.library.Next()
	vm.mu.Unlock()

	vm.SetActiveLibrary(next)
}

// RequestMore materializes the next page. It reports whether anything changed;
// once every filtered result is visible it is a no-op.
func (vm *ViewModel) RequestMore() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return vm.advanceLocked()
}

// Select emits the selection and closes the picker. An unknown library or an
// invalid name is ignored and returns the zero Selection.
func (vm *ViewModel) Select(lib domain.LibraryID, name domain.IconName) domain.Selection {
	if !lib.Known() || !name.Valid() {
		return domain.Selection{}
	}
	sel := domain.NewSelection(lib, name)

	vm.mu.Lock()
	vm.closeLocked()
	sink := vm.sink
	vm.mu.Unlock()

	if sink != nil {
		sink(sel)
	}
	return sel
}

// Clear emits the absent selection. The picker does not need to be open.
func (vm *ViewModel) Clear() domain.Selection {
	vm.mu.Lock()
	sink := vm.sink
	vm.mu.Unlock()

	if sink != nil {
		sink(domain.Selection{})
	}
	return domain.Selection{}
}

// Close discards search and pagination state and cancels pending triggers.
// The active library is kept for the next Open.
func (vm *ViewModel) Close() {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.closeLocked()
}

// Snapshot returns the current view.
func (vm *ViewModel) Snapshot() View {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return View{
		State:        vm.state,
		Query:        vm.query,
		Library:      vm.library,
		Total:        len(vm.filtered),
		VisibleCount: vm.visible,
		Visible:      slices.Clone(vm.filtered[:vm.visible]),
	}
}

func (vm *ViewModel) resetLocked() {
	vm.cancelTriggersLocked()
	vm.filtered = vm.matcher.Filter(vm.catalog, vm.library, vm.query)
	vm.visible = min(vm.tuning.PageSize, len(vm.filtered))
}

func (vm *ViewModel) closeLocked() {
	vm.cancelTriggersLocked()
	vm.state = StateClosed
	vm.query = ""
	vm.filtered = nil
	vm.visible = 0
}

func (vm *ViewModel) advanceLocked() bool {
	if vm.state != StateOpen || vm.visible >= len(vm.filtered) {
		return false
	}
	vm.visible = min(vm.visible+vm.tuning.PageSize, len(vm.filtered))
	return true
}

func sanitize(t domain.PickerTuning) domain.PickerTuning {
	def := domain.DefaultPickerTuning()
	if t.PageSize <= 0 {
		t.PageSize = def.PageSize
	}
	if t.ScrollMargin < 0 {
		t.ScrollMargin = def.ScrollMargin
	}
	if t.ScrollThrottle < 0 {
		t.ScrollThrottle = def.ScrollThrottle
	}
	if t.VisibilityProximity < 1 {
		t.VisibilityProximity = def.VisibilityProximity
	}
	if !t.DefaultLibrary.Known() {
		t.DefaultLibrary = def.DefaultLibrary
	}
	return t
}
