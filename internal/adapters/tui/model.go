// Package tui implements the interactive icon picker on top of bubbletea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/core/ports"
	"go.trai.ch/iconpick/internal/engine/picker"
)

const (
	// chromeLines is the header, the query line and the footer.
	chromeLines = 3
	// defaultRows is used until the first WindowSizeMsg arrives.
	defaultRows = 10
	// wheelStep is how many rows one mouse wheel notch scrolls.
	wheelStep = 3
	// rowExtent is the scroll distance of one row, in the units of the scroll margin.
	rowExtent = 24
)

// refreshMsg asks the program to redraw after a timer-driven page advance.
type refreshMsg struct{}

// Model is the bubbletea model of one picking session.
type Model struct {
	vm     *picker.ViewModel
	query  string
	cursor int
	offset int
	width  int
	height int
	result ports.PickResult
}

// NewModel opens a picker over cat on the library of current.
func NewModel(cat ports.Catalog, current domain.Selection, opts ...picker.Option) *Model {
	m := &Model{}
	opts = append(opts, picker.WithSelectionSink(func(sel domain.Selection) {
		m.result = ports.PickResult{Selection: sel, Changed: true}
	}))
	m.vm = picker.New(cat, opts...)
	m.vm.OpenAt(current)
	return m
}

// Result returns the outcome of the session so far.
func (m *Model) Result() ports.PickResult {
	return m.result
}

// Snapshot exposes the underlying picker state.
func (m *Model) Snapshot() picker.View {
	return m.vm.Snapshot()
}

// Cursor returns the index of the highlighted entry.
func (m *Model) Cursor() int {
	return m.cursor
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // one case per key binding
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()
		m.reportVisible()

	case tea.KeyMsg:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.setQuery(m.query + string(msg.Runes))
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.vm.Close()
			return m, tea.Quit
		case "enter":
			view := m.vm.Snapshot()
			if m.cursor < len(view.Visible) {
				m.vm.Select(view.Library, view.Visible[m.cursor])
				return m, tea.Quit
			}
		case "ctrl+x":
			m.vm.Clear()
			m.vm.Close()
			return m, tea.Quit
		case "tab":
			m.vm.NextLibrary()
			m.resetCursor()
		case "up", "ctrl+p":
			m.moveCursor(-1)
		case "down", "ctrl+n":
			m.moveCursor(1)
		case "pgup":
			m.moveCursor(-m.rows())
		case "pgdown":
			m.moveCursor(m.rows())
			m.reportScroll()
		case "home":
			m.moveCursor(-m.cursor)
		case "end":
			m.moveCursor(m.vm.Snapshot().VisibleCount)
		case "backspace":
			if r := []rune(m.query); len(r) > 0 {
				m.setQuery(string(r[:len(r)-1]))
			}
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button { //nolint:exhaustive // only the wheel scrolls
		case tea.MouseButtonWheelDown:
			m.scroll(wheelStep)
			m.reportScroll()
		case tea.MouseButtonWheelUp:
			m.scroll(-wheelStep)
		}

	case refreshMsg:
		m.reportVisible()
	}

	return m, nil
}

func (m *Model) rows() int {
	if m.height <= 0 {
		return defaultRows
	}
	return max(m.height-chromeLines, 1)
}

func (m *Model) setQuery(q string) {
	m.query = q
	m.vm.SetQuery(q)
	m.resetCursor()
}

func (m *Model) resetCursor() {
	m.cursor = 0
	m.offset = 0
}

func (m *Model) moveCursor(delta int) {
	count := m.vm.Snapshot().VisibleCount
	if count == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), count-1)
	m.ensureVisible()
	m.reportVisible()
}

func (m *Model) scroll(delta int) {
	count := m.vm.Snapshot().VisibleCount
	m.offset = min(max(m.offset+delta, 0), max(count-m.rows(), 0))
	m.cursor = min(max(m.cursor, m.offset), max(m.offset+m.rows()-1, 0))
	m.cursor = min(m.cursor, max(count-1, 0))
}

func (m *Model) ensureVisible() {
	rows := m.rows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// reportVisible tells the picker which entry is the last one on screen.
func (m *Model) reportVisible() {
	count := m.vm.Snapshot().VisibleCount
	if count == 0 {
		return
	}
	m.vm.OnItemVisible(min(m.offset+m.rows(), count) - 1)
}

// reportScroll tells the picker how far the viewport is from the end of the list.
func (m *Model) reportScroll() {
	count := m.vm.Snapshot().VisibleCount
	below := max(count-(m.offset+m.rows()), 0)
	m.vm.OnScroll(float64(below * rowExtent))
}
