package tui

import (
	"fmt"
	"strings"

	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/engine/picker"
	"go.trai.ch/iconpick/internal/ui/style"
)

const keyHelp = "tab library · enter select · ctrl+x clear · esc close"

// View renders the header tabs, the query line, the visible window and a footer.
func (m *Model) View() string {
	view := m.vm.Snapshot()
	if view.State != picker.StateOpen {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.header(view.Library))
	b.WriteString("\n")
	b.WriteString(m.prompt())
	b.WriteString("\n")

	rows := m.rows()
	end := min(m.offset+rows, len(view.Visible))
	drawn := 0
	if len(view.Visible) == 0 {
		b.WriteString(style.Faint.Render("  no icons match"))
		b.WriteString("\n")
		drawn++
	}
	for i := m.offset; i < end; i++ {
		name := view.Visible[i].String()
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(style.Pointer + " " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
		drawn++
	}
	for ; drawn < rows; drawn++ {
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("%d of %d · %s", view.VisibleCount, view.Total, keyHelp)
	b.WriteString(style.Faint.Render(footer))
	return b.String()
}

func (m *Model) header(active domain.LibraryID) string {
	tabs := make([]string, 0, len(domain.Libraries()))
	for _, lib := range domain.Libraries() {
		if lib == active {
			tabs = append(tabs, style.ActiveTab.Render(lib.String()))
		} else {
			tabs = append(tabs, style.InactiveTab.Render(lib.String()))
		}
	}
	return titleStyle.Render("iconpick") + "  " + strings.Join(tabs, "  ")
}

func (m *Model) prompt() string {
	p := promptStyle.Render("search " + style.Pointer)
	if m.query == "" {
		return p + " " + style.Faint.Render("name or keyword")
	}
	return p + " " + m.query
}
