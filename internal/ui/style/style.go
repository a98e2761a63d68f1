// Package style provides the shared colors and glyphs of the terminal surfaces:
// the picker, the linear printer and the log handler.
package style

import "github.com/charmbracelet/lipgloss"

// Brand colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check    = "✓"
	Cross    = "✗"
	Warning  = "!"
	Pointer  = "›"
	Dot      = "●"
	Circle   = "○"
	Ellipsis = "…"
)

// Library tab styles.
var (
	ActiveTab   = lipgloss.NewStyle().Bold(true).Foreground(Iris).Underline(true)
	InactiveTab = lipgloss.NewStyle().Foreground(Slate)
	Faint       = lipgloss.NewStyle().Foreground(Slate)
)
