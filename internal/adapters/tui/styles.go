package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/iconpick/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Iris)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(style.Iris)
)
