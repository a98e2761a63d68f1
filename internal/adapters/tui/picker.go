package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/core/ports"
	"go.trai.ch/iconpick/internal/engine/picker"
	"go.trai.ch/zerr"
)

// Picker runs picking sessions in a full-screen bubbletea program.
type Picker struct {
	catalog    ports.Catalog
	tuning     domain.PickerTuning
	teaOptions []tea.ProgramOption
	observe    func(*Model)
}

var _ ports.InteractivePicker = (*Picker)(nil)

// NewPicker creates a Picker. Program options are appended to the defaults,
// which lets tests replace the terminal.
func NewPicker(cat ports.Catalog, tuning domain.PickerTuning, opts ...tea.ProgramOption) *Picker {
	return &Picker{
		catalog:    cat,
		tuning:     tuning,
		teaOptions: opts,
	}
}

// Pick runs one session and returns what the user chose.
func (p *Picker) Pick(ctx context.Context, current domain.Selection) (ports.PickResult, error) {
	var program *tea.Program
	model := NewModel(p.catalog, current,
		picker.WithTuning(p.tuning),
		picker.WithRefresh(func() {
			program.Send(refreshMsg{})
		}),
	)
	// Run may return early on cancellation, leaving throttle timers armed.
	defer model.vm.Close()
	if p.observe != nil {
		p.observe(model)
	}

	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, p.teaOptions...)
	program = tea.NewProgram(model, opts...)

	final, err := program.Run()
	if err != nil {
		return ports.PickResult{}, zerr.Wrap(err, domain.ErrPickerFailed.Error())
	}

	m, ok := final.(*Model)
	if !ok {
		return ports.PickResult{}, domain.ErrPickerFailed
	}
	return m.Result(), nil
}
