// Package app implements the application layer for iconpick.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/iconpick/internal/adapters/detector"
	"go.trai.ch/iconpick/internal/adapters/linear"
	"go.trai.ch/iconpick/internal/adapters/svg"
	"go.trai.ch/iconpick/internal/adapters/tui"
	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/core/ports"
	"go.trai.ch/iconpick/internal/engine/picker"
	"go.trai.ch/zerr"
)

// levelSetter is implemented by loggers whose verbosity follows the config file.
type levelSetter interface {
	SetLevel(level slog.Level)
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	catalog      ports.Catalog
	logger       ports.Logger
	printer      *linear.Printer
	picker       ports.InteractivePicker
	workDir      string
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, cat ports.Catalog, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		catalog:      cat,
		logger:       log,
		printer:      linear.NewPrinter(os.Stdout, os.Stderr),
	}
}

// WithOutput redirects results and hints. This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.printer = linear.NewPrinter(stdout, stderr)
	return a
}

// WithWorkDir sets the directory the config file search starts from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithPicker replaces the terminal picker used by Pick.
func (a *App) WithPicker(p ports.InteractivePicker) *App {
	a.picker = p
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// ListOptions configuration for the List method.
type ListOptions struct {
	// Library defaults to the configured default library when empty.
	Library string
	Query   string
	// Pages is the number of pages to materialize; less than one means all.
	Pages int
}

// List prints the icons of a library that match the query, one stored value per line.
func (a *App) List(_ context.Context, opts ListOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	lib := cfg.Picker.DefaultLibrary
	if opts.Library != "" {
		if lib, err = parseLibrary(opts.Library); err != nil {
			return err
		}
	}

	vm := picker.New(a.catalog, picker.WithTuning(cfg.Picker))
	vm.Open()
	vm.SetActiveLibrary(lib)
	vm.SetQuery(opts.Query)
	for page := 1; opts.Pages < 1 || page < opts.Pages; page++ {
		if !vm.RequestMore() {
			break
		}
	}

	view := vm.Snapshot()
	vm.Close()

	a.printer.List(domain.Listing{
		Library: view.Library,
		Query:   view.Query,
		Total:   view.Total,
		Names:   view.Visible,
	})
	return nil
}

// Render prints the SVG markup of a stored field value. Absent, malformed and
// stale values render the placeholder. A size below one uses the configured size.
func (a *App) Render(_ context.Context, value string, size int) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if size < 1 {
		size = cfg.RenderSize
	}

	sel := domain.DecodeSelection(value)
	if sel.IsZero() {
		if value != "" {
			a.logger.Warn(fmt.Sprintf("%q is not a valid icon value, rendering placeholder", value))
		}
		a.printer.Markup(svg.Placeholder(size))
		return nil
	}

	icon, ok := a.catalog.Render(sel.Library, sel.Name, size)
	if !ok {
		a.logger.Warn(fmt.Sprintf("icon %s no longer exists, rendering placeholder", sel))
		a.printer.Markup(svg.Placeholder(size))
		return nil
	}

	a.printer.Markup(svg.Markup(icon))
	return nil
}

// Decode prints the library and name of a stored field value. Values that do not
// decode print nothing; names missing from the catalog only warn.
func (a *App) Decode(_ context.Context, value string) error {
	if _, err := a.loadConfig(); err != nil {
		return err
	}

	sel := domain.DecodeSelection(value)
	if sel.IsZero() {
		a.logger.Warn(fmt.Sprintf("%q does not name an icon", value))
		return nil
	}
	if !a.contains(sel.Library, sel.Name) {
		a.logger.Warn(fmt.Sprintf("icon %s is not in the bundled %s library", sel.Name, sel.Library))
	}

	a.printer.Value(sel.Library.String() + "\t" + sel.Name.String())
	return nil
}

// Encode prints the stored field value for an icon of the catalog.
func (a *App) Encode(_ context.Context, library, name string) error {
	if _, err := a.loadConfig(); err != nil {
		return err
	}

	lib, err := parseLibrary(library)
	if err != nil {
		return err
	}
	iconName := domain.IconName(name)
	if !iconName.Valid() {
		return zerr.With(domain.ErrInvalidIconName, "name", name)
	}
	if !a.contains(lib, iconName) {
		return zerr.With(zerr.With(domain.ErrIconNotFound, "library", lib.String()), "name", name)
	}

	a.printer.Value(domain.EncodeSelection(domain.NewSelection(lib, iconName)))
	return nil
}

// PickOptions configuration for the Pick method.
type PickOptions struct {
	// Mode is one of "auto", "tui", "linear" or "ci".
	Mode string
}

// Pick runs the interactive picker starting from a stored field value and prints
// the resulting value. Closing the picker prints the original value unchanged.
func (a *App) Pick(ctx context.Context, current string, opts PickOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.Mode)
	if mode != detector.ModeInteractive {
		return zerr.With(domain.ErrNotInteractive, "mode", mode.String())
	}

	p := a.picker
	if p == nil {
		teaOpts := append([]tea.ProgramOption{tea.WithOutput(os.Stderr)}, a.teaOptions...)
		p = tui.NewPicker(a.catalog, cfg.Picker, teaOpts...)
	}

	result, err := p.Pick(ctx, domain.DecodeSelection(current))
	if err != nil {
		return err
	}

	if !result.Changed {
		a.logger.Debug("picker closed without changes")
		a.printer.Value(current)
		return nil
	}

	value := domain.EncodeSelection(result.Selection)
	a.printer.Value(value)
	if result.Selection.IsZero() {
		a.printer.Success("cleared icon")
	} else {
		a.printer.Success("selected " + value)
	}
	return nil
}

// Info prints the icon count and fingerprint of every library.
func (a *App) Info(_ context.Context) error {
	if _, err := a.loadConfig(); err != nil {
		return err
	}

	libs := a.catalog.Libraries()
	infos := make([]domain.LibraryInfo, 0, len(libs))
	for _, lib := range libs {
		infos = append(infos, domain.LibraryInfo{
			Library:     lib,
			Count:       len(a.catalog.Names(lib)),
			Fingerprint: a.catalog.Fingerprint(lib),
		})
	}

	a.printer.Catalog(infos)
	return nil
}

// loadConfig reads the config file and applies its log settings.
func (a *App) loadConfig() (*domain.Config, error) {
	dir := a.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to determine working directory")
		}
		dir = wd
	}

	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if ls, ok := a.logger.(levelSetter); ok {
		ls.SetLevel(cfg.LogLevel)
		ls.SetJSON(cfg.LogJSON)
	}
	return cfg, nil
}

func (a *App) contains(lib domain.LibraryID, name domain.IconName) bool {
	_, found := slices.BinarySearch(a.catalog.Names(lib), name)
	return found
}

func parseLibrary(token string) (domain.LibraryID, error) {
	lib, ok := domain.ParseLibraryID(token)
	if !ok {
		return "", zerr.With(domain.ErrUnknownLibrary, "library", token)
	}
	return lib, nil
}
