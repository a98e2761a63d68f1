package domain

import (
	"log/slog"
	"time"
)

// ConfigFileName is the name of the optional configuration file.
const ConfigFileName = "iconpick.yaml"

const (
	// DefaultPageSize is the number of entries materialized per pagination step.
	DefaultPageSize = 100
	// DefaultScrollMargin is the remaining scroll distance below which more entries load.
	DefaultScrollMargin = 500
	// DefaultScrollThrottle bounds how often the scroll trigger may advance.
	DefaultScrollThrottle = 200 * time.Millisecond
	// DefaultVisibilityProximity is how close to the last entry an item must be
	// before its visibility requests more entries.
	DefaultVisibilityProximity = 1
)

// PickerTuning holds the product tuning values of the picker.
type PickerTuning struct {
	PageSize            int
	ScrollMargin        float64
	ScrollThrottle      time.Duration
	VisibilityProximity int
	DefaultLibrary      LibraryID
}

// DefaultPickerTuning returns the tuning used when nothing is configured.
func DefaultPickerTuning() PickerTuning {
	return PickerTuning{
		PageSize:            DefaultPageSize,
		ScrollMargin:        DefaultScrollMargin,
		ScrollThrottle:      DefaultScrollThrottle,
		VisibilityProximity: DefaultVisibilityProximity,
		DefaultLibrary:      LibraryLucide,
	}
}

// Config is the resolved runtime configuration.
type Config struct {
	// Path is the file the configuration was read from, empty for defaults.
	Path       string
	Picker     PickerTuning
	RenderSize int
	LogLevel   slog.Level
	LogJSON    bool
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Picker:     DefaultPickerTuning(),
		RenderSize: DefaultIconSize,
		LogLevel:   slog.LevelInfo,
	}
}
