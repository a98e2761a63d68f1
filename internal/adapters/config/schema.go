package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/zerr"
)

// Limits accepted for the tunable values.
const (
	MaxPageSize       = 1000
	MaxScrollThrottle = 5 * time.Second
	MaxRenderSize     = 512
)

// Configfile represents the structure of the iconpick.yaml configuration file.
// Absent fields keep their defaults, hence the pointers.
type Configfile struct {
	Version string     `yaml:"version"`
	Picker  *PickerDTO `yaml:"picker"`
	Render  *RenderDTO `yaml:"render"`
	Log     *LogDTO    `yaml:"log"`
}

// PickerDTO holds the picker tuning section.
type PickerDTO struct {
	PageSize            *int           `yaml:"pageSize" json:"pageSize"`
	ScrollMargin        *float64       `yaml:"scrollMargin" json:"scrollMargin"`
	ScrollThrottle      *time.Duration `yaml:"scrollThrottle" json:"scrollThrottle"`
	VisibilityProximity *int           `yaml:"visibilityProximity" json:"visibilityProximity"`
	DefaultLibrary      string         `yaml:"defaultLibrary" json:"defaultLibrary"`
}

// RenderDTO holds the render section.
type RenderDTO struct {
	Size *int `yaml:"size" json:"size"`
}

// LogDTO holds the log section.
type LogDTO struct {
	Level string `yaml:"level" json:"level"`
	JSON  bool   `yaml:"json" json:"json"`
}

// Validate checks every present section.
func (c *Configfile) Validate() error {
	sections := []struct {
		name    string
		present bool
		check   func() error
	}{
		{"picker", c.Picker != nil, func() error { return c.Picker.Validate() }},
		{"render", c.Render != nil, func() error { return c.Render.Validate() }},
		{"log", c.Log != nil, func() error { return c.Log.Validate() }},
	}

	for _, section := range sections {
		if !section.present {
			continue
		}
		if err := section.check(); err != nil {
			return zerr.With(err, "section", section.name)
		}
	}
	return nil
}

// Validate checks the picker tuning ranges.
func (p *PickerDTO) Validate() error {
	libraries := make([]any, 0, len(domain.Libraries()))
	for _, lib := range domain.Libraries() {
		libraries = append(libraries, lib.String())
	}

	return validation.ValidateStruct(p,
		validation.Field(&p.PageSize, validation.NilOrNotEmpty, validation.Min(1), validation.Max(MaxPageSize)),
		validation.Field(&p.ScrollMargin, validation.Min(0.0)),
		validation.Field(&p.ScrollThrottle, validation.Min(time.Duration(0)), validation.Max(MaxScrollThrottle)),
		validation.Field(&p.VisibilityProximity, validation.Min(0)),
		validation.Field(&p.DefaultLibrary, validation.In(libraries...)),
	)
}

// Validate checks the render size range.
func (r *RenderDTO) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Size, validation.NilOrNotEmpty, validation.Min(1), validation.Max(MaxRenderSize)),
	)
}

// Validate checks the log level name.
func (l *LogDTO) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Level, validation.In("debug", "info", "warn", "error")),
	)
}
