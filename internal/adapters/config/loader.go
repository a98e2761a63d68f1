// Package config loads the optional iconpick.yaml configuration.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a Loader reading from the operating system.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load walks up from cwd to the filesystem root and reads the first config file
// found. Without one the defaults are returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	if !found {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return domain.DefaultConfig(), nil
	}

	var file Configfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}
	if err := file.Validate(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", configPath)
	}
	if file.Version != "" && file.Version != "1" {
		l.Logger.Warn("unknown config version " + file.Version + " in " + configPath)
	}

	cfg := resolve(&file)
	cfg.Path = configPath
	l.Logger.Debug("loaded configuration from " + configPath)

	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool, error) {
	currentDir := filepath.Clean(cwd)

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		info, err := l.FS.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, true, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false, nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Configfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return nil
}

// resolve overlays the file on the defaults. The file has been validated.
func resolve(file *Configfile) *domain.Config {
	cfg := domain.DefaultConfig()

	if p := file.Picker; p != nil {
		if p.PageSize != nil {
			cfg.Picker.PageSize = *p.PageSize
		}
		if p.ScrollMargin != nil {
			cfg.Picker.ScrollMargin = *p.ScrollMargin
		}
		if p.ScrollThrottle != nil {
			cfg.Picker.ScrollThrottle = *p.ScrollThrottle
		}
		if p.VisibilityProximity != nil {
			cfg.Picker.VisibilityProximity = max(*p.VisibilityProximity, 1)
		}
		if lib, ok := domain.ParseLibraryID(p.DefaultLibrary); ok {
			cfg.Picker.DefaultLibrary = lib
		}
	}

	if r := file.Render; r != nil && r.Size != nil {
		cfg.RenderSize = *r.Size
	}

	if lg := file.Log; lg != nil {
		cfg.LogJSON = lg.JSON
		if lg.Level != "" {
			cfg.LogLevel = parseLevel(lg.Level)
		}
	}

	return cfg
}

func parseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return slog.LevelInfo
	}
	return level
}
