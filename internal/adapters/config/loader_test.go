package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconpick/internal/adapters/config"
	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const fullConfig = `version: "1"
picker:
  pageSize: 50
  scrollMargin: 250
  scrollThrottle: 100ms
  visibilityProximity: 3
  defaultLibrary: duo
render:
  size: 32
log:
  level: debug
  json: true
`

func newMapLoader(t *testing.T, files fstest.MapFS) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	loader := config.NewLoader(mockLogger)
	loader.FS = config.NewMapFSAdapter("/", files)
	return loader
}

func TestLoader_Load_NoFileYieldsDefaults(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{
		"work/site/readme.md": {Data: []byte("# site")},
	})

	cfg, err := loader.Load("/work/site")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_FullFile(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{
		"work/site/iconpick.yaml": {Data: []byte(fullConfig)},
	})

	cfg, err := loader.Load("/work/site")
	require.NoError(t, err)

	assert.Equal(t, "/work/site/iconpick.yaml", cfg.Path)
	assert.Equal(t, domain.PickerTuning{
		PageSize:            50,
		ScrollMargin:        250,
		ScrollThrottle:      100 * time.Millisecond,
		VisibilityProximity: 3,
		DefaultLibrary:      domain.LibraryDuo,
	}, cfg.Picker)
	assert.Equal(t, 32, cfg.RenderSize)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{
		"work/iconpick.yaml": {Data: []byte("picker:\n  pageSize: 20\n  visibilityProximity: 0\n")},
	})

	cfg, err := loader.Load("/work/site/pages")
	require.NoError(t, err)

	assert.Equal(t, "/work/iconpick.yaml", cfg.Path)
	assert.Equal(t, 20, cfg.Picker.PageSize)
	assert.Equal(t, 1, cfg.Picker.VisibilityProximity)
	assert.Equal(t, domain.DefaultScrollThrottle, cfg.Picker.ScrollThrottle)
	assert.Equal(t, domain.LibraryLucide, cfg.Picker.DefaultLibrary)
	assert.Equal(t, domain.DefaultIconSize, cfg.RenderSize)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoader_Load_NearestFileWins(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{
		"work/iconpick.yaml":      {Data: []byte("render:\n  size: 16\n")},
		"work/site/iconpick.yaml": {Data: []byte("render:\n  size: 48\n")},
	})

	cfg, err := loader.Load("/work/site")
	require.NoError(t, err)
	assert.Equal(t, 48, cfg.RenderSize)
}

func TestLoader_Load_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "picker: [",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "page size too large",
			content: "picker:\n  pageSize: 5000\n",
			wantErr: "pageSize: must be no greater than 1000",
		},
		{
			name:    "zero page size",
			content: "picker:\n  pageSize: 0\n",
			wantErr: "pageSize: cannot be blank",
		},
		{
			name:    "negative margin",
			content: "picker:\n  scrollMargin: -1\n",
			wantErr: "scrollMargin: must be no less than 0",
		},
		{
			name:    "throttle too long",
			content: "picker:\n  scrollThrottle: 10s\n",
			wantErr: "scrollThrottle: must be no greater than",
		},
		{
			name:    "unknown library",
			content: "picker:\n  defaultLibrary: material\n",
			wantErr: "defaultLibrary: must be a valid value",
		},
		{
			name:    "render size",
			content: "render:\n  size: 1024\n",
			wantErr: "size: must be no greater than 512",
		},
		{
			name:    "log level",
			content: "log:\n  level: verbose\n",
			wantErr: "level: must be a valid value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newMapLoader(t, fstest.MapFS{
				"work/iconpick.yaml": {Data: []byte(tt.content)},
			})

			cfg, err := loader.Load("/work")
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_InvalidWrapsSentinel(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{
		"work/iconpick.yaml": {Data: []byte("render:\n  size: -3\n")},
	})

	_, err := loader.Load("/work")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigInvalid.Error())
}

func TestLoader_Load_UnknownVersionWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn("unknown config version 2 in /work/iconpick.yaml").Times(1)

	loader := config.NewLoader(mockLogger)
	loader.FS = config.NewMapFSAdapter("/", fstest.MapFS{
		"work/iconpick.yaml": {Data: []byte("version: \"2\"\n")},
	})

	_, err := loader.Load("/work")
	require.NoError(t, err)
}

func TestLoader_Load_OSFS(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConfigFileName), []byte(fullConfig), 0o600))

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	cfg, err := config.NewLoader(mockLogger).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, domain.ConfigFileName), cfg.Path)
	assert.Equal(t, 50, cfg.Picker.PageSize)
}

func TestLoader_Load_DirectoryNamedLikeConfigIsSkipped(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{
		"work/site/iconpick.yaml/keep": {Data: []byte("")},
		"work/iconpick.yaml":           {Data: []byte("render:\n  size: 40\n")},
	})

	cfg, err := loader.Load("/work/site")
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.RenderSize)
}
