// Package iconset loads the icon libraries bundled with the binary and builds
// their sources.
package iconset

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/core/ports"
	"go.trai.ch/iconpick/internal/engine/catalog"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// TracerName is the instrumentation scope of catalog builds.
const TracerName = "go.trai.ch/iconpick/iconset"

const manifestDir = "manifests"

//go:embed manifests/*.yaml
var bundled embed.FS

// Bundled returns the embedded manifests.
func Bundled() fs.FS {
	return bundled
}

// Loader decodes manifests and builds one source per library.
type Loader struct {
	fsys   fs.FS
	logger ports.Logger
	tracer trace.Tracer
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS replaces the embedded manifests. The FS must hold manifests/<library>.yaml.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithTracer replaces the global tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(l *Loader) {
		l.tracer = tracer
	}
}

// NewLoader creates a Loader over the embedded manifests.
func NewLoader(logger ports.Logger, opts ...Option) *Loader {
	l := &Loader{
		fsys:   bundled,
		logger: logger,
		tracer: otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load decodes the export table of lib.
func (l *Loader) Load(lib domain.LibraryID) ([]domain.Export, error) {
	name := path.Join(manifestDir, lib.String()+".yaml")

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "manifest", name)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "manifest", name)
	}
	if m.Library != lib.String() {
		err := zerr.With(domain.ErrManifestParseFailed, "manifest", name)
		return nil, zerr.With(err, "declared_library", m.Library)
	}

	return m.toDomain(), nil
}

// Sources builds a source for every bundled library concurrently, in library
// order. A library whose manifest cannot be loaded degrades to an empty source
// and the failure is logged.
func (l *Loader) Sources(ctx context.Context) []ports.IconSource {
	ctx, span := l.tracer.Start(ctx, "iconset.sources")
	defer span.End()

	libs := domain.Libraries()
	sources := make([]ports.IconSource, len(libs))

	var g errgroup.Group
	for i, lib := range libs {
		g.Go(func() error {
			sources[i] = l.source(ctx, lib)
			return nil
		})
	}
	_ = g.Wait()

	span.SetAttributes(attribute.Int("iconset.libraries", len(libs)))
	return sources
}

// Catalog builds the catalog over every bundled library.
func (l *Loader) Catalog(ctx context.Context) *catalog.Catalog {
	return catalog.New(l.Sources(ctx)...)
}

func (l *Loader) source(ctx context.Context, lib domain.LibraryID) ports.IconSource {
	_, span := l.tracer.Start(ctx, "iconset.load", trace.WithAttributes(
		attribute.String("iconset.library", lib.String()),
	))
	defer span.End()

	exports, err := l.Load(lib)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "manifest unavailable")
		l.logger.Error(zerr.With(err, "library", lib.String()))
	}

	src, report := catalog.NewSource(lib, exports)
	span.SetAttributes(
		attribute.Int("iconset.exports", report.Exports),
		attribute.Int("iconset.accepted", report.Accepted),
		attribute.Int("iconset.rejected", len(report.Rejected)),
	)
	l.logger.Debug(fmt.Sprintf("%s: %d icons from %d exports", lib, report.Accepted, report.Exports))
	for _, r := range report.Rejected {
		l.logger.Debug(fmt.Sprintf("%s: skipped %s (%s)", lib, r.Name, r.Reason))
	}

	return src
}
