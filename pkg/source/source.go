// Package source assembles the catalog's public surface: one type
// wiring the loader, classifier, status registry and render pipeline
// behind the operations outer tooling consumes.
package source

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/atelier-tools/vitrine/pkg/classify"
	"github.com/atelier-tools/vitrine/pkg/config"
	"github.com/atelier-tools/vitrine/pkg/engine"
	"github.com/atelier-tools/vitrine/pkg/filesystem"
	"github.com/atelier-tools/vitrine/pkg/loader"
	"github.com/atelier-tools/vitrine/pkg/logging"
	"github.com/atelier-tools/vitrine/pkg/render"
	"github.com/atelier-tools/vitrine/pkg/status"
)

// options collects construction-time replacements for the default
// collaborators.
type options struct {
	fs       filesystem.FS
	engine   engine.Engine
	collator render.Collator
}

// Option customizes a Source at construction time.
type Option func(*options)

// WithFS reads component sources from the given filesystem instead of
// the operating system.
func WithFS(fsys filesystem.FS) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEngine replaces the default Go text/template engine.
func WithEngine(eng engine.Engine) Option {
	return func(o *options) {
		o.engine = eng
	}
}

// WithCollator installs a collated-render fragment post-processor.
func WithCollator(fn render.Collator) Option {
	return func(o *options) {
		o.collator = fn
	}
}

// Source is the catalog session: it owns the entity tree (through the
// loader's load barrier) and exposes rendering, navigation, status and
// classification in one place.
type Source struct {
	cfg      *config.Config
	fs       filesystem.FS
	classify *classify.Classifier
	registry *status.Registry
	loader   *loader.Loader
	pipeline *render.Pipeline
	logger   zerolog.Logger
}

// New wires a catalog session from configuration. By default sources
// are read from the operating system and rendered with the built-in
// text/template engine.
func New(cfg *config.Config, opts ...Option) *Source {
	o := options{
		fs:     filesystem.NewOS(),
		engine: engine.NewGoText(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	cls := classify.New(cfg.Source.Ext, cfg.Source.Splitter)
	ld := loader.New(o.fs, cls, cfg)

	var popts []render.PipelineOption
	if o.collator != nil {
		popts = append(popts, render.WithCollator(o.collator))
	}

	return &Source{
		cfg:      cfg,
		fs:       o.fs,
		classify: cls,
		registry: status.NewRegistry(cfg.Taxonomy()),
		loader:   ld,
		pipeline: render.NewPipeline(o.fs, o.engine, ld, cfg, popts...),
		logger:   logging.GetLogger("source"),
	}
}

// Render produces markup for an entity. See render.Pipeline.Render.
func (s *Source) Render(ctx context.Context, entity any, data catalog.Context, opts render.Opts) (string, error) {
	return s.pipeline.Render(ctx, entity, data, opts)
}

// RenderPreview renders an entity wrapped in its preview layout.
func (s *Source) RenderPreview(ctx context.Context, entity any) (string, error) {
	return s.pipeline.RenderPreview(ctx, entity)
}

// RenderString renders a raw template source against a resolved
// context.
func (s *Source) RenderString(ctx context.Context, src string, data catalog.Context) (string, error) {
	return s.pipeline.RenderString(ctx, src, data)
}

// Resolve expands entity references in a context.
func (s *Source) Resolve(ctx context.Context, data catalog.Context) (catalog.Context, error) {
	return s.pipeline.Resolve(ctx, data)
}

// Tree returns the entity tree, scanning the source root on first use.
func (s *Source) Tree(ctx context.Context) (*catalog.Collection, error) {
	return s.loader.Tree(ctx)
}

// Components returns every component in the tree, depth first.
func (s *Source) Components(ctx context.Context) ([]*catalog.Component, error) {
	tree, err := s.loader.Tree(ctx)
	if err != nil {
		return nil, err
	}
	return tree.Flatten(), nil
}

// Variants returns every variant of every component in tree order.
func (s *Source) Variants(ctx context.Context) ([]*catalog.Variant, error) {
	tree, err := s.loader.Tree(ctx)
	if err != nil {
		return nil, err
	}
	return tree.Variants(), nil
}

// Assets returns every component's assets in tree order.
func (s *Source) Assets(ctx context.Context) ([]*catalog.Asset, error) {
	tree, err := s.loader.Tree(ctx)
	if err != nil {
		return nil, err
	}
	return tree.Assets(), nil
}

// Find looks an entity up by selector or field/value pair. It returns
// nil when nothing matches. See catalog.Collection.Find.
func (s *Source) Find(ctx context.Context, args ...string) (catalog.Entity, error) {
	tree, err := s.loader.Tree(ctx)
	if err != nil {
		return nil, err
	}
	return tree.Find(args...), nil
}

// StatusInfo resolves status handles into descriptive records,
// aggregating distinct handles into the mixed record.
func (s *Source) StatusInfo(handles ...string) *status.Option {
	return s.registry.Info(handles...)
}

// Reload discards the loaded tree; the next operation scans again.
func (s *Source) Reload() {
	s.loader.Reload()
	s.logger.Info().Msg("Catalog reloaded")
}

// IsView reports whether path is a component's primary view.
func (s *Source) IsView(path string) bool { return s.classify.IsView(path) }

// IsVarView reports whether path is a variant view.
func (s *Source) IsVarView(path string) bool { return s.classify.IsVarView(path) }

// IsConfig reports whether path is a configuration file.
func (s *Source) IsConfig(path string) bool { return s.classify.IsConfig(path) }

// IsReadme reports whether path is a component readme.
func (s *Source) IsReadme(path string) bool { return s.classify.IsReadme(path) }

// IsAsset reports whether path is a generic asset.
func (s *Source) IsAsset(path string) bool { return s.classify.IsAsset(path) }
