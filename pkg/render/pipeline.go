package render

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/atelier-tools/vitrine/pkg/config"
	"github.com/atelier-tools/vitrine/pkg/engine"
	"github.com/atelier-tools/vitrine/pkg/errors"
	"github.com/atelier-tools/vitrine/pkg/filesystem"
	"github.com/atelier-tools/vitrine/pkg/logging"
	"github.com/atelier-tools/vitrine/pkg/resolver"
)

// TreeLoader supplies the entity tree. Every render awaits it before any
// lookup, so callers never observe a partially built catalog.
type TreeLoader interface {
	Tree(ctx context.Context) (*catalog.Collection, error)
}

// Opts control a single render call.
type Opts struct {
	// UseLayout wraps the rendered markup in the entity's preview layout
	// when the entity declares one. Entities without a layout render
	// unwrapped regardless.
	UseLayout bool
}

// Collator post-processes each fragment of a collated render before the
// fragments are joined. The default collator returns markup unchanged.
type Collator func(markup string, variant *catalog.Variant) string

// PipelineOption customizes a Pipeline at construction time.
type PipelineOption func(*Pipeline)

// WithCollator installs a custom fragment collator.
func WithCollator(fn Collator) PipelineOption {
	return func(p *Pipeline) {
		p.collator = fn
	}
}

// Pipeline renders catalog entities to markup. It is safe for concurrent
// use; all mutable state lives in the entities themselves.
type Pipeline struct {
	fs        filesystem.FS
	engine    engine.Engine
	loader    TreeLoader
	resolver  *resolver.Resolver
	yieldKey  string
	errorMode string
	collator  Collator
	logger    zerolog.Logger
}

// NewPipeline wires a render pipeline from its collaborators. The
// configuration supplies the yield key for layouts and the error mode
// applied at the public render boundary.
func NewPipeline(fsys filesystem.FS, eng engine.Engine, loader TreeLoader, cfg *config.Config, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		fs:        fsys,
		engine:    eng,
		loader:    loader,
		resolver:  resolver.New(),
		yieldKey:  cfg.Render.Yield,
		errorMode: cfg.Render.ErrorMode,
		logger:    logging.GetLogger("render.pipeline"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render produces markup for an entity.
//
// The entity may be a *catalog.Component (rendered through its default
// variant, or collated across all variants when the component is marked
// collated), a *catalog.Variant, or a string naming a template file that
// is read and rendered directly, bypassing the entity model.
//
// A nil data context falls back to the entity's own stored context. The
// configured error mode applies here: in ignore mode render failures are
// logged and yield empty markup instead of an error. A missing entity is
// reported to the caller regardless of mode.
func (p *Pipeline) Render(ctx context.Context, entity any, data catalog.Context, opts Opts) (string, error) {
	if isMissing(entity) {
		return "", errors.New(errors.ErrEntityMissing, "render invoked without an entity")
	}

	logger := p.logger.With().Str("renderID", uuid.NewString()).Logger()
	defer logging.LogDuration(logger, time.Now(), "render")

	markup, err := p.render(ctx, entity, data, opts, logger)
	if err != nil {
		if p.errorMode == config.ErrorModeIgnore {
			logger.Error().Err(err).Msg("Render failed, yielding empty markup")
			return "", nil
		}
		return "", err
	}
	return markup, nil
}

// RenderPreview renders an entity wrapped in its preview layout, using
// the entity's own stored context. It honors the configured error mode
// the same way Render does.
func (p *Pipeline) RenderPreview(ctx context.Context, entity any) (string, error) {
	return p.Render(ctx, entity, nil, Opts{UseLayout: true})
}

// RenderString renders a raw template source with no entity or layout
// machinery. The data context is resolved before rendering. Failures are
// always reported; the error mode does not apply here.
func (p *Pipeline) RenderString(ctx context.Context, source string, data catalog.Context) (string, error) {
	tree, err := p.loader.Tree(ctx)
	if err != nil {
		return "", err
	}
	resolved, err := p.resolver.Resolve(ctx, data, tree)
	if err != nil {
		return "", err
	}
	return p.engine.Render(ctx, "", source, resolved)
}

// Resolve expands entity references in a context against the loaded
// tree without rendering anything.
func (p *Pipeline) Resolve(ctx context.Context, data catalog.Context) (catalog.Context, error) {
	tree, err := p.loader.Tree(ctx)
	if err != nil {
		return nil, err
	}
	return p.resolver.Resolve(ctx, data, tree)
}

// render dispatches on the entity kind. Errors bubble up unswallowed;
// the public boundary decides what the error mode makes of them.
func (p *Pipeline) render(ctx context.Context, entity any, data catalog.Context, opts Opts, logger zerolog.Logger) (string, error) {
	if path, ok := entity.(string); ok {
		logger.Debug().Str("path", path).Msg("Rendering raw template file")
		content, err := p.fs.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrTemplateRead, "reading template %s", path)
		}
		return p.engine.Render(ctx, path, string(content), data)
	}

	tree, err := p.loader.Tree(ctx)
	if err != nil {
		return "", err
	}

	switch e := entity.(type) {
	case *catalog.Component:
		if e.Collated {
			logger.Debug().Str("component", e.Handle).Int("variantCount", len(e.Variants)).Msg("Rendering collated component")
			markup, err := p.renderCollated(ctx, tree, e, data)
			if err != nil {
				return "", err
			}
			if opts.UseLayout && e.Preview != "" {
				return p.wrapInLayout(ctx, tree, markup, e.Preview, e, logger)
			}
			return markup, nil
		}

		variant := e.DefaultVariant()
		if variant == nil {
			return "", errors.Newf(errors.ErrEntityMissing, "component %q has no variants", e.Handle)
		}
		logger.Debug().Str("component", e.Handle).Str("variant", variant.Handle).Msg("Rendering component via default variant")
		markup, err := p.renderVariant(ctx, tree, variant, data)
		if err != nil {
			return "", err
		}
		if opts.UseLayout && variant.Preview != "" {
			return p.wrapInLayout(ctx, tree, markup, variant.Preview, variant, logger)
		}
		return markup, nil

	case *catalog.Variant:
		logger.Debug().Str("variant", e.Handle).Str("component", e.Component).Msg("Rendering variant")
		markup, err := p.renderVariant(ctx, tree, e, data)
		if err != nil {
			return "", err
		}
		if opts.UseLayout && e.Preview != "" {
			return p.wrapInLayout(ctx, tree, markup, e.Preview, e, logger)
		}
		return markup, nil

	default:
		if ent, ok := entity.(catalog.Entity); ok {
			return "", errors.Newf(errors.ErrEntityUnsupported, "cannot render %s entities", ent.Kind())
		}
		return "", errors.Newf(errors.ErrEntityUnsupported, "cannot render values of type %T", entity)
	}
}

// renderVariant runs the single-variant sequence: pick the effective
// context, load the view content, resolve references, expose the variant
// to its own template, and hand off to the engine.
func (p *Pipeline) renderVariant(ctx context.Context, tree *catalog.Collection, v *catalog.Variant, data catalog.Context) (string, error) {
	effective := data
	if effective == nil {
		effective = v.Context
	}

	content, err := v.Content(p.fs)
	if err != nil {
		return "", err
	}

	resolved, err := p.resolver.Resolve(ctx, effective, tree)
	if err != nil {
		return "", err
	}
	resolved[catalog.SelfKey] = v.Summary()

	return p.engine.Render(ctx, v.ViewPath, content, resolved)
}

// isMissing reports whether the entity argument is absent: a nil
// interface, a typed nil pointer, or an empty template path.
func isMissing(entity any) bool {
	switch e := entity.(type) {
	case nil:
		return true
	case *catalog.Component:
		return e == nil
	case *catalog.Variant:
		return e == nil
	case *catalog.Collection:
		return e == nil
	case string:
		return e == ""
	}
	return false
}
