package render

import (
	"context"

	"dario.cat/mergo"
	"github.com/rs/zerolog"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/atelier-tools/vitrine/pkg/errors"
	"github.com/atelier-tools/vitrine/pkg/resolver"
)

// wrapInLayout renders a preview layout around already rendered markup.
// The layout is looked up by handle; when it cannot be found the markup
// is returned unwrapped so a missing layout degrades to a bare preview
// instead of failing the render.
//
// The layout's own resolved context takes precedence over the caller
// side data; the wrapped entity is exposed under catalog.TargetKey and
// the inner markup under the configured yield key.
func (p *Pipeline) wrapInLayout(ctx context.Context, tree *catalog.Collection, body, layoutHandle string, target catalog.Entity, logger zerolog.Logger) (string, error) {
	found := tree.Find(resolver.Sigil + layoutHandle)
	if found == nil {
		logger.Warn().Str("layout", layoutHandle).Msg("Preview layout not found, returning markup unwrapped")
		return body, nil
	}

	var layout *catalog.Variant
	switch l := found.(type) {
	case *catalog.Component:
		layout = l.DefaultVariant()
	case *catalog.Variant:
		layout = l
	}
	if layout == nil {
		logger.Warn().Str("layout", layoutHandle).Msg("Preview layout has no renderable variant, returning markup unwrapped")
		return body, nil
	}

	content, err := layout.Content(p.fs)
	if err != nil {
		return "", err
	}

	layoutCtx, err := p.resolver.Resolve(ctx, layout.Context, tree)
	if err != nil {
		return "", err
	}

	callerCtx := catalog.Context{catalog.TargetKey: target.Summary()}
	if err := mergo.Merge(&layoutCtx, callerCtx); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "merging layout context")
	}

	layoutCtx[p.yieldKey] = body
	layoutCtx[catalog.SelfKey] = layout.Summary()

	logger.Debug().Str("layout", layoutHandle).Str("variant", layout.Handle).Msg("Wrapping markup in preview layout")
	return p.engine.Render(ctx, layout.ViewPath, content, layoutCtx)
}
