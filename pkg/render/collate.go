package render

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/atelier-tools/vitrine/pkg/resolver"
)

// renderCollated renders every variant of a component concurrently and
// joins the fragments in the component's declared variant order. Each
// fragment passes back through Render, so per-fragment failures follow
// the same error mode as any other render.
func (p *Pipeline) renderCollated(ctx context.Context, tree *catalog.Collection, comp *catalog.Component, data catalog.Context) (string, error) {
	fragments := make([]string, len(comp.Variants))

	g, gctx := errgroup.WithContext(ctx)
	for i, v := range comp.Variants {
		g.Go(func() error {
			markup, err := p.Render(gctx, v, collatedContext(data, v), Opts{})
			if err != nil {
				return err
			}
			if p.collator != nil {
				markup = p.collator(markup, v)
			}
			fragments[i] = markup
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.Join(fragments, "\n"), nil
}

// collatedContext picks the context for one fragment of a collated
// render: the caller may address individual variants through sigiled
// keys ("@large") in the top-level context; otherwise the variant's own
// stored context applies.
func collatedContext(data catalog.Context, v *catalog.Variant) catalog.Context {
	if data == nil {
		return nil
	}
	switch override := data[resolver.Sigil+v.Handle].(type) {
	case catalog.Context:
		return override
	case map[string]any:
		return catalog.Context(override)
	}
	return nil
}
