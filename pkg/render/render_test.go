package render_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/atelier-tools/vitrine/pkg/config"
	"github.com/atelier-tools/vitrine/pkg/engine"
	"github.com/atelier-tools/vitrine/pkg/errors"
	"github.com/atelier-tools/vitrine/pkg/render"
	"github.com/atelier-tools/vitrine/pkg/testutil"
)

// staticLoader hands the pipeline a prebuilt tree, or a fixed error.
type staticLoader struct {
	tree *catalog.Collection
	err  error
}

func (l *staticLoader) Tree(ctx context.Context) (*catalog.Collection, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.tree, nil
}

// renderFixture is a small catalog with its view files in memory:
// button (default + large), badge (collated, info + warn), shell (the
// preview layout) and card, whose preview points at a layout that does
// not exist.
type renderFixture struct {
	fs     *testutil.MemoryFS
	tree   *catalog.Collection
	button *catalog.Component
	badge  *catalog.Component
	card   *catalog.Component
}

func newFixture() *renderFixture {
	fs := testutil.NewMemoryFS().
		AddFile("/views/button.tpl", "<button>{{.label}}</button>").
		AddFile("/views/button--large.tpl", `<button class="large">{{.label}}</button>`).
		AddFile("/views/badge--info.tpl", "<i>{{.tone}}</i>").
		AddFile("/views/badge--warn.tpl", "<b>{{.tone}}</b>").
		AddFile("/views/shell.tpl", "<h1>{{.title}}</h1><main>{{.yield}}</main><footer>{{._target.handle}}</footer>").
		AddFile("/views/card.tpl", "<div>card</div>")

	button := &catalog.Component{
		Handle: "button",
		Label:  "Button",
		Variants: []*catalog.Variant{
			{
				Handle:    "default",
				Component: "button",
				ViewPath:  "/views/button.tpl",
				Context:   catalog.Context{"label": "Press"},
				Preview:   "shell",
				Default:   true,
			},
			{
				Handle:    "large",
				Component: "button",
				ViewPath:  "/views/button--large.tpl",
				Context:   catalog.Context{"label": "Press hard"},
				Preview:   "shell",
			},
		},
	}

	badge := &catalog.Component{
		Handle:   "badge",
		Label:    "Badge",
		Collated: true,
		Variants: []*catalog.Variant{
			{
				Handle:    "info",
				Component: "badge",
				ViewPath:  "/views/badge--info.tpl",
				Context:   catalog.Context{"tone": "info"},
			},
			{
				Handle:    "warn",
				Component: "badge",
				ViewPath:  "/views/badge--warn.tpl",
				Context:   catalog.Context{"tone": "warn"},
			},
		},
	}

	shell := &catalog.Component{
		Handle: "shell",
		Label:  "Shell",
		Variants: []*catalog.Variant{
			{
				Handle:    "default",
				Component: "shell",
				ViewPath:  "/views/shell.tpl",
				Context:   catalog.Context{"title": "Catalog"},
			},
		},
	}

	card := &catalog.Component{
		Handle: "card",
		Label:  "Card",
		Variants: []*catalog.Variant{
			{
				Handle:    "default",
				Component: "card",
				ViewPath:  "/views/card.tpl",
				Preview:   "ghost",
			},
		},
	}

	tree := &catalog.Collection{
		Handle: "root",
		Items:  []catalog.Entity{button, badge, shell, card},
	}

	return &renderFixture{fs: fs, tree: tree, button: button, badge: badge, card: card}
}

func newPipeline(fx *renderFixture, cfg *config.Config, opts ...render.PipelineOption) *render.Pipeline {
	return render.NewPipeline(fx.fs, engine.NewGoText(), &staticLoader{tree: fx.tree}, cfg, opts...)
}

func TestRenderVariant(t *testing.T) {
	fx := newFixture()
	p := newPipeline(fx, config.Default())

	t.Run("uses the variant's own context by default", func(t *testing.T) {
		markup, err := p.Render(context.Background(), fx.button.Variants[1], nil, render.Opts{})
		require.NoError(t, err)
		assert.Equal(t, `<button class="large">Press hard</button>`, markup)
	})

	t.Run("explicit context replaces the stored one", func(t *testing.T) {
		data := catalog.Context{"label": "Go"}
		markup, err := p.Render(context.Background(), fx.button.Variants[0], data, render.Opts{})
		require.NoError(t, err)
		assert.Equal(t, "<button>Go</button>", markup)
	})

	t.Run("preview layout is ignored without UseLayout", func(t *testing.T) {
		markup, err := p.Render(context.Background(), fx.button.Variants[0], nil, render.Opts{})
		require.NoError(t, err)
		assert.Equal(t, "<button>Press</button>", markup)
	})
}

func TestRenderComponentMatchesDefaultVariant(t *testing.T) {
	fx := newFixture()
	p := newPipeline(fx, config.Default())

	viaComponent, err := p.Render(context.Background(), fx.button, nil, render.Opts{})
	require.NoError(t, err)

	viaVariant, err := p.Render(context.Background(), fx.button.Variants[0], nil, render.Opts{})
	require.NoError(t, err)

	assert.Equal(t, viaVariant, viaComponent)
}

func TestRenderRawTemplatePath(t *testing.T) {
	fx := newFixture()
	fx.fs.AddFile("/views/raw.tpl", "Hello {{.name}}")
	p := newPipeline(fx, config.Default())

	t.Run("reads and renders the file directly", func(t *testing.T) {
		markup, err := p.Render(context.Background(), "/views/raw.tpl", catalog.Context{"name": "world"}, render.Opts{})
		require.NoError(t, err)
		assert.Equal(t, "Hello world", markup)
	})

	t.Run("context passes through unresolved", func(t *testing.T) {
		markup, err := p.Render(context.Background(), "/views/raw.tpl", catalog.Context{"name": "@button"}, render.Opts{})
		require.NoError(t, err)
		assert.Equal(t, "Hello @button", markup)
	})

	t.Run("does not need the tree", func(t *testing.T) {
		broken := render.NewPipeline(fx.fs, engine.NewGoText(),
			&staticLoader{err: errors.New(errors.ErrTreeLoad, "scan failed")}, config.Default())
		markup, err := broken.Render(context.Background(), "/views/raw.tpl", catalog.Context{"name": "world"}, render.Opts{})
		require.NoError(t, err)
		assert.Equal(t, "Hello world", markup)
	})

	t.Run("missing file reports a template read error", func(t *testing.T) {
		_, err := p.Render(context.Background(), "/views/ghost.tpl", nil, render.Opts{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRead))
	})
}

func TestRenderMissingEntity(t *testing.T) {
	fx := newFixture()

	tests := []struct {
		name   string
		entity any
	}{
		{name: "nil interface", entity: nil},
		{name: "typed nil component", entity: (*catalog.Component)(nil)},
		{name: "typed nil variant", entity: (*catalog.Variant)(nil)},
		{name: "empty template path", entity: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPipeline(fx, config.Default())
			_, err := p.Render(context.Background(), tt.entity, nil, render.Opts{})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrEntityMissing))
		})
	}

	t.Run("reported even in ignore mode", func(t *testing.T) {
		cfg := config.Default()
		cfg.Render.ErrorMode = config.ErrorModeIgnore
		p := newPipeline(fx, cfg)

		_, err := p.Render(context.Background(), nil, nil, render.Opts{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEntityMissing))
	})
}

func TestRenderUnsupportedEntity(t *testing.T) {
	fx := newFixture()
	p := newPipeline(fx, config.Default())

	t.Run("collection", func(t *testing.T) {
		_, err := p.Render(context.Background(), fx.tree, nil, render.Opts{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEntityUnsupported))
		assert.Contains(t, err.Error(), "collection")
	})

	t.Run("arbitrary value", func(t *testing.T) {
		_, err := p.Render(context.Background(), 42, nil, render.Opts{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEntityUnsupported))
	})
}

func TestRenderCollated(t *testing.T) {
	fx := newFixture()

	t.Run("joins fragments in declared variant order", func(t *testing.T) {
		p := newPipeline(fx, config.Default())
		markup, err := p.Render(context.Background(), fx.badge, nil, render.Opts{})
		require.NoError(t, err)
		assert.Equal(t, "<i>info</i>\n<b>warn</b>", markup)
	})

	t.Run("sigiled keys address individual variants", func(t *testing.T) {
		p := newPipeline(fx, config.Default())
		data := catalog.Context{"@info": map[string]any{"tone": "quiet"}}
		markup, err := p.Render(context.Background(), fx.badge, data, render.Opts{})
		require.NoError(t, err)
		assert.Equal(t, "<i>quiet</i>\n<b>warn</b>", markup)
	})

	t.Run("collator wraps each fragment", func(t *testing.T) {
		p := newPipeline(fx, config.Default(), render.WithCollator(func(markup string, v *catalog.Variant) string {
			return "<li>" + markup + "</li>"
		}))
		markup, err := p.Render(context.Background(), fx.badge, nil, render.Opts{})
		require.NoError(t, err)
		assert.Equal(t, "<li><i>info</i></li>\n<li><b>warn</b></li>", markup)
	})
}

// slowEngine renders each view after a per-view delay, so collation
// order can be checked against concurrent completion order.
type slowEngine struct {
	delays map[string]time.Duration
}

func (e *slowEngine) Render(ctx context.Context, viewPath, source string, data map[string]any) (string, error) {
	time.Sleep(e.delays[viewPath])
	return source, nil
}

func TestRenderCollatedOrderUnderLatency(t *testing.T) {
	fs := testutil.NewMemoryFS().
		AddFile("/views/first.tpl", "first").
		AddFile("/views/second.tpl", "second").
		AddFile("/views/third.tpl", "third")

	comp := &catalog.Component{
		Handle:   "steps",
		Collated: true,
		Variants: []*catalog.Variant{
			{Handle: "one", Component: "steps", ViewPath: "/views/first.tpl"},
			{Handle: "two", Component: "steps", ViewPath: "/views/second.tpl"},
			{Handle: "three", Component: "steps", ViewPath: "/views/third.tpl"},
		},
	}
	tree := &catalog.Collection{Handle: "root", Items: []catalog.Entity{comp}}

	eng := &slowEngine{delays: map[string]time.Duration{
		"/views/first.tpl":  40 * time.Millisecond,
		"/views/second.tpl": 20 * time.Millisecond,
		"/views/third.tpl":  0,
	}}
	p := render.NewPipeline(fs, eng, &staticLoader{tree: tree}, config.Default())

	markup, err := p.Render(context.Background(), comp, nil, render.Opts{})
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\nthird", markup)
}

func TestRenderPreview(t *testing.T) {
	fx := newFixture()
	p := newPipeline(fx, config.Default())

	t.Run("wraps markup in the preview layout", func(t *testing.T) {
		markup, err := p.RenderPreview(context.Background(), fx.button)
		require.NoError(t, err)
		assert.Equal(t, "<h1>Catalog</h1><main><button>Press</button></main><footer>default</footer>", markup)
	})

	t.Run("missing layout degrades to the unwrapped markup", func(t *testing.T) {
		preview, err := p.RenderPreview(context.Background(), fx.card)
		require.NoError(t, err)

		plain, err := p.Render(context.Background(), fx.card, nil, render.Opts{})
		require.NoError(t, err)

		assert.Equal(t, plain, preview)

		again, err := p.RenderPreview(context.Background(), fx.card)
		require.NoError(t, err)
		assert.Equal(t, preview, again)
	})
}

func TestRenderErrorMode(t *testing.T) {
	t.Run("fail mode propagates render failures", func(t *testing.T) {
		fx := newFixture()
		broken := &catalog.Variant{Handle: "broken", Component: "button", ViewPath: "/views/nope.tpl"}
		p := newPipeline(fx, config.Default())

		_, err := p.Render(context.Background(), broken, nil, render.Opts{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRead))
	})

	t.Run("ignore mode yields empty markup", func(t *testing.T) {
		fx := newFixture()
		broken := &catalog.Variant{Handle: "broken", Component: "button", ViewPath: "/views/nope.tpl"}
		cfg := config.Default()
		cfg.Render.ErrorMode = config.ErrorModeIgnore
		p := newPipeline(fx, cfg)

		markup, err := p.Render(context.Background(), broken, nil, render.Opts{})
		require.NoError(t, err)
		assert.Empty(t, markup)
	})

	t.Run("RenderString never swallows failures", func(t *testing.T) {
		fx := newFixture()
		cfg := config.Default()
		cfg.Render.ErrorMode = config.ErrorModeIgnore
		p := newPipeline(fx, cfg)

		_, err := p.RenderString(context.Background(), "{{.open", nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEngineRender))
	})
}

func TestRenderReadsVariantContentOnce(t *testing.T) {
	fx := newFixture()
	p := newPipeline(fx, config.Default())

	for i := 0; i < 3; i++ {
		_, err := p.Render(context.Background(), fx.button.Variants[0], nil, render.Opts{})
		require.NoError(t, err)
	}

	assert.Equal(t, 1, fx.fs.ReadCount("/views/button.tpl"))
}

func TestRenderString(t *testing.T) {
	fx := newFixture()
	p := newPipeline(fx, config.Default())

	t.Run("resolves references before rendering", func(t *testing.T) {
		markup, err := p.RenderString(context.Background(), "{{.btn.label}}", catalog.Context{"btn": "@button"})
		require.NoError(t, err)
		assert.Equal(t, "Press", markup)
	})

	t.Run("renders plain data", func(t *testing.T) {
		markup, err := p.RenderString(context.Background(), "{{upper .word}}", catalog.Context{"word": "loud"})
		require.NoError(t, err)
		assert.Equal(t, "LOUD", markup)
	})
}

func TestPipelineResolve(t *testing.T) {
	fx := newFixture()
	p := newPipeline(fx, config.Default())

	resolved, err := p.Resolve(context.Background(), catalog.Context{"btn": "@button"})
	require.NoError(t, err)

	btn, ok := resolved["btn"].(catalog.Context)
	require.True(t, ok)
	assert.Equal(t, "Press", btn["label"])
}

func TestRenderTreeLoadFailure(t *testing.T) {
	fx := newFixture()
	p := render.NewPipeline(fx.fs, engine.NewGoText(),
		&staticLoader{err: errors.New(errors.ErrTreeLoad, "scan failed")}, config.Default())

	_, err := p.Render(context.Background(), fx.button, nil, render.Opts{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTreeLoad))
}

func TestRenderCancelledContext(t *testing.T) {
	fx := newFixture()
	p := newPipeline(fx, config.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Render(ctx, fx.button.Variants[0], nil, render.Opts{})
	assert.ErrorIs(t, err, context.Canceled)
}
