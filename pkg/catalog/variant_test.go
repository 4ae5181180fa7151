package catalog_test

import (
	"sync"
	"testing"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/atelier-tools/vitrine/pkg/errors"
	"github.com/atelier-tools/vitrine/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantContentCachesFirstRead(t *testing.T) {
	fs := testutil.NewMemoryFS().
		AddFile("components/button/button.tpl", "<button></button>")

	v := &catalog.Variant{
		Handle:    "default",
		Component: "button",
		ViewPath:  "components/button/button.tpl",
	}

	first, err := v.Content(fs)
	require.NoError(t, err)
	assert.Equal(t, "<button></button>", first)

	second, err := v.Content(fs)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, 1, fs.ReadCount("components/button/button.tpl"),
		"second Content call must be served from the cache")
}

func TestVariantContentConcurrentLoadsShareOneRead(t *testing.T) {
	fs := testutil.NewMemoryFS().
		AddFile("components/card/card.tpl", "<div>card</div>")

	v := &catalog.Variant{
		Handle:    "default",
		Component: "card",
		ViewPath:  "components/card/card.tpl",
	}

	var wg sync.WaitGroup
	out := make([]string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			content, err := v.Content(fs)
			assert.NoError(t, err)
			out[i] = content
		}(i)
	}
	wg.Wait()

	for _, content := range out {
		assert.Equal(t, "<div>card</div>", content)
	}
	assert.Equal(t, 1, fs.ReadCount("components/card/card.tpl"))
}

func TestVariantContentReadFailure(t *testing.T) {
	fs := testutil.NewMemoryFS()

	v := &catalog.Variant{
		Handle:    "default",
		Component: "ghost",
		ViewPath:  "components/ghost/ghost.tpl",
	}

	_, err := v.Content(fs)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRead))

	// The failure is cached like a successful load
	_, err2 := v.Content(fs)
	assert.Equal(t, err, err2)
	assert.Equal(t, 1, fs.ReadCount("components/ghost/ghost.tpl"))
}

func TestVariantSummary(t *testing.T) {
	v := &catalog.Variant{
		Handle:    "large",
		Component: "button",
		ViewPath:  "components/button/button--large.tpl",
		Status:    "wip",
	}

	sum := v.Summary()
	assert.Equal(t, "variant", sum["kind"])
	assert.Equal(t, "large", sum["handle"])
	assert.Equal(t, "button", sum["component"])
	assert.Equal(t, "wip", sum["status"])
}
