package catalog_test

import (
	"testing"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVariant(t *testing.T) {
	tests := []struct {
		name       string
		variants   []*catalog.Variant
		wantHandle string
		wantNil    bool
	}{
		{
			name: "first variant is the default",
			variants: []*catalog.Variant{
				{Handle: "default", Component: "button"},
				{Handle: "large", Component: "button"},
			},
			wantHandle: "default",
		},
		{
			name: "explicitly marked variant wins over first",
			variants: []*catalog.Variant{
				{Handle: "compact", Component: "button"},
				{Handle: "large", Component: "button", Default: true},
			},
			wantHandle: "large",
		},
		{
			name:    "no variants",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp := &catalog.Component{Handle: "button", Variants: tt.variants}

			got := comp.DefaultVariant()
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantHandle, got.Handle)
		})
	}
}

func TestVariantByHandle(t *testing.T) {
	comp := &catalog.Component{
		Handle: "card",
		Variants: []*catalog.Variant{
			{Handle: "default", Component: "card"},
			{Handle: "compact", Component: "card"},
		},
	}

	v := comp.VariantByHandle("compact")
	require.NotNil(t, v)
	assert.Equal(t, "compact", v.Handle)

	assert.Nil(t, comp.VariantByHandle("missing"))
}

func TestComponentSummary(t *testing.T) {
	comp := &catalog.Component{
		Handle:   "button",
		Label:    "Button",
		Path:     "components/button",
		Status:   "ready",
		Collated: true,
	}

	sum := comp.Summary()
	assert.Equal(t, "component", sum["kind"])
	assert.Equal(t, "button", sum["handle"])
	assert.Equal(t, "Button", sum["label"])
	assert.Equal(t, true, sum["collated"])
}

func TestHandleOf(t *testing.T) {
	assert.Equal(t, "button", catalog.HandleOf(&catalog.Component{Handle: "button"}))
	assert.Equal(t, "large", catalog.HandleOf(&catalog.Variant{Handle: "large"}))
	assert.Equal(t, "forms", catalog.HandleOf(&catalog.Collection{Handle: "forms"}))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, catalog.IsHidden(&catalog.Component{Handle: "scratch", Hidden: true}))
	assert.True(t, catalog.IsHidden(&catalog.Variant{Handle: "draft", Hidden: true}))
	assert.False(t, catalog.IsHidden(&catalog.Component{Handle: "button"}))
	assert.False(t, catalog.IsHidden(&catalog.Collection{Handle: "forms"}))
}
