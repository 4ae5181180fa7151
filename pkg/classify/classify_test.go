package classify_test

import (
	"testing"

	"github.com/atelier-tools/vitrine/pkg/classify"
	"github.com/stretchr/testify/assert"
)

func TestClassifierPredicates(t *testing.T) {
	c := classify.New(".hbs", "~")

	tests := []struct {
		path      string
		isView    bool
		isVarView bool
		isConfig  bool
		isReadme  bool
		isAsset   bool
	}{
		{path: "button.hbs", isView: true},
		{path: "button~large.hbs", isVarView: true},
		{path: "button.config.json", isConfig: true},
		{path: "button.config.yaml", isConfig: true},
		{path: "button.config.yml", isConfig: true},
		{path: "button.config.js", isConfig: true},
		{path: "button.css", isAsset: true},
		{path: "readme.md", isReadme: true, isAsset: false},
		{path: "README.md", isReadme: true},
		{path: "components/forms/input/input.hbs", isView: true},
		{path: "components/forms/input/input~compact.hbs", isVarView: true},
		{path: "components/forms/input/notes.md", isAsset: true},
		{path: "BUTTON.HBS", isView: true},
		{path: "Button~Wide.HBS", isVarView: true},
		{path: "icon.svg", isAsset: true},
		{path: "Makefile", isAsset: false},
		{path: ".gitignore", isAsset: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.isView, c.IsView(tt.path), "IsView")
			assert.Equal(t, tt.isVarView, c.IsVarView(tt.path), "IsVarView")
			assert.Equal(t, tt.isConfig, c.IsConfig(tt.path), "IsConfig")
			assert.Equal(t, tt.isReadme, c.IsReadme(tt.path), "IsReadme")
			assert.Equal(t, tt.isAsset, c.IsAsset(tt.path), "IsAsset")
		})
	}
}

func TestClassifierDefaultTokens(t *testing.T) {
	c := classify.New(".tpl", "--")

	assert.True(t, c.IsView("card.tpl"))
	assert.True(t, c.IsVarView("card--compact.tpl"))
	assert.False(t, c.IsView("card--compact.tpl"))
	assert.True(t, c.IsAsset("card.scss"))
	assert.Equal(t, ".tpl", c.Ext())
	assert.Equal(t, "--", c.Splitter())
}

func TestVariantHandle(t *testing.T) {
	c := classify.New(".tpl", "--")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"simple variant", "button--large.tpl", "large"},
		{"nested path", "components/button/button--outline.tpl", "outline"},
		{"multi-token handle keeps the remainder", "button--large--wide.tpl", "large--wide"},
		{"mixed case preserved in handle", "Button--Wide.tpl", "Wide"},
		{"primary view has no handle", "button.tpl", ""},
		{"non-view has no handle", "button.css", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.VariantHandle(tt.path))
		})
	}
}

func TestViewName(t *testing.T) {
	c := classify.New(".tpl", "--")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"primary view", "button.tpl", "button"},
		{"variant view", "button--large.tpl", "button"},
		{"nested path", "components/card/card.tpl", "card"},
		{"non-view", "style.css", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ViewName(tt.path))
		})
	}
}
