package engine

import (
	"bytes"
	"context"
	"strings"
	"text/template"

	"github.com/atelier-tools/vitrine/pkg/errors"
)

// GoText is the default Engine, backed by Go's text/template. Each call
// parses the given source and executes it against the context map.
type GoText struct {
	funcs template.FuncMap
}

// NewGoText creates the default templating engine.
func NewGoText() *GoText {
	return &GoText{
		funcs: template.FuncMap{
			"upper": strings.ToUpper,
			"lower": strings.ToLower,
			"trim":  strings.TrimSpace,
			"join":  strings.Join,
		},
	}
}

// Render parses source and executes it with data. Missing map keys
// render as zero values rather than failing, so sparse contexts stay
// usable.
func (g *GoText) Render(ctx context.Context, viewPath, source string, data map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := viewPath
	if name == "" {
		name = "inline"
	}

	tmpl, err := template.New(name).Funcs(g.funcs).Option("missingkey=zero").Parse(source)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEngineRender, "parsing template %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, errors.ErrEngineRender, "executing template %s", name)
	}

	return buf.String(), nil
}
