// Package engine defines the templating boundary of the render
// pipeline. The pipeline never parses template syntax itself; it hands
// view source and a resolved context to an Engine and consumes the
// produced markup. A Go text/template adapter ships as the default.
package engine

import "context"

// Engine renders template source into markup.
//
// viewPath identifies the template for error reporting and any
// engine-side caching; it may be empty for ad hoc string renders.
// source is the template text and data the fully resolved context.
type Engine interface {
	Render(ctx context.Context, viewPath, source string, data map[string]any) (string, error)
}
