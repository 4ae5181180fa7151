// Package resolver expands entity references inside render contexts.
//
// A context value of the form "@button" stands for the referenced
// entity's own context data. Resolution replaces every such string,
// however deeply nested in maps or slices, with the referenced data,
// recursively resolving references found there too. The input is never
// mutated; resolution works on a deep copy.
package resolver

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/atelier-tools/vitrine/pkg/errors"
	"github.com/atelier-tools/vitrine/pkg/logging"
)

// Sigil marks a string context value as an entity reference.
const Sigil = "@"

// Resolver expands references against a catalog tree.
type Resolver struct {
	logger zerolog.Logger
}

// New creates a resolver.
func New() *Resolver {
	return &Resolver{
		logger: logging.GetLogger("resolver"),
	}
}

// Resolve returns a copy of data with every reference expanded. A
// reference to a component yields its default variant's context, a
// reference to a variant its own. Unknown references and reference
// cycles fail with a context-resolution error.
func (r *Resolver) Resolve(ctx context.Context, data catalog.Context, tree *catalog.Collection) (catalog.Context, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolved, err := r.resolveValue(data.Clone(), tree, map[string]bool{})
	if err != nil {
		return nil, err
	}
	return resolved.(catalog.Context), nil
}

// resolveValue walks a cloned value in place, expanding references.
// visited holds the reference chain of the current expansion path.
func (r *Resolver) resolveValue(v any, tree *catalog.Collection, visited map[string]bool) (any, error) {
	switch val := v.(type) {
	case catalog.Context:
		for key, item := range val {
			out, err := r.resolveValue(item, tree, visited)
			if err != nil {
				return nil, err
			}
			val[key] = out
		}
		return val, nil

	case map[string]any:
		for key, item := range val {
			out, err := r.resolveValue(item, tree, visited)
			if err != nil {
				return nil, err
			}
			val[key] = out
		}
		return val, nil

	case []any:
		for i, item := range val {
			out, err := r.resolveValue(item, tree, visited)
			if err != nil {
				return nil, err
			}
			val[i] = out
		}
		return val, nil

	case string:
		if strings.HasPrefix(val, Sigil) {
			return r.expand(val, tree, visited)
		}
		return val, nil

	default:
		return val, nil
	}
}

// expand replaces one "@handle" reference with the referenced entity's
// resolved context.
func (r *Resolver) expand(ref string, tree *catalog.Collection, visited map[string]bool) (any, error) {
	if visited[ref] {
		return nil, errors.Newf(errors.ErrContextResolve,
			"circular context reference %s", ref)
	}
	visited[ref] = true
	defer delete(visited, ref)

	if tree == nil {
		return nil, errors.Newf(errors.ErrContextResolve,
			"context reference %s with no tree to resolve against", ref)
	}

	entity := tree.Find(ref)
	if entity == nil {
		return nil, errors.Newf(errors.ErrContextResolve,
			"unknown context reference %s", ref)
	}

	r.logger.Debug().
		Str("ref", ref).
		Str("kind", string(entity.Kind())).
		Msg("Expanding context reference")

	var source catalog.Context
	switch e := entity.(type) {
	case *catalog.Component:
		if v := e.DefaultVariant(); v != nil {
			source = v.Context
		} else {
			source = e.Context
		}
	case *catalog.Variant:
		source = e.Context
	default:
		return nil, errors.Newf(errors.ErrContextResolve,
			"context reference %s names a %s, expected a component or variant",
			ref, entity.Kind())
	}

	return r.resolveValue(source.Clone(), tree, visited)
}
