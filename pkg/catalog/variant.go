package catalog

import (
	"sync"

	"github.com/atelier-tools/vitrine/pkg/errors"
	"github.com/atelier-tools/vitrine/pkg/filesystem"
)

// Variant is a single templated rendering of a component. It belongs to
// exactly one component, referenced by handle.
type Variant struct {
	// Handle identifies the variant within its owning component
	Handle string

	// Component is the handle of the owning component
	Component string

	// Label is the human-readable variant name
	Label string

	// ViewPath locates the variant's template source
	ViewPath string

	// Context is the variant's stored render data
	Context Context

	// Status is the variant's status handle
	Status string

	// Preview is the layout handle applied when rendering with a layout
	Preview string

	// Default marks the variant as its component's default
	Default bool

	// Hidden excludes the variant from listings
	Hidden bool

	loadOnce sync.Once
	content  string
	loadErr  error
}

// Kind returns KindVariant.
func (v *Variant) Kind() Kind {
	return KindVariant
}

// Summary returns the serializable description of the variant that
// templates receive under the self key.
func (v *Variant) Summary() Context {
	return Context{
		"kind":      string(KindVariant),
		"handle":    v.Handle,
		"component": v.Component,
		"label":     v.Label,
		"viewPath":  v.ViewPath,
		"status":    v.Status,
		"preview":   v.Preview,
	}
}

// Content returns the variant's template source, reading it through fs
// on the first call. Concurrent first loads share a single read; the
// result, error included, is cached for the life of the variant so a
// render pass never re-reads a view mid-flight.
func (v *Variant) Content(fs filesystem.FS) (string, error) {
	v.loadOnce.Do(func() {
		data, err := fs.ReadFile(v.ViewPath)
		if err != nil {
			v.loadErr = errors.Wrapf(err, errors.ErrTemplateRead,
				"reading view for variant %q", v.Handle)
			return
		}
		v.content = string(data)
	})
	return v.content, v.loadErr
}
