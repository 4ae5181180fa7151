package catalog

// Component is a named unit of the catalog owning an ordered set of
// variants. Variant order is significant: the first variant, or the one
// explicitly marked, is the component's default.
type Component struct {
	// Handle identifies the component within its parent scope
	Handle string

	// Label is the human-readable component name
	Label string

	// Path is the component's source directory
	Path string

	// ViewPath locates the component's primary view template
	ViewPath string

	// Context is the component's base render data, inherited by variants
	Context Context

	// Status is the component's status handle
	Status string

	// Preview is the layout handle applied when rendering with a layout
	Preview string

	// Collated selects joined rendering of all variants at once
	Collated bool

	// Hidden excludes the component from listings
	Hidden bool

	// Readme is the source path of the component's readme.md, empty
	// when the component has none
	Readme string

	// Variants holds the component's variants in declared order
	Variants []*Variant

	// Assets holds the component's owned assets in directory order
	Assets []*Asset
}

// Kind returns KindComponent.
func (c *Component) Kind() Kind {
	return KindComponent
}

// Summary returns the serializable description of the component that
// templates receive under the self key.
func (c *Component) Summary() Context {
	return Context{
		"kind":     string(KindComponent),
		"handle":   c.Handle,
		"label":    c.Label,
		"path":     c.Path,
		"viewPath": c.ViewPath,
		"status":   c.Status,
		"preview":  c.Preview,
		"collated": c.Collated,
	}
}

// DefaultVariant returns the component's default variant: the one marked
// as default, or the first declared. Returns nil when the component has
// no variants.
func (c *Component) DefaultVariant() *Variant {
	for _, v := range c.Variants {
		if v.Default {
			return v
		}
	}
	if len(c.Variants) > 0 {
		return c.Variants[0]
	}
	return nil
}

// VariantByHandle returns the variant with the given handle, or nil when
// no variant carries it.
func (c *Component) VariantByHandle(handle string) *Variant {
	for _, v := range c.Variants {
		if v.Handle == handle {
			return v
		}
	}
	return nil
}
