package catalog

import "strings"

// Collection is a grouping node owning components and nested
// collections in a stable order. It carries defaults that member
// components inherit at load time.
type Collection struct {
	// Handle identifies the collection within its parent scope
	Handle string

	// Label is the human-readable collection name
	Label string

	// Path is the collection's source directory
	Path string

	// Items holds the child entities, components and sub-collections,
	// in tree order
	Items []Entity

	// Status is the default status handle members inherit
	Status string

	// Preview is the default layout handle members inherit
	Preview string

	// Context is the base render data members inherit
	Context Context
}

// Kind returns KindCollection.
func (c *Collection) Kind() Kind {
	return KindCollection
}

// Summary returns the serializable description of the collection that
// templates receive under the self key.
func (c *Collection) Summary() Context {
	return Context{
		"kind":   string(KindCollection),
		"handle": c.Handle,
		"label":  c.Label,
		"path":   c.Path,
	}
}

// Components returns the direct children of kind component, in tree
// order. Nested collections are not descended; use Flatten for that.
func (c *Collection) Components() []*Component {
	var out []*Component
	for _, item := range c.Items {
		if comp, ok := item.(*Component); ok {
			out = append(out, comp)
		}
	}
	return out
}

// Flatten returns every leaf component of the tree in pre-order,
// descending into nested collections.
func (c *Collection) Flatten() []*Component {
	var out []*Component
	for _, item := range c.Items {
		switch it := item.(type) {
		case *Component:
			out = append(out, it)
		case *Collection:
			out = append(out, it.Flatten()...)
		}
	}
	return out
}

// Variants returns every variant of every component in the tree,
// preserving component order then variant order.
func (c *Collection) Variants() []*Variant {
	var out []*Variant
	for _, comp := range c.Flatten() {
		out = append(out, comp.Variants...)
	}
	return out
}

// Assets walks the component leaves in tree order and concatenates each
// component's owned assets into one ordered list. The walk is recomputed
// on every call so tree mutations between calls are reflected.
func (c *Collection) Assets() []*Asset {
	var out []*Asset
	for _, comp := range c.Flatten() {
		out = append(out, comp.Assets...)
	}
	return out
}

// Find searches the tree for the first entity matching the given
// selector and returns nil when nothing matches. Two forms are accepted:
//
//   - a single handle selector, "@button" or "button", which matches
//     components by handle and falls back to searching every
//     component's variants by handle when no component carries it
//   - a field/value pair such as Find("path", "components/button"),
//     matching components on "handle", "path" or "label"
//
// Collections recurse through their own Find; the first match in tree
// order wins.
func (c *Collection) Find(args ...string) Entity {
	if len(c.Items) == 0 || len(args) == 0 {
		return nil
	}

	if len(args) == 1 {
		handle := strings.TrimPrefix(args[0], "@")
		if found := c.Find("handle", handle); found != nil {
			return found
		}
		for _, comp := range c.Flatten() {
			if v := comp.VariantByHandle(handle); v != nil {
				return v
			}
		}
		return nil
	}

	if len(args) != 2 {
		return nil
	}

	field, want := args[0], args[1]
	for _, item := range c.Items {
		switch it := item.(type) {
		case *Collection:
			if found := it.Find(args...); found != nil {
				return found
			}
		case *Component:
			if matchComponent(it, field, want) {
				return it
			}
		}
	}
	return nil
}

// matchComponent tests a single field selector against a component.
func matchComponent(c *Component, field, want string) bool {
	switch field {
	case "handle", "name":
		return c.Handle == want
	case "path":
		return c.Path == want || c.ViewPath == want
	case "label":
		return c.Label == want
	}
	return false
}
