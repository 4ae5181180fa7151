package catalog

import (
	clone "github.com/huandu/go-clone"
)

// SelfKey is the context key under which the render pipeline exposes the
// serialized form of the entity being rendered, so templates can refer
// to their own component or variant.
const SelfKey = "_self"

// TargetKey is the context key under which a layout template receives
// the serialized form of the entity it is wrapping.
const TargetKey = "_target"

// Context carries the data handed to a template at render time. Values
// may reference other catalog entities by handle ("@button"); references
// are expanded by the context resolver before rendering.
type Context map[string]any

// Clone returns a deep copy of the context. Mutating the copy never
// affects the original. A nil context clones to an empty one.
func (c Context) Clone() Context {
	if c == nil {
		return Context{}
	}
	return clone.Clone(c).(Context)
}
