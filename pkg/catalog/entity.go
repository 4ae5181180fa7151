package catalog

// Kind discriminates the entity types that appear in a catalog tree.
type Kind string

const (
	// KindComponent is a named unit owning an ordered set of variants
	KindComponent Kind = "component"

	// KindVariant is a single templated rendering of a component
	KindVariant Kind = "variant"

	// KindCollection is a grouping node owning components and sub-collections
	KindCollection Kind = "collection"
)

// Entity is implemented by every node of the catalog tree. The render
// pipeline dispatches on the concrete type; Kind is the serializable
// discriminator carried into template contexts.
type Entity interface {
	// Kind returns the entity kind
	Kind() Kind

	// Summary returns the serializable description of the entity that
	// templates receive under the self key
	Summary() Context
}

// HandleOf returns the handle of any tree entity, or an empty string for
// an unknown implementation.
func HandleOf(e Entity) string {
	switch it := e.(type) {
	case *Component:
		return it.Handle
	case *Variant:
		return it.Handle
	case *Collection:
		return it.Handle
	}
	return ""
}

// IsHidden reports whether the entity is excluded from listings. Hidden
// entities stay findable and renderable.
func IsHidden(e Entity) bool {
	switch it := e.(type) {
	case *Component:
		return it.Hidden
	case *Variant:
		return it.Hidden
	}
	return false
}
