// Package catalog defines the entity model for a component catalog: the
// tree of collections, components and variants derived from a source
// directory, plus navigation and asset aggregation over that tree.
//
// The tree is built by the loader and is read-only during a render pass.
// Entities form a closed set of kinds:
//
//   - Collection: a grouping node owning components and sub-collections
//   - Component: a named unit owning an ordered set of variants
//   - Variant: a single templated rendering of a component
//
// Variants reference their owning component by handle, never by pointer,
// so the tree has no ownership cycles.
package catalog
