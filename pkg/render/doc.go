// Package render implements the catalog's render pipeline: entity-kind
// dispatch, default-variant selection, collated rendering of all of a
// component's variants, and recursive layout wrapping, with context
// resolution and merging at each step.
//
// The pipeline is a pure transformation from entity plus context to a
// markup string. It never mutates the tree, never writes to the
// filesystem and keeps no per-render state beyond each variant's cached
// view content.
package render
