// Package loader builds the entity tree from a component source
// directory.
//
// A directory containing a view file named after the directory itself
// becomes a component; every other directory becomes a collection and
// scanning recurses. Inside a component directory, splitter-named view
// files become variants, a <name>.config.{json,yaml,yml} file supplies
// metadata and declared variants, readme.md attaches as documentation
// and any other dotted file becomes an owned asset.
//
// The loader scans once and memoizes the result: Tree is the load
// barrier every render awaits. Reload discards the memo so the next
// Tree call scans again. The loader never watches for file changes.
package loader
