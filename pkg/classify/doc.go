// Package classify provides the file classification predicates that
// decide what role a source file plays for a component: primary view,
// variant view, configuration, readme or plain asset.
//
// Matching is deliberately a small dedicated utility rather than a
// general glob engine, so the exact semantics stay auditable:
// case-insensitive basename comparison, a configurable view extension,
// a configurable variant splitter token, and a fixed brace-expanded
// suffix list for configuration files.
package classify
