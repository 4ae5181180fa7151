// Package testutil provides utilities for testing vitrine components.
//
// Key pieces:
//   - MemoryFS: in-memory read-only filesystem with per-path read
//     counters and error injection, for fast isolated tests
//   - SourceBuilder: declarative component-source fixture builder
//
// All test data should be defined inline, not in external files, and
// each test should be completely isolated with no shared state.
package testutil
