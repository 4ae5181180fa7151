// Package filesystem provides filesystem implementations for vitrine.
//
// The catalog never writes to its source tree, so the FS interface
// carries only the read surface. Implementations cover the regular OS
// filesystem and any afero.Fs, which tests use for in-memory trees.
package filesystem
