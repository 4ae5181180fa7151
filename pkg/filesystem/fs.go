package filesystem

import "io/fs"

// FS is the read-only filesystem surface the catalog consumes. Template
// reads and source-tree scans go through this interface so tests can
// substitute an in-memory implementation.
type FS interface {
	// Stat returns file info for name
	Stat(name string) (fs.FileInfo, error)

	// ReadFile returns the contents of name
	ReadFile(name string) ([]byte, error)

	// ReadDir returns the directory entries of name, sorted by filename
	ReadDir(name string) ([]fs.DirEntry, error)
}
