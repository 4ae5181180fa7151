package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements filesystem.FS with in-memory storage. Beyond the
// read surface it tracks per-path read counts and supports error
// injection, which render and loader tests use to assert caching and
// failure behavior.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode

	// Error injection
	errorPaths map[string]error

	// Statistics
	readCounts map[string]int
}

// fileNode represents a file or directory in memory
type fileNode struct {
	name     string
	mode     os.FileMode
	modTime  time.Time
	content  []byte
	isDir    bool
	children map[string]*fileNode
}

// NewMemoryFS creates a new in-memory filesystem containing only the
// root directory.
func NewMemoryFS() *MemoryFS {
	root := &fileNode{
		name:     "/",
		mode:     0755 | os.ModeDir,
		modTime:  time.Now(),
		isDir:    true,
		children: make(map[string]*fileNode),
	}

	return &MemoryFS{
		files:      map[string]*fileNode{"/": root},
		errorPaths: make(map[string]error),
		readCounts: make(map[string]int),
	}
}

// normalizePath converts a path to absolute form rooted at /
func (m *MemoryFS) normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		path = "/" + path
	}
	return filepath.Clean(path)
}

// getNode retrieves a node at the given path
func (m *MemoryFS) getNode(path string) (*fileNode, error) {
	path = m.normalizePath(path)

	if err, ok := m.errorPaths[path]; ok {
		return nil, err
	}

	node, exists := m.files[path]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	return node, nil
}

// AddFile stores a file at path, creating parent directories as needed.
// Returns the filesystem for chaining.
func (m *MemoryFS) AddFile(path, content string) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = m.normalizePath(path)
	m.mkdirAll(filepath.Dir(path))

	node := &fileNode{
		name:    filepath.Base(path),
		mode:    0644,
		modTime: time.Now(),
		content: []byte(content),
	}

	parent := m.files[filepath.Dir(path)]
	parent.children[node.name] = node
	m.files[path] = node

	return m
}

// AddDir creates a directory at path, parents included. Returns the
// filesystem for chaining.
func (m *MemoryFS) AddDir(path string) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mkdirAll(m.normalizePath(path))
	return m
}

// mkdirAll is the internal directory creation without locking
func (m *MemoryFS) mkdirAll(path string) {
	if node, ok := m.files[path]; ok && node.isDir {
		return
	}

	current := "/"
	currentNode := m.files["/"]

	for _, part := range splitPath(path) {
		next := filepath.Join(current, part)

		if child, exists := currentNode.children[part]; exists && child.isDir {
			currentNode = child
			current = next
			continue
		}

		newDir := &fileNode{
			name:     part,
			mode:     0755 | os.ModeDir,
			modTime:  time.Now(),
			isDir:    true,
			children: make(map[string]*fileNode),
		}

		currentNode.children[part] = newDir
		m.files[next] = newDir

		currentNode = newDir
		current = next
	}
}

// splitPath returns the non-empty segments of an absolute path
func splitPath(path string) []string {
	var parts []string
	for _, part := range strings.Split(filepath.Clean(path), "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// WithError configures the filesystem to return err for a specific path.
// Returns the filesystem for chaining.
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[m.normalizePath(path)] = err
	return m
}

// Stat returns file info
func (m *MemoryFS) Stat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}

	return &fileInfo{node: node, name: filepath.Base(name)}, nil
}

// ReadFile reads the entire file content and records the read against
// the normalized path.
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.normalizePath(name)
	m.readCounts[path]++

	node, err := m.getNode(path)
	if err != nil {
		return nil, err
	}

	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}

	// Return a copy to prevent mutation
	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// ReadDir reads a directory and returns its entries sorted by name.
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}

	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}

	entries := make([]fs.DirEntry, 0, len(node.children))
	for childName, child := range node.children {
		entries = append(entries, &dirEntry{
			name: childName,
			info: &fileInfo{node: child, name: childName},
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

// ReadCount returns how many times ReadFile was called for path.
func (m *MemoryFS) ReadCount(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.readCounts[m.normalizePath(path)]
}

// TotalReads returns how many ReadFile calls the filesystem served.
func (m *MemoryFS) TotalReads() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, n := range m.readCounts {
		total += n
	}
	return total
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return fi.node }

// dirEntry implements fs.DirEntry
type dirEntry struct {
	name string
	info os.FileInfo
}

func (de *dirEntry) Name() string               { return de.name }
func (de *dirEntry) IsDir() bool                { return de.info.IsDir() }
func (de *dirEntry) Type() os.FileMode          { return de.info.Mode().Type() }
func (de *dirEntry) Info() (os.FileInfo, error) { return de.info, nil }
