// Package utils holds small helpers that fit no other package.
package utils

import (
	"os"
	"path/filepath"
)

// ExpandPath expands a leading ~ and any environment variables in a
// path, leaving it untouched when the home directory is unknown.
func ExpandPath(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return os.ExpandEnv(path)
}
