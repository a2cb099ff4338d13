package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Provider abstracts the filesystem operations the splitter needs:
// reading dump files and fixtures, and materializing a split tree as a
// directory. The OS implementation is used in production; the in-memory
// implementation backs tests.
type Provider interface {
	// ReadFile reads the file at the given path.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// MkdirAll creates a directory along with any missing parents.
	MkdirAll(path string) error

	// WriteFile writes data to the given path, creating the file with
	// mode 0644. The parent directory must already exist.
	WriteFile(path string, data []byte) error

	// WalkFiles calls fn for every regular file under root, passing the
	// path relative to root with forward slashes. Order is unspecified.
	WalkFiles(root string, fn func(relPath string, content []byte) error) error
}
