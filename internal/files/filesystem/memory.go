package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files.
type memoryFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f *memoryFileInfo) ModTime() time.Time { return time.Time{} }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem implements Provider backed by a map. It is intended for
// tests; paths are normalized to forward slashes and compared verbatim.
// Not safe for concurrent use.
type MemoryFileSystem struct {
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string][]byte),
		dirs:  map[string]bool{".": true},
	}
}

// AddFile seeds the filesystem with a file, creating parent directories.
func (p *MemoryFileSystem) AddFile(filePath string, content []byte) {
	filePath = normalize(filePath)
	p.files[filePath] = content
	for dir := path.Dir(filePath); dir != "." && dir != "/"; dir = path.Dir(dir) {
		p.dirs[dir] = true
	}
}

func normalize(filePath string) string {
	return strings.TrimPrefix(path.Clean(strings.ReplaceAll(filePath, "\\", "/")), "./")
}

func (p *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	content, ok := p.files[normalize(filePath)]
	if !ok {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	return content, nil
}

func (p *MemoryFileSystem) Stat(filePath string) (FileInfo, error) {
	filePath = normalize(filePath)
	if content, ok := p.files[filePath]; ok {
		return &memoryFileInfo{name: path.Base(filePath), size: int64(len(content))}, nil
	}
	if p.dirs[filePath] {
		return &memoryFileInfo{name: path.Base(filePath), isDir: true}, nil
	}
	return nil, fmt.Errorf("path not found: %s: %w", filePath, fs.ErrNotExist)
}

func (p *MemoryFileSystem) MkdirAll(filePath string) error {
	filePath = normalize(filePath)
	for dir := filePath; dir != "." && dir != "/"; dir = path.Dir(dir) {
		p.dirs[dir] = true
	}
	return nil
}

func (p *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	filePath = normalize(filePath)
	dir := path.Dir(filePath)
	if dir != "." && !p.dirs[dir] {
		return fmt.Errorf("directory does not exist: %s: %w", dir, fs.ErrNotExist)
	}
	p.files[filePath] = data
	return nil
}

func (p *MemoryFileSystem) WalkFiles(root string, fn func(relPath string, content []byte) error) error {
	root = normalize(root)
	if root != "." && !p.dirs[root] {
		return fmt.Errorf("path not found: %s: %w", root, fs.ErrNotExist)
	}

	prefix := ""
	if root != "." {
		prefix = root + "/"
	}

	// Sorted for reproducible walks; the OS implementation makes no such
	// promise, so callers must not rely on it.
	paths := make([]string, 0, len(p.files))
	for filePath := range p.files {
		if strings.HasPrefix(filePath, prefix) {
			paths = append(paths, filePath)
		}
	}
	sort.Strings(paths)

	for _, filePath := range paths {
		if err := fn(strings.TrimPrefix(filePath, prefix), p.files[filePath]); err != nil {
			return err
		}
	}
	return nil
}

// Verify MemoryFileSystem implements the interface at compile time
var _ Provider = (*MemoryFileSystem)(nil)
