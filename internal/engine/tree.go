package engine

import (
	"sort"
)

// Tree is the rendered output: a mapping from relative path to file
// content, with a stable, byte-wise sorted path order. It is a pure
// function of the input dump; two equivalent dumps render identical trees.
type Tree struct {
	files map[string]string
	paths []string
}

func newTree(files map[string]string) *Tree {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return &Tree{files: files, paths: paths}
}

// Paths returns every relative path in byte-wise sorted order.
// The returned slice must not be modified.
func (t *Tree) Paths() []string {
	return t.paths
}

// Content returns the rendered content of one file.
func (t *Tree) Content(path string) (string, bool) {
	content, ok := t.files[path]
	return content, ok
}

// Len returns the number of files in the tree.
func (t *Tree) Len() int {
	return len(t.paths)
}
