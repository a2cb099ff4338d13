package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/vvka-141/pgsplit/internal/engine"
	"github.com/vvka-141/pgsplit/internal/files/filesystem"
)

// Entry metadata is pinned to constants so archive bytes depend only on
// schema content, never on wall-clock time or the invoking user. The test
// harness diffs archives byte-for-byte and relies on this.
var fixedModTime = time.Unix(0, 0).UTC()

const entryMode = 0o644

// WriteTar serializes the tree into a tar archive on w. Entries are
// regular files only (no directory entries), emitted in the tree's sorted
// path order with constant metadata.
func WriteTar(w io.Writer, tree *engine.Tree) error {
	tw := tar.NewWriter(w)

	for _, p := range tree.Paths() {
		content, _ := tree.Content(p)
		hdr := &tar.Header{
			Typeflag: tar.TypeReg,
			Name:     p,
			Size:     int64(len(content)),
			Mode:     entryMode,
			ModTime:  fixedModTime,
			Format:   tar.FormatGNU,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", p, err)
		}
		if _, err := io.WriteString(tw, content); err != nil {
			return fmt.Errorf("failed to write entry %s: %w", p, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish archive: %w", err)
	}
	return nil
}

// WriteDir materializes the tree as plain files under root, which must not
// already exist in part; parent directories are created as needed.
func WriteDir(fsys filesystem.Provider, root string, tree *engine.Tree) error {
	for _, p := range tree.Paths() {
		content, _ := tree.Content(p)
		target := path.Join(root, p)
		if err := fsys.MkdirAll(path.Dir(target)); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", p, err)
		}
		if err := fsys.WriteFile(target, []byte(content)); err != nil {
			return fmt.Errorf("failed to write %s: %w", p, err)
		}
	}
	return nil
}
