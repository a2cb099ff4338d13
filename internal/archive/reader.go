package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"path"
)

// ReadContents reads every regular file entry of a tar archive into a
// path-to-content map. Directory entries are skipped; metadata is ignored
// entirely, which is what lets the comparator treat archives with
// different timestamps or permissions as equal when contents match.
// Absolute entry paths are rejected.
func ReadContents(r io.Reader) (map[string]string, error) {
	contents := make(map[string]string)

	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read archive: %w", err)
		}

		if path.IsAbs(hdr.Name) {
			return nil, fmt.Errorf("archive path %s is absolute", hdr.Name)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			continue
		case tar.TypeReg:
		default:
			return nil, fmt.Errorf("archive entry %s is not a directory or a regular file", hdr.Name)
		}

		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("failed to read entry %s: %w", hdr.Name, err)
		}
		contents[path.Clean(hdr.Name)] = string(data)
	}

	return contents, nil
}
