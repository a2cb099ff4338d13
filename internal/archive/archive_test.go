package archive

import (
	"archive/tar"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/pgsplit/internal/engine"
	"github.com/vvka-141/pgsplit/internal/files/filesystem"
	"github.com/vvka-141/pgsplit/internal/logging"
)

const trivialDump = `CREATE SCHEMA app;
CREATE TABLE app.users (id integer);
GRANT SELECT ON TABLE app.users TO reporting;
`

func splitTrivial(t *testing.T) *engine.Tree {
	t.Helper()
	tree, err := engine.New(logging.NewNullLogger()).Split([]byte(trivialDump))
	require.NoError(t, err)
	return tree
}

func TestWriteTar_RoundTrip(t *testing.T) {
	tree := splitTrivial(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTar(&buf, tree))

	contents, err := ReadContents(&buf)
	require.NoError(t, err)

	require.Len(t, contents, tree.Len())
	for _, p := range tree.Paths() {
		want, _ := tree.Content(p)
		assert.Equal(t, want, contents[p], "content mismatch for %s", p)
	}
}

func TestWriteTar_ByteDeterminism(t *testing.T) {
	tree := splitTrivial(t)

	var a, b bytes.Buffer
	require.NoError(t, WriteTar(&a, tree))
	require.NoError(t, WriteTar(&b, tree))

	assert.True(t, bytes.Equal(a.Bytes(), b.Bytes()), "two writes of the same tree must be byte-identical")
}

func TestWriteTar_ConstantMetadata(t *testing.T) {
	tree := splitTrivial(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTar(&buf, tree))

	tr := tar.NewReader(&buf)
	var names []string
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)

		assert.Equal(t, byte(tar.TypeReg), hdr.Typeflag, "%s: only regular file entries", hdr.Name)
		assert.Equal(t, int64(entryMode), hdr.Mode, "%s: mode must be constant", hdr.Name)
		assert.True(t, hdr.ModTime.Equal(fixedModTime), "%s: mtime must be constant, got %v", hdr.Name, hdr.ModTime)
		names = append(names, hdr.Name)
	}

	// Entries come out in the tree's sorted path order.
	assert.Equal(t, tree.Paths(), names)
}

func TestWriteDir(t *testing.T) {
	tree := splitTrivial(t)
	fsys := filesystem.NewMemoryFileSystem()

	require.NoError(t, WriteDir(fsys, "out", tree))

	got := make(map[string]string)
	require.NoError(t, fsys.WalkFiles("out", func(relPath string, content []byte) error {
		got[relPath] = string(content)
		return nil
	}))

	require.Len(t, got, tree.Len())
	for _, p := range tree.Paths() {
		want, _ := tree.Content(p)
		assert.Equal(t, want, got[p])
	}
}

func TestReadContents_RejectsAbsolutePaths(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Typeflag: tar.TypeReg,
		Name:     "/etc/passwd",
		Size:     0,
	}))
	require.NoError(t, tw.Close())

	_, err := ReadContents(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absolute")
}

func TestReadContents_SkipsDirectoryEntries(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Typeflag: tar.TypeDir,
		Name:     "app/",
	}))
	content := "CREATE TABLE app.t (id integer);\n"
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Typeflag: tar.TypeReg,
		Name:     "app/TABLES/t.sql",
		Size:     int64(len(content)),
	}))
	_, err := io.WriteString(tw, content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())

	contents, err := ReadContents(&buf)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"app/TABLES/t.sql": content}, contents)
}

func TestReadContents_RejectsSpecialEntries(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Typeflag: tar.TypeSymlink,
		Name:     "link.sql",
		Linkname: "target.sql",
	}))
	require.NoError(t, tw.Close())

	_, err := ReadContents(&buf)
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	a := map[string]string{
		"shared.sql":  "CREATE TABLE public.t (id integer);\n",
		"changed.sql": "CREATE VIEW public.v AS SELECT 1;\n",
		"only_a.sql":  "CREATE SCHEMA a;\n",
	}
	b := map[string]string{
		"shared.sql":  "CREATE TABLE public.t (id integer);\n",
		"changed.sql": "CREATE VIEW public.v AS SELECT 2;\n",
		"only_b.sql":  "CREATE SCHEMA b;\n",
	}

	report, err := Compare(a, b, "before", "after")
	require.NoError(t, err)

	assert.False(t, report.Empty())
	assert.Equal(t, []string{"only_a.sql"}, report.OnlyInA)
	assert.Equal(t, []string{"only_b.sql"}, report.OnlyInB)

	require.Len(t, report.Diffs, 1)
	diff := report.Diffs[0]
	assert.Equal(t, "changed.sql", diff.Path)
	assert.Contains(t, diff.Unified, "before/changed.sql")
	assert.Contains(t, diff.Unified, "after/changed.sql")
	assert.Contains(t, diff.Unified, "-CREATE VIEW public.v AS SELECT 1;")
	assert.Contains(t, diff.Unified, "+CREATE VIEW public.v AS SELECT 2;")
}

func TestCompare_Identical(t *testing.T) {
	contents := map[string]string{"a.sql": "CREATE SCHEMA a;\n"}

	report, err := Compare(contents, contents, "a", "b")
	require.NoError(t, err)
	assert.True(t, report.Empty())
}

func TestCompare_ArchiveRoundTrip(t *testing.T) {
	tree := splitTrivial(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTar(&buf, tree))
	contents, err := ReadContents(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	fromTree := make(map[string]string)
	for _, p := range tree.Paths() {
		c, _ := tree.Content(p)
		fromTree[p] = c
	}

	report, err := Compare(fromTree, contents, "tree", "archive")
	require.NoError(t, err)
	if !report.Empty() {
		var b strings.Builder
		for _, d := range report.Diffs {
			b.WriteString(d.Unified)
		}
		t.Fatalf("archive does not round-trip the tree:\n%s", b.String())
	}
}
