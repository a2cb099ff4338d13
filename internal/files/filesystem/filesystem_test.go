package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// providers under test share one behavioral contract; the OS variant runs
// against a temp directory, the memory variant against itself.
func providers(t *testing.T) map[string]struct {
	fs   Provider
	root string
} {
	t.Helper()
	return map[string]struct {
		fs   Provider
		root string
	}{
		"os":     {fs: NewOSFileSystem(), root: t.TempDir()},
		"memory": {fs: NewMemoryFileSystem(), root: "root"},
	}
}

func TestProvider_WriteReadStat(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			target := filepath.Join(p.root, "app", "TABLES", "users.sql")
			content := []byte("CREATE TABLE app.users (id integer);\n")

			if err := p.fs.MkdirAll(filepath.Dir(target)); err != nil {
				t.Fatalf("MkdirAll: %v", err)
			}
			if err := p.fs.WriteFile(target, content); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			got, err := p.fs.ReadFile(target)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if string(got) != string(content) {
				t.Errorf("ReadFile = %q, want %q", got, content)
			}

			info, err := p.fs.Stat(target)
			if err != nil {
				t.Fatalf("Stat: %v", err)
			}
			if info.IsDir() {
				t.Error("Stat reports a file as a directory")
			}
			if info.Size() != int64(len(content)) {
				t.Errorf("Size = %d, want %d", info.Size(), len(content))
			}
		})
	}
}

func TestProvider_StatMissing(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			_, err := p.fs.Stat(filepath.Join(p.root, "missing.sql"))
			if err == nil {
				t.Fatal("Stat on a missing path should fail")
			}
			if !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
			}
		})
	}
}

func TestProvider_WalkFiles(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			files := map[string]string{
				"index.sql":           "\\ir SCHEMAS/app.sql\n",
				"SCHEMAS/app.sql":     "CREATE SCHEMA app;\n",
				"app/TABLES/t.sql":    "CREATE TABLE app.t (id integer);\n",
				"app/TRIGGERS/tg.sql": "CREATE TRIGGER tg BEFORE UPDATE ON app.t FOR EACH ROW EXECUTE FUNCTION f();\n",
			}
			for rel, content := range files {
				target := filepath.Join(p.root, filepath.FromSlash(rel))
				if err := p.fs.MkdirAll(filepath.Dir(target)); err != nil {
					t.Fatalf("MkdirAll: %v", err)
				}
				if err := p.fs.WriteFile(target, []byte(content)); err != nil {
					t.Fatalf("WriteFile: %v", err)
				}
			}

			got := make(map[string]string)
			err := p.fs.WalkFiles(p.root, func(relPath string, content []byte) error {
				got[relPath] = string(content)
				return nil
			})
			if err != nil {
				t.Fatalf("WalkFiles: %v", err)
			}

			if len(got) != len(files) {
				t.Fatalf("walked %d files, want %d: %v", len(got), len(files), keys(got))
			}
			for rel, content := range files {
				if got[rel] != content {
					t.Errorf("file %s: got %q, want %q", rel, got[rel], content)
				}
			}
		})
	}
}

func TestProvider_WalkMissingRoot(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			err := p.fs.WalkFiles(filepath.Join(p.root, "nope"), func(string, []byte) error { return nil })
			if err == nil {
				t.Error("WalkFiles on a missing root should fail")
			}
		})
	}
}

func TestMemoryFileSystem_WriteRequiresParent(t *testing.T) {
	m := NewMemoryFileSystem()
	if err := m.WriteFile("a/b/c.sql", []byte("x")); err == nil {
		t.Error("WriteFile without MkdirAll should fail")
	}
	if err := m.MkdirAll("a/b"); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := m.WriteFile("a/b/c.sql", []byte("x")); err != nil {
		t.Errorf("WriteFile after MkdirAll: %v", err)
	}
}

func TestMemoryFileSystem_WalkIsSorted(t *testing.T) {
	m := NewMemoryFileSystem()
	m.AddFile("z.sql", []byte("z"))
	m.AddFile("a.sql", []byte("a"))
	m.AddFile("m/mid.sql", []byte("m"))

	var walked []string
	if err := m.WalkFiles(".", func(relPath string, _ []byte) error {
		walked = append(walked, relPath)
		return nil
	}); err != nil {
		t.Fatalf("WalkFiles: %v", err)
	}

	if !sort.StringsAreSorted(walked) {
		t.Errorf("memory walk should be sorted, got %v", walked)
	}
}

func TestOSFileSystem_WalkRejectsFileRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.sql")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := NewOSFileSystem().WalkFiles(file, func(string, []byte) error { return nil })
	if err == nil {
		t.Error("WalkFiles on a plain file should fail")
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
