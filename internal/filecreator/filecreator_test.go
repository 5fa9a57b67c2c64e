package filecreator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func assertEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if !info.Mode().IsRegular() {
		t.Fatalf("expected regular file at %s, got mode %v", path, info.Mode())
	}
	if info.Size() != 0 {
		t.Errorf("expected zero length, got %d", info.Size())
	}
}

func TestCreate_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	res := New().Create(path)
	if !res.OK() {
		t.Fatalf("Create failed: %v", res.Err)
	}
	if res.Kind != "" {
		t.Errorf("expected empty kind on success, got %q", res.Kind)
	}
	if res.Path != path {
		t.Errorf("expected path %q, got %q", path, res.Path)
	}
	assertEmptyFile(t, path)
}

func TestCreate_TruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	res := CreateEmpty(path)
	if !res.OK() {
		t.Fatalf("Create failed: %v", res.Err)
	}
	assertEmptyFile(t, path)
}

func TestCreate_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	c := New()

	for i := 0; i < 2; i++ {
		if res := c.Create(path); !res.OK() {
			t.Fatalf("call %d failed: %v", i+1, res.Err)
		}
	}
	assertEmptyFile(t, path)
}

func TestCreate_MissingParent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing_dir", "out.txt")

	res := New().Create(path)
	if res.OK() {
		t.Fatal("expected failure for missing parent directory")
	}
	if res.Kind != KindNotFound {
		t.Errorf("expected kind %q, got %q", KindNotFound, res.Kind)
	}
	if _, err := os.Stat(filepath.Join(dir, "missing_dir")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("parent directory must not be created, stat err = %v", err)
	}
}

func TestCreate_EmptyPath(t *testing.T) {
	res := New().Create("")
	if res.OK() {
		t.Fatal("expected failure for empty path")
	}
	if !errors.Is(res.Err, ErrEmptyPath) {
		t.Errorf("expected ErrEmptyPath, got %v", res.Err)
	}
	if res.Kind != KindInvalidPath {
		t.Errorf("expected kind %q, got %q", KindInvalidPath, res.Kind)
	}
}

func TestCreate_Directory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory open errors differ on windows")
	}
	dir := t.TempDir()

	res := New().Create(dir)
	if res.OK() {
		t.Fatal("expected failure when target is a directory")
	}
	if res.Kind != KindIsDirectory {
		t.Errorf("expected kind %q, got %q (%v)", KindIsDirectory, res.Kind, res.Err)
	}
}

func TestCreate_ParentIsFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("ENOTDIR is not reported on windows")
	}
	parent := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(parent, nil, 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	res := New().Create(filepath.Join(parent, "child.txt"))
	if res.Kind != KindInvalidPath {
		t.Errorf("expected kind %q, got %q (%v)", KindInvalidPath, res.Kind, res.Err)
	}
}

func TestCreate_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory permissions are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}
	dir := filepath.Join(t.TempDir(), "ro")
	if err := os.Mkdir(dir, 0o500); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	res := New().Create(filepath.Join(dir, "out.txt"))
	if res.Kind != KindPermissionDenied {
		t.Errorf("expected kind %q, got %q (%v)", KindPermissionDenied, res.Kind, res.Err)
	}
}

func TestCreate_CloseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	c := New()
	c.open = func(name string, flag int, perm fs.FileMode) (*os.File, error) {
		f, err := os.OpenFile(name, flag, perm)
		if err != nil {
			return nil, err
		}
		_ = f.Close()
		return f, nil
	}

	res := c.Create(path)
	if !errors.Is(res.Err, os.ErrClosed) {
		t.Fatalf("expected close error, got %v", res.Err)
	}
	if res.Kind != KindOther {
		t.Errorf("expected kind %q, got %q", KindOther, res.Kind)
	}
}

func TestCreateAll_KeepsOrderAndContinues(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "missing", "b.txt"),
		"",
		filepath.Join(dir, "c.txt"),
	}

	results := New().CreateAll(paths)
	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("result %d: expected path %q, got %q", i, paths[i], r.Path)
		}
	}
	if got := Failed(results); got != 2 {
		t.Errorf("expected 2 failures, got %d", got)
	}
	assertEmptyFile(t, paths[3])
}
