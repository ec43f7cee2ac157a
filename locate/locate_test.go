package locate

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "liblldWasm.a"))

	path, ok := Files{}.Locate("lldWasm", []string{dir})
	if !ok {
		t.Fatal("Locate() did not find liblldWasm.a")
	}
	if want := filepath.Join(dir, "liblldWasm.a"); path != want {
		t.Errorf("Locate() = %q, want %q", path, want)
	}
}

func TestLocate_SearchOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	touch(t, filepath.Join(first, "libfoo.so"))
	touch(t, filepath.Join(second, "libfoo.a"))

	path, ok := Files{}.Locate("foo", []string{first, second})
	if !ok {
		t.Fatal("Locate() did not find libfoo")
	}
	if want := filepath.Join(first, "libfoo.so"); path != want {
		t.Errorf("Locate() = %q, want %q (earlier directory wins)", path, want)
	}
}

func TestLocate_WindowsNaming(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "foo.lib"))

	if _, ok := (Files{}).Locate("foo", []string{dir}); !ok {
		t.Error("Locate() did not find foo.lib")
	}
}

func TestLocate_NotFound(t *testing.T) {
	if path, ok := (Files{}).Locate("nope", []string{t.TempDir()}); ok {
		t.Errorf("Locate() = %q, want not found", path)
	}
}
