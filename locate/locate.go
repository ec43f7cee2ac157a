// Package locate finds native libraries on disk.
package locate

import (
	"os"
	"path/filepath"
)

// Files looks libraries up by probing conventional file names in each
// search directory, the way a linker -l search would.
type Files struct{}

// Locate probes dir/lib<name>.a, .so, .dylib and dir/<name>.lib in
// order and returns the first path that exists.
func (Files) Locate(name string, dirs []string) (string, bool) {
	candidates := []string{
		"lib" + name + ".a",
		"lib" + name + ".so",
		"lib" + name + ".dylib",
		name + ".lib",
	}
	for _, dir := range dirs {
		for _, file := range candidates {
			path := filepath.Join(dir, file)
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
	}
	return "", false
}
