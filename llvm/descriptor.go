// Package llvm models the probed facts about an installed LLVM package.
package llvm

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"slices"
)

// Descriptor holds what the probe reported about an installed LLVM
// package. It is immutable once parsed.
type Descriptor struct {
	Version     Version  `json:"version"`
	IncludeDirs []string `json:"includeDirs"` // Header search directories
	LibDirs     []string `json:"libDirs"`     // Library search directories
	Definitions []string `json:"definitions"` // Compile definitions the package already requires
	Components  []string `json:"components"`  // Component/target names the package was built with
	HasRTTI     bool     `json:"hasRTTI"`     // Whether the package itself was built with RTTI
	SharedLib   bool     `json:"sharedLib"`   // Prefer linking the single shared library
	Stdlib      string   `json:"stdlib"`      // Runtime library variant, empty means toolchain default
}

// HasComponent reports whether the probe saw the named component.
func (d *Descriptor) HasComponent(name string) bool {
	return slices.Contains(d.Components, name)
}

// Parse reads and parses a probe descriptor from either provided data or a file path.
// If data is non-nil, it is used directly and the file parameter is ignored.
// Otherwise, the file is read from the provided path.
// Returns the parsed Descriptor or an error if parsing fails.
func Parse(file string, data []byte) (*Descriptor, error) {
	var reader io.Reader

	if data != nil {
		reader = bytes.NewBuffer(data)
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		reader = f
	}

	var d Descriptor

	if err := json.NewDecoder(reader).Decode(&d); err != nil {
		return nil, err
	}

	return &d, nil
}
