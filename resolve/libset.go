package resolve

import "fmt"

// SharedLibrary is the monolithic library linked when the package
// prefers shared linkage over per-component archives.
const SharedLibrary = "LLVM"

// NameResolver maps a component name to a concrete library identifier.
type NameResolver func(component string) (string, bool)

// LibraryNames returns a NameResolver over the probe's component list,
// mapping each component to its conventional archive name.
func LibraryNames(components []string) NameResolver {
	known := make(map[string]string, len(components))
	for _, c := range components {
		known[c] = "LLVM" + c
	}
	return func(component string) (string, bool) {
		lib, ok := known[component]
		return lib, ok
	}
}

// buildLibrarySet turns requested component names into link libraries.
// In shared mode the monolithic library stands in for every component,
// whatever they are; otherwise each component maps through resolver,
// keeping first-seen order and dropping duplicates. A component the
// resolver does not know is fatal.
func buildLibrarySet(components []string, shared bool, resolver NameResolver) ([]string, error) {
	if shared {
		if len(components) == 0 {
			return nil, fmt.Errorf("shared linkage requested but no components are enabled")
		}
		return []string{SharedLibrary}, nil
	}

	seen := make(map[string]bool, len(components))
	libs := make([]string, 0, len(components))
	for _, c := range components {
		lib, ok := resolver(c)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvableComponent, c)
		}
		if seen[lib] {
			continue
		}
		seen[lib] = true
		libs = append(libs, lib)
	}
	return libs, nil
}
