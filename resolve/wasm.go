package resolve

import (
	"fmt"
	"strings"
)

// wasmComponents are the lld archives the WebAssembly backend needs to
// link its output at run time. Both must resolve or neither is used.
var wasmComponents = []string{"lldWasm", "lldCommon"}

// linkWASM locates the lld archives for the WebAssembly capability. On
// success it returns the extra component names to request and the
// library paths to link directly, skipping the component-to-library
// mapping. A missing archive is not fatal: WebAssembly support stays
// incomplete and a single diagnostic says so.
func linkWASM(loc Locator, libDirs []string, diags *[]Diagnostic) (components, libs []string) {
	if loc == nil {
		*diags = append(*diags, Diagnostic{
			Code:    WarnWASMLibrariesMissing,
			Message: fmt.Sprintf("no library locator configured; WebAssembly support will be incomplete (set the %s capability to off to silence this)", WASM),
		})
		return nil, nil
	}
	libs = make([]string, 0, len(wasmComponents))
	for _, name := range wasmComponents {
		path, ok := loc.Locate(name, libDirs)
		if !ok {
			*diags = append(*diags, Diagnostic{
				Code: WarnWASMLibrariesMissing,
				Message: fmt.Sprintf("%s not found under %s; WebAssembly support will be incomplete (set the %s capability to off to silence this)",
					name, strings.Join(libDirs, ":"), WASM),
			})
			return nil, nil
		}
		libs = append(libs, path)
	}
	return wasmComponents, libs
}
