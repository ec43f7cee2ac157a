package resolve

import "fmt"

// flagSet accumulates language-level build settings.
type flagSet struct {
	defines      []string
	compileFlags []string
	linkFlags    []string
}

// familyFlags holds the per-toolchain-family spellings of the opt-out
// flags. Unknown families fall back to "gnu".
var familyFlags = map[string]struct {
	noRTTI       string
	noExceptions string
}{
	"gnu":  {noRTTI: "-fno-rtti", noExceptions: "-fno-exceptions"},
	"msvc": {noRTTI: "/GR-", noExceptions: "/EHs-c-"},
}

// languageFlags computes the RTTI, exception and runtime-library
// settings. RTTI can only be enabled if the package itself was built
// with it; that mismatch is fatal, never silently corrected. The
// exceptions toggle is independent of both.
func languageFlags(userRTTI, pkgRTTI, userExceptions bool, stdlib, family string) (flagSet, error) {
	ff, ok := familyFlags[family]
	if !ok {
		ff = familyFlags["gnu"]
	}

	var fs flagSet
	if userRTTI {
		if !pkgRTTI {
			return flagSet{}, fmt.Errorf("%w: rebuild LLVM with LLVM_ENABLE_RTTI=ON or configure with RTTI off", ErrRTTIConflict)
		}
		fs.defines = append(fs.defines, "WITH_RTTI")
	} else {
		fs.compileFlags = append(fs.compileFlags, ff.noRTTI)
	}

	if !userExceptions {
		fs.defines = append(fs.defines, "DISABLE_EXCEPTIONS")
		fs.compileFlags = append(fs.compileFlags, ff.noExceptions)
	}

	if stdlib != "" {
		flag := "-stdlib=" + stdlib
		fs.compileFlags = append(fs.compileFlags, flag)
		fs.linkFlags = append(fs.linkFlags, flag)
	}
	return fs, nil
}
