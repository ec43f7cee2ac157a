package resolve

import (
	"fmt"

	"github.com/llvmconf/llvmconf/llvm"
)

// checkVersion gates the package version against the supported range.
// A version below min is fatal; a version above softMax only records a
// diagnostic, since newer releases usually keep working.
func checkVersion(v, min, softMax llvm.Version, diags *[]Diagnostic) error {
	if v.Compare(min) < 0 {
		return fmt.Errorf("%w: found %s, need %s or newer", ErrVersionTooLow, v, min)
	}
	if v.Compare(softMax) > 0 {
		*diags = append(*diags, Diagnostic{
			Code:    WarnVersionAboveTestedRange,
			Message: fmt.Sprintf("LLVM %s is newer than the last tested release %s, proceeding anyway", v, softMax),
		})
	}
	return nil
}
