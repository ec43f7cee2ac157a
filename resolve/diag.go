package resolve

import "errors"

// Codes for non-fatal diagnostics.
const (
	WarnVersionAboveTestedRange = "VersionAboveTestedRange"
	WarnWASMLibrariesMissing    = "WASMLibrariesMissing"
)

// Fatal resolution errors. Callers match them with errors.Is; any of
// these aborts the run and no ResolvedConfig is produced.
var (
	ErrVersionTooLow         = errors.New("LLVM version too low")
	ErrRTTIConflict          = errors.New("RTTI requested but LLVM was built without it")
	ErrUnresolvableComponent = errors.New("component has no library mapping")
)

// A Diagnostic is a non-fatal finding recorded during resolution.
// The caller surfaces them to the user; they never change the outcome.
type Diagnostic struct {
	Code    string
	Message string
}

func (d Diagnostic) String() string {
	return d.Code + ": " + d.Message
}
