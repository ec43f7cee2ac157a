package resolve

import "github.com/llvmconf/llvmconf/llvm"

// A CapabilityRule declares one optional backend capability: the compile
// definition and low-level component that follow from enabling it, and
// the first LLVM release that ships it.
type CapabilityRule struct {
	Name       string       // User-facing capability name
	Define     string       // Compile definition added when enabled
	Component  string       // Component requested when enabled
	MinVersion llvm.Version // First release shipping the backend; zero means always known
}

// A Capability is a rule plus its detected state in a concrete package.
type Capability struct {
	CapabilityRule
	Detected bool
}

// WASM is the one capability whose runtime libraries may be missing even
// when the backend itself is present. See linkWASM.
const WASM = "webassembly"

// DefaultRules returns the built-in capability table. Order here is the
// order capabilities appear in every output list.
func DefaultRules() []CapabilityRule {
	return []CapabilityRule{
		{Name: "x86", Define: "WITH_X86", Component: "X86"},
		{Name: "arm", Define: "WITH_ARM", Component: "ARM"},
		{Name: "aarch64", Define: "WITH_AARCH64", Component: "AArch64"},
		{Name: "hexagon", Define: "WITH_HEXAGON", Component: "Hexagon"},
		{Name: "nvptx", Define: "WITH_NVPTX", Component: "NVPTX"},
		{Name: "powerpc", Define: "WITH_POWERPC", Component: "PowerPC"},
		{Name: "riscv", Define: "WITH_RISCV", Component: "RISCV", MinVersion: llvm.Version{Major: 11}},
		{Name: WASM, Define: "WITH_WEBASSEMBLY", Component: "WebAssembly", MinVersion: llvm.Version{Major: 11}},
	}
}

// detectCapabilities filters rules by the package version and marks each
// surviving capability as detected when the probe reported its component.
// A rule whose MinVersion is newer than the package does not exist for
// the rest of the run, override or not. Rule order is preserved.
func detectCapabilities(rules []CapabilityRule, d *llvm.Descriptor) []Capability {
	caps := make([]Capability, 0, len(rules))
	for _, r := range rules {
		if !r.MinVersion.IsZero() && d.Version.Compare(r.MinVersion) < 0 {
			continue
		}
		caps = append(caps, Capability{
			CapabilityRule: r,
			Detected:       d.HasComponent(r.Component),
		})
	}
	return caps
}
