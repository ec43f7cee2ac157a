// Package resolve decides how a dependent build links against an
// installed LLVM package: version gating, optional backend capabilities,
// link-library assembly and language feature flags.
//
// Resolution is a pure single-pass function over the probe descriptor
// and the user configuration. Identical inputs always produce an
// identical ResolvedConfig, diagnostics included; a fatal condition
// aborts the run and no ResolvedConfig is produced at all.
package resolve

import (
	"slices"

	"github.com/llvmconf/llvmconf/llvm"
)

// Locator looks a native library up by base name across search
// directories. Implementations must be deterministic for resolution to
// stay idempotent; tests substitute fakes.
type Locator interface {
	Locate(name string, dirs []string) (path string, ok bool)
}

// Config is the user's side of a resolution run.
type Config struct {
	MinVersion     llvm.Version
	SoftMaxVersion llvm.Version
	Overrides      map[string]Override
	WithRTTI       bool
	WithExceptions bool
	Toolchain      string // flag family, "gnu" (default) or "msvc"

	Rules     []CapabilityRule // nil means DefaultRules
	Locator   Locator          // nil means WebAssembly libraries are never found
	Libraries NameResolver     // nil means LibraryNames over the descriptor's components
}

// ResolvedConfig is the final build interface to the package, assembled
// once per run and never mutated afterwards.
type ResolvedConfig struct {
	Enabled      []string // Capability names, in rule order
	Components   []string // Requested component names
	Libraries    []string // Link libraries, first-seen order, no duplicates
	Definitions  []string // Compile definitions
	CompileFlags []string
	LinkFlags    []string
	Diagnostics  []Diagnostic
}

// Resolve computes the build configuration for a dependent of the
// probed package.
func Resolve(d *llvm.Descriptor, cfg Config) (*ResolvedConfig, error) {
	var diags []Diagnostic

	if err := checkVersion(d.Version, cfg.MinVersion, cfg.SoftMaxVersion, &diags); err != nil {
		return nil, err
	}

	lang, err := languageFlags(cfg.WithRTTI, d.HasRTTI, cfg.WithExceptions, d.Stdlib, cfg.Toolchain)
	if err != nil {
		return nil, err
	}

	rules := cfg.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	caps := detectCapabilities(rules, d)
	enabled, components, defines := applyOverrides(caps, cfg.Overrides)

	// The wasm archives are resolved to paths already and skip the
	// component-to-library mapping below.
	mapped := components
	var extraLibs []string
	if slices.Contains(enabled, WASM) {
		var extra []string
		extra, extraLibs = linkWASM(cfg.Locator, d.LibDirs, &diags)
		components = append(components, extra...)
	}

	resolver := cfg.Libraries
	if resolver == nil {
		resolver = LibraryNames(d.Components)
	}

	libs, err := buildLibrarySet(mapped, d.SharedLib, resolver)
	if err != nil {
		return nil, err
	}
	for _, lib := range extraLibs {
		if !slices.Contains(libs, lib) {
			libs = append(libs, lib)
		}
	}

	out := &ResolvedConfig{
		Enabled:     enabled,
		Components:  components,
		Libraries:   libs,
		Definitions: slices.Concat(d.Definitions, defines, lang.defines),
		Diagnostics: diags,
	}
	for _, dir := range d.IncludeDirs {
		out.CompileFlags = append(out.CompileFlags, "-I"+dir)
	}
	out.CompileFlags = append(out.CompileFlags, lang.compileFlags...)
	for _, dir := range d.LibDirs {
		out.LinkFlags = append(out.LinkFlags, "-L"+dir)
	}
	out.LinkFlags = append(out.LinkFlags, lang.linkFlags...)

	return out, nil
}
