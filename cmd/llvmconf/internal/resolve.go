package internal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/llvmconf/llvmconf/internal/config"
	"github.com/llvmconf/llvmconf/llvm"
	"github.com/llvmconf/llvmconf/locate"
	"github.com/llvmconf/llvmconf/resolve"
)

var resolveDescriptor string
var resolveConfigFile string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve build settings from a probe descriptor",
	Long:  `Resolve reads the probe's JSON descriptor of an installed LLVM, applies the user configuration, and prints the definitions, flags and libraries a dependent build must use.`,
	Args:  cobra.NoArgs,
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveDescriptor, "descriptor", "d", "llvm.json", "Path to the probe descriptor")
	resolveCmd.Flags().StringVarP(&resolveConfigFile, "config", "c", "", "Path to the build configuration file")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	desc, err := llvm.Parse(resolveDescriptor, nil)
	if err != nil {
		return fmt.Errorf("failed to read descriptor: %w", err)
	}

	cfg, err := config.Read(cmd.Context(), resolveConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	rcfg, err := cfg.Resolve()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	rcfg.Locator = locate.Files{}

	for _, name := range ignoredOverrides(resolve.DefaultRules(), desc.Version, rcfg.Overrides) {
		log.Debug("override has no effect for this LLVM version", "target", name, "version", desc.Version)
	}

	out, err := resolve.Resolve(desc, rcfg)
	if err != nil {
		return fmt.Errorf("failed to resolve against LLVM %s: %w", desc.Version, err)
	}
	for _, diag := range out.Diagnostics {
		log.Warn(diag.Message, "code", diag.Code)
	}

	fmt.Println("TARGETS:", strings.Join(out.Enabled, " "))
	fmt.Println("DEFINES:", strings.Join(out.Definitions, " "))
	fmt.Println("CXXFLAGS:", strings.Join(out.CompileFlags, " "))
	fmt.Println("LDFLAGS:", strings.Join(out.LinkFlags, " "))
	fmt.Println("LIBS:", strings.Join(out.Libraries, " "))
	return nil
}

// ignoredOverrides reports override names that cannot take effect
// against this package version. Resolution skips them silently; here
// they are logged at debug level so shared configs stay quiet.
func ignoredOverrides(rules []resolve.CapabilityRule, v llvm.Version, overrides map[string]resolve.Override) []string {
	known := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.MinVersion.IsZero() || v.Compare(r.MinVersion) >= 0 {
			known[r.Name] = true
		}
	}
	var out []string
	for name := range overrides {
		if !known[name] {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
