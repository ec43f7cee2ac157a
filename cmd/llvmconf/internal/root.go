package internal

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "llvmconf",
	Short: "llvmconf resolves build settings against an installed LLVM",
	Long:  `llvmconf turns a probed LLVM installation and user overrides into the definitions, flags and libraries a dependent native build must use.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
