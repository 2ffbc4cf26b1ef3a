// Package cmd provides the CLI commands for the parsweep tool.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "parsweep",
	Short:   "Parameter-study ensemble expander",
	Version: Version,
	Long: `parsweep expands YAML parameter-study descriptions into ensembles.

A description names parameters in three groups: fixed (one value
everywhere), lattice (all combinations) and enumerated (lists advancing
in lockstep). parsweep expands the groups into one record per ensemble
member and can serialize the result as a Python data module for
postprocessing.`,
	SilenceUsage: true,
}

// Execute runs the root command and maps failure to a process exit
// code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}
