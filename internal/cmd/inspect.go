package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parsweep/parsweep/ensemble"
)

var inspectSettings string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarize an ensemble without writing anything",
	Long: `Load a YAML ensemble description and print its shape: member count,
generation type, settings and the input quantities each member carries.

Useful as a dry run before handing a large ensemble to a simulation.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectSettings, "settings", "s", "",
		"name of the settings block to read (omit to skip settings)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	ens, err := ensemble.Load(args[0], inspectSettings)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "members: %d\n", ens.Size())
	fmt.Fprintf(out, "type:    %s\n", ens.Type())

	if settings := ens.Settings(); settings.Len() > 0 {
		fmt.Fprintf(out, "settings:\n")
		for _, name := range settings.Names() {
			value, err := settings.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %s = %q\n", name, value)
		}
	}

	in, _ := ens.At(0)
	if names := in.Names(); len(names) > 0 {
		fmt.Fprintf(out, "scalar inputs:\n")
		for _, name := range names {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}
	if names := in.ArrayNames(); len(names) > 0 {
		fmt.Fprintf(out, "array inputs:\n")
		for _, name := range names {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}

	return nil
}
