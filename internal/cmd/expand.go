package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parsweep/parsweep/ensemble"
)

var (
	expandSettings string
	expandOutput   string
)

var expandCmd = &cobra.Command{
	Use:   "expand <file>",
	Short: "Expand a description into a Python data module",
	Long: `Expand a YAML ensemble description and write the resulting members
as a Python data module.

The module holds one list per input quantity, spanning all members in
record order. Output lists stay empty because no simulation has run;
the module is still loadable and shows exactly which inputs each
member receives.

Examples:
  parsweep expand study.yaml                    # writes study.py
  parsweep expand study.yaml -o /tmp/run1.py
  parsweep expand study.yaml -s settings       # read the settings block`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	rootCmd.AddCommand(expandCmd)
	expandCmd.Flags().StringVarP(&expandSettings, "settings", "s", "",
		"name of the settings block to read (omit to skip settings)")
	expandCmd.Flags().StringVarP(&expandOutput, "output", "o", "",
		"path of the generated Python module (default: input name with .py)")
}

func runExpand(cmd *cobra.Command, args []string) error {
	source := args[0]
	ens, err := ensemble.Load(source, expandSettings)
	if err != nil {
		return err
	}

	target := expandOutput
	if target == "" {
		target = modulePath(source)
	}
	if err := ens.Write(target); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d %s members to %s\n",
		ens.Size(), ens.Type(), target)

	return nil
}

// modulePath derives the default output path from the source path by
// swapping the extension for .py.
func modulePath(source string) string {
	if i := strings.LastIndex(source, "."); i > strings.LastIndex(source, "/") {
		return source[:i] + ".py"
	}

	return source + ".py"
}
