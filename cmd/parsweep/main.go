/*
parsweep expands YAML parameter-study descriptions into ensembles.

Usage:

	parsweep <command> [arguments]

Commands:

	parsweep expand study.yaml    Expand a description into a Python module
	parsweep inspect study.yaml   Summarize an ensemble without writing
	parsweep version              Print version information

See 'parsweep help <command>' for details on a specific command.
*/
package main

import (
	"os"

	"github.com/parsweep/parsweep/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
