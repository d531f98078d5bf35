// Package cmd implements the formula command-line tool: root command plus
// eval and version subcommands, mirroring the teacher's cmd/dwscript/cmd.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "formula",
	Short: "Sandboxed spreadsheet formula evaluator",
	Long: `formula evaluates spreadsheet-style expressions (SUM, IF, VLOOKUP, ...)
against a caller-supplied set of named parameters.

Expressions run through a textual safety gate before being parsed, reject
any attempt to reach outside the formula grammar, and raise spreadsheet
error codes (#VALUE!, #REF!, #NAME?, #NUM!, #DIV/0!, #N/A) rather than
Go panics on malformed input.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
