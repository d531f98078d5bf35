// Command formula evaluates spreadsheet-style formula expressions from the
// command line, against a JSON parameter object.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-formula/cmd/formula/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
