package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-formula/internal/coerce"
	"github.com/cwbudde/go-formula/internal/values"
	"github.com/cwbudde/go-formula/pkg/formula"
)

var (
	paramsJSON string
	listFuncs  bool
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate a formula expression",
	Long: `Evaluate a single formula expression against a JSON parameter object.

Examples:
  formula eval "SUM(1, 2, 3)"
  formula eval "IF(@x > 10, \"big\", \"small\")" --params '{"x": 42}'
  formula eval --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVar(&paramsJSON, "params", "", "JSON object of named parameters")
	evalCmd.Flags().BoolVar(&listFuncs, "list", false, "list registered built-in functions instead of evaluating")
}

func runEval(_ *cobra.Command, args []string) error {
	engine := formula.New()

	if listFuncs {
		for _, info := range engine.Registry().List() {
			fmt.Printf("%-12s %-22s %s\n", info.Name, info.Category, info.Description)
		}
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("expected exactly one expression argument (or --list)")
	}

	params, err := decodeParams(paramsJSON)
	if err != nil {
		return err
	}

	result, err := engine.Evaluate(args[0], params, nil)
	if err != nil {
		if fe, ok := formula.AsFormulaError(err); ok {
			if code := fe.Kind.Code(); code != "" {
				fmt.Println(code)
				return nil
			}
		}
		return err
	}

	fmt.Println(renderValue(result))
	return nil
}

// renderValue formats an evaluation result for terminal output: scalars
// print via coerce.Stringify, sequences and records print
// comma-separated/bracketed so a list result isn't silently shown as "".
func renderValue(v values.Value) string {
	switch t := v.(type) {
	case values.Sequence:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = renderValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *values.Record:
		keys := t.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			val, _ := t.Get(k)
			parts[i] = k + ": " + renderValue(val)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return coerce.Stringify(v)
	}
}
