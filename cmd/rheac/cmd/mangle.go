package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhea-lang/rhea/pkg/rhea"
)

var mangleEvalExpr string

var mangleCmd = &cobra.Command{
	Use:   "mangle [file]",
	Short: "Compile a Rhea source file and print each def's mangled symbol",
	Long: `Run the full front-end/mid-end pipeline over a Rhea program and
print each top-level def's resolved signature and mangled linker name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: mangleSource,
}

func init() {
	rootCmd.AddCommand(mangleCmd)

	mangleCmd.Flags().StringVarP(&mangleEvalExpr, "eval", "e", "", "compile inline code instead of reading from a file")
}

func mangleSource(cmd *cobra.Command, args []string) error {
	input, sourceName, err := readSource(mangleEvalExpr, args)
	if err != nil {
		return err
	}

	unit, err := rhea.Compile(input, sourceName)
	if err != nil {
		if compileErr, ok := err.(*rhea.CompileError); ok {
			for _, d := range compileErr.Errors {
				fmt.Printf("[%s] %s @%d:%d\n", compileErr.Stage, d.Message, d.Line, d.Column)
			}
			return fmt.Errorf("%s failed with %d error(s)", compileErr.Stage, len(compileErr.Errors))
		}
		return err
	}

	if len(unit.Symbols) == 0 {
		fmt.Println("no top-level defs")
		return nil
	}

	for _, sym := range unit.Symbols {
		fmt.Printf("%s(%v) -> %s :: %s\n", sym.Name, sym.ArgTypes, sym.ReturnType, sym.Mangled)
	}
	return nil
}
