package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/astbuild"
	"github.com/rhea-lang/rhea/internal/inference"
	"github.com/rhea-lang/rhea/internal/parsetree"
)

var inferEvalExpr string

var inferCmd = &cobra.Command{
	Use:   "infer [file]",
	Short: "Run type inference over a Rhea source file's top-level declarations",
	Long: `Parse and build a Rhea program, run inference over it, and print
each top-level declaration's resolved type.`,
	Args: cobra.MaximumNArgs(1),
	RunE: inferSource,
}

func init() {
	rootCmd.AddCommand(inferCmd)

	inferCmd.Flags().StringVarP(&inferEvalExpr, "eval", "e", "", "run inference over inline code instead of reading from a file")
}

func inferSource(cmd *cobra.Command, args []string) error {
	input, sourceName, err := readSource(inferEvalExpr, args)
	if err != nil {
		return err
	}

	root, perrs := parsetree.ParseUnit(input, sourceName)
	if len(perrs) > 0 {
		return reportErrors(perrs)
	}

	built, berrs := astbuild.Build(root, input, sourceName)
	if len(berrs) > 0 {
		return reportErrors(berrs)
	}

	engine, ierrs := inference.Infer(built, input, sourceName)

	for _, decl := range declarationsOf(built) {
		fmt.Printf("%s :: %s\n", decl.String(), engine.TypeOf(decl).String())
	}

	if len(ierrs) > 0 {
		return reportErrors(ierrs)
	}
	return nil
}

// declarationsOf returns a Program's top-level statements, or nil if root
// is not a Program (every successful astbuild.Build call on a ParseUnit
// root produces one).
func declarationsOf(root ast.Node) []ast.Statement {
	prog, ok := root.(*ast.Program)
	if !ok {
		return nil
	}
	return prog.Declarations
}
