package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhea-lang/rhea/internal/astbuild"
	"github.com/rhea-lang/rhea/internal/diagnostics"
	"github.com/rhea-lang/rhea/internal/parsetree"
	"github.com/rhea-lang/rhea/internal/printer"
)

var (
	astEvalExpr string
	astJSON     bool
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Build and print a Rhea source file's AST",
	Long: `Parse a Rhea program, build its AST, and print its S-expression
form. With --json, errors from either stage are printed as a JSON
diagnostic document instead of plain text, and the command still exits
non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: astSource,
}

func init() {
	rootCmd.AddCommand(astCmd)

	astCmd.Flags().StringVarP(&astEvalExpr, "eval", "e", "", "build the AST of inline code instead of reading from a file")
	astCmd.Flags().BoolVar(&astJSON, "json", false, "print errors as a JSON diagnostic document")
}

func astSource(cmd *cobra.Command, args []string) error {
	input, sourceName, err := readSource(astEvalExpr, args)
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

	fmt.Println(printer.Print(built))
	return nil
}

// reportErrors is shared by ast and infer: both run the same
// parse/build prefix and report failures the same way, gated on ast's
// own --json flag (infer never sets it, so its errors always print as
// plain text).
func reportErrors(errs []error) error {
	if astJSON {
		doc, err := diagnostics.ToJSON(errs)
		if err != nil {
			return err
		}
		fmt.Println(doc)
	} else {
		for _, e := range errs {
			fmt.Println(e.Error())
		}
	}
	return fmt.Errorf("found %d error(s)", len(errs))
}
