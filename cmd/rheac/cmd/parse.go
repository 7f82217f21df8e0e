package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rhea-lang/rhea/internal/astbuild"
	"github.com/rhea-lang/rhea/internal/parsetree"
	"github.com/rhea-lang/rhea/internal/printer"
)

var (
	parseEvalExpr string
	dumpAST       bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Rhea source file and print its parse tree",
	Long: `Parse a Rhea program and print the raw parse tree produced by the
grammar, or, with --dump-ast, the built AST's S-expression form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseSource,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from a file")
	parseCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the built AST instead of the raw parse tree")
}

func parseSource(cmd *cobra.Command, args []string) error {
	input, sourceName, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}

	root, perrs := parsetree.ParseUnit(input, sourceName)
	if len(perrs) > 0 {
		for _, e := range perrs {
			fmt.Println(e.Error())
		}
		return fmt.Errorf("found %d parse error(s)", len(perrs))
	}

	if !dumpAST {
		dumpParseTreeNode(root, 0)
		return nil
	}

	built, berrs := astbuild.Build(root, input, sourceName)
	if len(berrs) > 0 {
		for _, e := range berrs {
			fmt.Println(e.Error())
		}
		return fmt.Errorf("found %d build error(s)", len(berrs))
	}
	fmt.Println(printer.Print(built))
	return nil
}

func dumpParseTreeNode(n *parsetree.Node, depth int) {
	if n == nil {
		fmt.Println(strings.Repeat("  ", depth) + "(nil)")
		return
	}
	indent := strings.Repeat("  ", depth)
	if n.Token.Literal != "" {
		fmt.Printf("%s%s %q\n", indent, n.Tag, n.Token.Literal)
	} else {
		fmt.Printf("%s%s\n", indent, n.Tag)
	}
	for _, c := range n.Children {
		dumpParseTreeNode(c, depth+1)
	}
}
