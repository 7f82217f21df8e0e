package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhea-lang/rhea/internal/lexer"
	"github.com/rhea-lang/rhea/internal/token"
)

var (
	lexEvalExpr string
	showPos     bool
	showType    bool
	onlyErrors  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Rhea source file or expression",
	Long: `Tokenize (lex) a Rhea program and print the resulting tokens.

Examples:
  # Tokenize a source file
  rheac lex unit.rhea

  # Tokenize an inline expression
  rheac lex -e "1 + 2;"

  # Show token types and positions
  rheac lex --show-type --show-pos unit.rhea`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexSource,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from a file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens and lexical errors")
}

func lexSource(cmd *cobra.Command, args []string) error {
	input, sourceName, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", sourceName)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(input, lexer.WithSourceName(sourceName))

	tokenCount := 0
	for {
		tok := l.NextToken()
		if !onlyErrors {
			printToken(tok)
		}
		tokenCount++
		if tok.Type == token.EOF {
			break
		}
	}

	lexErrs := l.Errors()
	if onlyErrors {
		for _, e := range lexErrs {
			fmt.Printf("[LEXERR] %s @%d:%d\n", e.Message, e.Pos.Line, e.Pos.Column)
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
		if len(lexErrs) > 0 {
			fmt.Printf("Lexical errors: %d\n", len(lexErrs))
		}
	}

	if len(lexErrs) > 0 {
		return fmt.Errorf("found %d lexical error(s)", len(lexErrs))
	}
	return nil
}

func printToken(tok token.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-12s]", tok.Type)
	}

	if tok.Type == token.EOF {
		output += " EOF"
	} else if tok.Literal == "" {
		output += fmt.Sprintf(" %s", tok.Type)
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}

	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	fmt.Println(output)
}
