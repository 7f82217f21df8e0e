// Package printer renders an AST node as the S-expression text produced by
// its own String method, and diffs two such renderings for test failure
// output.
package printer

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/rhea-lang/rhea/internal/ast"
)

// Print renders n as its S-expression form. This is a thin wrapper over
// ast.Node.String, existing so callers depend on one stable entry point
// rather than the printer method on every node type.
func Print(n ast.Node) string {
	if n == nil {
		return "(nil)"
	}
	return n.String()
}

// Diff returns a unified diff between want and got, each split on lines,
// for use in a test failure message when a golden comparison does not
// match.
func Diff(want, got string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
