package printer_test

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/astbuild"
	"github.com/rhea-lang/rhea/internal/parsetree"
	"github.com/rhea-lang/rhea/internal/printer"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func buildProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	root, perrs := parsetree.ParseUnit(src, "test")
	require.Empty(t, perrs)
	built, berrs := astbuild.Build(root, src, "test")
	require.Empty(t, berrs)
	prog, ok := built.(*ast.Program)
	require.True(t, ok)
	return prog
}

func TestPrintMatchesGoldenBinaryOp(t *testing.T) {
	prog := buildProgram(t, "1 + 2 * 3;")
	snaps.MatchSnapshot(t, printer.Print(prog))
}

func TestPrintMatchesGoldenIfStatement(t *testing.T) {
	prog := buildProgram(t, "if a > 0 then { return a; } else { return 0; }")
	snaps.MatchSnapshot(t, printer.Print(prog))
}

func TestPrintMatchesGoldenDef(t *testing.T) {
	prog := buildProgram(t, "def add[integer] {a: integer, b: integer} { return a + b; }")
	snaps.MatchSnapshot(t, printer.Print(prog))
}

func TestPrintNilNodeIsStable(t *testing.T) {
	assert.Equal(t, "(nil)", printer.Print(nil))
}

func TestDiffReportsNoChangeOnEqualInput(t *testing.T) {
	out, err := printer.Diff("(Integral,1,0)\n", "(Integral,1,0)\n")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDiffReportsMismatch(t *testing.T) {
	out, err := printer.Diff("(Integral,1,0)\n", "(Integral,2,0)\n")
	require.NoError(t, err)
	assert.Contains(t, out, "-(Integral,1,0)")
	assert.Contains(t, out, "+(Integral,2,0)")
}
