package scope_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/compilerrors"
	"github.com/rhea-lang/rhea/internal/scope"
	"github.com/rhea-lang/rhea/internal/token"
)

func ident(name string) *ast.Identifier {
	return ast.NewIdentifier(token.Position{Line: 1, Column: 1}, name)
}

func TestDeclareAndLookup(t *testing.T) {
	tr := scope.New()
	require.NoError(t, tr.Declare("x", ident("x"), scope.Variable, ""))

	sym, ok := tr.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "x", sym.Name)
	assert.Equal(t, scope.Variable, sym.Kind)
}

func TestLookupWalksParentChain(t *testing.T) {
	tr := scope.New()
	require.NoError(t, tr.Declare("outer", ident("outer"), scope.Constant, ""))

	tr.Begin("inner")
	_, ok := tr.Lookup("outer")
	assert.True(t, ok)
	assert.False(t, tr.IsLocal("outer"))

	require.NoError(t, tr.Declare("inner_only", ident("inner_only"), scope.Variable, ""))
	assert.True(t, tr.IsLocal("inner_only"))

	tr.End()
	_, ok = tr.Lookup("inner_only")
	assert.False(t, ok)
}

func TestDuplicateNonFunctionDeclarationErrors(t *testing.T) {
	tr := scope.New()
	require.NoError(t, tr.Declare("total", ident("total"), scope.Variable, ""))

	err := tr.Declare("total", ident("total"), scope.Variable, "")
	require.Error(t, err)

	var dup *compilerrors.DuplicateDeclaration
	assert.True(t, errors.As(err, &dup))
}

func TestFunctionOverloadsCoexist(t *testing.T) {
	tr := scope.New()
	require.NoError(t, tr.Declare("add", ident("add"), scope.Function, ""))
	require.NoError(t, tr.Declare("add", ident("add"), scope.Function, ""))
}

func TestEndAtRootIsNoOp(t *testing.T) {
	tr := scope.New()
	tr.End()
	require.NoError(t, tr.Declare("x", ident("x"), scope.Variable, ""))
	_, ok := tr.Lookup("x")
	assert.True(t, ok)
}
