package parsetree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhea-lang/rhea/internal/parsetree"
	"github.com/rhea-lang/rhea/internal/token"
)

func parseOneStatement(t *testing.T, src string) *parsetree.Node {
	t.Helper()
	root, errs := parsetree.ParseUnit(src, "test")
	require.Empty(t, errs)
	require.Equal(t, parsetree.TagProgram, root.Tag)
	require.Len(t, root.Children, 1)
	return root.Children[0]
}

func TestPrecedenceAdditiveOverMultiplicative(t *testing.T) {
	stmt := parseOneStatement(t, "42 + 24 * 2;")
	expr := stmt.Children[0]
	require.Equal(t, parsetree.TagBinaryChain, expr.Tag)
	assert.Equal(t, token.PLUS, expr.Children[0].Token.Type)
	assert.Equal(t, parsetree.TagInteger, expr.Children[1].Tag)
	rhs := expr.Children[2]
	require.Equal(t, parsetree.TagBinaryChain, rhs.Tag)
	assert.Equal(t, token.ASTERISK, rhs.Children[0].Token.Type)
}

func TestExponentIsRightAssociative(t *testing.T) {
	stmt := parseOneStatement(t, "a ** b ** c;")
	expr := stmt.Children[0]
	require.Equal(t, parsetree.TagBinaryChain, expr.Tag)
	assert.Equal(t, token.POWER, expr.Children[0].Token.Type)
	assert.Equal(t, parsetree.TagIdentifier, expr.Children[1].Tag)
	rhs := expr.Children[2]
	require.Equal(t, parsetree.TagBinaryChain, rhs.Tag)
	assert.Equal(t, token.POWER, rhs.Children[0].Token.Type)
}

func TestMemberAndSubscriptRotation(t *testing.T) {
	stmt := parseOneStatement(t, "a[i].m;")
	expr := stmt.Children[0]
	require.Equal(t, parsetree.TagMemberStep, expr.Tag)
	operand := expr.Children[0]
	require.Equal(t, parsetree.TagSubscriptStep, operand.Tag)
}

func TestUnlessLowersToIf(t *testing.T) {
	stmt := parseOneStatement(t, "unless x do foo;")
	require.Equal(t, parsetree.TagIf, stmt.Tag)
	assert.Nil(t, stmt.Children[1])
	require.Equal(t, parsetree.TagDo, stmt.Children[2].Tag)
}

func TestHexLiteralTag(t *testing.T) {
	stmt := parseOneStatement(t, "0xFF;")
	expr := stmt.Children[0]
	assert.Equal(t, parsetree.TagHex, expr.Tag)
	assert.Equal(t, "0xFF", expr.Token.Literal)
}

func TestVariableDeclaration(t *testing.T) {
	stmt := parseOneStatement(t, "var x = y * z;")
	require.Equal(t, parsetree.TagVariable, stmt.Tag)
	assert.Equal(t, parsetree.TagIdentifier, stmt.Children[0].Tag)
	rhs := stmt.Children[1]
	require.Equal(t, parsetree.TagBinaryChain, rhs.Tag)
	assert.Equal(t, token.ASTERISK, rhs.Children[0].Token.Type)
}

func TestStructureDeclaration(t *testing.T) {
	stmt := parseOneStatement(t, "type Person = { name: string, age: integer };")
	require.Equal(t, parsetree.TagStructure, stmt.Tag)
	require.Len(t, stmt.Children, 3)
	assert.Equal(t, parsetree.TagTypePair, stmt.Children[1].Tag)
}

func TestPositionalAndNamedCallsDontMix(t *testing.T) {
	root, errs := parsetree.ParseUnit("f(x, y: 1);", "test")
	require.NotEmpty(t, errs)
	_ = root
}

func TestDefWithArgsAndReturnType(t *testing.T) {
	stmt := parseOneStatement(t, "def add[integer]{a: integer, b: integer} { return a + b; }")
	require.Equal(t, parsetree.TagDef, stmt.Tag)
	require.Equal(t, token.DEF, stmt.Token.Type)
	args := stmt.Children[1]
	require.Equal(t, parsetree.TagArguments, args.Tag)
	require.Len(t, args.Children, 2)
	ret := stmt.Children[2]
	require.Equal(t, parsetree.TagTypename, ret.Tag)
}

func TestPredicateDefSuffix(t *testing.T) {
	stmt := parseOneStatement(t, "def isEmpty? { return true; }")
	require.Equal(t, parsetree.TagDef, stmt.Tag)
	assert.Equal(t, token.QUESTION, stmt.Token.Type)
}

func TestMatchOnFlavor(t *testing.T) {
	stmt := parseOneStatement(t, "match x { on 1 { foo; } default { bar; } }")
	require.Equal(t, parsetree.TagMatch, stmt.Tag)
	require.NotNil(t, stmt.Children[0])
	require.Equal(t, parsetree.TagOnCase, stmt.Children[1].Tag)
}

func TestGenericTypenameNestedAngleBrackets(t *testing.T) {
	stmt := parseOneStatement(t, "var x = y as List<List<integer>>;")
	require.Equal(t, parsetree.TagVariable, stmt.Tag)
	rhs := stmt.Children[1]
	require.Equal(t, parsetree.TagCastChain, rhs.Tag)
}
