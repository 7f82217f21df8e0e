package astbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/astbuild"
	"github.com/rhea-lang/rhea/internal/parsetree"
)

// buildOneStatement parses src as a single-statement program and builds its
// AST, failing the test if either stage reports an error.
func buildOneStatement(t *testing.T, src string) ast.Statement {
	t.Helper()
	root, perrs := parsetree.ParseUnit(src, "test")
	require.Empty(t, perrs)

	built, berrs := astbuild.Build(root, src, "test")
	require.Empty(t, berrs)

	prog, ok := built.(*ast.Program)
	require.True(t, ok)
	require.Len(t, prog.Declarations, 1)
	return prog.Declarations[0]
}

func TestBinaryOpFieldOrderAndCode(t *testing.T) {
	stmt := buildOneStatement(t, "1 + 2;")
	bare, ok := stmt.(*ast.BareExpression)
	require.True(t, ok)
	bin, ok := bare.Expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.Add, bin.Op)
	assert.Equal(t, "(BinaryOp,0,(Integral,1,0),(Integral,2,0))", bin.String())
}

func TestMemberFieldOrderIsNameThenObject(t *testing.T) {
	stmt := buildOneStatement(t, "a.b;")
	bare := stmt.(*ast.BareExpression)
	member, ok := bare.Expr.(*ast.Member)
	require.True(t, ok)
	assert.Equal(t, "(Member,(Identifier,b),(Identifier,a))", member.String())
}

func TestSubscriptFieldOrderIsContainerThenIndex(t *testing.T) {
	stmt := buildOneStatement(t, "a[i];")
	bare := stmt.(*ast.BareExpression)
	sub, ok := bare.Expr.(*ast.Subscript)
	require.True(t, ok)
	assert.Equal(t, "(Subscript,(Identifier,a),(Identifier,i))", sub.String())
}

func TestMemberAndSubscriptRotationBuildsNestedOperand(t *testing.T) {
	stmt := buildOneStatement(t, "a[i].m;")
	bare := stmt.(*ast.BareExpression)
	member, ok := bare.Expr.(*ast.Member)
	require.True(t, ok)
	_, ok = member.Object.(*ast.Subscript)
	require.True(t, ok)
}

func TestUnlessLowersToIfWithNilThen(t *testing.T) {
	stmt := buildOneStatement(t, "unless x do foo;")
	ifs, ok := stmt.(*ast.If)
	require.True(t, ok)
	assert.Nil(t, ifs.Then)
	require.NotNil(t, ifs.Else)
	assert.Equal(t, "(If,(Identifier,x),null,(Do,(Identifier,foo)))", ifs.String())
}

func TestIntegerLiteralNoSuffixIsSignedInteger(t *testing.T) {
	stmt := buildOneStatement(t, "42;")
	bare := stmt.(*ast.BareExpression)
	i, ok := bare.Expr.(*ast.Integral)
	require.True(t, ok)
	assert.Equal(t, "(Integral,42,0)", i.String())
}

func TestIntegerLiteralUnsignedByteSuffix(t *testing.T) {
	stmt := buildOneStatement(t, "200_ub;")
	bare := stmt.(*ast.BareExpression)
	i, ok := bare.Expr.(*ast.Integral)
	require.True(t, ok)
	assert.Equal(t, int64(200), i.Value)
	assert.Equal(t, "(Integral,200,6)", i.String())
}

func TestIntegerLiteralByteSuffixTruncates(t *testing.T) {
	stmt := buildOneStatement(t, "200_b;")
	bare := stmt.(*ast.BareExpression)
	i, ok := bare.Expr.(*ast.Integral)
	require.True(t, ok)
	// 200 overflows a signed byte and wraps to -56.
	assert.Equal(t, int64(-56), i.Value)
}

func TestHexLiteralShortIsUnsignedInteger(t *testing.T) {
	stmt := buildOneStatement(t, "0xFF;")
	bare := stmt.(*ast.BareExpression)
	i, ok := bare.Expr.(*ast.Integral)
	require.True(t, ok)
	assert.Equal(t, int64(255), i.Value)
	assert.Equal(t, "(Integral,255,5)", i.String())
}

func TestHexLiteralLongIsUnsignedLong(t *testing.T) {
	stmt := buildOneStatement(t, "0x100000000;")
	bare := stmt.(*ast.BareExpression)
	i, ok := bare.Expr.(*ast.Integral)
	require.True(t, ok)
	assert.Equal(t, "(Integral,4294967296,7)", i.String())
}

func TestPredicateCallWithReceiverRewritesToImplicitFirstArg(t *testing.T) {
	stmt := buildOneStatement(t, "door.isOpen()?;")
	bare := stmt.(*ast.BareExpression)
	call, ok := bare.Expr.(*ast.Call)
	require.True(t, ok)
	target, ok := call.Target.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "isOpen", target.Name)
	require.Len(t, call.Positional, 1)
	recv, ok := call.Positional[0].(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "door", recv.Name)
	assert.Empty(t, call.Named)
}

func TestPredicateCallWithoutReceiverPassesThrough(t *testing.T) {
	stmt := buildOneStatement(t, "isReady()?;")
	bare := stmt.(*ast.BareExpression)
	call, ok := bare.Expr.(*ast.Call)
	require.True(t, ok)
	target, ok := call.Target.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "isReady", target.Name)
	assert.Empty(t, call.Positional)
}

func TestDictionaryRejectsNonLiteralKey(t *testing.T) {
	src := "var d = { (1+2): 3 };"
	root, perrs := parsetree.ParseUnit(src, "test")
	require.Empty(t, perrs)
	_, berrs := astbuild.Build(root, src, "test")
	require.NotEmpty(t, berrs)
}

func TestDictionaryAcceptsIntegerStringSymbolKeys(t *testing.T) {
	stmt := buildOneStatement(t, "var d = { 1: \"a\", \"k\": 2, `s: 3 };")
	v, ok := stmt.(*ast.Variable)
	require.True(t, ok)
	dict, ok := v.RHS.(*ast.Dictionary)
	require.True(t, ok)
	require.Len(t, dict.Entries, 3)
}

func TestDefWithArgsAndReturnType(t *testing.T) {
	stmt := buildOneStatement(t, "def add[integer]{a: integer, b: integer} { return a + b; }")
	def, ok := stmt.(*ast.Def)
	require.True(t, ok)
	assert.Equal(t, ast.BasicFunction, def.Kind)
	assert.Equal(t, "add", def.Name)
	require.NotNil(t, def.Args)
	assert.Len(t, def.Args.Params, 2)
	require.NotNil(t, def.ReturnType)
}

func TestPredicateDefKind(t *testing.T) {
	stmt := buildOneStatement(t, "def isEmpty? { return true; }")
	def, ok := stmt.(*ast.Def)
	require.True(t, ok)
	assert.Equal(t, ast.PredicateFunction, def.Kind)
}

func TestGenericDefCarriesTypePairAndConceptMatch(t *testing.T) {
	stmt := buildOneStatement(t, "def identity<T: integer, C ~> Comparable>{x: T} { return x; }")
	gdef, ok := stmt.(*ast.GenericDef)
	require.True(t, ok)
	require.Len(t, gdef.GenericParams, 2)
	_, ok = gdef.GenericParams[0].(*ast.TypePair)
	assert.True(t, ok)
	_, ok = gdef.GenericParams[1].(*ast.ConceptMatch)
	assert.True(t, ok)
}

func TestConceptDeclBuildsChecks(t *testing.T) {
	stmt := buildOneStatement(t, "concept Comparable { T .= compare; T => compare<T> -> integer; };")
	decl, ok := stmt.(*ast.ConceptDecl)
	require.True(t, ok)
	require.Len(t, decl.Checks, 2)
	_, ok = decl.Checks[0].(*ast.MemberCheck)
	assert.True(t, ok)
	_, ok = decl.Checks[1].(*ast.FunctionCheck)
	assert.True(t, ok)
}

func TestMatchWithDefault(t *testing.T) {
	stmt := buildOneStatement(t, "match x { on 1 { foo; } default { bar; } }")
	m, ok := stmt.(*ast.Match)
	require.True(t, ok)
	require.NotNil(t, m.Subject)
	require.Len(t, m.Cases, 1)
	_, ok = m.Cases[0].(*ast.On)
	assert.True(t, ok)
	require.NotNil(t, m.Default)
}

func TestMatchWithoutDefault(t *testing.T) {
	stmt := buildOneStatement(t, "match x { on 1 { foo; } }")
	m, ok := stmt.(*ast.Match)
	require.True(t, ok)
	assert.Nil(t, m.Default)
}

func TestTryWithCatchAndFinally(t *testing.T) {
	stmt := buildOneStatement(t, "try { risky; } catch (e: Error) { handle; } finally { cleanup; }")
	tr, ok := stmt.(*ast.Try)
	require.True(t, ok)
	require.Len(t, tr.Catches, 1)
	require.NotNil(t, tr.Finally)
}

func TestTryWithoutFinally(t *testing.T) {
	stmt := buildOneStatement(t, "try { risky; } catch (e: Error) { handle; }")
	tr, ok := stmt.(*ast.Try)
	require.True(t, ok)
	require.Len(t, tr.Catches, 1)
	assert.Nil(t, tr.Finally)
}

func TestPositionalAndNamedArgsStayDistinct(t *testing.T) {
	stmt := buildOneStatement(t, "f(x: 1, y: 2);")
	bare := stmt.(*ast.BareExpression)
	call, ok := bare.Expr.(*ast.Call)
	require.True(t, ok)
	assert.Empty(t, call.Positional)
	require.Len(t, call.Named, 2)
	assert.Equal(t, "x", call.Named[0].Name)
}
