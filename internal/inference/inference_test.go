package inference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/astbuild"
	"github.com/rhea-lang/rhea/internal/inference"
	"github.com/rhea-lang/rhea/internal/parsetree"
	"github.com/rhea-lang/rhea/internal/types"
)

// buildProgram parses and builds src into a full unit, failing the test if
// either stage reports an error.
func buildProgram(t *testing.T, src string) ast.Node {
	t.Helper()
	root, perrs := parsetree.ParseUnit(src, "test")
	require.Empty(t, perrs)

	built, berrs := astbuild.Build(root, src, "test")
	require.Empty(t, berrs)
	return built
}

// inferOneStatement builds src as a single-statement program, runs
// inference over it, and returns the engine plus that one statement so the
// caller can query TypeOf on whatever sub-node it cares about.
func inferOneStatement(t *testing.T, src string) (*inference.Engine, ast.Statement) {
	t.Helper()
	built := buildProgram(t, src)
	prog, ok := built.(*ast.Program)
	require.True(t, ok)
	require.Len(t, prog.Declarations, 1)

	e, errs := inference.Infer(built, src, "test")
	require.Empty(t, errs)
	return e, prog.Declarations[0]
}

func bareExpr(t *testing.T, stmt ast.Statement) ast.Expression {
	t.Helper()
	bare, ok := stmt.(*ast.BareExpression)
	require.True(t, ok)
	return bare.Expr
}

func TestIntegralLiteralIsSimpleInteger(t *testing.T) {
	e, stmt := inferOneStatement(t, "42;")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.NewSimple(types.Integer), typ)
}

func TestBooleanLiteralIsSimpleBoolean(t *testing.T) {
	e, stmt := inferOneStatement(t, "true;")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.NewSimple(types.Boolean), typ)
}

func TestStringLiteralIsSimpleString(t *testing.T) {
	e, stmt := inferOneStatement(t, "\"hi\";")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.NewSimple(types.String), typ)
}

func TestVariableBindsIdentifierToRHSType(t *testing.T) {
	e, stmt := inferOneStatement(t, "var x = 1 + 2;")
	v, ok := stmt.(*ast.Variable)
	require.True(t, ok)
	id, ok := v.LHS.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, types.NewSimple(types.Integer), e.TypeOf(id))
	assert.Equal(t, types.NewSimple(types.Integer), id.Type)
}

func TestConstantMarksDeclarationImmutable(t *testing.T) {
	_, stmt := inferOneStatement(t, "const x = 1;")
	_, ok := stmt.(*ast.Constant)
	require.True(t, ok)
}

func TestIdentifierResolvesThroughScopeToVariableDeclaration(t *testing.T) {
	built := buildProgram(t, "var x = 1; var y = x;")
	prog := built.(*ast.Program)
	require.Len(t, prog.Declarations, 2)

	e, errs := inference.Infer(built, "var x = 1; var y = x;", "test")
	require.Empty(t, errs)

	y := prog.Declarations[1].(*ast.Variable)
	assert.Equal(t, types.NewSimple(types.Integer), e.TypeOf(y.RHS))
}

func TestForwardReferenceBetweenTopLevelDefsResolves(t *testing.T) {
	src := "def a[integer]{} { return b(); } def b[integer]{} { return 1; }"
	built := buildProgram(t, src)
	prog := built.(*ast.Program)
	require.Len(t, prog.Declarations, 2)

	e, errs := inference.Infer(built, src, "test")
	require.Empty(t, errs)

	defA := prog.Declarations[0].(*ast.Def)
	assert.Equal(t, types.NewSimple(types.Integer), e.TypeOf(defA))
}

func TestUndefinedIdentifierReportsUndefinedName(t *testing.T) {
	built := buildProgram(t, "x;")
	_, errs := inference.Infer(built, "x;", "test")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "undefined name")
}

func TestBinaryOpCompatibleOperandsYieldLeftType(t *testing.T) {
	e, stmt := inferOneStatement(t, "1 + 2;")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.NewSimple(types.Integer), typ)
}

func TestBinaryOpRelationalYieldsBoolean(t *testing.T) {
	e, stmt := inferOneStatement(t, "1 < 2;")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.NewSimple(types.Boolean), typ)
}

func TestBinaryOpIncompatibleOperandsYieldUnknown(t *testing.T) {
	e, stmt := inferOneStatement(t, "1 + true;")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.UnknownType{}, typ)
}

func TestBinaryOpShiftOnNonIntegralReportsTypeMismatch(t *testing.T) {
	built := buildProgram(t, "true << 1;")
	e, errs := inference.Infer(built, "true << 1;", "test")
	prog := built.(*ast.Program)
	typ := e.TypeOf(bareExpr(t, prog.Declarations[0]))
	assert.Equal(t, types.UnknownType{}, typ)
	require.Len(t, errs, 1)
}

func TestUnaryMinusOnUnsignedYieldsSignedCounterpart(t *testing.T) {
	e, stmt := inferOneStatement(t, "-200_ub;")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.NewSimple(types.Byte), typ)
}

func TestUnaryMinusOnSignedPropagates(t *testing.T) {
	e, stmt := inferOneStatement(t, "-1;")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.NewSimple(types.Integer), typ)
}

func TestUnaryNotYieldsBoolean(t *testing.T) {
	e, stmt := inferOneStatement(t, "not true;")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.NewSimple(types.Boolean), typ)
}

func TestUnaryCoerceYieldsPromoted(t *testing.T) {
	e, stmt := inferOneStatement(t, "^1;")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.NewSimple(types.Promoted), typ)
}

func TestTernaryExactMatchYieldsBranchType(t *testing.T) {
	e, stmt := inferOneStatement(t, "true ? 1 : 2;")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.NewSimple(types.Integer), typ)
}

func TestTernaryMismatchYieldsUnknown(t *testing.T) {
	e, stmt := inferOneStatement(t, "true ? 1 : \"s\";")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.UnknownType{}, typ)
}

func TestCastResultIsRHSTypenamesType(t *testing.T) {
	e, stmt := inferOneStatement(t, "1 as string;")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.NewSimple(types.String), typ)
}

func TestTypeCheckResultIsBoolean(t *testing.T) {
	e, stmt := inferOneStatement(t, "1 is string;")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.NewSimple(types.Boolean), typ)
}

func TestTypeDeclarationBindsDeclaredTypename(t *testing.T) {
	e, stmt := inferOneStatement(t, "type T = string;")
	decl, ok := stmt.(*ast.TypeDeclaration)
	require.True(t, ok)
	id, ok := decl.LHS.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, types.NewSimple(types.String), e.TypeOf(decl))
	assert.Equal(t, types.NewSimple(types.String), id.Type)
}

func TestBlockIsAlwaysNothing(t *testing.T) {
	e, stmt := inferOneStatement(t, "if true then { 1; }")
	ifs, ok := stmt.(*ast.If)
	require.True(t, ok)
	assert.Equal(t, types.NothingType{}, e.TypeOf(ifs))
	assert.Equal(t, types.NothingType{}, e.TypeOf(ifs.Then))
}

func TestDefWithDeclaredReturnType(t *testing.T) {
	e, stmt := inferOneStatement(t, "def add[integer]{a: integer, b: integer} { return a + b; }")
	def, ok := stmt.(*ast.Def)
	require.True(t, ok)
	assert.Equal(t, types.NewSimple(types.Integer), e.TypeOf(def))
}

func TestDefReturnTypeCollectedFromReturns(t *testing.T) {
	e, stmt := inferOneStatement(t, "def f { return 1; }")
	def, ok := stmt.(*ast.Def)
	require.True(t, ok)
	assert.Equal(t, types.NewSimple(types.Integer), e.TypeOf(def))
}

func TestDefWithNoReturnsIsNothing(t *testing.T) {
	e, stmt := inferOneStatement(t, "def f { var x = 1; }")
	def, ok := stmt.(*ast.Def)
	require.True(t, ok)
	assert.Equal(t, types.NothingType{}, e.TypeOf(def))
}

func TestDefWithDisagreeingReturnsReportsTypeMismatch(t *testing.T) {
	src := "def f { if true then { return 1; } else { return \"s\"; } }"
	built := buildProgram(t, src)
	_, errs := inference.Infer(built, src, "test")
	require.NotEmpty(t, errs)
}

func TestDefParameterIdentifierResolvesToDeclaredType(t *testing.T) {
	e, stmt := inferOneStatement(t, "def f[integer]{a: integer} { return a; }")
	def, ok := stmt.(*ast.Def)
	require.True(t, ok)
	assert.Equal(t, types.NewSimple(types.Integer), e.TypeOf(def))
}

func TestGenericDefBindsAndRestoresTypeParameter(t *testing.T) {
	src := "def identity<T: integer>{x: T} { return x; }"
	built := buildProgram(t, src)
	prog := built.(*ast.Program)
	gdef, ok := prog.Declarations[0].(*ast.GenericDef)
	require.True(t, ok)

	e, errs := inference.Infer(built, src, "test")
	require.Empty(t, errs)
	assert.Equal(t, types.NewSimple(types.Integer), e.TypeOf(gdef))

	assert.False(t, e.Mapper.Has("T"))
}

func TestStructureFieldTypeResolvesViaMember(t *testing.T) {
	src := "type Point = { x: integer, y: integer }; def getX{p: Point} { return p.x; }"
	built := buildProgram(t, src)
	prog := built.(*ast.Program)
	require.Len(t, prog.Declarations, 2)

	e, errs := inference.Infer(built, src, "test")
	require.Empty(t, errs)

	getX := prog.Declarations[1].(*ast.Def)
	require.Len(t, getX.Body.Statements, 1)
	ret, ok := getX.Body.Statements[0].(*ast.Return)
	require.True(t, ok)
	member, ok := ret.Value.(*ast.Member)
	require.True(t, ok)
	assert.Equal(t, types.NewSimple(types.Integer), e.TypeOf(member))

	assert.Equal(t, types.NewSimple(types.Integer), e.TypeOf(getX))
}

func TestEnumRegistersAsOther(t *testing.T) {
	src := "enum Color = { `red, `green, `blue };"
	built := buildProgram(t, src)
	prog := built.(*ast.Program)
	enum, ok := prog.Declarations[0].(*ast.Enum)
	require.True(t, ok)

	e, errs := inference.Infer(built, src, "test")
	require.Empty(t, errs)
	assert.Equal(t, types.NewSimple(types.Other), e.TypeOf(enum))
	assert.Equal(t, types.NewSimple(types.Other), e.Mapper.Get("Color"))
}

func TestConceptDeclRegistersAsOther(t *testing.T) {
	src := "concept Comparable { T .= compare; T => compare<T> -> integer; };"
	built := buildProgram(t, src)
	prog := built.(*ast.Program)
	decl, ok := prog.Declarations[0].(*ast.ConceptDecl)
	require.True(t, ok)

	e, errs := inference.Infer(built, src, "test")
	require.Empty(t, errs)
	assert.Equal(t, types.NewSimple(types.Other), e.TypeOf(decl))
}

func TestContainerLiteralsAreUnknown(t *testing.T) {
	e, stmt := inferOneStatement(t, "[1, 2, 3];")
	typ := e.TypeOf(bareExpr(t, stmt))
	assert.Equal(t, types.UnknownType{}, typ)
}

func TestEvaluateContractsWithNoConditionsHolds(t *testing.T) {
	_, stmt := inferOneStatement(t, "def f[integer] { return 1; }")
	def := stmt.(*ast.Def)
	ok, err := inference.EvaluateContracts(def)
	assert.True(t, ok)
	assert.NoError(t, err)
}

func TestEvaluateContractsWithConditionsIsUnimplemented(t *testing.T) {
	src := "def f[integer] with { pre a: a > 0; } {a: integer} { return a; }"
	built := buildProgram(t, src)
	prog := built.(*ast.Program)
	def, ok := prog.Declarations[0].(*ast.Def)
	require.True(t, ok)
	require.NotEmpty(t, def.Conditions)
	_, err := inference.EvaluateContracts(def)
	assert.ErrorIs(t, err, inference.ErrUnimplementedContract)
}

func TestCallTypeIsTargetDefsReturnType(t *testing.T) {
	src := "def f[integer] { return 1; } f();"
	built := buildProgram(t, src)
	prog := built.(*ast.Program)
	require.Len(t, prog.Declarations, 2)

	e, errs := inference.Infer(built, src, "test")
	require.Empty(t, errs)

	bare := prog.Declarations[1].(*ast.BareExpression)
	call, ok := bare.Expr.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, types.NewSimple(types.Integer), e.TypeOf(call))
}
