package inference

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/compilerrors"
	"github.com/rhea-lang/rhea/internal/scope"
	"github.com/rhea-lang/rhea/internal/types"
)

// visitor installs a LazyType thunk for every node it reaches. It embeds
// DefaultVisitor so node families with no type of their own (arguments,
// conditions, use/import/export clauses) fall through to a no-op rather
// than needing an explicit override.
type visitor struct {
	ast.DefaultVisitor
	engine *Engine
}

func (v *visitor) install(n ast.Node, t types.Type) {
	v.engine.install(n, constantType(t))
}

// ---- Literals ----

func (v *visitor) VisitIntegral(n *ast.Integral) any {
	v.install(n, types.NewSimple(n.Basic))
	return nil
}

func (v *visitor) VisitFloatingPoint(n *ast.FloatingPoint) any {
	v.install(n, types.NewSimple(n.Basic))
	return nil
}

func (v *visitor) VisitBoolean(n *ast.Boolean) any {
	v.install(n, types.NewSimple(types.Boolean))
	return nil
}

func (v *visitor) VisitString(n *ast.String) any {
	v.install(n, types.NewSimple(types.String))
	return nil
}

func (v *visitor) VisitSymbol(n *ast.Symbol) any {
	v.install(n, types.NewSimple(types.Symbol))
	return nil
}

func (v *visitor) VisitNothing(n *ast.Nothing) any {
	v.install(n, types.NothingType{})
	return nil
}

// ---- Identifiers ----

// VisitIdentifier installs a thunk that resolves n's name against the
// scope active right now (the cursor at visit time, which is the lexical
// scope the identifier occurred in), snapshotted via LookupFrom so the
// thunk resolves correctly however long it is deferred. It also mutates
// n.Type as a side effect of forcing, matching the field's documented role
// as the inference engine's output slot.
func (v *visitor) VisitIdentifier(n *ast.Identifier) any {
	v.installIdentifierLookup(n, n.Name, func(t types.Type) { n.Type = t })
	return nil
}

func (v *visitor) VisitFullyQualified(n *ast.FullyQualified) any {
	v.installIdentifierLookup(n, identifierName(n), func(t types.Type) { n.Type = t })
	return nil
}

func (v *visitor) VisitRelativeIdentifier(n *ast.RelativeIdentifier) any {
	v.installIdentifierLookup(n, identifierName(n.Identifier), func(t types.Type) { n.Type = t })
	return nil
}

func (v *visitor) installIdentifierLookup(n ast.Node, name string, set func(types.Type)) {
	snapshot := v.engine.Scope.Current()
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		sym, ok := e.Scope.LookupFrom(snapshot, name)
		if !ok {
			e.errorf(compilerrors.NewUndefinedName(n.Pos(), e.source, name))
			set(types.UnknownType{})
			return types.UnknownType{}
		}
		t := e.TypeOf(sym.Node)
		set(t)
		return t
	}})
}

// bindIdentifierType sets an AnyIdentifier's own Type field without going
// through scope lookup, used for the LHS of a declaration: the name being
// introduced is not yet declared when its own node is visited, so routing
// it through VisitIdentifier would misreport it as undefined.
func bindIdentifierType(id ast.AnyIdentifier, t types.Type) {
	switch n := id.(type) {
	case *ast.Identifier:
		n.Type = t
	case *ast.FullyQualified:
		n.Type = t
	case *ast.RelativeIdentifier:
		n.Type = t
	}
}

// ---- Operators ----

// VisitBinaryOp follows the left/right-compatible-or-Unknown rule:
// relational and boolean operators always yield Boolean; shift and
// bitwise operators additionally require both operands be integral,
// reported as a TypeMismatch against an integer expectation when not;
// otherwise the result is the left operand's type when compatible with
// the right, else Unknown.
func (v *visitor) VisitBinaryOp(n *ast.BinaryOp) any {
	n.Left.Accept(v)
	n.Right.Accept(v)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		if n.Op.IsRelational() || n.Op.IsBoolean() {
			return types.NewSimple(types.Boolean)
		}
		lt := e.TypeOf(n.Left)
		rt := e.TypeOf(n.Right)
		if n.Op.IsShift() || n.Op.IsBitwise() {
			if !isIntegral(lt) || !isIntegral(rt) {
				e.errorf(compilerrors.NewTypeMismatch(n.Pos(), e.source, "bitwise/shift operand", types.NewSimple(types.Integer), lt))
				return types.UnknownType{}
			}
		}
		if !types.Compatible(lt, rt) {
			return types.UnknownType{}
		}
		return lt
	}})
	return nil
}

func isIntegral(t types.Type) bool {
	st, ok := t.(types.SimpleType)
	return ok && st.IsIntegral
}

// VisitUnaryOp: unary + is identity on numeric simple types; unary - on an
// unsigned simple type yields its signed counterpart; not yields Boolean;
// ^ (Coerce) yields Simple(Promoted), a signal later passes interpret as
// "needs a coercion"; every other unary op propagates the operand's type.
func (v *visitor) VisitUnaryOp(n *ast.UnaryOp) any {
	n.Operand.Accept(v)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		ot := e.TypeOf(n.Operand)
		switch n.Op {
		case ast.BooleanNot:
			return types.NewSimple(types.Boolean)
		case ast.Coerce:
			return types.NewSimple(types.Promoted)
		case ast.UnaryMinus:
			if st, ok := ot.(types.SimpleType); ok {
				if signed, ok := types.SignedCounterpart(st.Basic); ok {
					return types.NewSimple(signed)
				}
			}
			return ot
		default:
			return ot
		}
	}})
	return nil
}

// VisitTernaryOp requires an exact match between branches (not merely
// compatible()); a condition-is-boolean check is left to a later
// validation pass, consistent with the engine's type-computation role.
func (v *visitor) VisitTernaryOp(n *ast.TernaryOp) any {
	n.Condition.Accept(v)
	n.TrueBranch.Accept(v)
	n.FalseBranch.Accept(v)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		tt := e.TypeOf(n.TrueBranch)
		ft := e.TypeOf(n.FalseBranch)
		if !types.Equal(tt, ft) {
			return types.UnknownType{}
		}
		return tt
	}})
	return nil
}

// VisitMember resolves a field access against the object's structure type
// when known; an object of any other shape (Unknown, a builtin, a Variant
// with no common field) yields Unknown rather than an error, since the
// language's structural surface beyond records is not tracked by the type
// system yet.
func (v *visitor) VisitMember(n *ast.Member) any {
	n.Object.Accept(v)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		ot := e.TypeOf(n.Object)
		st, ok := ot.(types.StructureType)
		if !ok {
			return types.UnknownType{}
		}
		for _, f := range st.Fields {
			if f.Name == n.MemberName.Name {
				return f.Type
			}
		}
		return types.UnknownType{}
	}})
	return nil
}

func (v *visitor) VisitSubscript(n *ast.Subscript) any {
	n.Container.Accept(v)
	n.Index.Accept(v)
	v.install(n, types.UnknownType{})
	return nil
}

// ---- Type expressions ----

func (v *visitor) VisitGenericTypename(n *ast.GenericTypename) any {
	for _, c := range n.Children {
		c.Accept(v)
	}
	return nil
}

func (v *visitor) VisitTypename(n *ast.Typename) any {
	if n.GenericPart != nil {
		n.GenericPart.Accept(v)
	}
	if n.ArrayPart != nil {
		n.ArrayPart.Accept(v)
	}
	// A name already bound (a builtin, an earlier declaration, or a generic
	// parameter bound only while its GenericDef is visited) is resolved now;
	// any other name is resolved lazily so forward references still work.
	if v.engine.Mapper.Has(identifierName(n.Name)) {
		v.install(n, v.engine.resolveTypename(n))
		return nil
	}
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		return e.resolveTypename(n)
	}})
	return nil
}

func (v *visitor) VisitVariantTypename(n *ast.VariantTypename) any {
	for _, c := range n.Children {
		c.Accept(v)
	}
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		return e.resolveVariant(n)
	}})
	return nil
}

func (v *visitor) VisitOptionalTypename(n *ast.OptionalTypename) any {
	n.Inner.Accept(v)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		return e.resolveOptional(n)
	}})
	return nil
}

// VisitCast installs the target type named by Right, regardless of
// whether Left's own type is compatible; a narrowing or widening cast is
// exactly the construct that deliberately overrides the inferred type.
func (v *visitor) VisitCast(n *ast.Cast) any {
	n.Left.Accept(v)
	n.Right.Accept(v)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		return e.TypeOf(n.Right)
	}})
	return nil
}

func (v *visitor) VisitTypeCheck(n *ast.TypeCheck) any {
	n.Left.Accept(v)
	n.Right.Accept(v)
	v.install(n, types.NewSimple(types.Boolean))
	return nil
}

// VisitAlias registers the alias name in the type mapper as a synonym for
// whatever type Original already resolves to, so later Typename lookups of
// AliasName succeed the same way a builtin name would.
func (v *visitor) VisitAlias(n *ast.Alias) any {
	target := v.engine.Mapper.Get(identifierName(n.Original))
	_ = v.engine.Mapper.Add(n.AliasName.Name, target)
	v.install(n, target)
	return nil
}

func (v *visitor) VisitSymbolList(n *ast.SymbolList) any {
	v.install(n, types.UnknownType{})
	return nil
}

// VisitEnum registers the enum name in the type mapper as a Simple(Other)
// type, the closed sum's placeholder for a type with no dedicated
// representation. It declares nothing in scope; a top-level enum's name is
// declared by hoist.
func (v *visitor) VisitEnum(n *ast.Enum) any {
	t := types.NewSimple(types.Other)
	_ = v.engine.Mapper.Add(n.Name.Name, t)
	v.install(n, t)
	return nil
}

func (v *visitor) VisitTypePair(n *ast.TypePair) any {
	n.Value.Accept(v)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		return e.TypeOf(n.Value)
	}})
	return nil
}

// ---- Containers ----

// Container literals resolve to Unknown: the closed Type sum has no
// parameterized Array/List/Tuple/Dictionary representation (see
// DESIGN.md), so there is nothing more specific to install. Elements are
// still visited so their own thunks are available to later passes.
func (v *visitor) VisitArray(n *ast.Array) any {
	v.visitElements(n.Elements)
	v.install(n, types.UnknownType{})
	return nil
}

func (v *visitor) VisitList(n *ast.List) any {
	v.visitElements(n.Elements)
	v.install(n, types.UnknownType{})
	return nil
}

func (v *visitor) VisitTuple(n *ast.Tuple) any {
	v.visitElements(n.Elements)
	v.install(n, types.UnknownType{})
	return nil
}

func (v *visitor) visitElements(elems []ast.Expression) {
	for _, el := range elems {
		el.Accept(v)
	}
}

func (v *visitor) VisitDictionary(n *ast.Dictionary) any {
	for _, entry := range n.Entries {
		entry.Key.Accept(v)
		entry.Value.Accept(v)
	}
	v.install(n, types.UnknownType{})
	return nil
}

// VisitStructure builds a StructureType from the field list, registers it
// in the type mapper under the structure's own name. It declares nothing in
// scope; a top-level structure's name is declared by hoist.
func (v *visitor) VisitStructure(n *ast.Structure) any {
	for _, f := range n.Fields {
		f.Accept(v)
	}
	fields := make([]types.NamedType, len(n.Fields))
	for i, f := range n.Fields {
		fields[i] = types.NamedType{Name: f.Name, Type: v.engine.TypeOf(f)}
	}
	t := types.StructureType{Fields: fields}
	_ = v.engine.Mapper.Add(n.Name.Name, t)
	v.install(n, t)
	return nil
}

// ---- Statements ----

func (v *visitor) VisitBareExpression(n *ast.BareExpression) any {
	n.Expr.Accept(v)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type { return e.TypeOf(n.Expr) }})
	return nil
}

// VisitBlock opens a lexical scope for its statements. Its own type is
// always Nothing: Block is a statement-position construct only, never an
// expression (an if/match expression would go through TernaryOp or a
// dedicated expression form instead).
func (v *visitor) VisitBlock(n *ast.Block) any {
	v.engine.Scope.Begin("block")
	for _, s := range n.Statements {
		s.Accept(v)
	}
	v.engine.Scope.End()
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitAssign(n *ast.Assign) any {
	n.LHS.Accept(v)
	n.RHS.Accept(v)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		lt := e.TypeOf(n.LHS)
		rt := e.TypeOf(n.RHS)
		if !types.Compatible(lt, rt) {
			e.errorf(compilerrors.NewTypeMismatch(n.Pos(), e.source, "assignment", lt, rt))
		}
		return lt
	}})
	return nil
}

func (v *visitor) VisitCompoundAssign(n *ast.CompoundAssign) any {
	n.LHS.Accept(v)
	n.RHS.Accept(v)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type { return e.TypeOf(n.LHS) }})
	return nil
}

// VisitTypeDeclaration declares the name with the typename's resolved
// type and binds that type directly onto the identifier node, bypassing
// scope lookup for the node being introduced.
func (v *visitor) VisitTypeDeclaration(n *ast.TypeDeclaration) any {
	n.RHS.Accept(v)
	declare(v.engine, identifierName(n.LHS), n, scope.Variable)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		t := e.TypeOf(n.RHS)
		bindIdentifierType(n.LHS, t)
		return t
	}})
	return nil
}

func (v *visitor) VisitVariable(n *ast.Variable) any {
	v.visitDeclaration(n, n.LHS, n.RHS, scope.Variable)
	return nil
}

func (v *visitor) VisitConstant(n *ast.Constant) any {
	v.visitDeclaration(n, n.LHS, n.RHS, scope.Constant)
	return nil
}

func (v *visitor) visitDeclaration(n ast.Statement, lhs ast.AnyIdentifier, rhs ast.Expression, kind scope.DeclarationType) {
	rhs.Accept(v)
	declare(v.engine, identifierName(lhs), n, kind)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		t := e.TypeOf(rhs)
		bindIdentifierType(lhs, t)
		return t
	}})
	v.engine.install(lhs, LazyType{fn: func(e *Engine) types.Type { return e.TypeOf(n) }})
}

func (v *visitor) VisitDo(n *ast.Do) any {
	n.Expr.Accept(v)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type { return e.TypeOf(n.Expr) }})
	return nil
}

func (v *visitor) VisitIf(n *ast.If) any {
	n.Condition.Accept(v)
	if n.Then != nil {
		n.Then.Accept(v)
	}
	if n.Else != nil {
		n.Else.Accept(v)
	}
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitWhile(n *ast.While) any {
	n.Condition.Accept(v)
	n.Body.Accept(v)
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitFor(n *ast.For) any {
	n.Iterable.Accept(v)
	v.engine.Scope.Begin("for")
	declare(v.engine, n.Var.Name, n.Var, scope.Variable)
	n.Var.Type = types.UnknownType{}
	n.Body.Accept(v)
	v.engine.Scope.End()
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitWith(n *ast.With) any {
	n.Predicate.Accept(v)
	n.Body.Accept(v)
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitBreak(n *ast.Break) any {
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitContinue(n *ast.Continue) any {
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitMatch(n *ast.Match) any {
	if n.Subject != nil {
		n.Subject.Accept(v)
	}
	for _, c := range n.Cases {
		c.Accept(v)
	}
	if n.Default != nil {
		n.Default.Accept(v)
	}
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitOn(n *ast.On) any {
	n.Value.Accept(v)
	n.Body.Accept(v)
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitWhen(n *ast.When) any {
	n.Predicate.Accept(v)
	n.Body.Accept(v)
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitTypeCase(n *ast.TypeCase) any {
	n.Type.Accept(v)
	v.engine.Scope.Begin("typecase")
	if n.BindName != nil {
		declare(v.engine, n.BindName.Name, n.BindName, scope.Variable)
		n.BindName.Type = v.engine.TypeOf(n.Type)
	}
	n.Body.Accept(v)
	v.engine.Scope.End()
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitDefault(n *ast.Default) any {
	n.Body.Accept(v)
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitThrow(n *ast.Throw) any {
	if n.Value != nil {
		n.Value.Accept(v)
	}
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitTry(n *ast.Try) any {
	n.Body.Accept(v)
	for _, c := range n.Catches {
		c.Accept(v)
	}
	if n.Finally != nil {
		n.Finally.Accept(v)
	}
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitCatch(n *ast.Catch) any {
	v.engine.Scope.Begin("catch")
	declare(v.engine, n.ExceptionName.Name, n.ExceptionName, scope.Variable)
	n.ExceptionType.Accept(v)
	n.ExceptionName.Type = v.engine.TypeOf(n.ExceptionType)
	n.Body.Accept(v)
	v.engine.Scope.End()
	return nil
}

func (v *visitor) VisitFinally(n *ast.Finally) any {
	n.Body.Accept(v)
	return nil
}

func (v *visitor) VisitReturn(n *ast.Return) any {
	if n.Value != nil {
		n.Value.Accept(v)
	}
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		if n.Value == nil {
			return types.NothingType{}
		}
		return e.TypeOf(n.Value)
	}})
	return nil
}

// VisitExtern installs the FFI signature's return type (Nothing when none
// is declared) as its own type; its parameter typenames are visited for
// completeness. It declares nothing in scope; a top-level extern's name is
// declared by hoist.
func (v *visitor) VisitExtern(n *ast.Extern) any {
	if n.Args != nil {
		n.Args.Accept(v)
	}
	var ret types.Type = types.NothingType{}
	if n.ReturnType != nil {
		n.ReturnType.Accept(v)
		ret = v.engine.TypeOf(n.ReturnType)
	}
	v.install(n, ret)
	return nil
}

// ---- Functions ----

func (v *visitor) VisitNamedArgument(n *ast.NamedArgument) any {
	n.Value.Accept(v)
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type { return e.TypeOf(n.Value) }})
	return nil
}

// VisitCall installs Target's type as Call's own type: a Def's installed
// type is its return type, so an Identifier resolving to a declaring Def
// naturally yields the function's return type through this chain with no
// separate FunctionType-unwrapping step.
func (v *visitor) VisitCall(n *ast.Call) any {
	n.Target.Accept(v)
	for _, a := range n.Positional {
		a.Accept(v)
	}
	for _, a := range n.Named {
		a.Accept(v)
	}
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type { return e.TypeOf(n.Target) }})
	return nil
}

func (v *visitor) VisitArguments(n *ast.Arguments) any {
	for _, p := range n.Params {
		p.Accept(v)
	}
	return nil
}

func (v *visitor) VisitCondition(n *ast.Condition) any {
	n.Predicate.Accept(v)
	return nil
}

// VisitDef opens a scope for the body bound to the declared return type
// (falling back to the body's own return-collection when none is
// declared), declares each parameter, walks the body, and installs the
// Def's own type as its return type — the single fact every call site
// needs.
func (v *visitor) VisitDef(n *ast.Def) any {
	v.engine.Scope.Begin(n.Name)
	if n.Args != nil {
		for _, p := range n.Args.Params {
			p.Accept(v)
			declare(v.engine, p.Name, p, scope.Variable)
		}
	}
	for _, c := range n.Conditions {
		c.Accept(v)
	}
	if n.Body != nil {
		n.Body.Accept(v)
	}
	v.engine.Scope.End()

	var declared *ast.Typename
	if n.ReturnType != nil {
		n.ReturnType.Accept(v)
		declared = n.ReturnType
	}
	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type {
		if declared != nil {
			return e.TypeOf(declared)
		}
		return e.inferReturnType(n)
	}})
	return nil
}

// VisitGenericDef binds each TypePair generic parameter to its concrete
// type in the mapper for the duration of the body visit, then retracts the
// binding so later, differently-instantiated generics using the same
// parameter name do not collide.
func (v *visitor) VisitGenericDef(n *ast.GenericDef) any {
	var bound []string
	for _, gp := range n.GenericParams {
		gp.Accept(v)
		if tp, ok := gp.(*ast.TypePair); ok {
			if err := v.engine.Mapper.Add(tp.Name, v.engine.TypeOf(tp)); err == nil {
				bound = append(bound, tp.Name)
			}
		}
	}

	n.Def.Accept(v)

	for _, name := range bound {
		v.engine.Mapper.Remove(name)
	}

	v.engine.install(n, LazyType{fn: func(e *Engine) types.Type { return e.TypeOf(n.Def) }})
	return nil
}

// ---- Concepts ----

func (v *visitor) VisitConceptMatch(n *ast.ConceptMatch) any {
	n.Concept.Accept(v)
	return nil
}

func (v *visitor) VisitMemberCheck(n *ast.MemberCheck) any {
	n.Type.Accept(v)
	return nil
}

func (v *visitor) VisitFunctionCheck(n *ast.FunctionCheck) any {
	n.Type.Accept(v)
	if n.ArgType != nil {
		n.ArgType.Accept(v)
	}
	n.ReturnType.Accept(v)
	return nil
}

// VisitConceptDecl registers the concept name as a Simple(Other)
// placeholder, the same representation used for enums: a concept is a
// compile-time constraint, not a runtime type with fields or a mangled
// code of its own.
func (v *visitor) VisitConceptDecl(n *ast.ConceptDecl) any {
	for _, c := range n.Checks {
		c.Accept(v)
	}
	t := types.NewSimple(types.Other)
	_ = v.engine.Mapper.Add(n.Name.Name, t)
	v.install(n, t)
	return nil
}

// ---- Modules ----

func (v *visitor) VisitProgram(n *ast.Program) any {
	for _, d := range n.Declarations {
		d.Accept(v)
	}
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitModule(n *ast.Module) any {
	for _, u := range n.Uses {
		u.Accept(v)
	}
	for _, d := range n.Declarations {
		d.Accept(v)
	}
	v.install(n, types.NothingType{})
	return nil
}

func (v *visitor) VisitUse(n *ast.Use) any { return nil }

func (v *visitor) VisitImport(n *ast.Import) any { return nil }

func (v *visitor) VisitExport(n *ast.Export) any { return nil }

func (v *visitor) VisitModuleDef(n *ast.ModuleDef) any { return nil }
