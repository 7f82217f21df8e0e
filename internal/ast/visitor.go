package ast

// Visitor is the double-dispatch interface every AST pass implements: one
// method per concrete node variant. Accept on a node invokes the matching
// Visit method on v, so adding a visitor never requires touching the node
// types, and adding a node type requires touching every visitor (the
// closed-sum trade-off described in the data model).
//
// Visit methods return `any`; each pass is expected to know its own
// concrete carrier type and type-assert it back out, exactly as a visitor
// parameterized over a result type would if Go's generics supported
// methods with their own type parameters.
type Visitor interface {
	// Literals
	VisitIntegral(n *Integral) any
	VisitFloatingPoint(n *FloatingPoint) any
	VisitBoolean(n *Boolean) any
	VisitString(n *String) any
	VisitSymbol(n *Symbol) any
	VisitNothing(n *Nothing) any

	// Identifiers
	VisitIdentifier(n *Identifier) any
	VisitFullyQualified(n *FullyQualified) any
	VisitRelativeIdentifier(n *RelativeIdentifier) any

	// Operators
	VisitBinaryOp(n *BinaryOp) any
	VisitUnaryOp(n *UnaryOp) any
	VisitTernaryOp(n *TernaryOp) any
	VisitMember(n *Member) any
	VisitSubscript(n *Subscript) any

	// Type expressions
	VisitGenericTypename(n *GenericTypename) any
	VisitTypename(n *Typename) any
	VisitVariantTypename(n *VariantTypename) any
	VisitOptionalTypename(n *OptionalTypename) any
	VisitCast(n *Cast) any
	VisitTypeCheck(n *TypeCheck) any
	VisitAlias(n *Alias) any
	VisitSymbolList(n *SymbolList) any
	VisitEnum(n *Enum) any
	VisitTypePair(n *TypePair) any

	// Containers
	VisitArray(n *Array) any
	VisitList(n *List) any
	VisitTuple(n *Tuple) any
	VisitDictionary(n *Dictionary) any
	VisitStructure(n *Structure) any

	// Statements
	VisitBareExpression(n *BareExpression) any
	VisitBlock(n *Block) any
	VisitAssign(n *Assign) any
	VisitCompoundAssign(n *CompoundAssign) any
	VisitTypeDeclaration(n *TypeDeclaration) any
	VisitVariable(n *Variable) any
	VisitConstant(n *Constant) any
	VisitDo(n *Do) any
	VisitIf(n *If) any
	VisitWhile(n *While) any
	VisitFor(n *For) any
	VisitWith(n *With) any
	VisitBreak(n *Break) any
	VisitContinue(n *Continue) any
	VisitMatch(n *Match) any
	VisitOn(n *On) any
	VisitWhen(n *When) any
	VisitTypeCase(n *TypeCase) any
	VisitDefault(n *Default) any
	VisitThrow(n *Throw) any
	VisitTry(n *Try) any
	VisitCatch(n *Catch) any
	VisitFinally(n *Finally) any
	VisitReturn(n *Return) any
	VisitExtern(n *Extern) any

	// Functions
	VisitNamedArgument(n *NamedArgument) any
	VisitCall(n *Call) any
	VisitArguments(n *Arguments) any
	VisitCondition(n *Condition) any
	VisitDef(n *Def) any
	VisitGenericDef(n *GenericDef) any

	// Concepts
	VisitConceptMatch(n *ConceptMatch) any
	VisitMemberCheck(n *MemberCheck) any
	VisitFunctionCheck(n *FunctionCheck) any
	VisitConceptDecl(n *ConceptDecl) any

	// Modules
	VisitProgram(n *Program) any
	VisitModule(n *Module) any
	VisitUse(n *Use) any
	VisitImport(n *Import) any
	VisitExport(n *Export) any
	VisitModuleDef(n *ModuleDef) any
}

// DefaultVisitor supplies a no-op (nil-returning) implementation of every
// Visitor method, so a pass that only cares about a handful of node kinds
// can embed DefaultVisitor and override just those. This is the Go
// equivalent of a base-class "visit everything, do nothing" virtual
// hierarchy.
type DefaultVisitor struct{}

func (DefaultVisitor) VisitIntegral(*Integral) any             { return nil }
func (DefaultVisitor) VisitFloatingPoint(*FloatingPoint) any   { return nil }
func (DefaultVisitor) VisitBoolean(*Boolean) any               { return nil }
func (DefaultVisitor) VisitString(*String) any                 { return nil }
func (DefaultVisitor) VisitSymbol(*Symbol) any                 { return nil }
func (DefaultVisitor) VisitNothing(*Nothing) any               { return nil }
func (DefaultVisitor) VisitIdentifier(*Identifier) any         { return nil }
func (DefaultVisitor) VisitFullyQualified(*FullyQualified) any { return nil }
func (DefaultVisitor) VisitRelativeIdentifier(*RelativeIdentifier) any {
	return nil
}
func (DefaultVisitor) VisitBinaryOp(*BinaryOp) any   { return nil }
func (DefaultVisitor) VisitUnaryOp(*UnaryOp) any     { return nil }
func (DefaultVisitor) VisitTernaryOp(*TernaryOp) any { return nil }
func (DefaultVisitor) VisitMember(*Member) any       { return nil }
func (DefaultVisitor) VisitSubscript(*Subscript) any { return nil }

func (DefaultVisitor) VisitGenericTypename(*GenericTypename) any   { return nil }
func (DefaultVisitor) VisitTypename(*Typename) any                 { return nil }
func (DefaultVisitor) VisitVariantTypename(*VariantTypename) any   { return nil }
func (DefaultVisitor) VisitOptionalTypename(*OptionalTypename) any { return nil }
func (DefaultVisitor) VisitCast(*Cast) any                         { return nil }
func (DefaultVisitor) VisitTypeCheck(*TypeCheck) any               { return nil }
func (DefaultVisitor) VisitAlias(*Alias) any                       { return nil }
func (DefaultVisitor) VisitSymbolList(*SymbolList) any             { return nil }
func (DefaultVisitor) VisitEnum(*Enum) any                         { return nil }
func (DefaultVisitor) VisitTypePair(*TypePair) any                 { return nil }

func (DefaultVisitor) VisitArray(*Array) any           { return nil }
func (DefaultVisitor) VisitList(*List) any             { return nil }
func (DefaultVisitor) VisitTuple(*Tuple) any           { return nil }
func (DefaultVisitor) VisitDictionary(*Dictionary) any { return nil }
func (DefaultVisitor) VisitStructure(*Structure) any   { return nil }

func (DefaultVisitor) VisitBareExpression(*BareExpression) any     { return nil }
func (DefaultVisitor) VisitBlock(*Block) any                       { return nil }
func (DefaultVisitor) VisitAssign(*Assign) any                     { return nil }
func (DefaultVisitor) VisitCompoundAssign(*CompoundAssign) any     { return nil }
func (DefaultVisitor) VisitTypeDeclaration(*TypeDeclaration) any   { return nil }
func (DefaultVisitor) VisitVariable(*Variable) any                 { return nil }
func (DefaultVisitor) VisitConstant(*Constant) any                 { return nil }
func (DefaultVisitor) VisitDo(*Do) any                             { return nil }
func (DefaultVisitor) VisitIf(*If) any                             { return nil }
func (DefaultVisitor) VisitWhile(*While) any                       { return nil }
func (DefaultVisitor) VisitFor(*For) any                           { return nil }
func (DefaultVisitor) VisitWith(*With) any                         { return nil }
func (DefaultVisitor) VisitBreak(*Break) any                       { return nil }
func (DefaultVisitor) VisitContinue(*Continue) any                 { return nil }
func (DefaultVisitor) VisitMatch(*Match) any                       { return nil }
func (DefaultVisitor) VisitOn(*On) any                             { return nil }
func (DefaultVisitor) VisitWhen(*When) any                         { return nil }
func (DefaultVisitor) VisitTypeCase(*TypeCase) any                 { return nil }
func (DefaultVisitor) VisitDefault(*Default) any                   { return nil }
func (DefaultVisitor) VisitThrow(*Throw) any                       { return nil }
func (DefaultVisitor) VisitTry(*Try) any                           { return nil }
func (DefaultVisitor) VisitCatch(*Catch) any                       { return nil }
func (DefaultVisitor) VisitFinally(*Finally) any                   { return nil }
func (DefaultVisitor) VisitReturn(*Return) any                     { return nil }
func (DefaultVisitor) VisitExtern(*Extern) any                     { return nil }

func (DefaultVisitor) VisitNamedArgument(*NamedArgument) any { return nil }
func (DefaultVisitor) VisitCall(*Call) any                   { return nil }
func (DefaultVisitor) VisitArguments(*Arguments) any         { return nil }
func (DefaultVisitor) VisitCondition(*Condition) any         { return nil }
func (DefaultVisitor) VisitDef(*Def) any                     { return nil }
func (DefaultVisitor) VisitGenericDef(*GenericDef) any       { return nil }

func (DefaultVisitor) VisitConceptMatch(*ConceptMatch) any   { return nil }
func (DefaultVisitor) VisitMemberCheck(*MemberCheck) any     { return nil }
func (DefaultVisitor) VisitFunctionCheck(*FunctionCheck) any { return nil }
func (DefaultVisitor) VisitConceptDecl(*ConceptDecl) any     { return nil }

func (DefaultVisitor) VisitProgram(*Program) any     { return nil }
func (DefaultVisitor) VisitModule(*Module) any       { return nil }
func (DefaultVisitor) VisitUse(*Use) any             { return nil }
func (DefaultVisitor) VisitImport(*Import) any       { return nil }
func (DefaultVisitor) VisitExport(*Export) any       { return nil }
func (DefaultVisitor) VisitModuleDef(*ModuleDef) any { return nil }
