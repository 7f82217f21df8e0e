package ast

import (
	"strconv"
	"strings"

	"github.com/rhea-lang/rhea/internal/token"
)

// FunctionKind distinguishes the four declaration shapes the mangler and
// inference engine treat differently. Values are a stable contract: they
// are the integers printed in the canonical Def/Extern form. The mangler
// maps the first three to the kind codes f/p/o and leaves unchecked
// functions unmangled.
type FunctionKind int

const (
	BasicFunction FunctionKind = iota
	PredicateFunction
	OperatorFunction
	UncheckedFunction
)

// NamedArgument is one `name: value` pair in a named-argument Call.
type NamedArgument struct {
	base
	Name  string
	Value Expression
}

func NewNamedArgument(pos token.Position, name string, value Expression) *NamedArgument {
	return &NamedArgument{base: base{pos}, Name: name, Value: value}
}

func (*NamedArgument) expressionNode() {}
func (n *NamedArgument) String() string {
	return "(NamedArgument," + n.Name + "," + n.Value.String() + ")"
}
func (n *NamedArgument) Accept(v Visitor) any { return v.VisitNamedArgument(n) }

// Call applies Target to either a positional argument list, a named
// argument list, or no arguments at all. Exactly one of Positional/Named is
// populated; mixing the two shapes in one call is a parse-time error
// (parseCallArgs), not an AST shape.
type Call struct {
	base
	Target     Expression
	Positional []Expression
	Named      []*NamedArgument
}

func NewCall(pos token.Position, target Expression, positional []Expression, named []*NamedArgument) *Call {
	return &Call{base: base{pos}, Target: target, Positional: positional, Named: named}
}

func (*Call) expressionNode() {}
func (n *Call) String() string {
	var sb strings.Builder
	sb.WriteString("(Call,")
	sb.WriteString(n.Target.String())
	for _, a := range n.Positional {
		sb.WriteString(",")
		sb.WriteString(a.String())
	}
	for _, a := range n.Named {
		sb.WriteString(",")
		sb.WriteString(a.String())
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *Call) Accept(v Visitor) any { return v.VisitCall(n) }

// Arguments is a Def's ordered parameter list.
type Arguments struct {
	base
	Params []*TypePair
}

func NewArguments(pos token.Position, params []*TypePair) *Arguments {
	return &Arguments{base: base{pos}, Params: params}
}

func (n *Arguments) String() string {
	var sb strings.Builder
	sb.WriteString("(Arguments")
	for _, p := range n.Params {
		sb.WriteString(",")
		sb.WriteString(p.String())
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *Arguments) Accept(v Visitor) any { return v.VisitArguments(n) }

// ConditionKind distinguishes a Def's pre- and post-condition clauses.
type ConditionKind int

const (
	PreCondition ConditionKind = iota
	PostCondition
)

// Condition is a pre- or post-condition predicate bound to a parameter
// name, attached to a Def's contract block.
type Condition struct {
	base
	Kind      ConditionKind
	ParamName string
	Predicate Expression
}

func NewCondition(pos token.Position, kind ConditionKind, paramName string, predicate Expression) *Condition {
	return &Condition{base: base{pos}, Kind: kind, ParamName: paramName, Predicate: predicate}
}

func (n *Condition) String() string {
	return "(Condition," + strconv.Itoa(int(n.Kind)) + "," + n.ParamName + "," + n.Predicate.String() + ")"
}
func (n *Condition) Accept(v Visitor) any { return v.VisitCondition(n) }

// Def declares a function. Args, ReturnType, and Conditions are each
// independently optional, reflecting the grammar's "any order, any subset
// of clauses" rule for a function header.
type Def struct {
	base
	Kind       FunctionKind
	Name       string
	Args       *Arguments
	ReturnType *Typename
	Conditions []*Condition
	Body       *Block
}

func NewDef(pos token.Position, kind FunctionKind, name string, args *Arguments, ret *Typename, conds []*Condition, body *Block) *Def {
	return &Def{base: base{pos}, Kind: kind, Name: name, Args: args, ReturnType: ret, Conditions: conds, Body: body}
}

func (*Def) statementNode() {}
func (n *Def) String() string {
	var sb strings.Builder
	sb.WriteString("(Def,")
	sb.WriteString(strconv.Itoa(int(n.Kind)))
	sb.WriteString(",")
	sb.WriteString(n.Name)
	sb.WriteString(",")
	if n.Args == nil {
		sb.WriteString("null")
	} else {
		sb.WriteString(n.Args.String())
	}
	sb.WriteString(",")
	sb.WriteString(nullable(genericTypenameOrNilForTypename(n.ReturnType)))
	for _, c := range n.Conditions {
		sb.WriteString(",")
		sb.WriteString(c.String())
	}
	sb.WriteString(",")
	sb.WriteString(n.Body.String())
	sb.WriteString(")")
	return sb.String()
}
func (n *Def) Accept(v Visitor) any { return v.VisitDef(n) }

// genericTypenameOrNilForTypename avoids the typed-nil interface trap
// nullable() is sensitive to, mirroring genericOrNil for *Typename fields.
func genericTypenameOrNilForTypename(t *Typename) Node {
	if t == nil {
		return nil
	}
	return t
}

// GenericMatch is the family of node shapes usable as a generic parameter
// binding in a GenericDef: a concrete specialization (TypePair) or a
// concept constraint (ConceptMatch).
type GenericMatch interface {
	Node
	genericMatchNode()
}

func (*TypePair) genericMatchNode() {}

// GenericDef is a Def parameterized over one or more generic bindings.
type GenericDef struct {
	base
	Def           *Def
	GenericParams []GenericMatch
}

func NewGenericDef(pos token.Position, def *Def, params []GenericMatch) *GenericDef {
	return &GenericDef{base: base{pos}, Def: def, GenericParams: params}
}

func (*GenericDef) statementNode() {}
func (n *GenericDef) String() string {
	var sb strings.Builder
	sb.WriteString("(GenericDef,")
	sb.WriteString(n.Def.String())
	for _, p := range n.GenericParams {
		sb.WriteString(",")
		sb.WriteString(p.String())
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *GenericDef) Accept(v Visitor) any { return v.VisitGenericDef(n) }

// Extern declares a function implemented outside Rhea (FFI), giving its
// signature with no body.
type Extern struct {
	base
	Kind       FunctionKind
	Name       string
	Args       *Arguments
	ReturnType *Typename
}

func NewExtern(pos token.Position, kind FunctionKind, name string, args *Arguments, ret *Typename) *Extern {
	return &Extern{base: base{pos}, Kind: kind, Name: name, Args: args, ReturnType: ret}
}

func (*Extern) statementNode() {}
func (n *Extern) String() string {
	argsStr := "null"
	if n.Args != nil {
		argsStr = n.Args.String()
	}
	return "(Extern," + strconv.Itoa(int(n.Kind)) + "," + n.Name + "," + argsStr + "," + nullable(genericTypenameOrNilForTypename(n.ReturnType)) + ")"
}
func (n *Extern) Accept(v Visitor) any { return v.VisitExtern(n) }
