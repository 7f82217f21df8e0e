package ast

import (
	"strings"

	"github.com/rhea-lang/rhea/internal/token"
)

// GenericTypename holds the generic argument list attached to a Typename,
// e.g. the <A,B> in List<A,B>. It is not itself a type name.
type GenericTypename struct {
	base
	Children []*Typename
}

func NewGenericTypename(pos token.Position, children []*Typename) *GenericTypename {
	return &GenericTypename{base: base{pos}, Children: children}
}

func (n *GenericTypename) String() string {
	var sb strings.Builder
	sb.WriteString("(GenericTypename")
	for _, c := range n.Children {
		sb.WriteString(",")
		sb.WriteString(c.String())
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *GenericTypename) Accept(v Visitor) any { return v.VisitGenericTypename(n) }

// Typename names a type reference: a name, optional generic arguments, and
// an optional array-dimension expression.
type Typename struct {
	base
	Name        AnyIdentifier
	GenericPart *GenericTypename
	ArrayPart   Expression
}

func NewTypename(pos token.Position, name AnyIdentifier, generic *GenericTypename, array Expression) *Typename {
	return &Typename{base: base{pos}, Name: name, GenericPart: generic, ArrayPart: array}
}

func (*Typename) expressionNode() {}
func (n *Typename) String() string {
	return "(Typename," + n.Name.String() + "," + nullable(genericOrNil(n.GenericPart)) + "," + nullable(n.ArrayPart) + ")"
}
func (n *Typename) Accept(v Visitor) any { return v.VisitTypename(n) }

// genericOrNil avoids a typed-nil interface: a nil *GenericTypename stored
// directly in a Node interface would compare non-nil, breaking nullable().
func genericOrNil(g *GenericTypename) Node {
	if g == nil {
		return nil
	}
	return g
}

// VariantTypename is a type name spelled as |A,B,C|: an ordered list of
// alternative type names.
type VariantTypename struct {
	base
	Children []*Typename
}

func NewVariantTypename(pos token.Position, children []*Typename) *VariantTypename {
	return &VariantTypename{base: base{pos}, Children: children}
}

func (*VariantTypename) expressionNode() {}
func (n *VariantTypename) String() string {
	var sb strings.Builder
	sb.WriteString("(Variant")
	for _, c := range n.Children {
		sb.WriteString(",")
		sb.WriteString(c.String())
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *VariantTypename) Accept(v Visitor) any { return v.VisitVariantTypename(n) }

// OptionalTypename is a type name spelled as |T|?.
type OptionalTypename struct {
	base
	Inner *Typename
}

func NewOptionalTypename(pos token.Position, inner *Typename) *OptionalTypename {
	return &OptionalTypename{base: base{pos}, Inner: inner}
}

func (*OptionalTypename) expressionNode() {}
func (n *OptionalTypename) String() string { return "(Optional," + n.Inner.String() + ")" }
func (n *OptionalTypename) Accept(v Visitor) any { return v.VisitOptionalTypename(n) }

// Cast is the `e as T` operator.
type Cast struct {
	base
	Left  Expression
	Right *Typename
}

func NewCast(pos token.Position, left Expression, right *Typename) *Cast {
	return &Cast{base: base{pos}, Left: left, Right: right}
}

func (*Cast) expressionNode() {}
func (n *Cast) String() string        { return "(Cast," + n.Left.String() + "," + n.Right.String() + ")" }
func (n *Cast) Accept(v Visitor) any { return v.VisitCast(n) }

// TypeCheck is the `e is T` operator.
type TypeCheck struct {
	base
	Left  Expression
	Right *Typename
}

func NewTypeCheck(pos token.Position, left Expression, right *Typename) *TypeCheck {
	return &TypeCheck{base: base{pos}, Left: left, Right: right}
}

func (*TypeCheck) expressionNode() {}
func (n *TypeCheck) String() string {
	return "(TypeCheck," + n.Left.String() + "," + n.Right.String() + ")"
}
func (n *TypeCheck) Accept(v Visitor) any { return v.VisitTypeCheck(n) }

// Alias renames a type: `alias A = B`.
type Alias struct {
	base
	AliasName *Identifier
	Original  AnyIdentifier
}

func NewAlias(pos token.Position, aliasName *Identifier, original AnyIdentifier) *Alias {
	return &Alias{base: base{pos}, AliasName: aliasName, Original: original}
}

func (*Alias) statementNode() {}
func (n *Alias) String() string {
	return "(Alias," + n.AliasName.String() + "," + n.Original.String() + ")"
}
func (n *Alias) Accept(v Visitor) any { return v.VisitAlias(n) }

// SymbolList is a list of interned identifier names, used by Enum.
type SymbolList struct {
	base
	Symbols []*Symbol
}

func NewSymbolList(pos token.Position, symbols []*Symbol) *SymbolList {
	return &SymbolList{base: base{pos}, Symbols: symbols}
}

func (*SymbolList) expressionNode() {}
func (n *SymbolList) String() string {
	var sb strings.Builder
	sb.WriteString("(SymbolList")
	for _, s := range n.Symbols {
		sb.WriteString(",")
		sb.WriteString(s.Value)
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *SymbolList) Accept(v Visitor) any { return v.VisitSymbolList(n) }

// Enum is an alias given to a symbol list.
type Enum struct {
	base
	Name   *Identifier
	Values *SymbolList
}

func NewEnum(pos token.Position, name *Identifier, values *SymbolList) *Enum {
	return &Enum{base: base{pos}, Name: name, Values: values}
}

func (*Enum) statementNode() {}
func (n *Enum) String() string {
	return "(Enum," + n.Name.String() + "," + n.Values.String() + ")"
}
func (n *Enum) Accept(v Visitor) any { return v.VisitEnum(n) }

// TypePair maps a local name to a Typename, used by structure fields,
// function arguments, and catch-clause bindings.
type TypePair struct {
	base
	Name  string
	Value *Typename
}

func NewTypePair(pos token.Position, name string, value *Typename) *TypePair {
	return &TypePair{base: base{pos}, Name: name, Value: value}
}

func (n *TypePair) String() string        { return "(TypePair," + n.Name + "," + n.Value.String() + ")" }
func (n *TypePair) Accept(v Visitor) any { return v.VisitTypePair(n) }

// WildcardTypename is the reserved generic placeholder spelled `*` in a
// `{ name: * }` argument position, resolved to the reserved typename
// "$$wildcard$$".
const WildcardTypename = "$$wildcard$$"
