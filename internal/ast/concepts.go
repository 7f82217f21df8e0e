package ast

import (
	"strings"

	"github.com/rhea-lang/rhea/internal/token"
)

// ConceptMatch binds a generic parameter name to a concept constraint,
// spelled `name ~> Concept`. It is usable both as a GenericDef parameter
// binding and as a clause inside a ConceptDecl body.
type ConceptMatch struct {
	base
	Name    string
	Concept *Typename
}

func NewConceptMatch(pos token.Position, name string, concept *Typename) *ConceptMatch {
	return &ConceptMatch{base: base{pos}, Name: name, Concept: concept}
}

func (*ConceptMatch) genericMatchNode() {}
func (n *ConceptMatch) String() string {
	return "(ConceptMatch," + n.Name + "," + n.Concept.String() + ")"
}
func (n *ConceptMatch) Accept(v Visitor) any { return v.VisitConceptMatch(n) }

// MemberCheck constrains a type to expose a named member, spelled
// `T .= member`.
type MemberCheck struct {
	base
	Type   *Typename
	Member *Identifier
}

func NewMemberCheck(pos token.Position, typ *Typename, member *Identifier) *MemberCheck {
	return &MemberCheck{base: base{pos}, Type: typ, Member: member}
}

func (n *MemberCheck) String() string {
	return "(MemberCheck," + n.Type.String() + "," + n.Member.String() + ")"
}
func (n *MemberCheck) Accept(v Visitor) any { return v.VisitMemberCheck(n) }

// FunctionCheck constrains a type to expose a function of a given
// signature, spelled `T => F<T> -> R`.
type FunctionCheck struct {
	base
	Type       *Typename
	FuncName   *Identifier
	ArgType    *Typename
	ReturnType *Typename
}

func NewFunctionCheck(pos token.Position, typ *Typename, name *Identifier, argType, retType *Typename) *FunctionCheck {
	return &FunctionCheck{base: base{pos}, Type: typ, FuncName: name, ArgType: argType, ReturnType: retType}
}

func (n *FunctionCheck) String() string {
	return "(FunctionCheck," + n.Type.String() + "," + n.FuncName.String() + "," +
		nullable(genericTypenameOrNilForTypename(n.ArgType)) + "," + n.ReturnType.String() + ")"
}
func (n *FunctionCheck) Accept(v Visitor) any { return v.VisitFunctionCheck(n) }

// ConceptDecl declares a named structural constraint: a concept with a body
// of MemberCheck/FunctionCheck clauses.
type ConceptDecl struct {
	base
	Name   *Identifier
	Checks []Node
}

func NewConceptDecl(pos token.Position, name *Identifier, checks []Node) *ConceptDecl {
	return &ConceptDecl{base: base{pos}, Name: name, Checks: checks}
}

func (*ConceptDecl) statementNode() {}
func (n *ConceptDecl) String() string {
	var sb strings.Builder
	sb.WriteString("(ConceptDecl,")
	sb.WriteString(n.Name.String())
	for _, c := range n.Checks {
		sb.WriteString(",")
		sb.WriteString(c.String())
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *ConceptDecl) Accept(v Visitor) any { return v.VisitConceptDecl(n) }
