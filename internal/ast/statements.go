package ast

import (
	"strconv"
	"strings"

	"github.com/rhea-lang/rhea/internal/token"
)

// BareExpression is a statement consisting of a single expression,
// evaluated for its side effects.
type BareExpression struct {
	base
	Expr Expression
}

func NewBareExpression(pos token.Position, expr Expression) *BareExpression {
	return &BareExpression{base: base{pos}, Expr: expr}
}

func (*BareExpression) statementNode() {}
func (n *BareExpression) String() string        { return "(BareExpression," + n.Expr.String() + ")" }
func (n *BareExpression) Accept(v Visitor) any { return v.VisitBareExpression(n) }

// Block is a sequence of statements that introduces a new lexical scope.
type Block struct {
	base
	Statements []Statement
}

func NewBlock(pos token.Position, stmts []Statement) *Block {
	return &Block{base: base{pos}, Statements: stmts}
}

func (*Block) statementNode() {}
func (n *Block) String() string {
	var sb strings.Builder
	sb.WriteString("(Block")
	for _, s := range n.Statements {
		sb.WriteString(",")
		sb.WriteString(s.String())
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *Block) Accept(v Visitor) any { return v.VisitBlock(n) }

// Assign is a plain assignment; the LHS is an expression (not necessarily
// an identifier) because subscript and member targets are valid, e.g.
// `x[1] = 'foo'`.
type Assign struct {
	base
	LHS Expression
	RHS Expression
}

func NewAssign(pos token.Position, lhs, rhs Expression) *Assign {
	return &Assign{base: base{pos}, LHS: lhs, RHS: rhs}
}

func (*Assign) statementNode() {}
func (n *Assign) String() string        { return "(Assign," + n.LHS.String() + "," + n.RHS.String() + ")" }
func (n *Assign) Accept(v Visitor) any { return v.VisitAssign(n) }

// CompoundAssign adds an operator kind to a plain assignment, e.g. `x += 1`.
// Printed field order is (LHS, RHS, op) — the operator comes last.
type CompoundAssign struct {
	base
	LHS Expression
	Op  AssignOperator
	RHS Expression
}

func NewCompoundAssign(pos token.Position, lhs Expression, op AssignOperator, rhs Expression) *CompoundAssign {
	return &CompoundAssign{base: base{pos}, LHS: lhs, Op: op, RHS: rhs}
}

func (*CompoundAssign) statementNode() {}
func (n *CompoundAssign) String() string {
	return "(CompoundAssign," + n.LHS.String() + "," + n.RHS.String() + "," + strconv.Itoa(int(n.Op)) + ")"
}
func (n *CompoundAssign) Accept(v Visitor) any { return v.VisitCompoundAssign(n) }

// TypeDeclaration binds an identifier to a type with no initializer,
// e.g. `type T = string;`.
type TypeDeclaration struct {
	base
	LHS AnyIdentifier
	RHS *Typename
}

func NewTypeDeclaration(pos token.Position, lhs AnyIdentifier, rhs *Typename) *TypeDeclaration {
	return &TypeDeclaration{base: base{pos}, LHS: lhs, RHS: rhs}
}

func (*TypeDeclaration) statementNode() {}
func (n *TypeDeclaration) String() string {
	return "(TypeDeclaration," + n.LHS.String() + "," + n.RHS.String() + ")"
}
func (n *TypeDeclaration) Accept(v Visitor) any { return v.VisitTypeDeclaration(n) }

// Variable declares a mutable binding initialized from an expression.
type Variable struct {
	base
	LHS AnyIdentifier
	RHS Expression
}

func NewVariable(pos token.Position, lhs AnyIdentifier, rhs Expression) *Variable {
	return &Variable{base: base{pos}, LHS: lhs, RHS: rhs}
}

func (*Variable) statementNode() {}
func (n *Variable) String() string        { return "(Variable," + n.LHS.String() + "," + n.RHS.String() + ")" }
func (n *Variable) Accept(v Visitor) any { return v.VisitVariable(n) }

// Constant declares an immutable binding. Structurally identical to
// Variable; the distinction only matters to later passes.
type Constant struct {
	base
	LHS AnyIdentifier
	RHS Expression
}

func NewConstant(pos token.Position, lhs AnyIdentifier, rhs Expression) *Constant {
	return &Constant{base: base{pos}, LHS: lhs, RHS: rhs}
}

func (*Constant) statementNode() {}
func (n *Constant) String() string        { return "(Constant," + n.LHS.String() + "," + n.RHS.String() + ")" }
func (n *Constant) Accept(v Visitor) any { return v.VisitConstant(n) }

// Do calls a bare identifier as if it were a zero-argument function.
type Do struct {
	base
	Expr Expression
}

func NewDo(pos token.Position, expr Expression) *Do {
	return &Do{base: base{pos}, Expr: expr}
}

func (*Do) statementNode() {}
func (n *Do) String() string        { return "(Do," + n.Expr.String() + ")" }
func (n *Do) Accept(v Visitor) any { return v.VisitDo(n) }
