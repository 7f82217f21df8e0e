// Package ast defines Rhea's semantic abstract syntax tree: the closed sum
// of Expression and Statement node variants, the canonical S-expression
// printer used by golden tests, and the double-dispatch Visitor framework.
package ast

import "github.com/rhea-lang/rhea/internal/token"

// Node is the base interface implemented by every AST node. Every node
// exclusively owns its children; there are no cycles and no shared
// ownership in this tree.
type Node interface {
	// Pos returns the node's source position, propagated from the parse
	// tree during building.
	Pos() token.Position
	// String renders the node's canonical S-expression form:
	// (NodeName,field1,field2,...). This is a stable, tested contract.
	String() string
	// Accept invokes the appropriate visit method on v, implementing
	// double dispatch.
	Accept(v Visitor) any
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself producing
// a value.
type Statement interface {
	Node
	statementNode()
}

// base embeds a Position and satisfies the Pos() method for every
// concrete node without boilerplate per type.
type base struct {
	pos token.Position
}

func (b base) Pos() token.Position { return b.pos }

func nullable(n Node) string {
	if n == nil {
		return "null"
	}
	return n.String()
}
