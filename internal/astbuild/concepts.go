package astbuild

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/parsetree"
)

func (b *Builder) buildConceptMatch(n *parsetree.Node) *ast.ConceptMatch {
	name := n.Children[0].Token.Literal
	concept := b.buildTypename(n.Children[1])
	return ast.NewConceptMatch(n.Pos(), name, concept)
}

func (b *Builder) buildMemberCheck(n *parsetree.Node) *ast.MemberCheck {
	typ := b.buildTypename(n.Children[0])
	member := b.buildIdentifier(n.Children[1])
	return ast.NewMemberCheck(n.Pos(), typ, member)
}

func (b *Builder) buildFunctionCheck(n *parsetree.Node) *ast.FunctionCheck {
	typ := b.buildTypename(n.Children[0])
	funcName := b.buildIdentifier(n.Children[1])
	var argType *ast.Typename
	if n.Children[2] != nil {
		argType = b.buildTypename(n.Children[2])
	}
	retType := b.buildTypename(n.Children[3])
	return ast.NewFunctionCheck(n.Pos(), typ, funcName, argType, retType)
}

func (b *Builder) buildConceptDecl(n *parsetree.Node) *ast.ConceptDecl {
	name := b.buildIdentifier(n.Children[0])
	checks := make([]ast.Node, len(n.Children)-1)
	for i, c := range n.Children[1:] {
		checks[i] = b.buildConceptCheck(c)
	}
	return ast.NewConceptDecl(n.Pos(), name, checks)
}

func (b *Builder) buildConceptCheck(n *parsetree.Node) ast.Node {
	switch n.Tag {
	case parsetree.TagMemberCheck:
		return b.buildMemberCheck(n)
	case parsetree.TagFunctionCheck:
		return b.buildFunctionCheck(n)
	default:
		b.unimplemented(n)
		return ast.NewNothing(n.Pos())
	}
}
