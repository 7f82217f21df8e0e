package astbuild

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/parsetree"
)

func (b *Builder) buildTypename(n *parsetree.Node) *ast.Typename {
	switch n.Tag {
	case parsetree.TagWildcard:
		return ast.NewTypename(n.Pos(), ast.NewIdentifier(n.Pos(), ast.WildcardTypename), nil, nil)
	case parsetree.TagTypename:
		name := b.buildAnyIdentifier(n.Children[0])
		var generic *ast.GenericTypename
		if n.Children[1] != nil {
			generic = b.buildGenericTypenameArgs(n.Children[1])
		}
		var array ast.Expression
		if n.Children[2] != nil {
			array = b.buildExpression(n.Children[2])
		}
		return ast.NewTypename(n.Pos(), name, generic, array)
	default:
		b.unimplemented(n)
		return ast.NewTypename(n.Pos(), ast.NewIdentifier(n.Pos(), ""), nil, nil)
	}
}

func (b *Builder) buildGenericTypenameArgs(n *parsetree.Node) *ast.GenericTypename {
	args := make([]*ast.Typename, len(n.Children))
	for i, c := range n.Children {
		args[i] = b.buildTypename(c)
	}
	return ast.NewGenericTypename(n.Pos(), args)
}

// buildTypenameExpr builds a type reference occurring in expression
// position: a plain Typename, or the |A,B|/|A|? variant/optional forms,
// which are themselves Expression nodes alongside Typename.
func (b *Builder) buildTypenameExpr(n *parsetree.Node) ast.Expression {
	switch n.Tag {
	case parsetree.TagVariantTypename:
		alts := make([]*ast.Typename, len(n.Children))
		for i, c := range n.Children {
			alts[i] = b.buildTypename(c)
		}
		return ast.NewVariantTypename(n.Pos(), alts)
	case parsetree.TagOptionalTypename:
		return ast.NewOptionalTypename(n.Pos(), b.buildTypename(n.Children[0]))
	default:
		return b.buildTypename(n)
	}
}

func (b *Builder) buildTypePair(n *parsetree.Node) *ast.TypePair {
	name := n.Children[0].Token.Literal
	return ast.NewTypePair(n.Pos(), name, b.buildTypename(n.Children[1]))
}
