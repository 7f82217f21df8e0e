package astbuild

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/parsetree"
)

func (b *Builder) buildIdentifier(n *parsetree.Node) *ast.Identifier {
	return ast.NewIdentifier(n.Pos(), n.Token.Literal)
}

func (b *Builder) buildAnyIdentifier(n *parsetree.Node) ast.AnyIdentifier {
	switch n.Tag {
	case parsetree.TagIdentifier:
		return b.buildIdentifier(n)
	case parsetree.TagFullyQualified:
		segs := make([]*ast.Identifier, len(n.Children))
		for i, c := range n.Children {
			segs[i] = b.buildIdentifier(c)
		}
		return ast.NewFullyQualified(n.Pos(), segs)
	case parsetree.TagRelativeIdentifier:
		return ast.NewRelativeIdentifier(n.Pos(), b.buildAnyIdentifier(n.Children[0]))
	default:
		b.unimplemented(n)
		return ast.NewIdentifier(n.Pos(), "")
	}
}
