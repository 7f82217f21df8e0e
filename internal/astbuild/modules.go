package astbuild

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/parsetree"
)

func (b *Builder) buildUnit(n *parsetree.Node) ast.Node {
	switch n.Tag {
	case parsetree.TagProgram:
		return b.buildProgram(n)
	case parsetree.TagModule:
		return b.buildModule(n)
	default:
		b.unimplemented(n)
		return nil
	}
}

func (b *Builder) buildProgram(n *parsetree.Node) *ast.Program {
	decls := make([]ast.Statement, 0, len(n.Children))
	for _, c := range n.Children {
		decls = append(decls, b.buildStatement(c))
	}
	return ast.NewProgram(n.Pos(), decls)
}

func (b *Builder) buildModule(n *parsetree.Node) *ast.Module {
	header := b.buildModuleDef(n.Children[0])
	rest := n.Children[1:]

	var uses []*ast.Use
	i := 0
	for i < len(rest) && rest[i].Tag == parsetree.TagUse {
		uses = append(uses, b.buildUse(rest[i]))
		i++
	}
	decls := make([]ast.Statement, 0, len(rest)-i)
	for ; i < len(rest); i++ {
		decls = append(decls, b.buildStatement(rest[i]))
	}
	return ast.NewModule(n.Pos(), header, uses, decls)
}

func (b *Builder) buildModuleDef(n *parsetree.Node) *ast.ModuleDef {
	return ast.NewModuleDef(n.Pos(), b.buildAnyIdentifier(n.Children[0]))
}

func (b *Builder) buildUse(n *parsetree.Node) *ast.Use {
	return ast.NewUse(n.Pos(), b.buildAnyIdentifier(n.Children[0]))
}

func (b *Builder) buildImport(n *parsetree.Node) *ast.Import {
	names := make([]*ast.Identifier, len(n.Children)-1)
	for i, c := range n.Children[:len(n.Children)-1] {
		names[i] = b.buildIdentifier(c)
	}
	mod := b.buildAnyIdentifier(n.Children[len(n.Children)-1])
	return ast.NewImport(n.Pos(), names, mod)
}

func (b *Builder) buildExport(n *parsetree.Node) *ast.Export {
	names := make([]*ast.Identifier, len(n.Children))
	for i, c := range n.Children {
		names[i] = b.buildIdentifier(c)
	}
	return ast.NewExport(n.Pos(), names)
}
