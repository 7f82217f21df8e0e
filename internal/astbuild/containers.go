package astbuild

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/compilerrors"
	"github.com/rhea-lang/rhea/internal/parsetree"
)

func (b *Builder) buildElements(n *parsetree.Node) []ast.Expression {
	elems := make([]ast.Expression, len(n.Children))
	for i, c := range n.Children {
		elems[i] = b.buildExpression(c)
	}
	return elems
}

func (b *Builder) buildArray(n *parsetree.Node) *ast.Array {
	return ast.NewArray(n.Pos(), b.buildElements(n))
}

func (b *Builder) buildList(n *parsetree.Node) *ast.List {
	return ast.NewList(n.Pos(), b.buildElements(n))
}

func (b *Builder) buildTuple(n *parsetree.Node) *ast.Tuple {
	return ast.NewTuple(n.Pos(), b.buildElements(n))
}

// buildDictionary rejects any key that isn't an integral, string, or symbol
// literal: the grammar admits an arbitrary expression there so it can still
// build a tree to report the error against.
func (b *Builder) buildDictionary(n *parsetree.Node) *ast.Dictionary {
	entries := make([]*ast.DictionaryEntry, len(n.Children))
	for i, c := range n.Children {
		key := b.buildExpression(c.Children[0])
		switch key.(type) {
		case *ast.Integral, *ast.String, *ast.Symbol:
		default:
			b.errs = append(b.errs, compilerrors.NewSyntaxError(c.Pos(), b.source,
				"dictionary key must be an integer, string, or symbol literal"))
		}
		val := b.buildExpression(c.Children[1])
		entries[i] = ast.NewDictionaryEntry(c.Pos(), key, val)
	}
	return ast.NewDictionary(n.Pos(), entries)
}

func (b *Builder) buildStructure(n *parsetree.Node) *ast.Structure {
	name := b.buildIdentifier(n.Children[0])
	fields := make([]*ast.TypePair, len(n.Children)-1)
	for i, c := range n.Children[1:] {
		fields[i] = b.buildTypePair(c)
	}
	return ast.NewStructure(n.Pos(), name, fields)
}

func (b *Builder) buildSymbolList(n *parsetree.Node) *ast.SymbolList {
	syms := make([]*ast.Symbol, len(n.Children))
	for i, c := range n.Children {
		syms[i] = b.buildSymbol(c)
	}
	return ast.NewSymbolList(n.Pos(), syms)
}

func (b *Builder) buildEnum(n *parsetree.Node) *ast.Enum {
	name := b.buildIdentifier(n.Children[0])
	values := b.buildSymbolList(n.Children[1])
	return ast.NewEnum(n.Pos(), name, values)
}

func (b *Builder) buildAlias(n *parsetree.Node) *ast.Alias {
	name := b.buildIdentifier(n.Children[0])
	orig := b.buildAnyIdentifier(n.Children[1])
	return ast.NewAlias(n.Pos(), name, orig)
}
