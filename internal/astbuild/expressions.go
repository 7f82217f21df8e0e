package astbuild

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/parsetree"
)

// buildExpression dispatches every Expression-producing grammar tag.
func (b *Builder) buildExpression(n *parsetree.Node) ast.Expression {
	if n == nil {
		return nil
	}
	switch n.Tag {
	case parsetree.TagInteger:
		return b.buildIntegral(n)
	case parsetree.TagHex:
		return b.buildHex(n)
	case parsetree.TagFloat:
		return b.buildFloatingPoint(n)
	case parsetree.TagString:
		return b.buildString(n)
	case parsetree.TagSymbol:
		return b.buildSymbol(n)
	case parsetree.TagBoolean:
		return b.buildBoolean(n)
	case parsetree.TagNothing:
		return b.buildNothing(n)
	case parsetree.TagIdentifier, parsetree.TagFullyQualified, parsetree.TagRelativeIdentifier:
		return b.buildAnyIdentifier(n)
	case parsetree.TagTernaryChain:
		return b.buildTernaryChain(n)
	case parsetree.TagTypecheckChain:
		return b.buildTypecheckChain(n)
	case parsetree.TagCastChain:
		return b.buildCastChain(n)
	case parsetree.TagBinaryChain:
		return b.buildBinaryChain(n)
	case parsetree.TagUnaryChain:
		return b.buildUnaryChain(n)
	case parsetree.TagMemberStep:
		return b.buildMemberStep(n)
	case parsetree.TagSubscriptStep:
		return b.buildSubscriptStep(n)
	case parsetree.TagCallStep:
		return b.buildCallStep(n, false)
	case parsetree.TagPredicateCallStep:
		return b.buildCallStep(n, true)
	case parsetree.TagArray:
		return b.buildArray(n)
	case parsetree.TagList:
		return b.buildList(n)
	case parsetree.TagTuple:
		return b.buildTuple(n)
	case parsetree.TagDictionary:
		return b.buildDictionary(n)
	case parsetree.TagSymbolList:
		return b.buildSymbolList(n)
	case parsetree.TagTypename, parsetree.TagVariantTypename, parsetree.TagOptionalTypename:
		return b.buildTypenameExpr(n)
	default:
		b.unimplemented(n)
		return ast.NewNothing(n.Pos())
	}
}
