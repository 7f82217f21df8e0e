package astbuild

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/parsetree"
)

// buildStatement dispatches every Statement-producing grammar tag: this
// covers both genuine statement forms reachable from parseStatement and the
// declaration forms parseTopLevel admits outside a statement body (Import,
// Export, Def/GenericDef/Extern, Structure/TypeDeclaration, Enum, Alias,
// ConceptDecl), since ast.Module/ast.Program hold a flat []Statement and
// all of those are Statement implementations.
func (b *Builder) buildStatement(n *parsetree.Node) ast.Statement {
	switch n.Tag {
	case parsetree.TagImport:
		return b.buildImport(n)
	case parsetree.TagExport:
		return b.buildExport(n)
	case parsetree.TagDef:
		return b.buildDef(n)
	case parsetree.TagGenericDef:
		return b.buildGenericDef(n)
	case parsetree.TagExtern:
		return b.buildExtern(n)
	case parsetree.TagStructure:
		return b.buildStructure(n)
	case parsetree.TagTypeDeclaration:
		return b.buildTypeDeclaration(n)
	case parsetree.TagEnum:
		return b.buildEnum(n)
	case parsetree.TagAlias:
		return b.buildAlias(n)
	case parsetree.TagConceptDecl:
		return b.buildConceptDecl(n)
	case parsetree.TagBlock:
		return b.buildBlock(n)
	case parsetree.TagBareExpression:
		return ast.NewBareExpression(n.Pos(), b.buildExpression(n.Children[0]))
	case parsetree.TagAssign:
		return ast.NewAssign(n.Pos(), b.buildExpression(n.Children[0]), b.buildExpression(n.Children[1]))
	case parsetree.TagCompoundAssign:
		return b.buildCompoundAssign(n)
	case parsetree.TagVariable:
		return ast.NewVariable(n.Pos(), b.buildAnyIdentifier(n.Children[0]), b.buildExpression(n.Children[1]))
	case parsetree.TagConstant:
		return ast.NewConstant(n.Pos(), b.buildAnyIdentifier(n.Children[0]), b.buildExpression(n.Children[1]))
	case parsetree.TagDo:
		return ast.NewDo(n.Pos(), b.buildExpression(n.Children[0]))
	case parsetree.TagIf:
		return b.buildIf(n)
	case parsetree.TagWhile:
		return ast.NewWhile(n.Pos(), b.buildExpression(n.Children[0]), b.buildStatement(n.Children[1]))
	case parsetree.TagFor:
		return b.buildFor(n)
	case parsetree.TagWith:
		return ast.NewWith(n.Pos(), b.buildExpression(n.Children[0]), b.buildStatement(n.Children[1]))
	case parsetree.TagBreak:
		return ast.NewBreak(n.Pos())
	case parsetree.TagContinue:
		return ast.NewContinue(n.Pos())
	case parsetree.TagMatch:
		return b.buildMatch(n)
	case parsetree.TagThrow:
		return b.buildThrow(n)
	case parsetree.TagTry:
		return b.buildTry(n)
	case parsetree.TagReturn:
		return b.buildReturn(n)
	default:
		b.unimplemented(n)
		return ast.NewBareExpression(n.Pos(), ast.NewNothing(n.Pos()))
	}
}

func (b *Builder) buildBlock(n *parsetree.Node) *ast.Block {
	stmts := make([]ast.Statement, len(n.Children))
	for i, c := range n.Children {
		stmts[i] = b.buildStatement(c)
	}
	return ast.NewBlock(n.Pos(), stmts)
}

func (b *Builder) buildTypeDeclaration(n *parsetree.Node) *ast.TypeDeclaration {
	lhs := b.buildAnyIdentifier(n.Children[0])
	rhs := b.buildTypename(n.Children[1])
	return ast.NewTypeDeclaration(n.Pos(), lhs, rhs)
}

func (b *Builder) buildCompoundAssign(n *parsetree.Node) *ast.CompoundAssign {
	op, ok := assignOpByToken[n.Token.Type]
	if !ok {
		b.errorf(n.Pos(), "unrecognized compound-assignment operator %q", n.Token.Literal)
	}
	lhs := b.buildExpression(n.Children[0])
	rhs := b.buildExpression(n.Children[1])
	return ast.NewCompoundAssign(n.Pos(), lhs, op, rhs)
}

// buildIf builds directly from the rotated [cond, then, else] shape; a
// lowered `unless C S` already arrives with Then == nil and S in the Else
// slot, which is exactly If's documented null-then-branch shape, so no
// special-casing is needed here.
func (b *Builder) buildIf(n *parsetree.Node) *ast.If {
	cond := b.buildExpression(n.Children[0])
	var then, els ast.Statement
	if n.Children[1] != nil {
		then = b.buildStatement(n.Children[1])
	}
	if n.Children[2] != nil {
		els = b.buildStatement(n.Children[2])
	}
	return ast.NewIf(n.Pos(), cond, then, els)
}

func (b *Builder) buildFor(n *parsetree.Node) *ast.For {
	v := b.buildIdentifier(n.Children[0])
	iter := b.buildExpression(n.Children[1])
	body := b.buildStatement(n.Children[2])
	return ast.NewFor(n.Pos(), v, iter, body)
}

func (b *Builder) buildMatch(n *parsetree.Node) *ast.Match {
	var subject ast.Expression
	if n.Children[0] != nil {
		subject = b.buildExpression(n.Children[0])
	}
	rest := n.Children[1:]
	var def *ast.Default
	if last := rest[len(rest)-1]; last != nil && last.Tag == parsetree.TagDefaultCase {
		def = ast.NewDefault(last.Pos(), b.buildStatement(last.Children[0]))
		rest = rest[:len(rest)-1]
	} else {
		rest = rest[:len(rest)-1]
	}
	cases := make([]ast.MatchCase, len(rest))
	for i, c := range rest {
		cases[i] = b.buildMatchCase(c)
	}
	return ast.NewMatch(n.Pos(), subject, cases, def)
}

func (b *Builder) buildMatchCase(n *parsetree.Node) ast.MatchCase {
	switch n.Tag {
	case parsetree.TagOnCase:
		return ast.NewOn(n.Pos(), b.buildExpression(n.Children[0]), b.buildStatement(n.Children[1]))
	case parsetree.TagWhenCase:
		return ast.NewWhen(n.Pos(), b.buildExpression(n.Children[0]), b.buildStatement(n.Children[1]))
	case parsetree.TagTypeCase:
		typ := b.buildTypename(n.Children[0])
		var bind *ast.Identifier
		if n.Children[1] != nil {
			bind = b.buildIdentifier(n.Children[1])
		}
		return ast.NewTypeCase(n.Pos(), typ, bind, b.buildStatement(n.Children[2]))
	default:
		b.unimplemented(n)
		return ast.NewOn(n.Pos(), ast.NewNothing(n.Pos()), ast.NewBlock(n.Pos(), nil))
	}
}

func (b *Builder) buildThrow(n *parsetree.Node) *ast.Throw {
	var val ast.Expression
	if n.Children[0] != nil {
		val = b.buildExpression(n.Children[0])
	}
	return ast.NewThrow(n.Pos(), val)
}

func (b *Builder) buildTry(n *parsetree.Node) *ast.Try {
	body := b.buildBlock(n.Children[0])
	rest := n.Children[1:]
	var fin *ast.Finally
	if last := rest[len(rest)-1]; last != nil && last.Tag == parsetree.TagFinally {
		fin = ast.NewFinally(last.Pos(), b.buildBlock(last.Children[0]))
		rest = rest[:len(rest)-1]
	} else {
		rest = rest[:len(rest)-1]
	}
	catches := make([]*ast.Catch, len(rest))
	for i, c := range rest {
		catches[i] = b.buildCatch(c)
	}
	return ast.NewTry(n.Pos(), body, catches, fin)
}

func (b *Builder) buildCatch(n *parsetree.Node) *ast.Catch {
	name := b.buildIdentifier(n.Children[0])
	typ := b.buildTypename(n.Children[1])
	body := b.buildBlock(n.Children[2])
	return ast.NewCatch(n.Pos(), name, typ, body)
}

func (b *Builder) buildReturn(n *parsetree.Node) *ast.Return {
	var val ast.Expression
	if n.Children[0] != nil {
		val = b.buildExpression(n.Children[0])
	}
	return ast.NewReturn(n.Pos(), val)
}
