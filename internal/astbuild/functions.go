package astbuild

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/parsetree"
	"github.com/rhea-lang/rhea/internal/token"
)

var functionKindByToken = map[token.Type]ast.FunctionKind{
	token.DEF:      ast.BasicFunction,
	token.QUESTION: ast.PredicateFunction,
	token.DOLLAR:   ast.OperatorFunction,
	token.BANG:     ast.UncheckedFunction,
}

func (b *Builder) buildArguments(n *parsetree.Node) *ast.Arguments {
	if n == nil {
		return nil
	}
	params := make([]*ast.TypePair, len(n.Children))
	for i, c := range n.Children {
		params[i] = b.buildTypePair(c)
	}
	return ast.NewArguments(n.Pos(), params)
}

var conditionKindByLiteral = map[string]ast.ConditionKind{
	"pre":  ast.PreCondition,
	"post": ast.PostCondition,
}

func (b *Builder) buildConditions(n *parsetree.Node) []*ast.Condition {
	if n == nil {
		return nil
	}
	conds := make([]*ast.Condition, len(n.Children))
	for i, c := range n.Children {
		kind := conditionKindByLiteral[c.Token.Literal]
		name := c.Children[0].Token.Literal
		pred := b.buildExpression(c.Children[1])
		conds[i] = ast.NewCondition(c.Pos(), kind, name, pred)
	}
	return conds
}

func (b *Builder) buildDef(n *parsetree.Node) *ast.Def {
	kind, ok := functionKindByToken[n.Token.Type]
	if !ok {
		kind = ast.BasicFunction
	}
	name := n.Children[0].Token.Literal
	args := b.buildArguments(n.Children[1])
	var ret *ast.Typename
	if n.Children[2] != nil {
		ret = b.buildTypename(n.Children[2])
	}
	conds := b.buildConditions(n.Children[3])
	body := b.buildBlock(n.Children[4])
	return ast.NewDef(n.Pos(), kind, name, args, ret, conds, body)
}

func (b *Builder) buildGenericDef(n *parsetree.Node) *ast.GenericDef {
	def := b.buildDef(n.Children[0])
	params := make([]ast.GenericMatch, len(n.Children)-1)
	for i, c := range n.Children[1:] {
		params[i] = b.buildGenericMatch(c)
	}
	return ast.NewGenericDef(n.Pos(), def, params)
}

func (b *Builder) buildGenericMatch(n *parsetree.Node) ast.GenericMatch {
	switch n.Tag {
	case parsetree.TagConceptMatch:
		return b.buildConceptMatch(n)
	case parsetree.TagTypePair:
		return b.buildTypePair(n)
	default:
		b.unimplemented(n)
		return ast.NewTypePair(n.Pos(), "", nil)
	}
}

func (b *Builder) buildExtern(n *parsetree.Node) *ast.Extern {
	kind, ok := functionKindByToken[n.Token.Type]
	if !ok {
		kind = ast.BasicFunction
	}
	name := n.Children[0].Token.Literal
	args := b.buildArguments(n.Children[1])
	var ret *ast.Typename
	if n.Children[2] != nil {
		ret = b.buildTypename(n.Children[2])
	}
	return ast.NewExtern(n.Pos(), kind, name, args, ret)
}

// buildCallStep builds a Call from a rotated [operand, argsNode] postfix
// step. predicate indicates the step carried a trailing `?`: when the
// operand is a Member, the member's object becomes the call's implicit
// first positional argument and the member's name becomes the target;
// otherwise the call passes through unchanged (a predicate call with no
// receiver just calls the bare name, per spec).
func (b *Builder) buildCallStep(n *parsetree.Node, predicate bool) ast.Expression {
	operand := b.buildExpression(n.Children[0])
	argsNode := n.Children[1]
	positional, named := b.buildCallArgs(argsNode)

	if predicate {
		if member, ok := operand.(*ast.Member); ok {
			if len(named) > 0 {
				b.errorf(n.Pos(), "predicate call cannot mix a receiver with named arguments")
				return ast.NewCall(n.Pos(), operand, positional, named)
			}
			target := member.MemberName
			positional = append([]ast.Expression{member.Object}, positional...)
			return ast.NewCall(n.Pos(), target, positional, nil)
		}
	}
	return ast.NewCall(n.Pos(), operand, positional, named)
}

func (b *Builder) buildCallArgs(n *parsetree.Node) ([]ast.Expression, []*ast.NamedArgument) {
	switch n.Tag {
	case parsetree.TagNamedArgs:
		named := make([]*ast.NamedArgument, len(n.Children))
		for i, c := range n.Children {
			named[i] = ast.NewNamedArgument(c.Pos(), c.Children[0].Token.Literal, b.buildExpression(c.Children[1]))
		}
		return nil, named
	default: // TagPositionalArgs
		positional := make([]ast.Expression, len(n.Children))
		for i, c := range n.Children {
			positional[i] = b.buildExpression(c)
		}
		return positional, nil
	}
}
