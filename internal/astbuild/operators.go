package astbuild

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/parsetree"
	"github.com/rhea-lang/rhea/internal/token"
)

var binaryOpByToken = map[token.Type]ast.BinaryOperator{
	token.PLUS:       ast.Add,
	token.MINUS:      ast.Subtract,
	token.ASTERISK:   ast.Multiply,
	token.SLASH:      ast.Divide,
	token.PERCENT:    ast.Modulus,
	token.POWER:      ast.Exponent,
	token.SHL:        ast.LeftShift,
	token.SHR:        ast.RightShift,
	token.EQ_EQ:      ast.Equals,
	token.NOT_EQ:     ast.NotEqual,
	token.LESS:       ast.LessThan,
	token.GREATER:    ast.GreaterThan,
	token.LESS_EQ:    ast.LessThanOrEqual,
	token.GREATER_EQ: ast.GreaterThanOrEqual,
	token.AMP:        ast.BitAnd,
	token.PIPE:       ast.BitOr,
	token.XOR:        ast.BitXor,
	token.AND:        ast.BooleanAnd,
	token.OR:         ast.BooleanOr,
}

// unaryOpByToken maps each unary-prefix token to its operator kind. CARET
// (`^`) is the coercion operator: it marks an expression as an explicit
// widening/narrowing conversion rather than one the inference engine infers
// automatically (see internal/types' Promoted marker type).
var unaryOpByToken = map[token.Type]ast.UnaryOperator{
	token.PLUS:     ast.UnaryPlus,
	token.MINUS:    ast.UnaryMinus,
	token.NOT:      ast.BooleanNot,
	token.TILDE:    ast.BitNot,
	token.CARET:    ast.Coerce,
	token.ASTERISK: ast.Dereference,
	token.REF:      ast.Ref,
	token.PTR:      ast.Ptr,
}

var assignOpByToken = map[token.Type]ast.AssignOperator{
	token.PLUS_ASSIGN:    ast.AssignAdd,
	token.MINUS_ASSIGN:   ast.AssignSubtract,
	token.TIMES_ASSIGN:   ast.AssignMultiply,
	token.DIVIDE_ASSIGN:  ast.AssignDivide,
	token.PERCENT_ASSIGN: ast.AssignModulus,
	token.POWER_ASSIGN:   ast.AssignExponent,
	token.SHL_ASSIGN:     ast.AssignLeftShift,
	token.SHR_ASSIGN:     ast.AssignRightShift,
	token.AMP_ASSIGN:     ast.AssignBitAnd,
	token.PIPE_ASSIGN:    ast.AssignBitOr,
}

func (b *Builder) buildBinaryChain(n *parsetree.Node) ast.Expression {
	opTok := n.Children[0].Token
	op, ok := binaryOpByToken[opTok.Type]
	if !ok {
		b.errorf(n.Pos(), "unrecognized binary operator %q", opTok.Literal)
	}
	left := b.buildExpression(n.Children[1])
	right := b.buildExpression(n.Children[2])
	return ast.NewBinaryOp(n.Pos(), op, left, right)
}

func (b *Builder) buildUnaryChain(n *parsetree.Node) ast.Expression {
	opTok := n.Children[0].Token
	op, ok := unaryOpByToken[opTok.Type]
	if !ok {
		b.errorf(n.Pos(), "unrecognized unary operator %q", opTok.Literal)
	}
	operand := b.buildExpression(n.Children[1])
	return ast.NewUnaryOp(n.Pos(), op, operand)
}

func (b *Builder) buildTernaryChain(n *parsetree.Node) ast.Expression {
	cond := b.buildExpression(n.Children[0])
	t := b.buildExpression(n.Children[1])
	f := b.buildExpression(n.Children[2])
	return ast.NewTernaryOp(n.Pos(), cond, t, f)
}

func (b *Builder) buildCastChain(n *parsetree.Node) ast.Expression {
	left := b.buildExpression(n.Children[0])
	typ := b.buildTypename(n.Children[1])
	return ast.NewCast(n.Pos(), left, typ)
}

func (b *Builder) buildTypecheckChain(n *parsetree.Node) ast.Expression {
	left := b.buildExpression(n.Children[0])
	typ := b.buildTypename(n.Children[1])
	return ast.NewTypeCheck(n.Pos(), left, typ)
}

// buildMemberStep builds the Member expression for a `.name` postfix step
// already rotated onto [operand, name] by postfixRearrange.
func (b *Builder) buildMemberStep(n *parsetree.Node) *ast.Member {
	object := b.buildExpression(n.Children[0])
	name := b.buildIdentifier(n.Children[1])
	return ast.NewMember(n.Pos(), name, object)
}

func (b *Builder) buildSubscriptStep(n *parsetree.Node) ast.Expression {
	container := b.buildExpression(n.Children[0])
	index := b.buildExpression(n.Children[1])
	return ast.NewSubscript(n.Pos(), container, index)
}
