package parsetree

import "github.com/rhea-lang/rhea/internal/token"

// compoundAssignTokens maps each compound-assignment punctuation to the
// token the statement node carries, so astbuild can read off the
// AssignOperator directly from the node's Token.
var compoundAssignTokens = map[token.Type]bool{
	token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true, token.TIMES_ASSIGN: true,
	token.DIVIDE_ASSIGN: true, token.PERCENT_ASSIGN: true, token.POWER_ASSIGN: true,
	token.SHL_ASSIGN: true, token.SHR_ASSIGN: true, token.AMP_ASSIGN: true,
	token.PIPE_ASSIGN: true,
}

func (p *Parser) parseStatement() *Node {
	switch p.cur.Type {
	case token.LBRACE:
		return p.parseBlock()
	case token.VAR:
		return p.parseVariable()
	case token.CONST:
		return p.parseConstant()
	case token.TYPE:
		return p.parseTypeDecl()
	case token.ENUM:
		return p.parseEnum()
	case token.ALIAS:
		return p.parseAlias()
	case token.DEF:
		return p.parseDefOrGenericDef()
	case token.EXTERN:
		return p.parseExtern()
	case token.CONCEPT:
		return p.parseConceptDecl()
	case token.DO:
		return p.parseDo()
	case token.IF:
		return p.parseIf()
	case token.UNLESS:
		return p.parseUnless()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.WITH:
		return p.parseWith()
	case token.BREAK:
		tok := p.cur
		p.advance()
		p.expect(token.SEMICOLON)
		return NewLeaf(TagBreak, tok)
	case token.CONTINUE:
		tok := p.cur
		p.advance()
		p.expect(token.SEMICOLON)
		return NewLeaf(TagContinue, tok)
	case token.MATCH:
		return p.parseMatch()
	case token.THROW:
		return p.parseThrow()
	case token.TRY:
		return p.parseTry()
	case token.RETURN:
		return p.parseReturn()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlock() *Node {
	pos := p.cur.Pos
	p.expect(token.LBRACE)
	var stmts []*Node
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(token.RBRACE)
	n := New(TagBlock, stmts...)
	n.Token = token.New(token.LBRACE, "{", pos)
	return n
}

// parseExpressionStatement handles a leading-expression statement: a bare
// expression, a plain assignment, or a compound assignment, distinguished
// by what follows the parsed expression.
func (p *Parser) parseExpressionStatement() *Node {
	pos := p.cur.Pos
	expr := p.parseExpression()
	switch {
	case p.at(token.ASSIGN):
		p.advance()
		rhs := p.parseExpression()
		p.expect(token.SEMICOLON)
		n := New(TagAssign, expr, rhs)
		n.Token = token.New(token.ASSIGN, "=", pos)
		return n
	case compoundAssignTokens[p.cur.Type]:
		opTok := p.cur
		p.advance()
		rhs := p.parseExpression()
		p.expect(token.SEMICOLON)
		n := New(TagCompoundAssign, expr, rhs)
		n.Token = opTok
		return n
	default:
		p.expect(token.SEMICOLON)
		n := New(TagBareExpression, expr)
		n.Token = token.New(token.SEMICOLON, ";", pos)
		return n
	}
}

func (p *Parser) parseVariable() *Node {
	pos := p.cur.Pos
	p.expect(token.VAR)
	name := p.parseIdentifierLeaf()
	p.expect(token.ASSIGN)
	val := p.parseExpression()
	p.expect(token.SEMICOLON)
	n := New(TagVariable, name, val)
	n.Token = token.New(token.VAR, "var", pos)
	return n
}

func (p *Parser) parseConstant() *Node {
	pos := p.cur.Pos
	p.expect(token.CONST)
	name := p.parseIdentifierLeaf()
	p.expect(token.ASSIGN)
	val := p.parseExpression()
	p.expect(token.SEMICOLON)
	n := New(TagConstant, name, val)
	n.Token = token.New(token.CONST, "const", pos)
	return n
}

// parseTypeDecl handles `type Name = {field: T, ...};` (produces a
// Structure declaration) and `type Name = T;` (produces a TypeDeclaration
// binding Name to typename T).
func (p *Parser) parseTypeDecl() *Node {
	pos := p.cur.Pos
	p.expect(token.TYPE)
	name := p.parseIdentifierLeaf()
	p.expect(token.ASSIGN)
	if p.at(token.LBRACE) {
		p.advance()
		var fields []*Node
		if !p.at(token.RBRACE) {
			fields = append(fields, p.parseTypePair())
			for {
				if _, ok := p.accept(token.COMMA); !ok {
					break
				}
				fields = append(fields, p.parseTypePair())
			}
		}
		p.expect(token.RBRACE)
		p.expect(token.SEMICOLON)
		children := append([]*Node{name}, fields...)
		n := New(TagStructure, children...)
		n.Token = token.New(token.TYPE, "type", pos)
		return n
	}
	typ := p.parseTypename()
	p.expect(token.SEMICOLON)
	n := New(TagTypeDeclaration, name, typ)
	n.Token = token.New(token.TYPE, "type", pos)
	return n
}

func (p *Parser) parseEnum() *Node {
	pos := p.cur.Pos
	p.expect(token.ENUM)
	name := p.parseIdentifierLeaf()
	p.expect(token.ASSIGN)
	p.expect(token.LBRACE)
	var syms []*Node
	if !p.at(token.RBRACE) {
		syms = append(syms, NewLeaf(TagSymbol, p.expect(token.SYMBOL)))
		for p.at(token.COMMA) {
			p.advance()
			syms = append(syms, NewLeaf(TagSymbol, p.expect(token.SYMBOL)))
		}
	}
	p.expect(token.RBRACE)
	p.expect(token.SEMICOLON)
	values := New(TagSymbolList, syms...)
	n := New(TagEnum, name, values)
	n.Token = token.New(token.ENUM, "enum", pos)
	return n
}

func (p *Parser) parseAlias() *Node {
	pos := p.cur.Pos
	p.expect(token.ALIAS)
	name := p.parseIdentifierLeaf()
	p.expect(token.ASSIGN)
	orig := p.parseAnyIdentifier()
	p.expect(token.SEMICOLON)
	n := New(TagAlias, name, orig)
	n.Token = token.New(token.ALIAS, "alias", pos)
	return n
}

func (p *Parser) parseDo() *Node {
	pos := p.cur.Pos
	p.expect(token.DO)
	expr := p.parseExpression()
	p.expect(token.SEMICOLON)
	n := New(TagDo, expr)
	n.Token = token.New(token.DO, "do", pos)
	return n
}

func (p *Parser) parseIf() *Node {
	pos := p.cur.Pos
	p.expect(token.IF)
	cond := p.parseExpression()
	then := p.parseThenBody()
	elseBody := p.parseOptionalElse()
	n := New(TagIf, cond, then, elseBody)
	n.Token = token.New(token.IF, "if", pos)
	return n
}

// parseUnless lowers directly to an If with a nil then-branch, per spec:
// `unless C S` means `If(C, null, S)`. No distinct AST node exists for it.
func (p *Parser) parseUnless() *Node {
	pos := p.cur.Pos
	p.expect(token.UNLESS)
	cond := p.parseExpression()
	body := p.parseThenBody()
	n := New(TagIf, cond, nil, body)
	n.Token = token.New(token.IF, "if", pos)
	return n
}

// parseThenBody parses the statement governed by `if`/`unless`/`while`:
// `then <stmt>` if the THEN keyword is present, otherwise a bare statement
// (covers `if x do foo;` per spec.md §8 scenario 3).
func (p *Parser) parseThenBody() *Node {
	if _, ok := p.accept(token.THEN); ok {
		return p.parseStatement()
	}
	return p.parseStatement()
}

// parseOptionalElse parses the grammar's `[else stmt]` slot, which always
// produces a node for elseRearrange (an ElseMarker wrapper, or an Empty
// leaf when absent) so elseRearrange
// can apply the same absent/present collapse rule the grammar design uses
// for every optional single-child slot.
func (p *Parser) parseOptionalElse() *Node {
	if tok, ok := p.accept(token.ELSE); ok {
		marker := New(TagElseMarker, p.parseStatement())
		marker.Token = tok
		return elseRearrange(marker)
	}
	return elseRearrange(NewLeaf(TagEmpty, p.cur))
}

func (p *Parser) parseWhile() *Node {
	pos := p.cur.Pos
	p.expect(token.WHILE)
	cond := p.parseExpression()
	body := p.parseThenBody()
	n := New(TagWhile, cond, body)
	n.Token = token.New(token.WHILE, "while", pos)
	return n
}

func (p *Parser) parseFor() *Node {
	pos := p.cur.Pos
	p.expect(token.FOR)
	id := p.parseIdentifierLeaf()
	p.expect(token.IN)
	iter := p.parseExpression()
	body := p.parseThenBody()
	n := New(TagFor, id, iter, body)
	n.Token = token.New(token.FOR, "for", pos)
	return n
}

// parseWith handles the statement-level `with predicateCall { body }` form.
// (Def's `with { conditions }` contract block is parsed separately by
// parseConditionsBlock, which the Def header parser calls when it meets
// WITH inside the header; a WITH at statement position always comes here.)
func (p *Parser) parseWith() *Node {
	pos := p.cur.Pos
	p.expect(token.WITH)
	pred := p.parseExpression()
	body := p.parseThenBody()
	n := New(TagWith, pred, body)
	n.Token = token.New(token.WITH, "with", pos)
	return n
}

func (p *Parser) parseMatch() *Node {
	pos := p.cur.Pos
	p.expect(token.MATCH)
	var subject *Node
	if !p.at(token.LBRACE) {
		subject = p.parseExpression()
	}
	p.expect(token.LBRACE)
	var cases []*Node
	var def *Node
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		switch p.cur.Type {
		case token.ON:
			cases = append(cases, p.parseOnCase())
		case token.WHEN:
			cases = append(cases, p.parseWhenCase())
		case token.CASE:
			cases = append(cases, p.parseTypeCase())
		case token.DEFAULT:
			def = p.parseDefaultCase()
		default:
			p.errorf("expected match case, found %s %q", p.cur.Type, p.cur.Literal)
			p.advance()
		}
	}
	p.expect(token.RBRACE)
	children := []*Node{subject}
	children = append(children, cases...)
	children = append(children, def)
	n := New(TagMatch, children...)
	n.Token = token.New(token.MATCH, "match", pos)
	return n
}

func (p *Parser) parseOnCase() *Node {
	pos := p.cur.Pos
	p.expect(token.ON)
	val := p.parseExpression()
	body := p.parseBlock()
	n := New(TagOnCase, val, body)
	n.Token = token.New(token.ON, "on", pos)
	return n
}

func (p *Parser) parseWhenCase() *Node {
	pos := p.cur.Pos
	p.expect(token.WHEN)
	pred := p.parseExpression()
	body := p.parseBlock()
	n := New(TagWhenCase, pred, body)
	n.Token = token.New(token.WHEN, "when", pos)
	return n
}

func (p *Parser) parseTypeCase() *Node {
	pos := p.cur.Pos
	p.expect(token.CASE)
	typ := p.parseTypename()
	var bind *Node
	if _, ok := p.accept(token.AS); ok {
		bind = p.parseIdentifierLeaf()
	}
	body := p.parseBlock()
	n := New(TagTypeCase, typ, bind, body)
	n.Token = token.New(token.CASE, "case", pos)
	return n
}

func (p *Parser) parseDefaultCase() *Node {
	pos := p.cur.Pos
	p.expect(token.DEFAULT)
	body := p.parseBlock()
	n := New(TagDefaultCase, body)
	n.Token = token.New(token.DEFAULT, "default", pos)
	return n
}

func (p *Parser) parseThrow() *Node {
	pos := p.cur.Pos
	p.expect(token.THROW)
	var val *Node
	if !p.at(token.SEMICOLON) {
		val = p.parseExpression()
	}
	p.expect(token.SEMICOLON)
	n := New(TagThrow, val)
	n.Token = token.New(token.THROW, "throw", pos)
	return n
}

func (p *Parser) parseTry() *Node {
	pos := p.cur.Pos
	p.expect(token.TRY)
	body := p.parseBlock()
	var catches []*Node
	for p.at(token.CATCH) {
		catches = append(catches, p.parseCatch())
	}
	var finally *Node
	if p.at(token.FINALLY) {
		fpos := p.cur.Pos
		p.advance()
		fbody := p.parseBlock()
		finally = New(TagFinally, fbody)
		finally.Token = token.New(token.FINALLY, "finally", fpos)
	}
	children := append([]*Node{body}, catches...)
	children = append(children, finally)
	n := New(TagTry, children...)
	n.Token = token.New(token.TRY, "try", pos)
	return n
}

func (p *Parser) parseCatch() *Node {
	pos := p.cur.Pos
	p.expect(token.CATCH)
	p.expect(token.LPAREN)
	name := p.parseIdentifierLeaf()
	p.expect(token.COLON)
	typ := p.parseTypename()
	p.expect(token.RPAREN)
	body := p.parseBlock()
	n := New(TagCatch, name, typ, body)
	n.Token = token.New(token.CATCH, "catch", pos)
	return n
}

func (p *Parser) parseReturn() *Node {
	pos := p.cur.Pos
	p.expect(token.RETURN)
	var val *Node
	if !p.at(token.SEMICOLON) {
		val = p.parseExpression()
	}
	p.expect(token.SEMICOLON)
	n := New(TagReturn, val)
	n.Token = token.New(token.RETURN, "return", pos)
	return n
}
