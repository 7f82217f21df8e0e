package parsetree

import "github.com/rhea-lang/rhea/internal/token"

// parseTypename parses a type reference: a name, optional `<...>` generic
// argument list, optional `[expr]` array dimension; or a `|A,B,C|` variant
// form, optionally followed by `?` to mark it optional.
func (p *Parser) parseTypename() *Node {
	if p.at(token.PIPE) {
		return p.parseVariantOrOptionalTypename()
	}
	if p.at(token.ASTERISK) {
		tok := p.cur
		p.advance()
		return NewLeaf(TagWildcard, tok)
	}

	name := p.parseAnyIdentifier()
	var generic *Node
	if p.at(token.LESS) {
		generic = p.parseGenericTypenameArgs()
	}
	var arrayPart *Node
	if p.at(token.LBRACK) {
		p.advance()
		arrayPart = p.parseExpression()
		p.expect(token.RBRACK)
	}
	return New(TagTypename, name, generic, arrayPart)
}

// parseGenericTypenameArgs parses `<T1, T2, ...>`. Closing `>>` produced by
// nested generics (`List<List<T>>`) lexes as a single SHR token; consumeCloseAngle
// splits it so the inner and outer closes each consume one `>`.
func (p *Parser) parseGenericTypenameArgs() *Node {
	pos := p.cur.Pos
	p.expect(token.LESS)
	var args []*Node
	args = append(args, p.parseTypename())
	for {
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
		args = append(args, p.parseTypename())
	}
	p.consumeCloseAngle()
	n := New(TagGenericTypeArgs, args...)
	n.Token = token.New(token.LESS, "<", pos)
	return n
}

// consumeCloseAngle closes a generic argument list. An ordinary '>' is
// consumed directly; a doubled '>>' (lexed as one SHR token because the
// lexer cannot see the parser's nesting depth) is split in place so each
// enclosing parseGenericTypenameArgs call consumes exactly one '>'.
func (p *Parser) consumeCloseAngle() {
	if _, ok := p.accept(token.GREATER); ok {
		return
	}
	if p.at(token.SHR) {
		tok := p.cur
		p.cur = token.New(token.GREATER, ">", token.Position{
			SourceName: tok.Pos.SourceName, Line: tok.Pos.Line,
			Column: tok.Pos.Column + 1, Offset: tok.Pos.Offset + 1,
		})
		return
	}
	p.errorf("expected '>', found %s %q", p.cur.Type, p.cur.Literal)
}

func (p *Parser) parseVariantOrOptionalTypename() *Node {
	pos := p.cur.Pos
	p.expect(token.PIPE)
	var alts []*Node
	alts = append(alts, p.parseTypename())
	for {
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
		alts = append(alts, p.parseTypename())
	}
	p.expect(token.PIPE)
	if _, ok := p.accept(token.QUESTION); ok {
		if len(alts) != 1 {
			p.errorf("optional typename takes exactly one inner type")
		}
		n := New(TagOptionalTypename, alts[0])
		n.Token = token.New(token.PIPE, "|", pos)
		return n
	}
	n := New(TagVariantTypename, alts...)
	n.Token = token.New(token.PIPE, "|", pos)
	return n
}

// parseTypePair parses `name: Type` or the wildcard form `name: *`.
func (p *Parser) parseTypePair() *Node {
	name := p.parseIdentifierLeaf()
	p.expect(token.COLON)
	typ := p.parseTypename()
	return New(TagTypePair, name, typ)
}
