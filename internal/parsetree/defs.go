package parsetree

import (
	"github.com/rhea-lang/rhea/internal/lexer"
	"github.com/rhea-lang/rhea/internal/token"
)

// parserMark is a full backtracking checkpoint: lexer position plus the
// two-token lookahead buffer plus the error list length, so a speculative
// parse attempt can be undone without leaking partial diagnostics.
type parserMark struct {
	lex  lexer.State
	cur  token.Token
	peek token.Token
	errN int
}

func (p *Parser) mark() parserMark {
	return parserMark{lex: p.lex.Save(), cur: p.cur, peek: p.peek, errN: len(p.errs)}
}

func (p *Parser) reset(m parserMark) {
	p.lex.Restore(m.lex)
	p.cur, p.peek = m.cur, m.peek
	p.errs = p.errs[:m.errN]
}

// parseDefOrGenericDef parses a function header and body: `def` name,
// kind suffix, then any order/subset of `<generics>`, `[ReturnType]`,
// `with {conditions}`, `{args}`, terminated by the mandatory `{body}`.
// The args-block and the body are both brace-delimited and indistinguishable
// by a fixed token position, so the args attempt backtracks on failure.
func (p *Parser) parseDefOrGenericDef() *Node {
	pos := p.cur.Pos
	p.expect(token.DEF)
	name := p.parseIdentifierLeaf()
	kindTok := p.parseKindSuffix()

	var generics, args, ret, conds *Node
	for {
		switch p.cur.Type {
		case token.LESS:
			if generics != nil {
				p.errorf("duplicate generic parameter list")
			}
			generics = p.parseGenericParams()
		case token.LBRACK:
			if ret != nil {
				p.errorf("duplicate return type clause")
			}
			p.advance()
			ret = p.parseTypename()
			p.expect(token.RBRACK)
		case token.WITH:
			if kindTok.Type == token.BANG {
				p.errorf("unchecked function cannot declare a contract block")
			}
			if conds != nil {
				p.errorf("duplicate contract block")
			}
			conds = p.parseConditionsBlock()
		case token.LBRACE:
			if args != nil {
				goto done
			}
			if attempt := p.tryParseArgumentsBlock(); attempt != nil {
				args = attempt
				continue
			}
			goto done
		default:
			goto done
		}
	}
done:
	body := p.parseBlock()

	defNode := New(TagDef, name, args, ret, conds, body)
	defNode.Token = kindTok

	if generics == nil {
		return defNode
	}
	children := append([]*Node{defNode}, generics.Children...)
	n := New(TagGenericDef, children...)
	n.Token = token.New(token.DEF, "def", pos)
	return n
}

// parseKindSuffix reads the optional one-character suffix that distinguishes
// a basic/predicate/operator/unchecked function, returning a token whose
// Type callers switch on (QUESTION/DOLLAR/BANG, or DEF itself for basic).
func (p *Parser) parseKindSuffix() token.Token {
	switch p.cur.Type {
	case token.QUESTION, token.DOLLAR, token.BANG:
		tok := p.cur
		p.advance()
		return tok
	default:
		return token.New(token.DEF, "def", p.cur.Pos)
	}
}

func (p *Parser) tryParseArgumentsBlock() *Node {
	m := p.mark()
	n := p.parseArgumentsBlock()
	if len(p.errs) > m.errN {
		p.reset(m)
		return nil
	}
	return n
}

func (p *Parser) parseArgumentsBlock() *Node {
	pos := p.cur.Pos
	p.expect(token.LBRACE)
	var params []*Node
	if !p.at(token.RBRACE) {
		params = append(params, p.parseArgEntry())
		for {
			if _, ok := p.accept(token.COMMA); !ok {
				break
			}
			params = append(params, p.parseArgEntry())
		}
	}
	p.expect(token.RBRACE)
	n := New(TagArguments, params...)
	n.Token = token.New(token.LBRACE, "{", pos)
	return n
}

func (p *Parser) parseArgEntry() *Node {
	name := p.parseIdentifierLeaf()
	p.expect(token.COLON)
	if tok, ok := p.accept(token.ASTERISK); ok {
		return New(TagTypePair, name, NewLeaf(TagWildcard, tok))
	}
	typ := p.parseTypename()
	return New(TagTypePair, name, typ)
}

// parseConditionsBlock parses a Def's `with { ... }` contract block: zero or
// more `pre name: expr;` / `post name: expr;` entries. spec.md leaves the
// precise contract-block grammar and checking semantics unspecified (an
// acknowledged open question); astbuild keeps these nodes but the inference
// engine does not evaluate them (see DESIGN.md).
func (p *Parser) parseConditionsBlock() *Node {
	pos := p.cur.Pos
	p.expect(token.WITH)
	p.expect(token.LBRACE)
	var conds []*Node
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		conds = append(conds, p.parseOneCondition())
	}
	p.expect(token.RBRACE)
	n := New(TagConditions, conds...)
	n.Token = token.New(token.WITH, "with", pos)
	return n
}

func (p *Parser) parseOneCondition() *Node {
	kindTok := p.cur
	switch {
	case p.cur.Type == token.IDENT && p.cur.Literal == "pre":
		p.advance()
	case p.cur.Type == token.IDENT && p.cur.Literal == "post":
		p.advance()
	default:
		p.errorf("expected 'pre' or 'post' in contract block, found %q", p.cur.Literal)
		p.advance()
	}
	name := p.parseIdentifierLeaf()
	p.expect(token.COLON)
	pred := p.parseExpression()
	p.expect(token.SEMICOLON)
	n := New(TagCondition, name, pred)
	n.Token = kindTok
	return n
}

func (p *Parser) parseGenericParams() *Node {
	pos := p.cur.Pos
	p.expect(token.LESS)
	var params []*Node
	params = append(params, p.parseGenericParamEntry())
	for {
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
		params = append(params, p.parseGenericParamEntry())
	}
	p.consumeCloseAngle()
	n := New(TagGenericParams, params...)
	n.Token = token.New(token.LESS, "<", pos)
	return n
}

func (p *Parser) parseGenericParamEntry() *Node {
	name := p.parseIdentifierLeaf()
	if _, ok := p.accept(token.TILDE_GT); ok {
		concept := p.parseTypename()
		return New(TagConceptMatch, name, concept)
	}
	p.expect(token.COLON)
	typ := p.parseTypename()
	return New(TagTypePair, name, typ)
}

// parseExtern parses an FFI function header with no body: `extern` name,
// optional kind suffix, optional `[ReturnType]`, optional `{args}`.
func (p *Parser) parseExtern() *Node {
	p.expect(token.EXTERN)
	name := p.parseIdentifierLeaf()
	kindTok := p.parseKindSuffix()

	var ret, args *Node
	for {
		switch p.cur.Type {
		case token.LBRACK:
			p.advance()
			ret = p.parseTypename()
			p.expect(token.RBRACK)
		case token.LBRACE:
			args = p.parseArgumentsBlock()
		default:
			goto done
		}
	}
done:
	p.expect(token.SEMICOLON)
	n := New(TagExtern, name, args, ret)
	n.Token = kindTok
	return n
}

// parseConceptDecl parses a named structural constraint: a set of
// member-existence and function-existence checks against a type referenced
// by name inside the checks themselves (there is no separate generic
// parameter list — a concept has no shape of its own besides its checks).
// spec.md names the ConceptMatch/MemberCheck/FunctionCheck node shapes
// without giving a concrete top-level declaration grammar; this is this
// implementation's concrete surface syntax for hosting them (see
// DESIGN.md).
func (p *Parser) parseConceptDecl() *Node {
	pos := p.cur.Pos
	p.expect(token.CONCEPT)
	name := p.parseIdentifierLeaf()
	p.expect(token.LBRACE)
	var checks []*Node
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		if check := discardSubtree(p.parseConceptCheck()); check != nil {
			checks = append(checks, check)
		}
	}
	p.expect(token.RBRACE)
	p.expect(token.SEMICOLON)

	children := append([]*Node{name}, checks...)
	n := New(TagConceptDecl, children...)
	n.Token = token.New(token.CONCEPT, "concept", pos)
	return n
}

func (p *Parser) parseConceptCheck() *Node {
	typ := p.parseTypename()
	switch p.cur.Type {
	case token.DOT_EQ:
		p.advance()
		member := p.parseIdentifierLeaf()
		p.expect(token.SEMICOLON)
		return New(TagMemberCheck, typ, member)
	case token.FAT_ARROW:
		p.advance()
		funcName := p.parseIdentifierLeaf()
		var argType *Node
		if _, ok := p.accept(token.LESS); ok {
			argType = p.parseTypename()
			p.consumeCloseAngle()
		}
		p.expect(token.ARROW)
		retType := p.parseTypename()
		p.expect(token.SEMICOLON)
		return New(TagFunctionCheck, typ, funcName, argType, retType)
	default:
		p.errorf("expected '.=' or '=>' in concept check, found %s %q", p.cur.Type, p.cur.Literal)
		tok := p.cur
		p.advance()
		return NewLeaf(TagEmpty, tok)
	}
}
