package parsetree

import (
	"fmt"

	"github.com/rhea-lang/rhea/internal/compilerrors"
	"github.com/rhea-lang/rhea/internal/lexer"
	"github.com/rhea-lang/rhea/internal/token"
)

// builtinTypeNames are admitted as identifiers in type contexts per spec.md
// §4.3 ("Builtin type keywords are admitted where identifiers are admitted
// in type contexts"). They are ordinary identifiers lexically (IDENT). The
// set is consulted only by parseIdentifierLeaf, whose builtin branch
// accepts the same IDENT tokens as its ordinary path.
var builtinTypeNames = map[string]bool{
	"integer": true, "byte": true, "long": true, "uinteger": true,
	"ubyte": true, "ulong": true, "float": true, "double": true,
	"boolean": true, "string": true, "symbol": true, "any": true,
}

// Parser recognizes one compilation unit's token stream and builds its raw
// parse tree. It does not backtrack across statement boundaries: a parse
// error is recorded and parsing continues from the token where it failed,
// with no separate resynchronization step, so a single unit can report more
// than one error, but per spec.md §4.1 the unit as a whole is still reported as failed whenever
// errs is non-empty.
type Parser struct {
	lex        *lexer.Lexer
	source     string
	sourceName string

	cur  token.Token
	peek token.Token

	errs []error
}

// New constructs a Parser reading source, tagging diagnostics with
// sourceName.
func New(source, sourceName string) *Parser {
	l := lexer.New(source, lexer.WithSourceName(sourceName))
	p := &Parser{lex: l, source: source, sourceName: sourceName}
	p.advance()
	p.advance()
	return p
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []error { return p.errs }

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) at(t token.Type) bool     { return p.cur.Type == t }
func (p *Parser) peekAt(t token.Type) bool { return p.peek.Type == t }

func (p *Parser) accept(t token.Type) (token.Token, bool) {
	if p.cur.Type == t {
		tok := p.cur
		p.advance()
		return tok, true
	}
	return token.Token{}, false
}

func (p *Parser) expect(t token.Type) token.Token {
	tok, ok := p.accept(t)
	if !ok {
		p.errorf("expected %s, found %s %q", t, p.cur.Type, p.cur.Literal)
		return p.cur
	}
	return tok
}

func (p *Parser) errorf(format string, args ...any) {
	p.errs = append(p.errs, compilerrors.NewParseError(p.cur.Pos, p.source, fmt.Sprintf(format, args...)))
}

// ParseUnit parses an entire compilation unit: a Program (no module header)
// or a Module (leading `module X;` header). Parsing continues best-effort
// past statement-level errors so ParseUnit always returns a tree; callers
// must still check Errors().
func ParseUnit(source, sourceName string) (*Node, []error) {
	p := New(source, sourceName)
	root := p.parseUnit()
	return root, p.errs
}

// parseUnit recognizes the two top-level unit shapes: a script-style
// Program (no header, `use` clauses not admitted) or a Module (leading
// `module X;` header, optionally followed by `use` clauses). `use` is only
// meaningful relative to a named module, so it is only attempted once a
// header has been seen.
func (p *Parser) parseUnit() *Node {
	if !p.at(token.MODULE) {
		var decls []*Node
		for !p.at(token.EOF) {
			decls = append(decls, p.parseTopLevel())
		}
		return New(TagProgram, decls...)
	}

	header := p.parseModuleDef()
	var uses []*Node
	for p.at(token.USE) {
		uses = append(uses, p.parseUse())
	}
	var decls []*Node
	for !p.at(token.EOF) {
		decls = append(decls, p.parseTopLevel())
	}
	children := append([]*Node{header}, uses...)
	children = append(children, decls...)
	return New(TagModule, children...)
}

func (p *Parser) parseModuleDef() *Node {
	pos := p.cur.Pos
	p.expect(token.MODULE)
	name := p.parseAnyIdentifier()
	p.expect(token.SEMICOLON)
	n := New(TagModuleDef, name)
	n.Token = token.New(token.MODULE, "module", pos)
	return n
}

func (p *Parser) parseUse() *Node {
	pos := p.cur.Pos
	p.expect(token.USE)
	mod := p.parseAnyIdentifier()
	p.expect(token.SEMICOLON)
	n := New(TagUse, mod)
	n.Token = token.New(token.USE, "use", pos)
	return n
}

func (p *Parser) parseTopLevel() *Node {
	switch p.cur.Type {
	case token.IMPORT:
		return p.parseImport()
	case token.EXPORT:
		return p.parseExport()
	case token.DEF:
		return p.parseDefOrGenericDef()
	case token.EXTERN:
		return p.parseExtern()
	case token.TYPE:
		return p.parseTypeDecl()
	case token.ENUM:
		return p.parseEnum()
	case token.ALIAS:
		return p.parseAlias()
	case token.CONCEPT:
		return p.parseConceptDecl()
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseImport() *Node {
	pos := p.cur.Pos
	p.expect(token.IMPORT)
	p.expect(token.LBRACE)
	var names []*Node
	if !p.at(token.RBRACE) {
		names = append(names, p.parseIdentifierLeaf())
		for {
			if _, ok := p.accept(token.COMMA); !ok {
				break
			}
			names = append(names, p.parseIdentifierLeaf())
		}
	}
	p.expect(token.RBRACE)
	p.expect(token.FROM)
	mod := p.parseAnyIdentifier()
	p.expect(token.SEMICOLON)
	children := append(names, mod)
	n := New(TagImport, children...)
	n.Token = token.New(token.IMPORT, "import", pos)
	return n
}

func (p *Parser) parseExport() *Node {
	pos := p.cur.Pos
	p.expect(token.EXPORT)
	p.expect(token.LBRACE)
	var names []*Node
	if !p.at(token.RBRACE) {
		names = append(names, p.parseIdentifierLeaf())
		for {
			if _, ok := p.accept(token.COMMA); !ok {
				break
			}
			names = append(names, p.parseIdentifierLeaf())
		}
	}
	p.expect(token.RBRACE)
	p.expect(token.SEMICOLON)
	n := New(TagExport, names...)
	n.Token = token.New(token.EXPORT, "export", pos)
	return n
}

// parseAnyIdentifier parses a simple, fully-qualified (`a:b:c`), or
// relative (`:a:b`) identifier form.
func (p *Parser) parseAnyIdentifier() *Node {
	pos := p.cur.Pos
	if _, ok := p.accept(token.QUALIFIED_SEP); ok {
		inner := p.parseAnyIdentifier()
		n := New(TagRelativeIdentifier, inner)
		n.Token = token.New(token.QUALIFIED_SEP, ":", pos)
		return n
	}
	first := p.parseIdentifierLeaf()
	if !p.at(token.QUALIFIED_SEP) {
		return first
	}
	segs := []*Node{first}
	for {
		if _, ok := p.accept(token.QUALIFIED_SEP); !ok {
			break
		}
		segs = append(segs, p.parseIdentifierLeaf())
	}
	return New(TagFullyQualified, segs...)
}

func (p *Parser) parseIdentifierLeaf() *Node {
	tok := p.cur
	if builtinTypeNames[tok.Literal] && tok.Type == token.IDENT {
		p.advance()
		return NewLeaf(TagIdentifier, tok)
	}
	if tok.Type != token.IDENT {
		p.errorf("expected identifier, found %s %q", tok.Type, tok.Literal)
		p.advance()
		return NewLeaf(TagIdentifier, tok)
	}
	p.advance()
	return NewLeaf(TagIdentifier, tok)
}
