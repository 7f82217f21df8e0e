// Package compilerrors defines Rhea's error taxonomy: the distinct kinds a
// front-end/mid-end pass can raise, each carrying the source position that
// caused it. Formatting follows the caret-pointer style used throughout the
// compiler's diagnostics.
package compilerrors

import (
	"fmt"
	"strings"

	"github.com/rhea-lang/rhea/internal/token"
	"github.com/rhea-lang/rhea/internal/types"
)

// located is embedded by every error kind below; it carries the position
// and (optionally) the source text needed to render a caret pointer, and
// implements the shared Format/Error machinery.
type located struct {
	Pos    token.Position
	Source string
}

func (l located) header() string {
	if l.Pos.SourceName != "" {
		return fmt.Sprintf("%s:%d:%d", l.Pos.SourceName, l.Pos.Line, l.Pos.Column)
	}
	return fmt.Sprintf("%d:%d", l.Pos.Line, l.Pos.Column)
}

// format renders message below a caret pointing at l.Pos within l.Source,
// when source text is available; otherwise it renders just the header and
// message. If color is true, ANSI codes highlight the caret and message.
func (l located) format(message string, color bool) string {
	var sb strings.Builder
	sb.WriteString(l.header())
	sb.WriteString(": ")
	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(message)
	if color {
		sb.WriteString("\033[0m")
	}

	line := l.sourceLine()
	if line == "" {
		return sb.String()
	}

	sb.WriteString("\n")
	lineNumStr := fmt.Sprintf("%4d | ", l.Pos.Line)
	sb.WriteString(lineNumStr)
	sb.WriteString(line)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(lineNumStr)+l.Pos.Column-1))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("^")
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (l located) sourceLine() string {
	if l.Source == "" || l.Pos.Line < 1 {
		return ""
	}
	lines := strings.Split(l.Source, "\n")
	if l.Pos.Line > len(lines) {
		return ""
	}
	return lines[l.Pos.Line-1]
}

// ParseError reports that the hand-written grammar scanner could not
// produce a parse tree at Pos: an unexpected token, a missing terminator,
// or a lookahead that matched no production.
type ParseError struct {
	located
	Message string
}

func NewParseError(pos token.Position, source, message string) *ParseError {
	return &ParseError{located: located{Pos: pos, Source: source}, Message: message}
}

func (e *ParseError) Error() string             { return e.Format(false) }
func (e *ParseError) Format(color bool) string { return e.format(e.Message, color) }

// UnimplementedTag reports that a parse-tree rewrite pass or the AST
// builder's dispatch table has no case for a grammar tag. This is a
// compiler-internal limitation, not a user-facing syntax mistake, but it is
// still reported with position information for debuggability.
type UnimplementedTag struct {
	located
	Tag string
}

func NewUnimplementedTag(pos token.Position, source, tag string) *UnimplementedTag {
	return &UnimplementedTag{located: located{Pos: pos, Source: source}, Tag: tag}
}

func (e *UnimplementedTag) Error() string { return e.Format(false) }
func (e *UnimplementedTag) Format(color bool) string {
	return e.format(fmt.Sprintf("unimplemented grammar tag %q", e.Tag), color)
}

// SyntaxError reports that the AST builder rejected an otherwise
// parseable construct as semantically ill-formed: a dictionary literal
// keyed by a non-literal expression, an unrecognized operator token, and
// similar shape violations the grammar itself cannot rule out.
type SyntaxError struct {
	located
	Message string
}

func NewSyntaxError(pos token.Position, source, message string) *SyntaxError {
	return &SyntaxError{located: located{Pos: pos, Source: source}, Message: message}
}

func (e *SyntaxError) Error() string             { return e.Format(false) }
func (e *SyntaxError) Format(color bool) string { return e.format(e.Message, color) }

// TypeMismatch reports that the inference engine found two types that fail
// the compatible() relation in a position that requires it.
type TypeMismatch struct {
	located
	Context  string
	Expected types.Type
	Actual   types.Type
}

func NewTypeMismatch(pos token.Position, source, context string, expected, actual types.Type) *TypeMismatch {
	return &TypeMismatch{located: located{Pos: pos, Source: source}, Context: context, Expected: expected, Actual: actual}
}

func (e *TypeMismatch) Error() string { return e.Format(false) }
func (e *TypeMismatch) Format(color bool) string {
	msg := fmt.Sprintf("%s: expected %s, got %s", e.Context, e.Expected.String(), e.Actual.String())
	return e.format(msg, color)
}

// DuplicateDeclaration reports that a name was declared twice in a scope
// where the second declaration is not an allowed overload. First is the
// position of the original declaration.
type DuplicateDeclaration struct {
	located
	Name  string
	First token.Position
}

func NewDuplicateDeclaration(pos token.Position, source, name string, first token.Position) *DuplicateDeclaration {
	return &DuplicateDeclaration{located: located{Pos: pos, Source: source}, Name: name, First: first}
}

func (e *DuplicateDeclaration) Error() string { return e.Format(false) }
func (e *DuplicateDeclaration) Format(color bool) string {
	msg := fmt.Sprintf("%q already declared at %d:%d", e.Name, e.First.Line, e.First.Column)
	return e.format(msg, color)
}

// UndefinedName reports that the inference engine's scope lookup found no
// declaration for a referenced identifier.
type UndefinedName struct {
	located
	Name string
}

func NewUndefinedName(pos token.Position, source, name string) *UndefinedName {
	return &UndefinedName{located: located{Pos: pos, Source: source}, Name: name}
}

func (e *UndefinedName) Error() string { return e.Format(false) }
func (e *UndefinedName) Format(color bool) string {
	return e.format(fmt.Sprintf("undefined name %q", e.Name), color)
}

// MangleError reports that the mangler was asked to encode a signature
// containing a type with no defined mangled code (Unknown, Function,
// Structure, Other or Promoted).
type MangleError struct {
	located
	Name string
	Type types.Type
}

func NewMangleError(pos token.Position, source, name string, typ types.Type) *MangleError {
	return &MangleError{located: located{Pos: pos, Source: source}, Name: name, Type: typ}
}

func (e *MangleError) Error() string { return e.Format(false) }
func (e *MangleError) Format(color bool) string {
	msg := fmt.Sprintf("cannot mangle %q: no code for type %s", e.Name, e.Type.String())
	return e.format(msg, color)
}

// List is a collection of compiler errors gathered across a single pass,
// so the driver can report everything it found rather than stopping at the
// first failure.
type List []error

func (l List) Error() string {
	return l.Format(false)
}

// Format renders every error in l, separated and numbered when there is
// more than one.
func (l List) Format(color bool) string {
	if len(l) == 0 {
		return ""
	}
	if len(l) == 1 {
		return formatOne(l[0], color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:\n\n", len(l))
	for i, err := range l {
		fmt.Fprintf(&sb, "[%d/%d] ", i+1, len(l))
		sb.WriteString(formatOne(err, color))
		if i < len(l)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// formatter is implemented by every error kind in this package.
type formatter interface {
	Format(color bool) string
}

func formatOne(err error, color bool) string {
	if f, ok := err.(formatter); ok {
		return f.Format(color)
	}
	return err.Error()
}
