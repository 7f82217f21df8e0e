package compilerrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhea-lang/rhea/internal/compilerrors"
	"github.com/rhea-lang/rhea/internal/token"
	"github.com/rhea-lang/rhea/internal/types"
)

func pos(line, col int) token.Position {
	return token.Position{SourceName: "unit.rhea", Line: line, Column: col}
}

func TestParseErrorFormatIncludesCaret(t *testing.T) {
	err := compilerrors.NewParseError(pos(2, 5), "x = 1\nfoo ~bar\n", "unexpected '~'")
	out := err.Format(false)
	assert.Contains(t, out, "unit.rhea:2:5")
	assert.Contains(t, out, "foo ~bar")
	assert.Contains(t, out, "^")
}

func TestUnimplementedTagMessage(t *testing.T) {
	err := compilerrors.NewUnimplementedTag(pos(1, 1), "", "postfix-call")
	assert.Contains(t, err.Error(), `"postfix-call"`)
}

func TestTypeMismatchFormat(t *testing.T) {
	expected := types.NewSimple(types.Integer)
	actual := types.NewSimple(types.String)
	err := compilerrors.NewTypeMismatch(pos(3, 10), "", "assignment", expected, actual)
	out := err.Error()
	assert.Contains(t, out, expected.String())
	assert.Contains(t, out, actual.String())
}

func TestDuplicateDeclarationReferencesFirst(t *testing.T) {
	err := compilerrors.NewDuplicateDeclaration(pos(10, 1), "", "total", pos(2, 1))
	assert.Contains(t, err.Error(), "2:1")
	assert.Contains(t, err.Error(), "total")
}

func TestMangleErrorNamesType(t *testing.T) {
	err := compilerrors.NewMangleError(pos(1, 1), "", "weird", types.UnknownType{})
	assert.Contains(t, err.Error(), "weird")
	assert.Contains(t, err.Error(), "Unknown")
}

func TestListFormatsMultipleErrors(t *testing.T) {
	list := compilerrors.List{
		compilerrors.NewParseError(pos(1, 1), "", "first"),
		compilerrors.NewSyntaxError(pos(2, 2), "", "second"),
	}
	out := list.Format(false)
	assert.Contains(t, out, "2 errors")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
}

func TestErrorsAsDistinguishesKinds(t *testing.T) {
	var err error = compilerrors.NewSyntaxError(pos(1, 1), "", "bad shape")

	var syntaxErr *compilerrors.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))

	var typeErr *compilerrors.TypeMismatch
	assert.False(t, errors.As(err, &typeErr))
}
