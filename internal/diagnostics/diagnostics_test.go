package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/rhea-lang/rhea/internal/compilerrors"
	"github.com/rhea-lang/rhea/internal/token"
	"github.com/rhea-lang/rhea/internal/types"
)

func pos(line, col int) token.Position {
	return token.Position{SourceName: "unit.rhea", Line: line, Column: col}
}

func TestToJSONRendersKindMessageAndPosition(t *testing.T) {
	errs := []error{
		compilerrors.NewParseError(pos(1, 5), "", "unexpected token"),
		compilerrors.NewUndefinedName(pos(2, 1), "", "foo"),
		compilerrors.NewTypeMismatch(pos(3, 9), "", "return", types.NewSimple(types.Integer), types.NewSimple(types.String)),
	}

	doc, err := ToJSON(errs)
	require.NoError(t, err)

	assert.Equal(t, 3, Count(doc))
	assert.Equal(t, []string{"parse_error", "undefined_name", "type_mismatch"}, Kinds(doc))

	assert.Equal(t, int64(1), gjson.Get(doc, "0.line").Int())
	assert.Equal(t, int64(5), gjson.Get(doc, "0.column").Int())
	assert.Equal(t, "unit.rhea", gjson.Get(doc, "0.source").String())
	assert.Contains(t, gjson.Get(doc, "1.message").String(), "undefined name")
}

func TestToJSONEmptyListYieldsEmptyArray(t *testing.T) {
	doc, err := ToJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", doc)
	assert.Equal(t, 0, Count(doc))
}

func TestKindOfDefaultsToErrorForUnknownType(t *testing.T) {
	doc, err := ToJSON([]error{assertError{"boom"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"error"}, Kinds(doc))
	assert.Equal(t, "boom", gjson.Get(doc, "0.message").String())
	assert.False(t, gjson.Get(doc, "0.line").Exists())
}

type assertError struct{ msg string }

func (e assertError) Error() string { return e.msg }
