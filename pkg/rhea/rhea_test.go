package rhea_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhea-lang/rhea/internal/config"
	"github.com/rhea-lang/rhea/pkg/rhea"
)

func TestCompileSimpleDefProducesSymbol(t *testing.T) {
	unit, err := rhea.Compile("def add[integer] {a: integer, b: integer} { return a + b; }", "unit.rhea")
	require.NoError(t, err)
	require.Len(t, unit.Symbols, 1)

	sym := unit.Symbols[0]
	assert.Equal(t, "add", sym.Name)
	assert.Equal(t, "Simple(integer)", sym.ReturnType)
	assert.NotEmpty(t, sym.Mangled)
	assert.Len(t, sym.ArgTypes, 2)
}

func TestCompileParseErrorReportsStage(t *testing.T) {
	_, err := rhea.Compile("var x := ", "unit.rhea")
	require.Error(t, err)
	compileErr, ok := err.(*rhea.CompileError)
	require.True(t, ok)
	assert.Equal(t, "parsing", compileErr.Stage)
	require.NotEmpty(t, compileErr.Errors)
	assert.True(t, compileErr.Errors[0].IsError())
}

func TestCompileUndefinedNameReportsInferenceStage(t *testing.T) {
	_, err := rhea.Compile("undefinedThing();", "unit.rhea")
	require.Error(t, err)
	compileErr, ok := err.(*rhea.CompileError)
	require.True(t, ok)
	assert.Equal(t, "inference", compileErr.Stage)
}

func TestCompileWithConfigUsesSourceNameWhenUnset(t *testing.T) {
	cfg := &config.Config{SourceName: "from-config.rhea"}
	unit, err := rhea.Compile("1;", "", rhea.WithConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, "from-config.rhea", unit.SourceName)
}

func TestCompileNoDeclarationsYieldsNoSymbols(t *testing.T) {
	unit, err := rhea.Compile("1 + 2;", "unit.rhea")
	require.NoError(t, err)
	assert.Empty(t, unit.Symbols)
}
