package mangle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/mangle"
	"github.com/rhea-lang/rhea/internal/token"
	"github.com/rhea-lang/rhea/internal/types"
)

func pos() token.Position { return token.Position{Line: 1, Column: 1} }

func TestMangleBasicFunctionNoArgs(t *testing.T) {
	sig := mangle.Signature{
		Kind:       ast.BasicFunction,
		Name:       "foo",
		ReturnType: types.NewSimple(types.Integer),
	}
	name, err := mangle.Mangle(pos(), "", sig)
	require.NoError(t, err)
	assert.Equal(t, "_Rf3fooi0", name)
}

func TestMangleWithArgs(t *testing.T) {
	sig := mangle.Signature{
		Kind:       ast.BasicFunction,
		Name:       "add",
		ReturnType: types.NewSimple(types.Integer),
		ArgTypes:   []types.Type{types.NewSimple(types.Integer), types.NewSimple(types.Integer)},
	}
	name, err := mangle.Mangle(pos(), "", sig)
	require.NoError(t, err)
	assert.Equal(t, "_Rf3addiii", name)
}

func TestManglePredicate(t *testing.T) {
	sig := mangle.Signature{
		Kind:       ast.PredicateFunction,
		Name:       "isEmpty",
		ReturnType: types.NewSimple(types.Boolean),
	}
	name, err := mangle.Mangle(pos(), "", sig)
	require.NoError(t, err)
	assert.Equal(t, "_Rp7isEmptyb0", name)
}

func TestMangleOperatorEmitsSymbolVerbatim(t *testing.T) {
	sig := mangle.Signature{
		Kind:       ast.OperatorFunction,
		Name:       "+",
		ReturnType: types.NewSimple(types.Integer),
		ArgTypes:   []types.Type{types.NewSimple(types.Integer), types.NewSimple(types.Integer)},
	}
	name, err := mangle.Mangle(pos(), "", sig)
	require.NoError(t, err)
	assert.Equal(t, "_Ro+ii", name[:6])
}

func TestMangleUncheckedIsUnmangled(t *testing.T) {
	sig := mangle.Signature{Kind: ast.UncheckedFunction, Name: "rawName"}
	name, err := mangle.Mangle(pos(), "", sig)
	require.NoError(t, err)
	assert.Equal(t, "rawName", name)
}

func TestMangleOptionalAndVariant(t *testing.T) {
	opt := types.OptionalType{Inner: types.NewSimple(types.String)}
	sig := mangle.Signature{
		Kind:       ast.BasicFunction,
		Name:       "f",
		ReturnType: opt,
	}
	name, err := mangle.Mangle(pos(), "", sig)
	require.NoError(t, err)
	assert.Equal(t, "_Rf1fOps0", name)

	variant := types.VariantType{Alternatives: []types.Type{types.NewSimple(types.Integer), types.NewSimple(types.String)}}
	sig2 := mangle.Signature{Kind: ast.BasicFunction, Name: "g", ReturnType: variant}
	name2, err := mangle.Mangle(pos(), "", sig2)
	require.NoError(t, err)
	assert.Equal(t, "_Rf1gV2is0", name2)
}

func TestMangleUnknownReturnTypeErrors(t *testing.T) {
	sig := mangle.Signature{Kind: ast.BasicFunction, Name: "bad", ReturnType: types.UnknownType{}}
	_, err := mangle.Mangle(pos(), "", sig)
	require.Error(t, err)
}

func TestTableListOrdersByNaturalSort(t *testing.T) {
	table := mangle.NewTable()
	table.Add("_Rf4add2i0", "add2")
	table.Add("_Rf5add10i0", "add10")
	table.Add("_Rf4add1i0", "add1")

	entries := table.List()
	require.Len(t, entries, 3)
	assert.Equal(t, "add1", entries[0].Declared)
	assert.Equal(t, "add2", entries[1].Declared)
	assert.Equal(t, "add10", entries[2].Declared)
}
