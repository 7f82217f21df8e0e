package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhea-lang/rhea/internal/lexer"
)

func TestDecodePopulatesFields(t *testing.T) {
	src := `
source_name: unit.rhea
preserve_comments: true
features:
  strict_numerics: true
`
	c, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "unit.rhea", c.SourceName)
	assert.True(t, c.PreserveComments)
	assert.True(t, c.FeatureEnabled("strict_numerics"))
	assert.False(t, c.FeatureEnabled("absent_toggle"))
}

func TestDecodeEmptyYieldsZeroValue(t *testing.T) {
	c, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "", c.SourceName)
	assert.False(t, c.PreserveComments)
	assert.False(t, c.FeatureEnabled("anything"))
}

func TestLexerOptionsOmitsEmptySourceName(t *testing.T) {
	c := &Config{PreserveComments: true}
	opts := c.LexerOptions()
	require.Len(t, opts, 1)

	l := lexer.New("x", opts...)
	tok := l.NextToken()
	assert.Equal(t, "", tok.Pos.SourceName)
}

func TestLexerOptionsIncludesSourceNameWhenSet(t *testing.T) {
	c := &Config{SourceName: "unit.rhea", PreserveComments: false}
	opts := c.LexerOptions()
	require.Len(t, opts, 2)

	l := lexer.New("x", opts...)
	tok := l.NextToken()
	assert.Equal(t, "unit.rhea", tok.Pos.SourceName)
}

func TestNilConfigLexerOptionsIsEmpty(t *testing.T) {
	var c *Config
	assert.Nil(t, c.LexerOptions())
	assert.False(t, c.FeatureEnabled("anything"))
}
