package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileAndScan(t *testing.T) {
	l, err := Compile([]Rule{
		{Name: "whitespace", Pattern: `[ \t\n]+`},
		{Name: "identifier", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "integer", Pattern: `[0-9]+`},
	}, 200)
	require.NoError(t, err)

	tokens := l.Scan([]byte("x1 42"))
	require.Equal(t, []Token{
		{Start: 0, End: 2, Rule: 1, Name: "identifier"},
		{Start: 2, End: 3, Rule: 0, Name: "whitespace"},
		{Start: 3, End: 5, Rule: 2, Name: "integer"},
	}, tokens)
}

func TestCompileInvalidPatternWrapsRuleName(t *testing.T) {
	_, err := Compile([]Rule{{Name: "broken", Pattern: "(a"}}, 200)
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken")
}

func TestCompileOverflowReturnsError(t *testing.T) {
	_, err := Compile([]Rule{{Name: "complex", Pattern: "(a|b)*abb"}}, 1)
	require.Error(t, err)
}

func TestScanUnknownByteHasNoName(t *testing.T) {
	l, err := Compile([]Rule{{Name: "lower", Pattern: `[a-z]+`}}, 200)
	require.NoError(t, err)

	tokens := l.Scan([]byte("ab#"))
	require.Len(t, tokens, 2)
	require.Equal(t, -1, tokens[1].Rule)
	require.Equal(t, "", tokens[1].Name)
}
