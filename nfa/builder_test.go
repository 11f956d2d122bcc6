package nfa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lexgen/regex"
)

func mustSimple(t *testing.T, src string) *regex.Simple {
	t.Helper()
	r, err := regex.Parse(src)
	require.NoError(t, err)
	return regex.Desugar(r)
}

func TestBuildCharSet(t *testing.T) {
	s := mustSimple(t, "a")
	g, f := Build(s)
	require.Equal(t, 2, g.NodeCount())
	require.Len(t, g.Edges(), 1)

	e := g.Edges()[0]
	require.Equal(t, f.Start, e.Src)
	require.Equal(t, f.End, e.Dst)
	require.False(t, e.IsEpsilon())
	require.True(t, e.Label.Contains('a'))
}

func TestBuildConcat(t *testing.T) {
	s := mustSimple(t, "ab")
	g, f := Build(s)
	// two char fragments (2 nodes + 1 edge each) joined by one epsilon edge.
	require.Equal(t, 4, g.NodeCount())
	require.Len(t, g.Edges(), 3)
	require.NotEqual(t, f.Start, f.End)
}

func TestBuildUnion(t *testing.T) {
	s := mustSimple(t, "a|b")
	g, f := Build(s)
	// 2 new nodes + 2*2 inner nodes = 6; 4 epsilon + 2 char edges = 6.
	require.Equal(t, 6, g.NodeCount())
	require.Len(t, g.Edges(), 6)

	epsilons := 0
	for _, e := range g.Edges() {
		if e.IsEpsilon() {
			epsilons++
		}
	}
	require.Equal(t, 4, epsilons)
	require.NotEqual(t, f.Start, f.End)
}

func TestBuildStar(t *testing.T) {
	s := mustSimple(t, "a*")
	g, f := Build(s)
	// 2 new nodes + 2 inner = 4; 1 char edge + 4 epsilon (in, out, loop-back, skip).
	require.Equal(t, 4, g.NodeCount())
	require.Len(t, g.Edges(), 5)
	require.NotEqual(t, f.Start, f.End)

	// the skip edge (start -> end) must exist so the empty string matches.
	foundSkip := false
	for _, e := range g.OutEdges(f.Start) {
		if e.Dst == f.End && e.IsEpsilon() {
			foundSkip = true
		}
	}
	require.True(t, foundSkip)
}

func TestBuildEmptyString(t *testing.T) {
	s := mustSimple(t, `""`)
	g, f := Build(s)
	require.Equal(t, 2, g.NodeCount())
	require.Len(t, g.Edges(), 1)
	require.True(t, g.Edges()[0].IsEpsilon())
	require.NotEqual(t, f.Start, f.End)
}
