package nfa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lexgen/regex"
)

func TestCombineOneRulePerAccept(t *testing.T) {
	rules := []*regex.Simple{
		mustSimple(t, "a"),
		mustSimple(t, "b+"),
		mustSimple(t, "[0-9]+"),
	}
	g, start, accept := Combine(rules)
	require.Len(t, accept, 3)

	// the fresh start node must precede every rule's own nodes.
	require.Equal(t, 0, start)

	// every accept node must be distinct and in range.
	seen := make(map[int]bool)
	for _, a := range accept {
		require.False(t, seen[a], "duplicate accept node %d", a)
		seen[a] = true
		require.Less(t, a, g.NodeCount())
		require.GreaterOrEqual(t, a, 0)
	}

	// start must have exactly one epsilon out-edge per rule.
	require.Len(t, g.OutEdges(start), 3)
	for _, e := range g.OutEdges(start) {
		require.True(t, e.IsEpsilon())
	}
}

func TestCombineEmpty(t *testing.T) {
	g, start, accept := Combine(nil)
	require.Equal(t, 1, g.NodeCount())
	require.Equal(t, 0, start)
	require.Empty(t, accept)
	require.Empty(t, g.OutEdges(start))
}
