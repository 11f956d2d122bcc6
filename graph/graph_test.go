package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddNodeAddEdge(t *testing.T) {
	g := New()
	a := g.AddNode()
	b := g.AddNode()
	require.Equal(t, 2, g.NodeCount())

	g.AddEdge(a, b, CharSet{'x'})
	g.AddEdge(a, b, nil) // parallel epsilon edge, must not be merged

	require.Len(t, g.Edges(), 2)
	require.Len(t, g.OutEdges(a), 2)
	require.Empty(t, g.OutEdges(b))
}

func TestAddEdgeInvalidNodePanics(t *testing.T) {
	g := New()
	g.AddNode()
	require.Panics(t, func() {
		g.AddEdge(0, 5, nil)
	})
}

func TestAlphabet(t *testing.T) {
	g := New()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	g.AddEdge(a, b, CharSet{'c', 'a'})
	g.AddEdge(b, c, CharSet{'a', 'b'})
	g.AddEdge(a, c, nil)

	require.Equal(t, []byte{'a', 'b', 'c'}, g.Alphabet())
}

func TestWriteDot(t *testing.T) {
	g := New()
	a := g.AddNode()
	b := g.AddNode()
	g.AddEdge(a, b, CharSet{'x'})

	dot := WriteDot(g, "NFA_0", map[int]int{1: 0})
	require.Contains(t, string(dot), "digraph NFA_0")
	require.Contains(t, string(dot), `"x"`)
	require.Contains(t, string(dot), "rule 0")
}
