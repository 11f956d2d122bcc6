// Package graph is the shared node/edge container the NFA builder grows
// and the DFA builder and scanner read back. It is an exclusively-owned
// aggregate of flat parallel arrays; AddNode and AddEdge are its only
// mutators, per spec.md §9's "Shared graph container" design note.
//
// Grounded on the teacher's nex/graph.go and graph/dfa.go node/edge shape,
// collapsed from rune-keyed edges to the 8-bit CharSet labels this spec's
// scope requires.
package graph

import (
	"slices"

	"lexgen/regex"
)

// CharSet is re-exported from package regex so callers building a graph
// never need to import regex just to label an edge.
type CharSet = regex.CharSet

// Edge is one (src, dst, label) triple. An empty Label denotes the
// distinguished epsilon edge. Edges are parallel-permitted: the builder
// never merges them, because the DFA builder relies on enumerating them.
type Edge struct {
	Src, Dst int
	Label    CharSet
}

// IsEpsilon reports whether the edge carries the epsilon label.
func (e Edge) IsEpsilon() bool {
	return len(e.Label) == 0
}

// Graph is a directed multigraph: n nodes indexed 0..n, m edges. Node 0 is
// always the start once the combiner has run (see package nfa).
type Graph struct {
	nodeCount int
	edges     []Edge
	out       [][]int // out[n] = indices into edges of n's out-edges
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddNode allocates a fresh node and returns its index.
func (g *Graph) AddNode() int {
	n := g.nodeCount
	g.nodeCount++
	g.out = append(g.out, nil)
	return n
}

// AddEdge appends a new edge; parallel edges between the same pair are
// permitted and never merged. It panics if src or dst index a node that
// does not exist — an InvariantViolation per spec.md §7, indicating a bug
// in the caller rather than malformed user input.
func (g *Graph) AddEdge(src, dst int, label CharSet) int {
	if src < 0 || src >= g.nodeCount || dst < 0 || dst >= g.nodeCount {
		panic("graph: edge references a node that does not exist")
	}
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{Src: src, Dst: dst, Label: label})
	g.out[src] = append(g.out[src], idx)
	return idx
}

// NodeCount returns the number of nodes allocated so far.
func (g *Graph) NodeCount() int {
	return g.nodeCount
}

// Edges returns the full edge list, in insertion order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// OutEdges returns the edges leaving node n, in insertion order.
func (g *Graph) OutEdges(n int) []Edge {
	res := make([]Edge, len(g.out[n]))
	for i, idx := range g.out[n] {
		res[i] = g.edges[idx]
	}
	return res
}

// Alphabet returns the sorted, deduplicated set of bytes that appear on any
// non-epsilon edge in the whole graph — the Σ subset construction (spec.md
// §4.5 step 2) enumerates transitions over.
func (g *Graph) Alphabet() []byte {
	seen := make(map[byte]bool)
	for _, e := range g.edges {
		for _, b := range e.Label {
			seen[b] = true
		}
	}
	alphabet := make([]byte, 0, len(seen))
	for b := range seen {
		alphabet = append(alphabet, b)
	}
	slices.Sort(alphabet)
	return alphabet
}
