// Package nfa implements Thompson construction (spec.md §4.3) and the
// per-rule NFA union (spec.md §4.4).
//
// Grounded on the teacher's nex/nfa.go BuildNfa/build switch, restructured
// from regexp/syntax.Regexp input and rune edges to this spec's simplified
// regex.Simple AST and byte graph.CharSet edges.
package nfa

import (
	"lexgen/graph"
	"lexgen/regex"
)

// Fragment is a (start, end) pair of node indices into a graph.Graph — an
// NFA fragment per spec.md §3. Its lifetime is the single upward
// composition step that consumes it.
type Fragment struct {
	Start, End int
}

// Build constructs a fresh graph containing exactly the NFA for r, per the
// construction table in spec.md §4.3. Every NFA Build produces has a
// unique entry node (Fragment.Start) and unique exit node (Fragment.End);
// every other reachable node can only leave the fragment via End.
func Build(r *regex.Simple) (*graph.Graph, Fragment) {
	g := graph.New()
	f := build(g, r)
	return g, f
}

func build(g *graph.Graph, r *regex.Simple) Fragment {
	switch r.Op {
	case regex.SimpleEmptyStr:
		s, e := g.AddNode(), g.AddNode()
		g.AddEdge(s, e, nil)
		return Fragment{s, e}

	case regex.SimpleCharSet:
		s, e := g.AddNode(), g.AddNode()
		g.AddEdge(s, e, r.Set)
		return Fragment{s, e}

	case regex.SimpleConcat:
		a := build(g, r.Left)
		b := build(g, r.Right)
		g.AddEdge(a.End, b.Start, nil)
		return Fragment{a.Start, b.End}

	case regex.SimpleUnion:
		s, e := g.AddNode(), g.AddNode()
		a := build(g, r.Left)
		b := build(g, r.Right)
		g.AddEdge(s, a.Start, nil)
		g.AddEdge(s, b.Start, nil)
		g.AddEdge(a.End, e, nil)
		g.AddEdge(b.End, e, nil)
		return Fragment{s, e}

	case regex.SimpleStar:
		s, e := g.AddNode(), g.AddNode()
		inner := build(g, r.Sub)
		g.AddEdge(s, inner.Start, nil)
		g.AddEdge(inner.End, e, nil)
		g.AddEdge(inner.End, inner.Start, nil)
		g.AddEdge(s, e, nil)
		return Fragment{s, e}
	}
	panic("nfa: unrecognized simplified op")
}
