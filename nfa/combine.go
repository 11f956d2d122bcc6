package nfa

import (
	"lexgen/graph"
	"lexgen/regex"
)

// Combine merges the per-rule NFAs built from rules, in priority order,
// into one graph reachable from a single fresh start node, per spec.md
// §4.4. The returned accept slice has one entry per input rule: accept[i]
// is the node that accepts rule i. Rule priority is preserved positionally
// in accept, not encoded in the graph itself — the DFA builder is the
// layer that turns "which rules accept in this state set" into a single
// winning rule id.
//
// Per the Open Questions resolution in the design notes: each rule's nodes
// are appended to the combined graph before the epsilon edge from the new
// start to that rule's (now offset) start is added, so AddEdge never sees
// an endpoint the combined graph hasn't allocated yet.
func Combine(rules []*regex.Simple) (g *graph.Graph, start int, accept []int) {
	g = graph.New()
	start = g.AddNode()
	accept = make([]int, len(rules))

	for i, r := range rules {
		sub, frag := Build(r)
		offset := g.NodeCount()
		for n := 0; n < sub.NodeCount(); n++ {
			g.AddNode()
		}
		for _, e := range sub.Edges() {
			g.AddEdge(e.Src+offset, e.Dst+offset, e.Label)
		}
		g.AddEdge(start, frag.Start+offset, nil)
		accept[i] = frag.End + offset
	}
	return g, start, accept
}
