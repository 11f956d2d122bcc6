// Package dfa implements subset construction (spec.md §4.5): turning a
// combined NFA (as built by package nfa) into a deterministic automaton
// over the same graph.Graph container the NFA used, so the diagnostic
// renderer treats both the same way.
//
// Grounded on the teacher's nex/dfa.go dfaBuilder: nilClose is this
// file's closure, newDFANode's canonical-key table is table, and todo is
// the same worklist. constructEndNode's dead-state sentinel is folded
// into the ordinary "no destination for this byte" case, since this
// graph container has no notion of a distinguished error node — the
// scanner treats "no outgoing edge for this byte" as the dead state
// directly.
package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"lexgen/graph"
)

// DFA is the product of subset construction: a deterministic graph.Graph
// (state 0 is always Start) plus a parallel Rule slice giving the
// accepting rule id for each state, or -1 if the state does not accept.
type DFA struct {
	Graph *graph.Graph
	Start int
	Rule  []int
}

// Build runs the worklist-driven powerset construction described in
// spec.md §4.5 over nfaGraph, whose combined start node is start and
// whose per-rule accepting nodes (in priority order, lowest index wins
// ties) are accept. It returns an *OverflowError wrapping ErrOverflow if
// the construction would need more than capacity states.
func Build(nfaGraph *graph.Graph, start int, accept []int, capacity int) (*DFA, error) {
	b := &builder{
		nfa:      nfaGraph,
		accept:   accept,
		alphabet: nfaGraph.Alphabet(),
		table:    make(map[string]int),
		capacity: capacity,
		dfa:      graph.New(),
	}

	startSet := b.closure([]int{start})
	startIdx, err := b.stateFor(startSet)
	if err != nil {
		return nil, err
	}

	for len(b.todo) > 0 {
		s := b.todo[len(b.todo)-1]
		b.todo = b.todo[:len(b.todo)-1]

		dest := make(map[int][]byte) // destination DFA state -> bytes reaching it
		for _, c := range b.alphabet {
			moved := b.move(b.sets[s], c)
			if len(moved) == 0 {
				continue
			}
			closed := b.closure(moved)
			t, err := b.stateFor(closed)
			if err != nil {
				return nil, err
			}
			dest[t] = append(dest[t], c)
		}
		for t, bytes := range dest {
			b.dfa.AddEdge(s, t, bytes)
		}
	}

	return &DFA{Graph: b.dfa, Start: startIdx, Rule: b.rule}, nil
}

type builder struct {
	nfa      *graph.Graph
	accept   []int
	alphabet []byte
	table    map[string]int   // canonical state-set key -> DFA node index
	sets     [][]int          // DFA node index -> canonical NFA state set
	rule     []int            // DFA node index -> accepting rule id, -1 if none
	todo     []int            // worklist of DFA node indices still to expand
	capacity int
	dfa      *graph.Graph
}

// closure returns the epsilon-closure of the given NFA node set, as a
// canonical (sorted, deduplicated) slice.
func (b *builder) closure(states []int) []int {
	visited := make(map[int]bool, len(states))
	var stack []int
	for _, s := range states {
		if !visited[s] {
			visited[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range b.nfa.OutEdges(n) {
			if e.IsEpsilon() && !visited[e.Dst] {
				visited[e.Dst] = true
				stack = append(stack, e.Dst)
			}
		}
	}
	return canonicalize(visited)
}

// move returns the set of NFA nodes reachable from states via a single
// non-epsilon edge whose label contains c.
func (b *builder) move(states []int, c byte) []int {
	seen := make(map[int]bool)
	for _, s := range states {
		for _, e := range b.nfa.OutEdges(s) {
			if !e.IsEpsilon() && e.Label.Contains(c) {
				seen[e.Dst] = true
			}
		}
	}
	return canonicalize(seen)
}

func canonicalize(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func stateKey(set []int) string {
	var sb strings.Builder
	for i, n := range set {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

// stateFor returns the DFA node index for the canonical NFA state set,
// allocating a fresh DFA node (and enqueueing it for expansion) the first
// time a given set is seen.
func (b *builder) stateFor(set []int) (int, error) {
	key := stateKey(set)
	if idx, ok := b.table[key]; ok {
		return idx, nil
	}
	if len(b.sets) >= b.capacity {
		return 0, errors.WithStack(&OverflowError{Attempted: len(b.sets) + 1, Capacity: b.capacity})
	}
	idx := b.dfa.AddNode()
	b.table[key] = idx
	b.sets = append(b.sets, set)
	b.rule = append(b.rule, b.ruleOf(set))
	b.todo = append(b.todo, idx)
	return idx, nil
}

// ruleOf returns the lowest-index rule whose accepting node is a member
// of set, or -1 if none is.
func (b *builder) ruleOf(set []int) int {
	member := make(map[int]bool, len(set))
	for _, n := range set {
		member[n] = true
	}
	for rule, node := range b.accept {
		if member[node] {
			return rule
		}
	}
	return -1
}
