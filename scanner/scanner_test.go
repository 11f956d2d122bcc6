package scanner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lexgen/dfa"
	"lexgen/nfa"
	"lexgen/regex"
)

func compile(t *testing.T, sources ...string) *dfa.DFA {
	t.Helper()
	rules := make([]*regex.Simple, len(sources))
	for i, src := range sources {
		r, err := regex.Parse(src)
		require.NoError(t, err)
		rules[i] = regex.Desugar(r)
	}
	g, start, accept := nfa.Combine(rules)
	d, err := dfa.Build(g, start, accept, 200)
	require.NoError(t, err)
	return d
}

func TestScanWhitespaceAndIdentifier(t *testing.T) {
	d := compile(t, `[ \t\n]+`, `[a-zA-Z][a-zA-Z0-9]*`, `[0-9]+`)
	input := []byte("foo 123")

	segs := Scan(d, input)
	require.Len(t, segs, 3)
	require.Equal(t, Segment{Start: 0, Rule: 1}, segs[0])
	require.Equal(t, Segment{Start: 3, Rule: 0}, segs[1])
	require.Equal(t, Segment{Start: 4, Rule: 2}, segs[2])
}

func TestScanPriorityTieBreak(t *testing.T) {
	// "if" must win over the identifier rule since it is listed first.
	d := compile(t, `"if"`, `[a-z]+`)

	segs := Scan(d, []byte("if"))
	require.Len(t, segs, 1)
	require.Equal(t, 0, segs[0].Rule)

	segs = Scan(d, []byte("ifx"))
	require.Len(t, segs, 1)
	require.Equal(t, 1, segs[0].Rule, "longest match must win over priority when lengths differ")
}

func TestScanUnknownByteRecovers(t *testing.T) {
	d := compile(t, `[a-z]+`)
	segs := Scan(d, []byte("ab#cd"))
	require.Len(t, segs, 3)
	require.Equal(t, Segment{Start: 0, Rule: 0}, segs[0])
	require.Equal(t, Segment{Start: 2, Rule: -1}, segs[1])
	require.Equal(t, Segment{Start: 3, Rule: 0}, segs[2])
}

func TestScanEmptyInput(t *testing.T) {
	d := compile(t, `[a-z]+`)
	segs := Scan(d, []byte(""))
	require.Empty(t, segs)
}

func TestScanZeroWidthAcceptMakesProgress(t *testing.T) {
	// "a*" accepts the empty string, so the DFA start state is itself
	// accepting. A byte with no outgoing transition from that state must
	// not emit a zero-width match and loop forever; it must fall into the
	// unknown-byte error path instead, per spec.md §4.6's "no empty
	// tokens" property.
	d := compile(t, `a*`)

	done := make(chan []Segment, 1)
	go func() { done <- Scan(d, []byte("b")) }()

	select {
	case segs := <-done:
		require.Equal(t, []Segment{
			{Start: 0, Rule: -1},
		}, segs)
	case <-time.After(time.Second):
		t.Fatal("Scan did not terminate on zero-width accept with no progress")
	}
}
