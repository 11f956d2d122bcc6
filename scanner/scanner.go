// Package scanner runs the maximal-munch tokenization loop over a
// compiled DFA (spec.md §4.6).
//
// Grounded on the teacher's nex/lexer_template.go scanner: checkAccept's
// "remember the longest match, lowest rule id wins ties" logic and the
// scan loop's "stuck -> emit last match, or advance one byte" fallback
// are carried over directly, restructured from the teacher's channel-fed
// rune scanner reading from a bufio.Reader into a synchronous byte-slice
// walk returning a Segment slice, since this package has no streaming or
// multi-DFA nesting to support.
package scanner

import "lexgen/dfa"

// Segment is one token-shaped span of the input: the byte range
// [Start, next segment's Start) was consumed to produce it, and it was
// accepted by Rule, or Rule is -1 if no rule matched the byte at Start
// (the error-recovery case, spec.md §4.6). See Scan for the last segment
// when input ends partway into a match.
type Segment struct {
	Start int
	Rule  int
}

// Scan walks input against d and returns the resulting segments, in
// order, per the pseudocode in spec.md §4.6. No segment is zero-width, so
// every segment's Start is < len(input). Each segment's text is
// input[seg.Start:next.Start], with len(input) standing in for the
// sentinel "next" of the last segment. When input ends while the DFA is
// still partway into a possible longer match, Scan emits the last
// accepted match, if any, and stops: the last segment's span then also
// covers the bytes past that match, and a trailing run that reached no
// accepting state yields no segment at all (so non-empty input can yield
// no segments).
func Scan(d *dfa.DFA, input []byte) []Segment {
	var segments []Segment

	state := d.Start
	start := 0
	pos := 0
	lastAcceptState := -1
	lastAcceptPos := -1

	for pos <= len(input) {
		if d.Rule[state] >= 0 {
			lastAcceptState, lastAcceptPos = state, pos
		}
		if pos == len(input) {
			if lastAcceptState != -1 && lastAcceptPos > start {
				segments = append(segments, Segment{Start: start, Rule: d.Rule[lastAcceptState]})
			}
			break
		}

		next, ok := transition(d, state, input[pos])
		switch {
		case ok:
			state = next
			pos++
		case lastAcceptState != -1 && lastAcceptPos > start:
			segments = append(segments, Segment{Start: start, Rule: d.Rule[lastAcceptState]})
			start = lastAcceptPos
			pos = lastAcceptPos
			state = d.Start
			lastAcceptState, lastAcceptPos = -1, -1
		default:
			segments = append(segments, Segment{Start: start, Rule: -1})
			start = pos + 1
			pos = pos + 1
			state = d.Start
		}
	}

	return segments
}

func transition(d *dfa.DFA, state int, c byte) (int, bool) {
	for _, e := range d.Graph.OutEdges(state) {
		if e.Label.Contains(c) {
			return e.Dst, true
		}
	}
	return 0, false
}
