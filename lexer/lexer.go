// Package lexer is the public compile boundary: it wires the regex
// parser, desugarer, NFA builder, NFA combiner, and subset construction
// into a single Compile call, and wraps the raw scanner segments into
// named Tokens.
//
// Grounded on the teacher's top-level nex/nex.go Builder/Process
// orchestration, with its DOT-dump-and-Go-codegen output replaced by a
// (*Lexer, error) return plus a Scan method, since generating Go source
// for the matched rules is out of scope here.
package lexer

import (
	"github.com/pkg/errors"

	"lexgen/dfa"
	"lexgen/nfa"
	"lexgen/regex"
	"lexgen/scanner"
)

// Rule is a named pattern, in priority order: the lowest index wins ties
// between equally long matches, per spec.md §4.6.
type Rule struct {
	Name    string
	Pattern string
}

// Lexer is an immutable, compiled automaton ready to scan input. Per
// spec.md §5 it holds no mutable state and may be shared across
// goroutines for concurrent, read-only scanning.
type Lexer struct {
	rules []Rule
	dfa   *dfa.DFA
}

// Token is one named, positioned match from Scan. Name is empty and Rule
// is -1 for the error-recovery case (an unmatchable byte).
type Token struct {
	Start, End int
	Rule       int
	Name       string
}

// Compile parses and desugars each rule's pattern, builds its NFA,
// combines all rules' NFAs under one start node (spec.md §4.4), and runs
// subset construction (spec.md §4.5) bounded by capacity DFA states. It
// returns the first rule's parse error, wrapped with its name, if any
// pattern is malformed.
func Compile(rules []Rule, capacity int) (*Lexer, error) {
	simple := make([]*regex.Simple, len(rules))
	for i, rule := range rules {
		r, err := regex.Parse(rule.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "lexer: rule %q", rule.Name)
		}
		simple[i] = regex.Desugar(r)
	}

	g, start, accept := nfa.Combine(simple)
	d, err := dfa.Build(g, start, accept, capacity)
	if err != nil {
		return nil, errors.Wrap(err, "lexer: compile")
	}

	return &Lexer{rules: rules, dfa: d}, nil
}

// Scan tokenizes input via maximal munch (spec.md §4.6) and resolves
// each segment's rule id to its Rule.Name.
func (l *Lexer) Scan(input []byte) []Token {
	segments := scanner.Scan(l.dfa, input)
	tokens := make([]Token, len(segments))
	for i, seg := range segments {
		end := len(input)
		if i+1 < len(segments) {
			end = segments[i+1].Start
		}
		name := ""
		if seg.Rule >= 0 {
			name = l.rules[seg.Rule].Name
		}
		tokens[i] = Token{Start: seg.Start, End: end, Rule: seg.Rule, Name: name}
	}
	return tokens
}

// Rules returns the compiled rule set, in priority order.
func (l *Lexer) Rules() []Rule {
	return l.rules
}
