// Package rules is a small, non-core client of package regex: a canned
// rule set in the spirit of a default lexical grammar for a C-like
// language. It is not imported by any core package — only by the CLI
// driver and by tests exercising the scanner end to end.
//
// Recovered from original_source/lexer.c's create_default_rules and its
// per-category create_*_regex helpers and rule_names table. The C
// source also builds standalone single-letter (ALPHA) and single-digit
// (DIGIT) rules, used there only as building blocks for its identifier
// and integer regexes; they are not exposed here as their own rule since
// nothing downstream needs a bare single-character token category.
package rules

import "lexgen/lexer"

// Default returns the built-in rule set, in priority order: whitespace,
// identifier, integer, operator, comparison, bracket, punctuation,
// symbol.
func Default() []lexer.Rule {
	return []lexer.Rule{
		{Name: "whitespace", Pattern: `[ \t\n\r]+`},
		{Name: "identifier", Pattern: `[a-zA-Z][a-zA-Z0-9]*`},
		{Name: "integer", Pattern: `[0-9]+`},
		{Name: "operator", Pattern: `[=+\-*/%!&|^~]`},
		{Name: "comparison", Pattern: `[<>=]`},
		{Name: "bracket", Pattern: `[()\[\]{}]`},
		{Name: "punctuation", Pattern: `[,;:.?!"']`},
		{Name: "symbol", Pattern: `[@#$_\\]`},
	}
}
