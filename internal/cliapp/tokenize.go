package cliapp

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lexgen/lexer"
	"lexgen/rules"
)

// ruleColors assigns a fixed, cycling color per rule id so the same
// category always prints the same color across a run; unmatched bytes
// (rule id -1) always print red. Grounded on theakshaypant-regret's use
// of fatih/color to highlight regex matches.
var ruleColors = []*color.Color{
	color.New(color.FgGreen),
	color.New(color.FgCyan),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
	color.New(color.FgWhite),
}

var unmatchedColor = color.New(color.FgRed, color.Bold)

// newTokenizeCmd builds the "tokenize" subcommand: compiles the built-in
// default rule set (package rules) and tokenizes a file, or stdin if no
// file is given, printing each segment colorized by rule.
func newTokenizeCmd() *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Tokenize a file (or stdin) using the built-in default rule set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) > 0 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			input, err := io.ReadAll(in)
			if err != nil {
				return err
			}
			return runTokenize(cmd.OutOrStdout(), input, capacity)
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", 1000, "maximum DFA state count before aborting")
	return cmd
}

func runTokenize(out io.Writer, input []byte, capacity int) error {
	l, err := lexer.Compile(rules.Default(), capacity)
	if err != nil {
		return err
	}
	for _, tok := range l.Scan(input) {
		text := string(input[tok.Start:tok.End])
		if tok.Rule < 0 {
			unmatchedColor.Fprintf(out, "%-12s %q\n", "UNKNOWN", text)
			continue
		}
		c := ruleColors[tok.Rule%len(ruleColors)]
		c.Fprintf(out, "%-12s %q\n", tok.Name, text)
	}
	return nil
}
