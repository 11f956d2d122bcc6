// Package cliapp is the cobra command tree for the lexgen CLI, grounded
// on the nihei9-maleeni and theakshaypant-regret cobra-based lexer/regex
// tools and on teacher's own nex/exec.go flag shape (Standalone,
// CustomPrefix, NfaDot/DfaDot output filenames), reinterpreted as cobra
// flags rather than stdlib flag.FlagSet.
package cliapp

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute builds and runs the root command against os.Args. It returns
// the process exit code: 0 on normal termination, non-zero if command
// execution failed.
func Execute() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lexgen",
		Short: "Compile regular expressions into NFAs, DFAs, and tokenizers",
		// Errors are reported once, by Execute's own Fprintln above; Cobra's
		// default error/usage printing would otherwise double them up.
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newGraphCmd())
	root.AddCommand(newTokenizeCmd())
	return root
}
