package cliapp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunGraphREPLWritesDotToStdout(t *testing.T) {
	in := strings.NewReader("a|b\nquit\n")
	var out bytes.Buffer

	err := runGraphREPL(in, &out, 100, "", "")
	require.NoError(t, err)

	require.Contains(t, out.String(), "digraph NFA_0")
	require.Contains(t, out.String(), "digraph DFA_0")
}

func TestRunGraphREPLStopsAtQuit(t *testing.T) {
	in := strings.NewReader("quit\na|b\n")
	var out bytes.Buffer

	err := runGraphREPL(in, &out, 100, "", "")
	require.NoError(t, err)
	require.NotContains(t, out.String(), "digraph NFA_0")
}

func TestRunGraphREPLReportsParseError(t *testing.T) {
	in := strings.NewReader("(a\nquit\n")
	var out bytes.Buffer

	err := runGraphREPL(in, &out, 100, "", "")
	require.NoError(t, err)
	require.Contains(t, out.String(), "parse")
}
