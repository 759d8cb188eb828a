package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const triangleGr = `SECTION Graph
Nodes 3
Edges 3
E 1 2 3
E 2 3 2
E 3 1 70
END

SECTION Terminals
Terminals 3
T 1
T 2
T 3
END

EOF
`

func TestRunSolvesTriangleFromStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(triangleGr), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "VALUE 5\n")
}

func TestRunReportsBadInstance(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("not a .gr file\n"), &stdout, &stderr)
	require.Equal(t, 1, code)
	require.NotEmpty(t, stderr.String())
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-bogus"}, strings.NewReader(triangleGr), &stdout, &stderr)
	require.Equal(t, 2, code)
}

// The six spec.md §8 worked examples, checked end to end against the .gr
// fixtures under examples/ rather than the inline triangleGr literal.
func TestRunSolvesAllWorkedExampleFixtures(t *testing.T) {
	cases := []struct {
		file  string
		value string
	}{
		{"triangle.gr", "VALUE 5\n"},
		{"star_of_four.gr", "VALUE 10\n"},
		{"two_parallel_paths.gr", "VALUE 3\n"},
		{"cherry_domination.gr", "VALUE 8\n"},
		{"degree_one_terminal.gr", "VALUE 6\n"},
		{"zero_edge_absorption.gr", "VALUE 4\n"},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			path := filepath.Join("..", "..", "examples", tc.file)
			code := run([]string{path}, nil, &stdout, &stderr)
			require.Equal(t, 0, code, stderr.String())
			require.Contains(t, stdout.String(), tc.value)
		})
	}
}
