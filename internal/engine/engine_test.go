// Released under an MIT license. See LICENSE.

package engine

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/michaelmacinnis/computor/internal/common/failure"
	"github.com/michaelmacinnis/computor/internal/engine/commands"
)

func quiet() *T {
	level := &slog.LevelVar{}
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))

	return New(log, level, 80)
}

// transcript runs each line of the file at path and records the line
// followed by its output, the way it would appear at the prompt.
func transcript(t *testing.T, path string) string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)

	defer f.Close()

	e := quiet()

	var sb strings.Builder

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Text()

		sb.WriteString("> " + line + "\n")

		out, err := e.Execute(line)

		switch {
		case errors.Is(err, commands.ErrQuit):
			return sb.String()
		case err != nil:
			sb.WriteString("error: " + err.Error() + "\n")
		case out != "":
			sb.WriteString(out + "\n")
		}
	}

	require.NoError(t, s.Err())

	return sb.String()
}

func TestSessions(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "sessions", "*.txt"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".txt")

		t.Run(name, func(t *testing.T) {
			golden.Assert(t, transcript(t, path), name+".golden")
		})
	}
}

func TestExecute(t *testing.T) {
	tests := []struct {
		line string
		out  string
	}{
		{"2+3*4", "14"},
		{"(2+3)*4", "20"},
		{"0.1 + 0.2 = 0.3", "True."},
		{"x + 1 = 5", "Reduced form: x - 4 = 0\nPolynomial degree: 1\nSolution: x = 4"},
		{"2*x + 3*x = 5", "Reduced form: 5 * x - 5 = 0\nPolynomial degree: 1\nSolution: x = 1"},
		{"", ""},
	}

	e := quiet()

	for _, tc := range tests {
		out, err := e.Execute(tc.line)
		require.NoError(t, err, tc.line)
		require.Equal(t, tc.out, out, tc.line)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		line string
		kind failure.Kind
	}{
		{"5 / 0", failure.DivisionByZero},
		{"x * y = 1", failure.TooManyUnknowns},
		{"x = 1 = 2", failure.TooManyEqualSigns},
		{"1 + $ + #", failure.Lexical},
		{"2 *", failure.MissingOperand},
		{"= 2", failure.MissingOperand},
		{"(x = 2) + 1", failure.BadOperatorUse},
		{"2 + ? = 1", failure.ResolveMarker},
		{"i = 2", failure.ReservedName},
		{"i(x) = 2", failure.ReservedName},
		{"f(i) = 2", failure.ReservedName},
		{"f(x, x) = 2", failure.BadDefinition},
		{"y", failure.UnknownVariable},
		{"z = y", failure.UnknownVariable},
		{"[[1]] = x ?", failure.MatrixInEquation},
		{"nope(y) = ?", failure.UnknownFunction},
	}

	for _, tc := range tests {
		_, err := quiet().Execute(tc.line)
		require.Error(t, err, tc.line)
		require.Equal(t, tc.kind, failure.KindOf(err), "%s: %v", tc.line, err)
	}

	_, err := quiet().Execute("1 + $ + #")
	require.ErrorContains(t, err, "invalid tokens: 2")
}

func TestNoPartialOutput(t *testing.T) {
	e := quiet()

	out, err := e.Execute("x = 5 / 0")
	require.Error(t, err)
	require.Empty(t, out)

	_, ok := e.Memory().Variable("x")
	require.False(t, ok)
}

func TestSettings(t *testing.T) {
	e := quiet()

	require.False(t, e.Verbose())
	e.SetVerbose(true)
	require.True(t, e.Verbose())

	e.SetBench(true)

	out, err := e.Execute("1 + 1")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "2", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "("), lines[1])
}

func TestQuit(t *testing.T) {
	_, err := quiet().Execute(":quit")
	require.ErrorIs(t, err, commands.ErrQuit)
}
