// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/computor/internal/common/failure"
	"github.com/michaelmacinnis/computor/internal/common/struct/memory"
	"github.com/michaelmacinnis/computor/internal/common/struct/tree"
	"github.com/michaelmacinnis/computor/internal/common/type/computed"
	"github.com/michaelmacinnis/computor/internal/common/type/imaginary"
)

type session struct {
	bench   bool
	memory  *memory.T
	verbose bool
	width   int
}

func (s *session) Bench() bool        { return s.bench }
func (s *session) Memory() *memory.T  { return s.memory }
func (s *session) SetBench(on bool)   { s.bench = on }
func (s *session) SetVerbose(on bool) { s.verbose = on }
func (s *session) Verbose() bool      { return s.verbose }
func (s *session) Width() int         { return s.width }

func fresh(width int) *session {
	m := memory.New()

	m.Assign("a", computed.Number(imaginary.Int(2)))
	m.Assign("b", computed.Number(imaginary.Unit()))
	m.Define("f", &memory.Function{
		Params: []string{"x"},
		Body:   tree.NewLeaf(tree.Variable{Name: "x"}),
	})

	return &session{memory: m, width: width}
}

func TestRun(t *testing.T) {
	s := fresh(80)

	out, err := Run(s, "  :vars")
	require.NoError(t, err)
	require.Equal(t, "a = 2\nb = i", out)

	out, err = Run(s, ":vars b")
	require.NoError(t, err)
	require.Equal(t, "b = i", out)

	out, err = Run(s, ":vars z*")
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = Run(s, ":funcs")
	require.NoError(t, err)
	require.Equal(t, "f(x) = x", out)
}

func TestToggles(t *testing.T) {
	s := fresh(80)

	out, err := Run(s, ":bench")
	require.NoError(t, err)
	require.Equal(t, "bench on", out)
	require.True(t, s.bench)

	out, err = Run(s, ":verbose")
	require.NoError(t, err)
	require.Equal(t, "verbose on", out)
	require.True(t, s.verbose)

	out, err = Run(s, ":verbose")
	require.NoError(t, err)
	require.Equal(t, "verbose off", out)
	require.False(t, s.verbose)
}

func TestQuit(t *testing.T) {
	_, err := Run(fresh(80), ":quit")
	require.True(t, errors.Is(err, ErrQuit))
}

func TestErrors(t *testing.T) {
	s := fresh(80)

	_, err := Run(s, ":")
	require.EqualError(t, err, "missing command name, try :help")

	_, err = Run(s, ":frobnicate")
	require.EqualError(t, err, "unknown command :frobnicate, try :help")

	_, err = Run(s, ":quit now")
	require.True(t, failure.Is(err, failure.WrongArgumentCount))

	_, err = Run(s, ":vars [")
	require.Error(t, err)
}

func TestTruncate(t *testing.T) {
	s := fresh(20)

	s.memory.Define("g", &memory.Function{
		Params: []string{"y"},
		Body:   tree.NewLeaf(tree.Variable{Name: strings.Repeat("y", 40)}),
	})

	out, err := Run(s, ":funcs g")
	require.NoError(t, err)
	assert.Equal(t, "g(y) = yyyyyyyyyy...", out)
	assert.Len(t, out, 20)

	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "unchanged", truncate("unchanged", 0))
}

func TestBuiltins(t *testing.T) {
	names := []string{}
	for name := range Builtins() {
		names = append(names, name)
	}

	assert.ElementsMatch(t, []string{"bench", "funcs", "help", "quit", "vars", "verbose"}, names)

	out, err := Run(fresh(80), ":help")
	require.NoError(t, err)

	for _, name := range names {
		assert.Contains(t, out, ":"+name)
	}
}
