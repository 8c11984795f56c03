// Released under an MIT license. See LICENSE.

// Package engine executes computor instructions.
//
// An instruction is one line. It assigns a variable, defines a function,
// prints a value, reports whether an equality holds or solves an equation
// for its single unknown. Lines that start with ':' are commands.
package engine

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kr/pretty"

	"github.com/michaelmacinnis/computor/internal/common/failure"
	"github.com/michaelmacinnis/computor/internal/common/struct/memory"
	"github.com/michaelmacinnis/computor/internal/common/struct/tree"
	"github.com/michaelmacinnis/computor/internal/common/type/computed"
	"github.com/michaelmacinnis/computor/internal/common/type/imaginary"
	"github.com/michaelmacinnis/computor/internal/engine/commands"
	"github.com/michaelmacinnis/computor/internal/engine/evaluate"
	"github.com/michaelmacinnis/computor/internal/engine/operator"
	"github.com/michaelmacinnis/computor/internal/reader"
)

// Label identifies tokens read by the engine.
const Label = "computor"

// T (engine) holds the state of a computor session.
type T struct {
	bench  bool
	level  *slog.LevelVar
	log    *slog.Logger
	memory *memory.T
	width  int
}

type engine = T

// New creates an engine with an empty memory. The level controls the
// verbosity of log, and width is the number of columns in a listing.
func New(log *slog.Logger, level *slog.LevelVar, width int) *T {
	return &engine{
		level:  level,
		log:    log,
		memory: memory.New(),
		width:  width,
	}
}

// Bench returns true if timing is reported after each instruction.
func (e *engine) Bench() bool {
	return e.bench
}

// Execute runs the instruction or command in line and returns its output.
// The error commands.ErrQuit means that the session is over.
func (e *engine) Execute(line string) (string, error) {
	if strings.HasPrefix(strings.TrimSpace(line), ":") {
		return commands.Run(e, line)
	}

	start := time.Now()

	s, err := e.execute(line)

	if e.bench {
		elapsed := time.Since(start)

		e.log.Info("bench", "elapsed", elapsed)

		if err == nil {
			s = join(s, fmt.Sprintf("(%s)", elapsed))
		}
	}

	return s, err
}

// Memory returns the variables and functions defined in this session.
func (e *engine) Memory() *memory.T {
	return e.memory
}

// SetBench turns timing on or off.
func (e *engine) SetBench(on bool) {
	e.bench = on
}

// SetVerbose turns debug logging on or off.
func (e *engine) SetVerbose(on bool) {
	if on {
		e.level.Set(slog.LevelDebug)
	} else {
		e.level.Set(slog.LevelInfo)
	}
}

// Verbose returns true if debug logging is on.
func (e *engine) Verbose() bool {
	return e.level.Level() <= slog.LevelDebug
}

// Width returns the number of columns available for a listing.
func (e *engine) Width() int {
	return e.width
}

func (e *engine) assign(name string, rhs tree.Node) (string, error) {
	c, err := evaluate.Compute(rhs, e.memory, nil)
	if err != nil {
		return "", err
	}

	if !computed.Concrete(c) {
		return "", unknown(c)
	}

	e.memory.Assign(name, c)

	e.log.Debug("assigned", "name", name, "value", c.String())

	return computed.Unbind(c).String(), nil
}

func (e *engine) define(c tree.Call, body tree.Node) (string, error) {
	if c.Name == "i" {
		return "", reserved()
	}

	seen := map[string]bool{}
	params := make([]string, len(c.Args))

	for n, a := range c.Args {
		name, ok := variable(a)
		switch {
		case isUnit(a):
			return "", reserved()
		case !ok:
			return "", failure.New(
				failure.BadDefinition,
				"parameter %s of %s is not a name", tree.String(a), c.Name,
			)
		case seen[name]:
			return "", failure.New(
				failure.BadDefinition,
				"parameter %s of %s appears more than once", name, c.Name,
			)
		}

		seen[name] = true
		params[n] = name
	}

	f := &memory.Function{Params: params, Body: body}

	e.memory.Define(c.Name, f)

	e.log.Debug("defined", "function", e.memory.Signature(c.Name), "body", f.String())

	return f.String(), nil
}

func (e *engine) equate(lhs, rhs tree.Node) (string, error) {
	l, err := evaluate.Compute(lhs, e.memory, nil)
	if err != nil {
		return "", err
	}

	r, err := evaluate.Compute(rhs, e.memory, nil)
	if err != nil {
		return "", err
	}

	l, r = computed.Unbind(l), computed.Unbind(r)

	if computed.Concrete(l) && computed.Concrete(r) {
		if equal(l, r) {
			return "True.", nil
		}

		return "False.", nil
	}

	d, err := difference(l, r)
	if err != nil {
		return "", err
	}

	s, err := d.Solve()
	if err != nil {
		return "", err
	}

	e.log.Debug("solved", "unknown", s.Unknown, "degree", s.Degree, "reduced", s.Reduced)

	return s.String(), nil
}

func (e *engine) execute(line string) (string, error) {
	i, err := reader.Read(Label, line)
	if err != nil {
		return "", err
	}

	if i.Tree == nil {
		if i.Query {
			return "", failure.New(failure.ResolveMarker, "resolve marker not alone")
		}

		return "", nil
	}

	e.log.Debug("instruction", "line", line, "query", i.Query)

	if e.Verbose() {
		e.log.Debug("tree", "dump", pretty.Sprint(i.Tree))
	}

	if invalid := tree.Invalids(i.Tree); len(invalid) > 0 {
		diagnostics := make([]string, len(invalid))
		for n, v := range invalid {
			diagnostics[n] = v.Diagnostic
		}

		return "", failure.New(
			failure.Lexical,
			"invalid tokens: %d (%s)",
			len(invalid), strings.Join(diagnostics, ", "),
		)
	}

	b, ok := i.Tree.(*tree.Branch)
	if !ok || b.Op != tree.Equal || b.Parenthesized {
		if i.Query {
			return "", failure.New(failure.ResolveMarker, "'?' needs an '='")
		}

		return e.show(i.Tree)
	}

	if b.Left == nil || b.Right == nil {
		return "", failure.New(failure.MissingOperand, "missing operand around '='")
	}

	if isResolve(b.Right) {
		return e.resolve(b.Left)
	}

	if !i.Query {
		if isUnit(b.Left) {
			return "", reserved()
		}

		if name, ok := variable(b.Left); ok {
			return e.assign(name, b.Right)
		}

		if c, ok := call(b.Left); ok {
			return e.define(c, b.Right)
		}
	}

	return e.equate(b.Left, b.Right)
}

func (e *engine) resolve(n tree.Node) (string, error) {
	v, err := evaluate.Compute(n, e.memory, nil)
	if err != nil {
		if symbolic(err) {
			if s, ok := e.expand(n); ok {
				e.log.Debug("expanded", "error", err)

				return s, nil
			}
		}

		return "", err
	}

	v = computed.Unbind(v)

	if computed.Concrete(v) {
		return v.String(), nil
	}

	if s, ok := e.expand(n); ok {
		return s, nil
	}

	if q, ok := v.(computed.Equation); ok {
		return q.Prune().String(), nil
	}

	return v.String(), nil
}

// expand returns the body of the function called by n with the
// arguments of the call substituted for its parameters.
func (e *engine) expand(n tree.Node) (string, bool) {
	c, ok := call(n)
	if !ok {
		return "", false
	}

	f, ok := e.memory.Function(c.Name)
	if !ok {
		return "", false
	}

	return tree.String(f.Expand(c.Args)), true
}

func (e *engine) show(n tree.Node) (string, error) {
	v, err := evaluate.Compute(n, e.memory, nil)
	if err != nil {
		return "", err
	}

	v = computed.Unbind(v)

	if !computed.Concrete(v) {
		return "", unknown(v)
	}

	return v.String(), nil
}

// Helper functions.

func call(n tree.Node) (tree.Call, bool) {
	if l, ok := n.(tree.Leaf); ok {
		c, ok := l.Term.(tree.Call)

		return c, ok
	}

	return tree.Call{}, false
}

func difference(l, r computed.T) (computed.Equation, error) {
	d, err := operator.Apply(tree.Sub, l, r)
	if err != nil {
		return computed.Equation{}, err
	}

	q, ok := d.(computed.Equation)
	if !ok {
		return computed.Equation{}, failure.New(
			failure.BadOperatorUse, "nothing to solve in %s", d,
		)
	}

	return q, nil
}

func equal(l, r computed.T) bool {
	switch l := l.(type) {
	case computed.Matrix:
		if r, ok := r.(computed.Matrix); ok {
			return l.Equal(r.T)
		}
	case computed.Value:
		if r, ok := r.(computed.Value); ok {
			return l.Equal(r.T)
		}
	}

	return false
}

func isResolve(n tree.Node) bool {
	if l, ok := n.(tree.Leaf); ok {
		_, ok = l.Term.(tree.Resolve)

		return ok
	}

	return false
}

func isUnit(n tree.Node) bool {
	if l, ok := n.(tree.Leaf); ok {
		o, ok := l.Term.(tree.Operand)

		return ok && o.Value.Equal(imaginary.Unit())
	}

	return false
}

func join(s, line string) string {
	if s == "" {
		return line
	}

	return s + "\n" + line
}

func reserved() error {
	return failure.New(failure.ReservedName, "i is the imaginary unit")
}

// symbolic reports whether err comes from algebra that an unknown could
// not take part in, rather than from a mistake in the call itself.
func symbolic(err error) bool {
	switch failure.KindOf(err) {
	case failure.BadPower, failure.DivideByEquation, failure.TooManyUnknowns:
		return true
	}

	return false
}

func unknown(c computed.T) error {
	name := c.String()
	if q, ok := c.(computed.Equation); ok {
		name = q.Unknown()
	}

	return failure.New(failure.UnknownVariable, "unknown variable %s", name)
}

func variable(n tree.Node) (string, bool) {
	if l, ok := n.(tree.Leaf); ok {
		v, ok := l.Term.(tree.Variable)

		return v.Name, ok
	}

	return "", false
}
