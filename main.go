// Released under an MIT license. See LICENSE.

/*
Computor is an interactive algebraic calculator.

It evaluates exact arithmetic over rational and complex numbers and
matrices, keeps variables and functions for the length of a session, and
solves polynomial equations of degree two or less in one unknown:

	> x = 2
	2
	> f(y) = y ^ 2 + x
	y ^ 2 + x
	> f(3) = ?
	11
	> y ^ 2 - 1 = 0 ?
	Reduced form: y^2 - 1 = 0
	Polynomial degree: 2
	Delta is strictly positive, the two solutions are:
	y = 1
	y = -1

Computor is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/michaelmacinnis/computor/internal/engine"
	"github.com/michaelmacinnis/computor/internal/system/options"
	"github.com/michaelmacinnis/computor/internal/system/terminal"
	"github.com/michaelmacinnis/computor/internal/ui"
)

func main() {
	o, err := options.Parse(os.Args[1:])
	if err == nil {
		err = run(o, os.Stdin, os.Stdout, os.Stderr)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(o *options.T, stdin io.Reader, stdout, stderr io.Writer) error {
	level := &slog.LevelVar{}
	if o.Verbose {
		level.Set(slog.LevelDebug)
	}

	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	e := engine.New(logger, level, terminal.Width(os.Stdout.Fd()))
	e.SetBench(o.Bench)

	switch {
	case o.Command != "":
		ui.Line(e, o.Command, stdout, stderr)

		return nil
	case o.Script != "":
		f, err := os.Open(o.Script)
		if err != nil {
			return errors.Wrap(err, "opening script")
		}
		defer f.Close()

		return ui.Lines(e, f, stdout, stderr)
	case o.Interactive:
		return ui.Run(e, stdout, stderr)
	}

	return ui.Lines(e, stdin, stdout, stderr)
}
