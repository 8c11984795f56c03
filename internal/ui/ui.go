// Released under an MIT license. See LICENSE.

// Package ui provides computor's command-line interface.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/michaelmacinnis/computor/internal/engine/commands"
	"github.com/michaelmacinnis/computor/internal/system/history"
)

// Prompt is displayed before each interactive instruction.
const Prompt = "> "

// Executor is the interface for things that run instructions.
type Executor interface {
	Execute(line string) (string, error)
}

// Lines runs each line read from r. Output goes to stdout and errors go
// to stderr. A failed instruction does not stop the remaining lines.
func Lines(e Executor, r io.Reader, stdout, stderr io.Writer) error {
	s := bufio.NewScanner(r)

	for s.Scan() {
		if !Line(e, s.Text(), stdout, stderr) {
			return nil
		}
	}

	return errors.Wrap(s.Err(), "reading instructions")
}

// Line runs a single line and reports whether the session continues.
func Line(e Executor, line string, stdout, stderr io.Writer) bool {
	s, err := e.Execute(line)

	switch {
	case errors.Is(err, commands.ErrQuit):
		return false
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
	case s != "":
		fmt.Fprintln(stdout, s)
	}

	return true
}

// Run prompts for instructions until end-of-input or :quit.
func Run(e Executor, stdout, stderr io.Writer) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return errors.Wrap(err, "getting terminal mode")
	}

	cli := liner.NewLiner()

	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return errors.Wrap(err, "getting terminal mode")
	}

	cli.SetCtrlCAborts(true)

	err = history.Load(cli.ReadHistory)
	if err != nil {
		slog.Warn("history not loaded", "error", err)
	}

	defer func() {
		err := history.Save(cli.WriteHistory)
		if err != nil {
			slog.Warn("history not saved", "error", err)
		}
	}()

	for {
		err := uncooked.ApplyMode()
		if err != nil {
			return errors.Wrap(err, "entering line editing mode")
		}

		line, err := cli.Prompt(Prompt)

		merr := cooked.ApplyMode()
		if merr != nil {
			return errors.Wrap(merr, "leaving line editing mode")
		}

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(stdout)

			return nil
		default:
			return errors.Wrap(err, "reading instruction")
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		if !Line(e, line, stdout, stderr) {
			return nil
		}
	}
}
