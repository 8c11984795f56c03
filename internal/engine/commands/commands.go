// Released under an MIT license. See LICENSE.

// Package commands provides the ':' commands available at the prompt.
package commands

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/michaelmacinnis/computor/internal/common/struct/memory"
)

// ErrQuit is returned by :quit.
var ErrQuit = errors.New("quit")

// Session is the state that commands inspect and change.
type Session interface {
	Bench() bool
	Memory() *memory.T
	SetBench(on bool)
	SetVerbose(on bool)
	Verbose() bool
	Width() int
}

// Command runs with the words that followed its name.
type Command func(s Session, args []string) (string, error)

// Builtins returns the commands by name.
func Builtins() map[string]Command {
	return map[string]Command{
		"bench":   bench,
		"funcs":   funcs,
		"help":    help,
		"quit":    quit,
		"vars":    vars,
		"verbose": verbose,
	}
}

// Run runs the command in line. The line must start with ':'.
func Run(s Session, line string) (string, error) {
	words := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), ":"))
	if len(words) == 0 {
		return "", errors.New("missing command name, try :help")
	}

	c, ok := Builtins()[words[0]]
	if !ok {
		return "", errors.Errorf("unknown command :%s, try :help", words[0])
	}

	return c(s, words[1:])
}
