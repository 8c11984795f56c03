// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/computor/internal/common/validate"
)

const usage = `:bench           toggle timing of each instruction
:funcs [PATTERN] list functions
:help            display this help
:quit            end the session
:vars [PATTERN]  list variables
:verbose         toggle debug logging

name = expr         assign a variable
f(x) = expr         define a function
expr = ?            print a value
expr = expr ?       solve for the unknown`

func bench(s Session, args []string) (string, error) {
	err := validate.Fixed(":bench", len(args), 0, 0)
	if err != nil {
		return "", err
	}

	s.SetBench(!s.Bench())

	return toggled("bench", s.Bench()), nil
}

func help(_ Session, args []string) (string, error) {
	err := validate.Fixed(":help", len(args), 0, 0)
	if err != nil {
		return "", err
	}

	return usage, nil
}

func quit(_ Session, args []string) (string, error) {
	err := validate.Fixed(":quit", len(args), 0, 0)
	if err != nil {
		return "", err
	}

	return "", ErrQuit
}

func verbose(s Session, args []string) (string, error) {
	err := validate.Fixed(":verbose", len(args), 0, 0)
	if err != nil {
		return "", err
	}

	s.SetVerbose(!s.Verbose())

	return toggled("verbose", s.Verbose()), nil
}

func toggled(name string, on bool) string {
	if on {
		return name + " on"
	}

	return name + " off"
}
