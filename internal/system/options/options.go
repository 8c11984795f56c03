// Released under an MIT license. See LICENSE.

// Package options parses computor's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by --version.
const Version = "computor 1.0.0"

const usage = `computor

Usage:
  computor [-bv] SCRIPT
  computor [-bv] -c COMMAND
  computor [-bv]
  computor -h
  computor --version

Arguments:
  SCRIPT     Path to a file with one instruction per line.

Options:
  -b, --bench            Report the time taken by each instruction.
  -c, --command=COMMAND  Run the specified instruction.
  -v, --verbose          Log each instruction and its tree.
  -h, --help             Display this help.
  --version              Print computor version.

If computor's stdin is a TTY, and computor was invoked with no script or
command, computor prompts for instructions with line editing and history.
Otherwise, instructions are read one per line.
`

// T (options) holds the settings taken from the command line.
type T struct {
	Bench       bool
	Command     string
	Interactive bool
	Script      string
	Verbose     bool
}

type options = T

// Parse parses argv, which excludes the program name. On a usage error,
// or for -h or --version, docopt prints a message and exits.
func Parse(argv []string) (*T, error) {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	o := &options{}

	o.Bench, _ = opts.Bool("--bench")
	o.Command, _ = opts.String("--command")
	o.Script, _ = opts.String("SCRIPT")
	o.Verbose, _ = opts.Bool("--verbose")

	if o.Command == "" && o.Script == "" {
		o.Interactive = isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return o, nil
}
