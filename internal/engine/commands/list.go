// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/computor/internal/common/type/computed"
	"github.com/michaelmacinnis/computor/internal/common/validate"
)

func funcs(s Session, args []string) (string, error) {
	m := s.Memory()

	return list(":funcs", s.Width(), args, m.Functions(), func(name string) string {
		f, _ := m.Function(name)

		return m.Signature(name) + " = " + f.String()
	})
}

func vars(s Session, args []string) (string, error) {
	m := s.Memory()

	return list(":vars", s.Width(), args, m.Variables(), func(name string) string {
		v, _ := m.Variable(name)
		if _, ok := v.(computed.Matrix); ok {
			return name + " =\n" + v.String()
		}

		return name + " = " + v.String()
	})
}

func list(
	command string, width int, args, names []string, describe func(string) string,
) (string, error) {
	err := validate.Fixed(command, len(args), 0, 1)
	if err != nil {
		return "", err
	}

	pattern := "*"
	if len(args) == 1 {
		pattern = args[0]
	}

	var lines []string

	for _, name := range names {
		ok, err := adapted.Match(pattern, name)
		if err != nil {
			return "", err
		}

		if !ok {
			continue
		}

		for _, line := range strings.Split(describe(name), "\n") {
			lines = append(lines, truncate(line, width))
		}
	}

	return strings.Join(lines, "\n"), nil
}

func truncate(s string, width int) string {
	if width < 4 || utf8.RuneCountInString(s) <= width {
		return s
	}

	r := []rune(s)

	return string(r[:width-3]) + "..."
}
