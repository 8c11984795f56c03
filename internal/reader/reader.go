// Released under an MIT license. See LICENSE.

// Package reader encapsulates the computor lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/computor/internal/reader/lexer"
	"github.com/michaelmacinnis/computor/internal/reader/parser"
)

// Read scans and parses the single instruction in line. The label is used
// to identify the source of tokens.
func Read(label, line string) (*parser.Instruction, error) {
	l := lexer.New(label)

	l.Scan(line)

	return parser.New(l.Token).Parse()
}
