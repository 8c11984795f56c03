// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for computor instructions.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/computor/internal/common/struct/loc"
	"github.com/michaelmacinnis/computor/internal/common/struct/token"
)

// Operators and punctuation that are their own token class.
const punctuation = "%()*+,-/;=?[]^"

// T holds the state of the scanner.
type T struct {
	bytes  string     // Buffer being scanned.
	first  int        // Index of the current token's first byte.
	index  int        // Index of the current byte.
	runes  int        // Runes scanned so far.
	state  action     // Current action.
	tokens []*token.T // Tokens waiting to be returned.

	source loc.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{
		source: loc.T{
			Char: 1,
			Name: label,
		},
		state: skipWhitespace,
	}
}

// Scan passes a text buffer to the lexer for scanning. Identifiers are
// case-insensitive so the text is folded to lower case.
func (l *T) Scan(text string) {
	l.bytes = l.bytes[l.first:] + strings.ToLower(text)
	l.index -= l.first
	l.first = 0

	if l.state == nil {
		l.state = skipWhitespace
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept(w int) {
	l.runes++
	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.source))
	l.skip()
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source.Char = l.runes + 1
	l.first = l.index
}

// T states.

func scanError(l *T) action {
	for {
		r, w := l.peek()

		if r == eof || separates(r) {
			l.emit(token.Error, l.Text())

			return skipWhitespace
		}

		l.accept(w)
	}
}

func scanNumber(l *T) action {
	dot := false

	for {
		r, w := l.peek()

		switch {
		case r == '.' && !dot:
			dot = true
		case r >= '0' && r <= '9':
		case r == '.':
			return scanError
		default:
			l.emit(token.Number, l.Text())

			return skipWhitespace
		}

		l.accept(w)
	}
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case unicode.IsLetter(r):
			l.accept(w)
		case r == '(':
			s := l.Text()

			l.accept(w)
			l.emit(token.Call, s)

			return skipWhitespace
		default:
			l.emit(token.Symbol, l.Text())

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case unicode.IsSpace(r):
			l.accept(w)
			l.skip()

			continue
		case strings.ContainsRune(punctuation, r):
			l.accept(w)
			l.emit(token.Class(r), l.Text())

			return skipWhitespace
		case r == '.' || (r >= '0' && r <= '9'):
			return scanNumber
		case unicode.IsLetter(r):
			return scanSymbol
		}

		return scanError
	}
}

// Helper functions (well, function).

func separates(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsLetter(r) ||
		(r >= '0' && r <= '9') || strings.ContainsRune(punctuation, r)
}
