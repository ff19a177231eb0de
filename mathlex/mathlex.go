// Package mathlex is a small arithmetic lexer built on the lexer package.
// It exists as the reference client of the cursor/wrap core: the lexkit
// CLI tokenizes with it, and it shows the intended shape of a
// classification function — peek, switch, consume, gate with AtLeast.
package mathlex

import (
	"iter"

	"github.com/adhocteam/lexkit/lexer"
)

type TokenKind int

const (
	Error TokenKind = iota
	Whitespace
	Add
	Float
	Integer
)

func (k TokenKind) String() string {
	switch k {
	case Error:
		return "Error"
	case Whitespace:
		return "Whitespace"
	case Add:
		return "Add"
	case Float:
		return "Float"
	case Integer:
		return "Integer"
	default:
		panic("unknown token kind")
	}
}

// kindOf is the total error conversion: every failed classification
// becomes an Error token.
func kindOf(error) TokenKind {
	return Error
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Classify consumes one token's worth of input. Numbers follow the rule
// that a decimal point must be followed by at least one digit, so "4." is
// a classification error while ".5" is a float.
func Classify(cur *lexer.Cursor) (TokenKind, error) {
	c, _ := cur.Peek()
	switch {
	case isSpace(c):
		cur.TakeWhile(isSpace)
		return Whitespace, nil
	case c == '.' || isDigit(c):
		cur.TakeWhile(isDigit)
		if cur.Take(".").Any() {
			if err := cur.TakeWhile(isDigit).AtLeast(1); err != nil {
				return Error, err
			}
			return Float, nil
		}
		return Integer, nil
	case c == '+':
		cur.Bump()
		return Add, nil
	default:
		cur.Bump()
		return Error, lexer.ErrUnexpectedInput
	}
}

// Tokens lexes input lazily. Every byte of input shows up in exactly one
// token, in order.
func Tokens(input string) iter.Seq[lexer.Token[TokenKind]] {
	return lexer.New(input, kindOf).Tokens(Classify)
}
