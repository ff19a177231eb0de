package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/adhocteam/lexkit/source"
)

// Cursor is a read position over an immutable input buffer. The buffer is
// never copied; every consumption primitive just moves the position
// forward, always landing on a rune boundary. A Cursor is created once
// per lexing session and is not safe for concurrent use.
type Cursor struct {
	input string
	pos   source.Pos
}

// NewCursor returns a cursor sitting at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{input: input}
}

// Pos returns the current byte offset into the input.
func (c *Cursor) Pos() source.Pos {
	return c.pos
}

// Rest returns the not-yet-consumed suffix of the input.
func (c *Cursor) Rest() string {
	return c.input[c.pos:]
}

// AtEnd reports whether the whole input has been consumed.
func (c *Cursor) AtEnd() bool {
	return int(c.pos) == len(c.input)
}

// Peek returns the next rune without consuming it. ok is false at end of
// input.
func (c *Cursor) Peek() (r rune, ok bool) {
	if c.AtEnd() {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(c.Rest())
	return r, true
}

// Bump consumes and returns the next rune, advancing past its full UTF-8
// width. At end of input it consumes nothing and ok is false.
func (c *Cursor) Bump() (r rune, ok bool) {
	if c.AtEnd() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.Rest())
	c.pos += source.Pos(size)
	return r, true
}

// Take consumes lit if the remaining input starts with it, reporting one
// match. On mismatch (or insufficient remaining input) nothing is
// consumed and the report is empty.
func (c *Cursor) Take(lit string) Consumed {
	if !strings.HasPrefix(c.Rest(), lit) {
		return Consumed{}
	}
	c.pos += source.Pos(len(lit))
	return Consumed{runes: utf8.RuneCountInString(lit), bytes: len(lit)}
}

// TakeWhile consumes the longest run of runes satisfying pred and reports
// how much was consumed. A zero-length run is a valid outcome, not an
// error; callers wanting "at least N" promote it with Consumed.AtLeast.
func (c *Cursor) TakeWhile(pred func(rune) bool) Consumed {
	var con Consumed
	for {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			return con
		}
		size := utf8.RuneLen(r)
		c.pos += source.Pos(size)
		con.runes++
		con.bytes += size
	}
}

// since returns the text consumed between an earlier position of this
// cursor and now.
func (c *Cursor) since(start source.Pos) string {
	return c.input[start:c.pos]
}
