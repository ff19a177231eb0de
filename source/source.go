// Package source has the positioned-text types shared by the lexer core
// and its clients: byte offsets, half-open spans, and a line/column index
// over an input buffer.
package source

// Pos is a byte offset into an input buffer. A Pos produced by this
// module always lands on a UTF-8 boundary of the buffer it was measured
// against.
type Pos int

// Span is the half-open byte range [Start, End) over an input buffer.
type Span struct {
	Start Pos
	End   Pos
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return int(s.End - s.Start)
}

// Text slices input down to the span. The input must be the same buffer
// the span was measured against.
func (s Span) Text(input string) string {
	return input[s.Start:s.End]
}

// StringPos is a string along with the position of its first byte in the
// source text.
type StringPos struct {
	Text  string
	Start Pos
}
