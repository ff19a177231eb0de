package source

import (
	"sort"
	"strings"
)

// Index translates byte offsets in an input buffer to 1-based line and
// column numbers. Build one per buffer; lookups are O(log lines).
type Index struct {
	input string
	// byte offset of the first byte of each line
	lineStarts []Pos
}

// NewIndex scans input once and records where each line begins.
func NewIndex(input string) *Index {
	starts := []Pos{0}
	off := 0
	for {
		i := strings.IndexByte(input[off:], '\n')
		if i < 0 {
			break
		}
		off += i + 1
		starts = append(starts, Pos(off))
	}
	return &Index{input: input, lineStarts: starts}
}

// Position returns the 1-based line and column of pos. Column counts
// runes, not bytes. pos is clamped to the input length.
func (x *Index) Position(pos Pos) (line, col int) {
	if pos > Pos(len(x.input)) {
		pos = Pos(len(x.input))
	}
	n := sort.Search(len(x.lineStarts), func(i int) bool {
		return x.lineStarts[i] > pos
	})
	start := x.lineStarts[n-1]
	col = 1 + len([]rune(x.input[start:pos]))
	return n, col
}
