// Package lexer removes the positional bookkeeping from hand-written
// lexers. It has two pieces: Cursor, a read position over an immutable
// input buffer with peek/bump/take primitives, and Base, which wraps a
// one-shot classification function so that every call yields a token
// paired with the exact text it consumed, even when classification
// fails.
//
// Classification functions return (kind, error). A non-nil error never
// escapes Wrap: it is converted to a token kind by the caller-supplied
// conversion and absorbed into the token stream. Malformed input becomes
// an "error" token rather than aborting the lexer, so concatenating the
// Text of every yielded token always reconstructs the input exactly.
package lexer

import (
	"errors"
	"iter"

	"github.com/adhocteam/lexkit/source"
)

// Domain errors for classification functions. Any error value works; these
// are the ones the package's own primitives hand out.
var (
	// ErrUnexpectedInput means the input at the cursor doesn't form a
	// valid token.
	ErrUnexpectedInput = errors.New("unexpected input")
	// ErrUnexpectedEOF means the input ended in the middle of a token.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrNoProgress is substituted by Wrap when a classification function
	// consumed nothing; see the zero-progress safeguard on Wrap.
	ErrNoProgress = errors.New("classifier consumed no input")
)

// Token is one classified stretch of input: its kind, the exact text
// consumed, and where that text sits in the original buffer. Text and
// Span always agree; Text is a slice of the session's input, valid as
// long as the input string is.
type Token[K any] struct {
	Kind K
	Text string
	Span source.Span
}

// ClassifyFunc inspects the cursor, consumes at least one rune on every
// path, and reports what it consumed: a token kind, or a domain error
// describing why no definite kind applies.
type ClassifyFunc[K any] func(*Cursor) (K, error)

// Base couples a cursor with the caller's total error-to-kind conversion.
// It is the per-session lexer state that Wrap operates on.
type Base[K any] struct {
	cur     Cursor
	convert func(error) K
}

// New returns a Base over input. convert must map every error a
// classification function can return to some token kind (typically a
// dedicated "error" kind); it is what keeps Wrap total.
func New[K any](input string, convert func(error) K) *Base[K] {
	return &Base[K]{cur: Cursor{input: input}, convert: convert}
}

// Cursor exposes the underlying cursor, for callers that need to inspect
// position between Wrap calls.
func (b *Base[K]) Cursor() *Cursor {
	return &b.cur
}

// Wrap runs one classification attempt and returns the resulting token.
// ok is false only at end of input, in which case classify is not called.
//
// The span of the returned token covers exactly what classify consumed.
// If classify consumed nothing, whether it reported a kind or an error,
// that is a bug in the classifier, and Wrap forces progress itself: it
// consumes exactly one rune and yields convert(ErrNoProgress) for it,
// discarding the classifier's zero-width verdict. Every token is
// therefore non-empty, and a wrap loop terminates on any input.
func (b *Base[K]) Wrap(classify ClassifyFunc[K]) (tok Token[K], ok bool) {
	if b.cur.AtEnd() {
		return tok, false
	}
	start := b.cur.Pos()
	kind, err := classify(&b.cur)
	switch {
	case b.cur.Pos() == start:
		b.cur.Bump()
		kind = b.convert(ErrNoProgress)
	case err != nil:
		kind = b.convert(err)
	}
	return Token[K]{
		Kind: kind,
		Text: b.cur.since(start),
		Span: source.Span{Start: start, End: b.cur.Pos()},
	}, true
}

// Tokens returns the lazy sequence of tokens produced by repeatedly
// wrapping classify until end of input. The sequence is finite for any
// input and any classifier. Restarting requires a new Base over the same
// input; the sequence is not resumable mid-stream.
func (b *Base[K]) Tokens(classify ClassifyFunc[K]) iter.Seq[Token[K]] {
	return func(yield func(Token[K]) bool) {
		for {
			tok, ok := b.Wrap(classify)
			if !ok {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}
