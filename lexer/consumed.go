package lexer

// Consumed reports how much input a cursor primitive ate: a rune count
// for caller-side policies and a byte count matching the position
// advance.
type Consumed struct {
	runes int
	bytes int
}

// Runes returns the number of runes consumed.
func (c Consumed) Runes() int {
	return c.runes
}

// Bytes returns the number of bytes consumed.
func (c Consumed) Bytes() int {
	return c.bytes
}

// Any reports whether anything at all was consumed.
func (c Consumed) Any() bool {
	return c.bytes > 0
}

// AtLeast returns ErrUnexpectedInput unless at least n runes were
// consumed. It is the gate for rules like "a decimal point must be
// followed by one or more digits":
//
//	if err := cur.TakeWhile(isDigit).AtLeast(1); err != nil {
//		return KindFloat, err
//	}
func (c Consumed) AtLeast(n int) error {
	if c.runes < n {
		return ErrUnexpectedInput
	}
	return nil
}

// AtMost returns ErrUnexpectedInput if more than n runes were consumed.
func (c Consumed) AtMost(n int) error {
	if c.runes > n {
		return ErrUnexpectedInput
	}
	return nil
}
