package element

import (
	"fmt"
	"io"
	"strings"

	"github.com/adhocteam/lexkit/lexer"
	"github.com/adhocteam/lexkit/source"
	"golang.org/x/net/html"
)

// The open-tag scanner re-tokenizes start (and self-closing) tags to
// recover the exact byte position of every attribute name and value. The
// golang.org/x/net/html tokenizer that ScanDocument walks the document
// with reports positions for whole tokens only via Raw(), not for the
// attributes inside a tag, so the tag text gets a second, position-aware
// pass here. The second pass is a plain wrap-loop lexer: the tag is split
// into structural tokens and the attributes are assembled from the token
// stream.

type tagToken int

const (
	tagTokenError tagToken = iota
	tagTokenOpen   // "<"
	tagTokenClose  // ">" or "/>"
	tagTokenSpace  // whitespace or a stray solidus
	tagTokenEquals // "="
	tagTokenWord   // tag name, attribute name, or unquoted value
	tagTokenQuoted // quoted attribute value, quotes included
)

func isTagSpace(r rune) bool {
	return r == '\t' || r == '\n' || r == '\f' || r == ' '
}

func isNameRune(r rune) bool {
	return !isTagSpace(r) && !strings.ContainsRune(`<>/="'`+"`", r)
}

// Unquoted values additionally admit '/', per the HTML5 tokenization
// rules for the attribute value (unquoted) state (so href=/home works);
// a lone '/' only self-closes outside a value.
func isUnquotedValueRune(r rune) bool {
	return isNameRune(r) || r == '/'
}

// ScanAttrs scans a single open tag for its attributes. Attribute
// positions are byte offsets into openTag; quoted values are positioned
// at their first byte inside the quotes. Attribute value text is kept
// verbatim, character references included.
func ScanAttrs(openTag string) ([]*Attr, error) {
	if len(openTag) == 0 {
		return []*Attr{}, nil
	}
	if ch := openTag[0]; ch != '<' {
		return nil, fmt.Errorf("expected '<', got %q", ch)
	}

	b := lexer.New(openTag, func(error) tagToken { return tagTokenError })

	attrs := []*Attr{}
	var pending *Attr // last attribute name, possibly awaiting a value
	sawTagName := false
	sawEquals := false
	closed := false

	// the classifier shares sawEquals with the assembler loop below:
	// whether a word or a solidus is part of a value depends on whether
	// an '=' is still unconsumed
	classify := func(cur *lexer.Cursor) (tagToken, error) {
		c, _ := cur.Peek()
		switch {
		case c == '<':
			cur.Bump()
			return tagTokenOpen, nil
		case c == '>':
			cur.Bump()
			return tagTokenClose, nil
		case c == '/' && !sawEquals:
			cur.Bump()
			if cur.Take(">").Any() {
				return tagTokenClose, nil
			}
			// a solidus that doesn't close the tag separates
			// attributes, same as whitespace
			return tagTokenSpace, nil
		case isTagSpace(c):
			cur.TakeWhile(isTagSpace)
			return tagTokenSpace, nil
		case c == '=':
			cur.Bump()
			return tagTokenEquals, nil
		case c == '"' || c == '\'':
			quote, _ := cur.Bump()
			cur.TakeWhile(func(r rune) bool { return r != quote })
			if !cur.Take(string(quote)).Any() {
				return tagTokenQuoted, lexer.ErrUnexpectedEOF
			}
			return tagTokenQuoted, nil
		case sawEquals:
			cur.TakeWhile(isUnquotedValueRune)
			return tagTokenWord, nil
		default:
			cur.TakeWhile(isNameRune)
			return tagTokenWord, nil
		}
	}

	for tok := range b.Tokens(classify) {
		switch tok.Kind {
		case tagTokenError:
			return nil, fmt.Errorf("invalid input %q at offset %d in open tag", tok.Text, tok.Span.Start)
		case tagTokenOpen, tagTokenSpace:
			// structural, nothing to record
		case tagTokenEquals:
			if pending == nil || sawEquals {
				return nil, fmt.Errorf("unexpected '=' at offset %d in open tag", tok.Span.Start)
			}
			sawEquals = true
		case tagTokenWord:
			if !sawTagName {
				sawTagName = true
				continue
			}
			if sawEquals {
				pending.Value = source.StringPos{Text: tok.Text, Start: tok.Span.Start}
				pending, sawEquals = nil, false
				continue
			}
			pending = &Attr{Name: source.StringPos{Text: tok.Text, Start: tok.Span.Start}}
			attrs = append(attrs, pending)
		case tagTokenQuoted:
			if !sawEquals {
				return nil, fmt.Errorf("unexpected quoted string at offset %d in open tag", tok.Span.Start)
			}
			pending.Value = source.StringPos{
				Text:  tok.Text[1 : len(tok.Text)-1],
				Start: tok.Span.Start + 1,
			}
			pending, sawEquals = nil, false
		case tagTokenClose:
			closed = true
		}
		if closed {
			break
		}
	}

	if !closed {
		return nil, fmt.Errorf("unterminated open tag")
	}
	if sawEquals {
		return nil, fmt.Errorf("missing attribute value")
	}
	return attrs, nil
}

// ScanDocument tokenizes a whole HTML document and scans every start and
// self-closing tag for positioned attributes. Positions are byte offsets
// into the document, not into the individual tag.
func ScanDocument(r io.Reader) ([]Tag, error) {
	z := html.NewTokenizer(r)
	var tags []Tag
	var pos source.Pos
	for {
		tt := z.Next()
		raw := string(z.Raw())
		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return tags, nil
			}
			return nil, fmt.Errorf("tokenizing HTML: %w", z.Err())
		case html.StartTagToken, html.SelfClosingTagToken:
			attrs, err := ScanAttrs(raw)
			if err != nil {
				return nil, fmt.Errorf("scanning tag at offset %d: %w", pos, err)
			}
			for _, a := range attrs {
				a.Name.Start += pos
				// unset values stay the zero StringPos; a set value
				// always starts past the '<' so Start is never 0
				if a.Value.Start != 0 {
					a.Value.Start += pos
				}
			}
			name, _ := z.TagName()
			tag := NewTag(name, attrs)
			tag.Offset = pos
			tags = append(tags, tag)
		}
		pos += source.Pos(len(raw))
	}
}
