// Package element models HTML open tags and their attributes, with every
// attribute name and value positioned in the source text. The scanner is
// built on the lexer package's cursor and wrap protocol.
package element

import (
	"bytes"
	"html"

	"github.com/adhocteam/lexkit/source"
)

type Attr struct {
	Name  source.StringPos
	Value source.StringPos
}

// Tag is one open tag. Offset is the byte position of the tag's '<' in
// the document it was scanned from; it is zero for tags scanned in
// isolation.
type Tag struct {
	Name   string
	Attrs  []*Attr
	Offset source.Pos
}

func (t Tag) String() string {
	if len(t.Attrs) == 0 {
		return t.Name
	}
	buf := bytes.NewBufferString(t.Name)
	for _, a := range t.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Name.Text)
		buf.WriteString(`="`)
		buf.WriteString(html.EscapeString(a.Value.Text))
		buf.WriteByte('"')
	}
	return buf.String()
}

func (t Tag) Start() string {
	return "<" + t.String() + ">"
}

func (t Tag) End() string {
	return "</" + t.Name + ">"
}

func NewTag(tagname []byte, attrs []*Attr) Tag {
	return Tag{Name: string(tagname), Attrs: attrs}
}
