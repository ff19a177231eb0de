package element

import (
	"strings"
	"testing"

	"github.com/adhocteam/lexkit/source"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

func TestScanAttrs(t *testing.T) {
	tests := []struct {
		input string
		want  []*Attr
	}{
		{
			"<div>",
			[]*Attr{},
		},
		{
			"<div/>",
			[]*Attr{},
		},
		{
			"<div disabled>",
			[]*Attr{{Name: source.StringPos{Text: "disabled", Start: source.Pos(5)}}},
		},
		{
			`<div class="foo">`,
			[]*Attr{{
				Name:  source.StringPos{Text: "class", Start: source.Pos(5)},
				Value: source.StringPos{Text: "foo", Start: source.Pos(12)},
			}},
		},
		{
			"<div id=foo>",
			[]*Attr{{
				Name:  source.StringPos{Text: "id", Start: source.Pos(5)},
				Value: source.StringPos{Text: "foo", Start: source.Pos(8)},
			}},
		},
		{
			`<input type='checkbox' checked/>`,
			[]*Attr{
				{
					Name:  source.StringPos{Text: "type", Start: source.Pos(7)},
					Value: source.StringPos{Text: "checkbox", Start: source.Pos(13)},
				},
				{Name: source.StringPos{Text: "checked", Start: source.Pos(23)}},
			},
		},
		{
			`<p   data-^name="/foo/bar/^value"   thing="^asd"  >`,
			[]*Attr{
				{
					Name:  source.StringPos{Text: "data-^name", Start: source.Pos(5)},
					Value: source.StringPos{Text: "/foo/bar/^value", Start: source.Pos(17)},
				},
				{
					Name:  source.StringPos{Text: "thing", Start: source.Pos(36)},
					Value: source.StringPos{Text: "^asd", Start: source.Pos(43)},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ScanAttrs(tt.input)
			if err != nil {
				t.Fatalf("ScanAttrs: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ScanAttrs(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestScanAttrsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not an open tag", "div>"},
		{"missing attribute value", "<div id=>"},
		{"unterminated tag", "<div id"},
		{"unterminated quote", `<div id="foo`},
		{"value without name", `<div ="foo">`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ScanAttrs(tt.input); err == nil {
				t.Errorf("ScanAttrs(%q) = nil error, want error", tt.input)
			}
		})
	}
}

// Attribute names and values scanned here must agree with what the
// golang.org/x/net/html tokenizer reports for the same tag; this scanner
// only adds byte positions on top.
func TestScanAttrsMatchesNetHTML(t *testing.T) {
	inputs := []string{
		"<div>",
		"<div disabled>",
		`<div class="foo">`,
		"<a href=/home target=_blank>",
		`<input type='checkbox' checked/>`,
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := ScanAttrs(input)
			if err != nil {
				t.Fatalf("ScanAttrs: %v", err)
			}

			z := html.NewTokenizer(strings.NewReader(input))
			if tt := z.Next(); tt != html.StartTagToken && tt != html.SelfClosingTagToken {
				t.Fatalf("tokenizer produced %v, want start tag", tt)
			}
			tok := z.Token()

			if len(got) != len(tok.Attr) {
				t.Fatalf("attr count = %d, tokenizer found %d", len(got), len(tok.Attr))
			}
			for i, a := range tok.Attr {
				if got[i].Name.Text != a.Key {
					t.Errorf("attr %d name = %q, tokenizer says %q", i, got[i].Name.Text, a.Key)
				}
				if got[i].Value.Text != a.Val {
					t.Errorf("attr %d value = %q, tokenizer says %q", i, got[i].Value.Text, a.Val)
				}
			}
		})
	}
}

func TestScanDocument(t *testing.T) {
	doc := `<html><body class="main">
<p id="one">hi</p>
<img src="pic.png"/>
</body></html>`

	tags, err := ScanDocument(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ScanDocument: %v", err)
	}

	want := []Tag{
		{Name: "html", Attrs: []*Attr{}},
		{Name: "body", Offset: 6, Attrs: []*Attr{{
			Name:  source.StringPos{Text: "class", Start: source.Pos(12)},
			Value: source.StringPos{Text: "main", Start: source.Pos(19)},
		}}},
		{Name: "p", Offset: 26, Attrs: []*Attr{{
			Name:  source.StringPos{Text: "id", Start: source.Pos(29)},
			Value: source.StringPos{Text: "one", Start: source.Pos(33)},
		}}},
		{Name: "img", Offset: 45, Attrs: []*Attr{{
			Name:  source.StringPos{Text: "src", Start: source.Pos(50)},
			Value: source.StringPos{Text: "pic.png", Start: source.Pos(55)},
		}}},
	}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Errorf("ScanDocument mismatch (-want +got):\n%s", diff)
	}

	// positions are document offsets: slicing the document at each
	// attribute's position must give back its text
	for _, tag := range tags {
		for _, a := range tag.Attrs {
			if got := doc[a.Name.Start : int(a.Name.Start)+len(a.Name.Text)]; got != a.Name.Text {
				t.Errorf("name position %d points at %q, want %q", a.Name.Start, got, a.Name.Text)
			}
			if a.Value.Start != 0 {
				if got := doc[a.Value.Start : int(a.Value.Start)+len(a.Value.Text)]; got != a.Value.Text {
					t.Errorf("value position %d points at %q, want %q", a.Value.Start, got, a.Value.Text)
				}
			}
		}
	}
}
