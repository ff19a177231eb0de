package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLex(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.calc", "1+2")
	b := writeFile(t, dir, "b.calc", ".5")

	var sb strings.Builder
	if err := Lex(&sb, []string{a, b}); err != nil {
		t.Fatalf("Lex: %v", err)
	}

	want := strings.Join([]string{
		a + ":1:1\tInteger\t\"1\"",
		a + ":1:2\tAdd\t\"+\"",
		a + ":1:3\tInteger\t\"2\"",
		b + ":1:1\tFloat\t\".5\"",
		"",
	}, "\n")
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Lex output mismatch (-want +got):\n%s", diff)
	}
}

func TestLexMissingFile(t *testing.T) {
	var sb strings.Builder
	if err := Lex(&sb, []string{filepath.Join(t.TempDir(), "nope.calc")}); err == nil {
		t.Error("Lex on a missing file = nil error, want error")
	}
}

func TestTags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.html", `<p id="x">hi</p>`)

	var sb strings.Builder
	if err := Tags(&sb, path); err != nil {
		t.Fatalf("Tags: %v", err)
	}

	want := path + ":1:4\t<p>\tid=\"x\"\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Tags output mismatch (-want +got):\n%s", diff)
	}
}
