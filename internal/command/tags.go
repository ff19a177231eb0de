package command

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adhocteam/lexkit/element"
	"github.com/adhocteam/lexkit/source"
)

// Tags scans an HTML file for open tags and writes one line per
// attribute to w, with the document position of the attribute name and
// value.
func Tags(w io.Writer, path string) error {
	logger := slog.Default()

	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	tags, err := element.ScanDocument(bytes.NewReader(text))
	if err != nil {
		return fmt.Errorf("scanning %q: %w", path, err)
	}

	idx := source.NewIndex(string(text))
	nattrs := 0
	for _, tag := range tags {
		for _, a := range tag.Attrs {
			nattrs++
			line, col := idx.Position(a.Name.Start)
			fmt.Fprintf(w, "%s:%d:%d\t<%s>\t%s=%q\n", path, line, col, tag.Name, a.Name.Text, a.Value.Text)
		}
	}
	logger.Info("Scanned", "path", path, "tags", len(tags), "attrs", nattrs)
	return nil
}
