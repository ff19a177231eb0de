package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/adhocteam/lexkit/mathlex"
	"github.com/adhocteam/lexkit/source"
	"golang.org/x/sync/errgroup"
)

// Lex tokenizes each file with the arithmetic lexer and writes one line
// per token to w: path:line:col, kind, text. Files are lexed
// concurrently; output is written in argument order once all files are
// done.
func Lex(w io.Writer, paths []string) error {
	logger := slog.Default()

	outs := make([]string, len(paths))
	g := new(errgroup.Group)
	for i, path := range paths {
		g.Go(func() error {
			text, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %q: %w", path, err)
			}
			outs[i] = formatTokens(path, string(text))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range outs {
		if _, err := io.WriteString(w, out); err != nil {
			return fmt.Errorf("writing tokens: %w", err)
		}
	}
	logger.Info("Lexed", "files", len(paths))
	return nil
}

func formatTokens(path, text string) string {
	idx := source.NewIndex(text)
	var sb strings.Builder
	for tok := range mathlex.Tokens(text) {
		line, col := idx.Position(tok.Span.Start)
		fmt.Fprintf(&sb, "%s:%d:%d\t%s\t%q\n", path, line, col, tok.Kind, tok.Text)
	}
	return sb.String()
}
