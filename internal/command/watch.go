package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/adhocteam/lexkit/internal/watch"
)

// Watch watches root recursively and re-lexes each file as it changes,
// writing tokens to w. It blocks until ctx is canceled.
func Watch(ctx context.Context, w io.Writer, root string) error {
	logger := slog.Default()

	changed := make(chan string)
	if err := watch.Dir(ctx, root, changed); err != nil {
		return fmt.Errorf("watching %q: %w", root, err)
	}
	logger.Info("Watching", "root", root)

	for {
		select {
		case path := <-changed:
			logger.Info("Change detected", "path", path)
			if err := Lex(w, []string{path}); err != nil {
				logger.Error("Lexing failed", "path", path, "error", err)
			}
		case <-ctx.Done():
			return nil
		}
	}
}
