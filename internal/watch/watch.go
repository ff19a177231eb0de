// Package watch wraps fsnotify with recursive directory watching and
// event debouncing, so editors that write files in several quick
// operations trigger one notification, not many.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 125 * time.Millisecond

// Dir watches root and all its subdirectories and sends the path of each
// created or modified file on changed. Directories created while watching
// are picked up. Dir returns once the watch is established; delivery runs
// until ctx is canceled.
func Dir(ctx context.Context, root string, changed chan<- string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating new fsnotify watcher: %w", err)
	}

	go func() {
		defer watcher.Close()
		debounceEvents(ctx, debounceInterval, watcher, func(event fsnotify.Event) {
			if !watchableFilename(event.Name) {
				return
			}
			if isDir(event.Name) {
				if err := watchDirRecursively(watcher, event.Name); err != nil {
					log.Printf("watching new directory %s: %v", event.Name, err)
				}
				return
			}
			select {
			case changed <- event.Name:
			case <-ctx.Done():
			}
		})
	}()

	if err := watchDirRecursively(watcher, root); err != nil {
		return fmt.Errorf("adding dir to watch: %w", err)
	}
	return nil
}

// watchableFilename tests whether the file is one we want to report a
// change for. it tries not to cause a lot of unnecessary notifications by
// ignoring temporary files from editors like vim and Emacs.
func watchableFilename(path string) bool {
	ext := filepath.Ext(path)
	// ignore vim swap files: .swp, .swo, .swn, etc
	if len(ext) == 4 && strings.HasPrefix(ext, ".sw") {
		return false
	}
	// ignore vim and Emacs backup files
	if strings.HasSuffix(ext, "~") {
		return false
	}
	// ignore Emacs autosave files
	if strings.HasPrefix(ext, "#") && strings.HasSuffix(ext, "#") {
		return false
	}
	return true
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

func watchDirRecursively(watcher *fsnotify.Watcher, root string) error {
	err := fs.WalkDir(os.DirFS(root), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			path = filepath.Join(root, path)
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("adding path %s to watch: %w", path, err)
			}
		}
		return nil
	})
	return err
}

func debounceEvents(ctx context.Context, interval time.Duration, watcher *fsnotify.Watcher, fn func(event fsnotify.Event)) {
	var mu sync.Mutex
	timers := make(map[string]*time.Timer)

	has := func(ev fsnotify.Event, op fsnotify.Op) bool {
		return ev.Op&op == op
	}

	for {
		select {
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("file watch error: %v", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !has(ev, fsnotify.Create) && !has(ev, fsnotify.Write) {
				continue
			}
			mu.Lock()
			t, ok := timers[ev.Name]
			mu.Unlock()
			if !ok {
				t = time.AfterFunc(math.MaxInt64, func() {
					fn(ev)
					mu.Lock()
					defer mu.Unlock()
					delete(timers, ev.Name)
				})
				t.Stop()

				mu.Lock()
				timers[ev.Name] = t
				mu.Unlock()
			}
			t.Reset(interval)
		case <-ctx.Done():
			return
		}
	}
}
