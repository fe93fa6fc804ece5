package theme

import (
	"AdminDeck/internal/logger"
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the theme file at path whenever it changes and hands the new
// tokens to onChange. The directory is watched rather than the file so that
// editors that save by rename are picked up. Watch returns once the watcher is
// running; it stops when ctx is done.
func Watch(ctx context.Context, path string, onChange func(Tokens)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return err
	}

	target := filepath.Clean(path)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				tokens, err := LoadFile(path)
				if err != nil {
					logger.Warn(ctx, "Theme reload failed", "path", path, "error", err)
					continue
				}
				logger.Debug(ctx, "Theme reloaded", "path", path)
				onChange(tokens)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn(ctx, "Theme watcher error", "error", err)
			}
		}
	}()
	return nil
}
