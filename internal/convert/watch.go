package convert

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/sowilo/internal/checksum"
	"github.com/starford/sowilo/internal/storage"
)

// debounceInterval batches bursts of filesystem events into one rebuild.
const debounceInterval = 200 * time.Millisecond

// WatchCallback is invoked after each rebuild attempt. The event is
// "rebuilt" with the output path on success, "error" with the input
// directory on failure. It may be nil.
type WatchCallback func(event string, path string)

// Watch rebuilds the combined deck whenever markdown under inputDir
// changes. An initial build runs on startup. Watch blocks until ctx is
// cancelled and returns nil on clean shutdown.
func (c *Converter) Watch(ctx context.Context, inputDir, outputPath, template string, recursive bool, cb WatchCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if recursive {
		if err := addDirsRecursive(w, inputDir); err != nil {
			return err
		}
	} else if err := w.Add(inputDir); err != nil {
		return err
	}

	slog.Info("watch: started",
		slog.String("dir", inputDir),
		slog.String("output", outputPath))

	rebuild := func() {
		if err := c.Directory(ctx, inputDir, outputPath, template, recursive); err != nil {
			slog.Warn("watch: rebuild failed", slog.String("error", err.Error()))
			if cb != nil {
				cb("error", inputDir)
			}
			return
		}
		if cb != nil {
			cb("rebuilt", outputPath)
		}
	}
	rebuild()

	// Lazily created timer so the rebuild channel stays nil until the
	// first event.
	var rebuildTimer *time.Timer
	var rebuildCh <-chan time.Time
	scheduleRebuild := func() {
		if rebuildTimer == nil {
			rebuildTimer = time.NewTimer(debounceInterval)
			rebuildCh = rebuildTimer.C
		} else {
			rebuildTimer.Reset(debounceInterval)
		}
	}

	// Per-file content checksums so editors that rewrite identical bytes
	// do not trigger rebuilds.
	seen := map[string]string{}

	for {
		select {
		case <-ctx.Done():
			if rebuildTimer != nil {
				rebuildTimer.Stop()
			}
			slog.Info("watch: stopped")
			return nil

		case <-rebuildCh:
			rebuild()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			path := ev.Name

			if recursive && ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, path); addErr != nil {
						slog.Warn("watch: failed to watch new directory",
							slog.String("path", path),
							slog.String("error", addErr.Error()))
					} else {
						slog.Debug("watch: watching new directory", slog.String("path", path))
						scheduleRebuild()
					}
					continue
				}
			}

			if !storage.IsMarkdownFile(path) {
				continue
			}

			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				sum, sumErr := checksum.File(path)
				if sumErr == nil && seen[path] == sum {
					continue
				}
				if sumErr == nil {
					seen[path] = sum
				}
				slog.Debug("watch: change detected",
					slog.String("path", path),
					slog.String("op", ev.Op.String()))
				scheduleRebuild()

			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				delete(seen, path)
				slog.Debug("watch: source removed", slog.String("path", path))
				scheduleRebuild()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch: watcher error", slog.String("error", watchErr.Error()))
		}
	}
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
