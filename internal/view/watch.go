package view

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events an editor produces on save.
const reloadDelay = 100 * time.Millisecond

// Watch re-parses the templates whenever a file under the views directory
// changes, until ctx is done. A template that fails to parse is logged and
// the last good set stays in use.
func (r *Renderer) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating template watcher: %w", err)
	}

	err = filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		_ = watcher.Close()
		return fmt.Errorf("error watching %s: %w", r.dir, err)
	}

	r.logger.Info().Str("dir", r.dir).Msg("watching templates for changes")

	go r.watchLoop(ctx, watcher)
	return nil
}

func (r *Renderer) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	timer := time.NewTimer(reloadDelay)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, pageExt) || (event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write)) {
				continue
			}
			timer.Reset(reloadDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			r.logger.Err(err).Msg("template watcher error")

		case <-timer.C:
			if err := r.Reload(); err != nil {
				r.logger.Err(err).Msg("error reloading templates, keeping previous set")
				continue
			}
			r.logger.Info().Msg("templates reloaded")
		}
	}
}
