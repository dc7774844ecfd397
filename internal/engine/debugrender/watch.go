package debugrender

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/debugdraw/internal/engine/texture"
	"github.com/Faultbox/debugdraw/internal/logger"
)

// IconWatcher reports icon files that changed on disk so their cached
// handles can be dropped and reloaded.
type IconWatcher struct {
	dir     string
	watcher *fsnotify.Watcher
	log     *zap.Logger
}

// WatchIcons starts watching dir. Subdirectories are not watched.
func WatchIcons(dir string) (*IconWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	return &IconWatcher{dir: dir, watcher: w, log: logger.Named("icons")}, nil
}

// Poll drains pending events without blocking and calls changed once per
// event with the icon names a cache might hold for that file: the file name
// and the name without its extension.
func (w *IconWatcher) Poll(changed func(id string)) {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			ids := iconIDs(w.dir, ev.Name)
			if len(ids) == 0 {
				continue
			}
			w.log.Debug("icon changed", zap.String("path", ev.Name), zap.Stringer("op", ev.Op))
			for _, id := range ids {
				changed(id)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("icon watcher error", zap.Error(err))
		default:
			return
		}
	}
}

// Close stops watching.
func (w *IconWatcher) Close() error {
	return w.watcher.Close()
}

// iconIDs maps a changed file to the names it can be requested by.
func iconIDs(dir, path string) []string {
	if !texture.Supported(path) {
		return nil
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil
	}
	rel = filepath.ToSlash(rel)
	return []string{rel, strings.TrimSuffix(rel, filepath.Ext(rel))}
}
