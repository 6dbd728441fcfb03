package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by Next after Close.
var ErrWatcherClosed = errors.New("config watcher closed")

// Watcher reports changes to a config file. It watches the file's
// directory so that editors which save by renaming a temp file over the
// original are still seen.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching path. The directory must exist.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	return &Watcher{path: filepath.Clean(path), watcher: w}, nil
}

// Next blocks until the file is written or created, then loads it. A file
// that was moved away or removed is not loaded; Next waits for it to come
// back. A file that fails to parse is reported through the returned error
// alongside the defaults, the same as Load.
func (w *Watcher) Next(ctx context.Context) (Config, error) {
	for {
		select {
		case <-ctx.Done():
			return Config{}, ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return Config{}, ErrWatcherClosed
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// a rename over the file arrives as Create
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			return Load(w.path)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return Config{}, ErrWatcherClosed
			}
			// Ignore errors but continue watching
		}
	}
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
