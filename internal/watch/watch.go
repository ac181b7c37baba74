// Package watch reruns a callback whenever a file changes on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher watches a single file and calls onChange after every write.
type Watcher struct {
	path     string
	logger   zerolog.Logger
	onChange func() error

	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a Watcher for path. Call Start to begin watching.
func New(path string, logger zerolog.Logger, onChange func() error) *Watcher {
	return &Watcher{
		path:     path,
		logger:   logger,
		onChange: onChange,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins watching the file's directory in a background goroutine.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Editors that save atomically replace the file, so watch the directory.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	w.watcher = watcher

	go w.loop()

	w.logger.Info().Str("path", w.path).Msg("watching schema file for changes")

	return nil
}

// Stop stops watching and waits for the background goroutine to exit.
// It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)

		if w.watcher != nil {
			w.watcher.Close()
			<-w.done
		}
	})
}

func (w *Watcher) loop() {
	defer close(w.done)

	filename := filepath.Base(w.path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			w.logger.Debug().
				Str("event", event.Op.String()).
				Str("file", event.Name).
				Msg("schema file changed")

			if err := w.onChange(); err != nil {
				w.logger.Error().Err(err).Msg("regeneration failed")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			w.logger.Error().Err(err).Msg("file watcher error")

		case <-w.stopCh:
			return
		}
	}
}
