package flamingarrows

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce drops repeated change events for the same file.
const reloadDebounce = 100 * time.Millisecond

// reloader is implemented by Manager.
type reloader interface {
	Reload() error
}

// configWatcher reloads settings when the config file changes on disk.
// The directory is watched rather than the file so editors that replace the
// file on save are picked up.
type configWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	target  reloader
	log     *slog.Logger

	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

func watchConfig(path string, target reloader, log *slog.Logger) (*configWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	cw := &configWatcher{
		watcher: w,
		path:    abs,
		target:  target,
		log:     log,
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Close stops the watcher and waits for it to finish.
func (w *configWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
	})
	return err
}

func (w *configWatcher) run() {
	defer close(w.doneCh)

	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < reloadDebounce {
				continue
			}
			last = now

			if err := w.target.Reload(); err != nil {
				w.log.Warn("flamingarrows: reload config", "path", w.path, "error", err)
				continue
			}
			w.log.Info("flamingarrows: config reloaded", "path", w.path)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("flamingarrows: config watcher", "error", err)
		case <-w.closeCh:
			return
		}
	}
}
