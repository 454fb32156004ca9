package storage

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"mindnote/internal/logger"
)

// Watcher reports changes to a single watched file. It watches the parent
// directory so that editors which replace files by rename are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   logger.Logger
	onChange func(path string)

	mu     sync.Mutex
	path   string
	dir    string
	closed chan struct{}
	wg     sync.WaitGroup
}

// NewWatcher starts the event loop. onChange runs on the watcher goroutine.
func NewWatcher(log logger.Logger, onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	w := &Watcher{
		watcher:  fw,
		logger:   log,
		onChange: onChange,
		closed:   make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch switches the watched file to path. An empty path stops watching.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}
		path = abs
	}
	if path == w.path {
		return nil
	}

	dir := ""
	if path != "" {
		dir = filepath.Dir(path)
	}

	if dir != w.dir {
		if w.dir != "" {
			if err := w.watcher.Remove(w.dir); err != nil {
				w.logger.Debug("Watcher", "remove watch failed", map[string]interface{}{
					"dir":   w.dir,
					"error": err.Error(),
				})
			}
		}
		if dir != "" {
			if err := w.watcher.Add(dir); err != nil {
				w.path, w.dir = "", ""
				return fmt.Errorf("watch %s: %w", dir, err)
			}
		}
	}

	w.path, w.dir = path, dir
	w.logger.Debug("Watcher", "watching file", map[string]interface{}{
		"path": path,
	})
	return nil
}

// Path returns the currently watched file.
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher", err, nil)
		case <-w.closed:
			return
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	path := w.path
	w.mu.Unlock()

	if path == "" || filepath.Clean(event.Name) != path {
		return
	}

	w.logger.Debug("Watcher", "file changed", map[string]interface{}{
		"path": path,
		"op":   event.Op.String(),
	})
	if w.onChange != nil {
		w.onChange(path)
	}
}

// Shutdown stops the event loop and releases the OS watch.
func (w *Watcher) Shutdown() {
	w.mu.Lock()
	select {
	case <-w.closed:
		w.mu.Unlock()
		return
	default:
		close(w.closed)
	}
	w.mu.Unlock()

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("Watcher", err, nil)
	}
	w.wg.Wait()
}
