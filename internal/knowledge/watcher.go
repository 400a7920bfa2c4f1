package knowledge

import (
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher keeps a live Tree snapshot in sync with the backing file. Each
// change produces a freshly loaded, immutable snapshot swapped in atomically;
// in-flight retrievals keep reading the snapshot they started with. This is
// the only goroutine in the system and it never touches conversation state.
type Watcher struct {
	path    string
	logger  *zap.Logger
	fw      *fsnotify.Watcher
	current atomic.Value // Tree
	done    chan struct{}
}

// NewWatcher loads path immediately and then reloads on filesystem changes.
// The watch is on the parent directory so editor save-by-rename is seen.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:   path,
		logger: logger,
		fw:     fw,
		done:   make(chan struct{}),
	}
	w.current.Store(Load(path, logger))
	go w.loop()
	return w, nil
}

// Snapshot returns the current tree. The returned value must be treated as
// read-only.
func (w *Watcher) Snapshot() Tree {
	return w.current.Load().(Tree)
}

// Provider adapts the watcher to the Provider shape the orchestrator takes.
func (w *Watcher) Provider() Provider {
	return w.Snapshot
}

// Close stops watching. The last snapshot stays readable.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) loop() {
	target := filepath.Clean(w.path)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Info("knowledge base changed, reloading", zap.String("path", w.path))
			w.current.Store(Load(w.path, w.logger))
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("knowledge watcher error", zap.Error(err))
		}
	}
}
