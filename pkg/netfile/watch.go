package netfile

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/ha1tch/skillnet/pkg/skillnet"
)

// Watcher holds the latest valid graph loaded from a file and reloads it
// when the file changes. A reload that fails keeps the previous graph.
type Watcher struct {
	path     string
	mu       sync.RWMutex
	current  *skillnet.Graph
	onChange []func(*skillnet.Graph)
	onError  []func(error)
}

// NewWatcher performs the initial load of path.
func NewWatcher(path string) (*Watcher, error) {
	g, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Watcher{path: path, current: g}, nil
}

// Graph returns the latest valid graph.
func (w *Watcher) Graph() *skillnet.Graph {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers a callback run after each successful reload. Callbacks
// run on the watcher goroutine.
func (w *Watcher) OnChange(fn func(*skillnet.Graph)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// OnError registers a callback run when a reload fails.
func (w *Watcher) OnError(fn func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = append(w.onError, fn)
}

// Watch starts a goroutine that reloads the graph whenever the file is
// written or replaced. The parent directory is watched so editors that
// save by renaming are seen too. Call stop to end it.
func (w *Watcher) Watch() (stop func(), err error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("graph watcher: %w", err)
	}
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("graph watcher add %s: %w", dir, err)
	}
	target := filepath.Clean(w.path)

	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		defer fw.Close()
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					w.Reload()
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				w.fail(fmt.Errorf("graph watcher: %w", err))
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-exited
		})
	}, nil
}

// Reload re-reads the file now.
func (w *Watcher) Reload() (*skillnet.Graph, error) {
	g, err := Load(w.path)
	if err != nil {
		w.fail(err)
		return nil, err
	}
	w.mu.Lock()
	w.current = g
	callbacks := make([]func(*skillnet.Graph), len(w.onChange))
	copy(callbacks, w.onChange)
	w.mu.Unlock()
	for _, fn := range callbacks {
		fn(g)
	}
	return g, nil
}

func (w *Watcher) fail(err error) {
	w.mu.RLock()
	callbacks := make([]func(error), len(w.onError))
	copy(callbacks, w.onError)
	w.mu.RUnlock()
	for _, fn := range callbacks {
		fn(err)
	}
}
