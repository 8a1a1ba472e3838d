package config

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces rapid write events into one reload.
const debounceDelay = 100 * time.Millisecond

// Watcher watches configuration files and invokes a callback after
// changes. Events are debounced so editors that write in multiple steps
// trigger a single reload.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func()

	mu     sync.Mutex
	timer  *time.Timer
	closed bool

	closeCh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher starts watching the given paths. Paths that do not exist yet
// are skipped silently.
func NewWatcher(paths []string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		closeCh:  make(chan struct{}),
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		_ = fsw.Add(p)
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// loop forwards debounced change events to the callback.
func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.scheduleReload()
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

// scheduleReload arms the debounce timer.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, w.onChange)
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.closeCh)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
