package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches one file through fsnotify.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string
	config  Config

	events chan Event
	errors chan error

	// Debounce state
	pending *Event
	timer   *time.Timer

	suppressUntil time.Time

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New starts watching path. The file itself need not exist yet, but its
// directory must.
func New(path string, opts ...Option) (*Watcher, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.BufferSize <= 0 {
		config.BufferSize = 16
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(absPath); err == nil && info.IsDir() {
		return nil, ErrNotFile
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		path:    absPath,
		config:  config,
		events:  make(chan Event, config.BufferSize),
		errors:  make(chan error, config.BufferSize),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the event channel. It is never closed; select on Done too.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Done is closed when the watcher is closed.
func (w *Watcher) Done() <-chan struct{} {
	return w.closeCh
}

// Suppress drops changes for the next d. Callers use it around their own
// writes to the file.
func (w *Watcher) Suppress(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.suppressUntil = time.Now().Add(d)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pending = nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pending = nil
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// handleFSEvent filters events to the watched file and debounces them.
func (w *Watcher) handleFSEvent(fsEvent fsnotify.Event) {
	if filepath.Clean(fsEvent.Name) != w.path {
		return
	}
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	if w.closed || now.Before(w.suppressUntil) {
		return
	}

	if w.pending != nil {
		w.pending.Op |= op
		w.pending.Timestamp = now
		w.timer.Reset(w.config.Debounce)
		return
	}

	w.pending = &Event{Path: w.path, Op: op, Timestamp: now}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.config.Debounce, w.fire)
	} else {
		w.timer.Reset(w.config.Debounce)
	}
}

// fire delivers the pending event.
func (w *Watcher) fire() {
	w.mu.Lock()
	if w.pending == nil || w.closed {
		w.mu.Unlock()
		return
	}
	event := *w.pending
	w.pending = nil
	w.mu.Unlock()

	select {
	case w.events <- event:
	case <-w.closeCh:
	}
}

// convertOp converts fsnotify.Op to watcher.Op.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	if fsOp.Has(fsnotify.Chmod) {
		op |= OpChmod
	}
	return op
}
