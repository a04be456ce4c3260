package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ropedit/internal/engine/buffer"
	"github.com/dshills/ropedit/internal/watcher"
)

// NoName is displayed for a buffer with no file.
const NoName = "[No Name]"

// ErrNoFileName indicates a save was requested for a buffer with no file.
var ErrNoFileName = errors.New("no file name")

// saveQuiet is how long watcher events are dropped after our own save.
const saveQuiet = 500 * time.Millisecond

// Editor couples a buffer with a screen and the file it was loaded from.
type Editor struct {
	screen tcell.Screen
	buf    *buffer.Buffer
	path   string

	message string

	// Configuration
	tabWidth   int
	statusLine bool
	watch      bool
	bufOpts    []buffer.Option
	logger     Logger

	watcher *watcher.Watcher
}

// New creates an editor drawing on screen with an empty, unnamed buffer.
// The screen must already be initialized.
func New(screen tcell.Screen, opts ...Option) *Editor {
	e := &Editor{
		screen:     screen,
		tabWidth:   4,
		statusLine: true,
		logger:     nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.buf = buffer.New(e.bufOpts...)
	return e
}

// Buffer returns the buffer being edited.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Path returns the file path, or "" for an unnamed buffer.
func (e *Editor) Path() string {
	return e.path
}

// Message returns the current status message.
func (e *Editor) Message() string {
	return e.message
}

// SetMessage sets the status message shown until the next one.
func (e *Editor) SetMessage(format string, args ...any) {
	e.message = fmt.Sprintf(format, args...)
}

// Open loads path into a fresh buffer. A missing file opens an empty buffer
// that will be created on save. A file that is not valid UTF-8 is not
// opened; the current buffer is kept and the status line says why.
func (e *Editor) Open(path string) error {
	opts := append(e.bufOpts[:len(e.bufOpts):len(e.bufOpts)], buffer.WithName(path))
	buf := buffer.New(opts...)

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		e.SetMessage("new file")
		e.logger.Info("open %s: new file, buffer %s", path, buf.ID())
	case err != nil:
		buf.Release()
		return fmt.Errorf("opening %s: %w", path, err)
	default:
		n, err := buf.ReadFrom(f)
		f.Close()
		if errors.Is(err, buffer.ErrInvalidUTF8) {
			buf.Release()
			e.SetMessage("cannot open %s: not valid UTF-8", filepath.Base(path))
			e.logger.Warn("open %s: not valid UTF-8", path)
			return fmt.Errorf("loading %s: %w", path, err)
		}
		if err != nil {
			buf.Release()
			return fmt.Errorf("loading %s: %w", path, err)
		}
		e.SetMessage("read %d bytes", n)
		e.logger.Info("open %s: buffer %s, %d bytes, %d lines", path, buf.ID(), n, buf.LineCount())
	}

	if e.buf != nil {
		e.buf.Release()
	}
	e.buf = buf
	e.path = path
	e.startWatch()
	return nil
}

// Save writes the buffer to its file through a temporary file in the same
// directory, so a failed write leaves the original intact. The dirty flag
// is cleared only when the rename succeeds.
func (e *Editor) Save() error {
	if e.path == "" {
		return ErrNoFileName
	}

	if e.watcher != nil {
		e.watcher.Suppress(saveQuiet)
	}

	text := e.buf.String()
	if err := writeFileAtomic(e.path, []byte(text)); err != nil {
		e.logger.Error("save %s: %v", e.path, err)
		return err
	}

	e.buf.Save()
	e.logger.Info("save %s: %d bytes", e.path, len(text))
	return nil
}

// writeFileAtomic replaces path with data, keeping the existing file mode.
func writeFileAtomic(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// startWatch replaces the file watcher with one for the current path.
// Watch failures are logged and otherwise ignored.
func (e *Editor) startWatch() {
	e.StopWatch()
	if !e.watch || e.path == "" {
		return
	}

	w, err := watcher.New(e.path)
	if err != nil {
		e.logger.Warn("watch %s: %v", e.path, err)
		return
	}
	e.watcher = w
	go forwardWatch(w, e.screen, e.logger)
}

// Watching reports whether the open file is being watched.
func (e *Editor) Watching() bool {
	return e.watcher != nil
}

// StopWatch stops watching the file, if a watch is active. The buffer is
// left untouched.
func (e *Editor) StopWatch() {
	if e.watcher != nil {
		_ = e.watcher.Close()
		e.watcher = nil
	}
}

// forwardWatch posts watcher events to the screen's event queue so they
// are handled on the event loop goroutine.
func forwardWatch(w *watcher.Watcher, screen tcell.Screen, logger Logger) {
	for {
		select {
		case <-w.Done():
			return
		case ev := <-w.Events():
			_ = screen.PostEvent(tcell.NewEventInterrupt(ev)) // best-effort; queue may be full
		case err := <-w.Errors():
			logger.Warn("watch %s: %v", w.Path(), err)
		}
	}
}

// Close stops watching and releases the buffer.
func (e *Editor) Close() {
	e.StopWatch()
	e.buf.Release()
}
