package editor

import (
	"github.com/dshills/ropedit/internal/engine/buffer"
)

// Logger receives editor diagnostics.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Option is a functional option for configuring an Editor.
type Option func(*Editor)

// WithTabWidth sets how many columns a tab advances to.
func WithTabWidth(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.tabWidth = n
		}
	}
}

// WithStatusLine shows or hides the status bar.
func WithStatusLine(show bool) Option {
	return func(e *Editor) {
		e.statusLine = show
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithBufferOptions sets the options every buffer the editor creates gets.
func WithBufferOptions(opts ...buffer.Option) Option {
	return func(e *Editor) {
		e.bufOpts = append(e.bufOpts, opts...)
	}
}

// WithWatch enables reporting of external changes to the open file.
func WithWatch(enabled bool) Option {
	return func(e *Editor) {
		e.watch = enabled
	}
}
