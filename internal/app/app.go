// Package app wires configuration, logging and the terminal editor into a
// runnable program.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ropedit/internal/config"
	"github.com/dshills/ropedit/internal/editor"
	"github.com/dshills/ropedit/internal/engine/buffer"
)

// Application owns the screen, the editor and the log file for one run.
type Application struct {
	opts Options

	config    *config.Config
	logger    *Logger
	logCloser io.Closer
	screen    tcell.Screen
	editor    *editor.Editor

	started atomic.Bool
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LogPath overrides the configured log file.
	LogPath string

	// LogLevel overrides the configured log level.
	LogLevel string

	// File is opened on startup. Empty starts with an unnamed buffer.
	File string

	// Screen is drawn on. Nil uses the terminal.
	Screen tcell.Screen

	// LookupEnv reads environment overrides. Nil uses os.LookupEnv.
	LookupEnv config.LookupFunc
}

// New creates an Application and starts every component. On error nothing
// is left running.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		app.teardown(false)
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := app.loadConfig()
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg

	// 2. Logging
	logger, closer, err := OpenLogFile(cfg.Logging.File, ParseLogLevel(cfg.Logging.Level))
	if err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	app.logger, app.logCloser = logger, closer
	app.logger.Info("starting: config=%q file=%q", app.opts.ConfigPath, app.opts.File)

	// 3. Screen
	screen := app.opts.Screen
	if screen == nil {
		if screen, err = tcell.NewScreen(); err != nil {
			return &InitError{Component: "screen", Err: err}
		}
	}
	if err := screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	app.screen = screen

	// 4. Editor
	app.editor = editor.New(screen,
		editor.WithTabWidth(cfg.Editor.TabWidth),
		editor.WithStatusLine(cfg.Editor.StatusLine),
		editor.WithWatch(true),
		editor.WithLogger(app.logger.WithComponent("editor")),
		editor.WithBufferOptions(
			buffer.WithHistoryCapacity(cfg.History.Capacity),
			buffer.WithChunkedLoad(cfg.Rope.ChunkOnLoad),
			buffer.WithMaxDepth(cfg.Rope.MaxDepth),
			buffer.WithLogger(app.logger.WithComponent("buffer")),
		),
	)

	// 5. Initial file
	if app.opts.File != "" {
		// A non-UTF-8 file starts the editor on an unnamed buffer, so a save
		// cannot overwrite the file.
		err := app.editor.Open(app.opts.File)
		switch {
		case errors.Is(err, buffer.ErrInvalidUTF8):
			app.logger.Warn("%v", err)
		case err != nil:
			return &InitError{Component: "editor", Err: err}
		}
	}

	return nil
}

// loadConfig reads the config file, applies environment and command-line
// overrides and validates the result.
func (app *Application) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	lookup := app.opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := config.ApplyEnv(cfg, lookup); err != nil {
		return nil, err
	}

	if app.opts.LogPath != "" {
		cfg.Logging.File = app.opts.LogPath
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run runs the editor until the user quits or ctx is canceled, then
// restores the terminal. A panic in the editor is returned as a
// *RecoveredPanicError after the terminal is restored.
func (app *Application) Run(ctx context.Context) (err error) {
	if !app.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	panicked := true
	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("editor panic: %v", r)
		}
		app.teardown(!panicked)
	}()

	err = app.editor.Run(ctx)
	panicked = false
	app.logger.Info("stopped")
	return err
}

// teardown releases whatever bootstrap started. The watcher is always
// stopped; the buffer is only released after a clean run.
func (app *Application) teardown(clean bool) {
	if app.editor != nil {
		if clean {
			app.editor.Close()
		} else {
			app.editor.StopWatch()
		}
	}
	if app.screen != nil {
		app.screen.Fini()
	}
	if app.logCloser != nil {
		_ = app.logCloser.Close()
	}
}

// Config returns the effective configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Editor returns the editor.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}
