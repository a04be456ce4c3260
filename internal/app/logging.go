package app

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// String returns the upper-case name used in log lines.
func (l LogLevel) String() string {
	if l < LogLevelDebug || l > LogLevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel parses a level name, ignoring case. "warning" is accepted
// for warn. Unknown names map to info.
func ParseLogLevel(s string) LogLevel {
	if strings.EqualFold(s, "warning") {
		return LogLevelWarn
	}
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return LogLevel(i)
		}
	}
	return LogLevelInfo
}

// logPrefix starts the message part of every line.
const logPrefix = "ropedit"

// field is one key=value pair appended to each line.
type field struct {
	key   string
	value any
}

// Logger writes leveled, printf-style lines to a file. Loggers derived
// with WithField share the parent's writer and lock.
type Logger struct {
	mu       *sync.Mutex
	w        io.Writer
	level    LogLevel
	fields   []field // sorted by key
	disabled bool
	now      func() time.Time
}

// NewLogger creates a logger writing lines at or above level to w.
// A nil w discards output.
func NewLogger(w io.Writer, level LogLevel) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		mu:    &sync.Mutex{},
		w:     w,
		level: level,
		now:   time.Now,
	}
}

// OpenLogFile returns a logger appending to path and the file to close when
// done. An empty path returns NullLogger. The terminal is never a log target
// because the editor draws on it.
func OpenLogFile(path string, level LogLevel) (*Logger, io.Closer, error) {
	if path == "" {
		return NullLogger, nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return NewLogger(f, level), f, nil
}

// WithField returns a logger that appends key=value to every line. An
// existing key is replaced. The receiver is not modified.
func (l *Logger) WithField(key string, value any) *Logger {
	child := *l
	child.fields = slices.Clone(l.fields)

	i, found := slices.BinarySearchFunc(child.fields, key, func(f field, k string) int {
		return cmp.Compare(f.key, k)
	})
	if found {
		child.fields[i].value = value
	} else {
		child.fields = slices.Insert(child.fields, i, field{key, value})
	}
	return &child
}

// WithComponent returns a logger tagged with component=name.
func (l *Logger) WithComponent(name string) *Logger {
	return l.WithField("component", name)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(LogLevelDebug, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.log(LogLevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(LogLevelWarn, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.log(LogLevelError, msg, args...)
}

// log formats one line as
//
//	2006-01-02T15:04:05.000 [LEVEL] ropedit: message {k=v, ...}
func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if l.disabled || level < l.level {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] %s: %s",
		l.now().Format("2006-01-02T15:04:05.000"), level, logPrefix, msg)
	if len(l.fields) > 0 {
		sb.WriteString(" {")
		for i, f := range l.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s=%v", f.key, f.value)
		}
		sb.WriteByte('}')
	}
	sb.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, sb.String())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NullLogger is a logger that discards all output.
var NullLogger = &Logger{disabled: true}
