package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a setting holds a value outside its range.
var ErrInvalidConfig = errors.New("invalid config")

// ErrUnsupportedFormat indicates the config file extension is not recognized.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// invalid builds an ErrInvalidConfig for one setting.
func invalid(setting string, value any, reason string) error {
	return fmt.Errorf("%w: %s = %v: %s", ErrInvalidConfig, setting, value, reason)
}
