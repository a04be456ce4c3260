package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all ropedit settings.
type Config struct {
	History HistoryConfig `toml:"history" yaml:"history"`
	Rope    RopeConfig    `toml:"rope" yaml:"rope"`
	Editor  EditorConfig  `toml:"editor" yaml:"editor"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// HistoryConfig configures undo/redo.
type HistoryConfig struct {
	// Capacity is the number of edits each of the undo and redo stacks keeps.
	Capacity int `toml:"capacity" yaml:"capacity"`
}

// RopeConfig configures rope shape.
type RopeConfig struct {
	// ChunkOnLoad splits loaded files into small leaves.
	ChunkOnLoad bool `toml:"chunk_on_load" yaml:"chunk_on_load"`
	// MaxDepth triggers a rebalance when exceeded. Zero disables it.
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
}

// EditorConfig configures the terminal front end.
type EditorConfig struct {
	TabWidth   int  `toml:"tab_width" yaml:"tab_width"`
	StatusLine bool `toml:"status_line" yaml:"status_line"`
}

// LoggingConfig configures diagnostics output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
	// File receives log output. Empty discards it.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		History: HistoryConfig{Capacity: 50},
		Editor:  EditorConfig{TabWidth: 4, StatusLine: true},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the config file at path over the defaults. An empty path or a
// missing file returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode unmarshals data into cfg using the format implied by path.
// Unknown keys are rejected.
func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			pe := &ParseError{Path: path, Message: err.Error(), Err: err}
			var de *toml.DecodeError
			if errors.As(err, &de) {
				pe.Line, pe.Column = de.Position()
			}
			return pe
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return nil
}

// Validate checks every setting is within range.
func (c *Config) Validate() error {
	var errs []error
	if c.History.Capacity <= 0 {
		errs = append(errs, invalid("history.capacity", c.History.Capacity, "must be positive"))
	}
	if c.Rope.MaxDepth < 0 {
		errs = append(errs, invalid("rope.max_depth", c.Rope.MaxDepth, "must not be negative"))
	}
	if c.Editor.TabWidth < 1 {
		errs = append(errs, invalid("editor.tab_width", c.Editor.TabWidth, "must be at least 1"))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, invalid("logging.level", c.Logging.Level, "unknown level"))
	}
	return errors.Join(errs...)
}
