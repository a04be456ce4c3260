package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ROPEDIT_"

// LookupFunc reports the value of an environment variable. os.LookupEnv
// satisfies it.
type LookupFunc func(key string) (string, bool)

// envSetting binds one environment variable to a config field.
type envSetting struct {
	name  string
	apply func(c *Config, value string) error
}

var envSettings = []envSetting{
	{"HISTORY_CAPACITY", intSetter(func(c *Config) *int { return &c.History.Capacity })},
	{"ROPE_CHUNK_ON_LOAD", boolSetter(func(c *Config) *bool { return &c.Rope.ChunkOnLoad })},
	{"ROPE_MAX_DEPTH", intSetter(func(c *Config) *int { return &c.Rope.MaxDepth })},
	{"TAB_WIDTH", intSetter(func(c *Config) *int { return &c.Editor.TabWidth })},
	{"STATUS_LINE", boolSetter(func(c *Config) *bool { return &c.Editor.StatusLine })},
	{"LOG_LEVEL", stringSetter(func(c *Config) *string { return &c.Logging.Level })},
	{"LOG_FILE", stringSetter(func(c *Config) *string { return &c.Logging.File })},
}

// ApplyEnv overrides cfg with any ROPEDIT_* variables lookup reports.
// Empty values are treated as set.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	for _, s := range envSettings {
		key := EnvPrefix + s.name
		val, ok := lookup(key)
		if !ok {
			continue
		}
		if err := s.apply(cfg, val); err != nil {
			return fmt.Errorf("environment %s: %w", key, err)
		}
	}
	return nil
}

func intSetter(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func boolSetter(field func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

func stringSetter(field func(*Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*field(c) = v
		return nil
	}
}
