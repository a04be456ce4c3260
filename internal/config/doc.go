// Package config loads ropedit settings.
//
// Settings come from three places, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A config file, TOML or YAML chosen by extension
//  3. ROPEDIT_* environment variables
//
// A missing config file is not an error; the defaults are used.
//
// # Basic Usage
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//	if err := config.ApplyEnv(cfg, os.LookupEnv); err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// # File Format
//
//	[history]
//	capacity = 50
//
//	[rope]
//	chunk_on_load = false
//	max_depth = 0
//
//	[editor]
//	tab_width = 4
//	status_line = true
//
//	[logging]
//	level = "info"
//	file = ""
package config
