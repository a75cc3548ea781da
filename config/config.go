// Package config holds the patmint configuration: how output is rendered,
// how the REPL behaves, and gen defaults. Values cascade from system to
// user to project files with environment overrides, the same dot-notation
// keys everywhere.
package config

// Config represents the patmint configuration
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Repl   ReplConfig   `mapstructure:"repl"`
	Gen    GenConfig    `mapstructure:"gen"`
}

// OutputConfig controls how compile results are rendered
type OutputConfig struct {
	// ShowSource echoes the lowered expression above each generated string
	ShowSource bool `mapstructure:"show_source"`
	// Theme selects the log color scheme: everforest, gruvbox
	Theme string `mapstructure:"theme"`
	// JSON switches logs to machine-readable JSON output
	JSON bool `mapstructure:"json"`
}

// ReplConfig configures the interactive loop
type ReplConfig struct {
	Prompt       string `mapstructure:"prompt"`
	HistoryLimit int    `mapstructure:"history_limit"` // lines kept per session
}

// GenConfig configures the one-shot gen command
type GenConfig struct {
	Count int `mapstructure:"count"` // strings minted per invocation
}
