package config

import (
	"github.com/spf13/viper"
)

// File permissions for config files and directories
const (
	DefaultFilePermissions = 0644
	DefaultDirPermissions  = 0750
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("output.show_source", true)
	v.SetDefault("output.theme", "everforest")
	v.SetDefault("output.json", false)

	// REPL defaults
	v.SetDefault("repl.prompt", "❯ ")
	v.SetDefault("repl.history_limit", 100)

	// Gen defaults
	v.SetDefault("gen.count", 1)
}

// GetTheme returns the log theme (default: everforest)
func (c *Config) GetTheme() string {
	if c.Output.Theme == "" {
		return "everforest"
	}
	return c.Output.Theme
}

// GetPrompt returns the REPL prompt string
func (c *Config) GetPrompt() string {
	if c.Repl.Prompt == "" {
		return "❯ "
	}
	return c.Repl.Prompt
}

// GetHistoryLimit returns the REPL history cap
func (c *Config) GetHistoryLimit() int {
	if c.Repl.HistoryLimit <= 0 {
		return 100
	}
	return c.Repl.HistoryLimit
}

// GetGenCount returns how many strings gen produces by default
func (c *Config) GetGenCount() int {
	if c.Gen.Count <= 0 {
		return 1
	}
	return c.Gen.Count
}
