package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sbvh/patmint/config"
	"github.com/sbvh/patmint/sym"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: sym.Am + " Manage patmint configuration",
	Long: sym.Am + ` config — Manage patmint configuration

Configuration sources (in order of precedence):
1. Environment variables (PATMINT_* prefix)
2. Project config (./patmint.toml, searched up the directory tree)
3. User config (~/.patmint/patmint.toml)
4. System config (/etc/patmint/patmint.toml)
5. Default values

Examples:
  patmint config show                  # Show current configuration
  patmint config show --format json    # Show configuration in JSON format
  patmint config get output.theme      # Get a specific value
  patmint config set gen.count 5       # Persist a value to the user config
  patmint config where                 # Show the configuration cascade`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the current patmint configuration from all sources",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., output.theme, gen.count)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a configuration value",
	Long: `Write a configuration value to the user config file using dot notation.

The previous file contents rotate through .back1, .back2, .back3 backups.
Booleans and integers are stored typed; everything else as a string.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	Long:  "List all configuration sources in order of precedence, showing which files exist.",
	RunE:  runConfigWhere,
}

var configFormat string

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configSetCmd)
	ConfigCmd.AddCommand(configWhereCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		fmt.Println(string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		fmt.Printf("# patmint configuration\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to TOML: %w", err)
		}
		fmt.Printf("# patmint configuration\n%s", string(data))

	default:
		return fmt.Errorf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}

	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := config.GetViper()
	if !v.IsSet(key) {
		return fmt.Errorf("configuration key %q not found", key)
	}

	fmt.Println(config.Get(key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	// Preserve native TOML types where the value parses as one
	var value interface{} = raw
	if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	} else if n, err := strconv.Atoi(raw); err == nil {
		value = n
	}

	if err := config.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	fmt.Printf("%s %s = %v\n", sym.OK, key, value)
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	fmt.Println("Configuration cascade (later overrides earlier):")

	sources := []struct {
		label string
		path  string
	}{
		{"[DEFAULT]", ""},
		{"[SYSTEM]", "/etc/patmint/patmint.toml"},
		{"[USER]", config.UserConfigPath()},
	}

	for i, src := range sources {
		if src.path == "" {
			fmt.Printf("  %d. %-10s Built-in defaults\n", i+1, src.label)
			continue
		}
		status := "missing"
		if _, err := os.Stat(src.path); err == nil {
			status = "present"
		}
		fmt.Printf("  %d. %-10s %s (%s)\n", i+1, src.label, src.path, status)
	}

	fmt.Printf("  4. %-10s ./patmint.toml (searches up directories)\n", "[PROJECT]")
	fmt.Printf("  5. %-10s PATMINT_* environment variables\n", "[ENV]")

	return nil
}
