package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if !cfg.Output.ShowSource {
		t.Error("expected output.show_source true by default")
	}
	if cfg.Output.Theme != "everforest" {
		t.Errorf("expected default theme 'everforest', got %q", cfg.Output.Theme)
	}
	if cfg.Repl.HistoryLimit != 100 {
		t.Errorf("expected default history limit 100, got %d", cfg.Repl.HistoryLimit)
	}
	if cfg.Gen.Count != 1 {
		t.Errorf("expected default gen count 1, got %d", cfg.Gen.Count)
	}
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	tests := []struct {
		key      string
		expected interface{}
	}{
		{"output.show_source", true},
		{"output.theme", "everforest"},
		{"output.json", false},
		{"repl.prompt", "❯ "},
		{"repl.history_limit", 100},
		{"gen.count", 1},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := v.Get(tt.key)
			if got != tt.expected {
				t.Errorf("default %s = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestAccessorFallbacks(t *testing.T) {
	var cfg Config

	if cfg.GetTheme() != "everforest" {
		t.Errorf("expected theme fallback 'everforest', got %q", cfg.GetTheme())
	}
	if cfg.GetPrompt() != "❯ " {
		t.Errorf("expected prompt fallback, got %q", cfg.GetPrompt())
	}
	if cfg.GetHistoryLimit() != 100 {
		t.Errorf("expected history limit fallback 100, got %d", cfg.GetHistoryLimit())
	}
	if cfg.GetGenCount() != 1 {
		t.Errorf("expected gen count fallback 1, got %d", cfg.GetGenCount())
	}
}

func TestFindProjectConfig(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("found in ancestor", func(t *testing.T) {
		subDir := filepath.Join(tmpDir, "test1", "subdir")
		os.MkdirAll(subDir, DefaultDirPermissions)

		os.WriteFile(filepath.Join(tmpDir, "test1", "patmint.toml"), []byte(""), DefaultFilePermissions)

		oldWd, _ := os.Getwd()
		defer os.Chdir(oldWd)
		os.Chdir(subDir)

		result := findProjectConfig()
		if result == "" {
			t.Fatal("expected to find config file")
		}
		if filepath.Base(result) != "patmint.toml" {
			t.Errorf("expected patmint.toml, got %s", filepath.Base(result))
		}
	})

	t.Run("no config found", func(t *testing.T) {
		subDir := filepath.Join(tmpDir, "test2", "subdir")
		os.MkdirAll(subDir, DefaultDirPermissions)

		oldWd, _ := os.Getwd()
		defer os.Chdir(oldWd)
		os.Chdir(subDir)

		result := findProjectConfig()
		if result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "patmint.toml")

	content := []byte("[output]\nshow_source = false\ntheme = \"gruvbox\"\n\n[gen]\ncount = 5\n")
	if err := os.WriteFile(configPath, content, DefaultFilePermissions); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Output.ShowSource {
		t.Error("expected show_source false from file")
	}
	if cfg.Output.Theme != "gruvbox" {
		t.Errorf("expected theme 'gruvbox', got %q", cfg.Output.Theme)
	}
	if cfg.Gen.Count != 5 {
		t.Errorf("expected gen count 5, got %d", cfg.Gen.Count)
	}
	// Keys absent from the file keep their defaults
	if cfg.Repl.HistoryLimit != 100 {
		t.Errorf("expected default history limit 100, got %d", cfg.Repl.HistoryLimit)
	}
}

func TestCreateBackup_Rotation(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "patmint.toml")

	// No file yet: backup is a no-op
	if err := createBackup(configPath); err != nil {
		t.Fatalf("createBackup() on missing file failed: %v", err)
	}
	if _, err := os.Stat(configPath + ".back1"); !os.IsNotExist(err) {
		t.Error("expected no .back1 for missing config")
	}

	// Three successive writes rotate three generations
	for i, content := range []string{"gen = 1\n", "gen = 2\n", "gen = 3\n"} {
		if err := os.WriteFile(configPath, []byte(content), DefaultFilePermissions); err != nil {
			t.Fatalf("write %d failed: %v", i, err)
		}
		if err := createBackup(configPath); err != nil {
			t.Fatalf("createBackup() %d failed: %v", i, err)
		}
	}

	back1, err := os.ReadFile(configPath + ".back1")
	if err != nil {
		t.Fatalf("missing .back1: %v", err)
	}
	if string(back1) != "gen = 3\n" {
		t.Errorf(".back1 = %q, want latest content", back1)
	}

	back2, err := os.ReadFile(configPath + ".back2")
	if err != nil {
		t.Fatalf("missing .back2: %v", err)
	}
	if string(back2) != "gen = 2\n" {
		t.Errorf(".back2 = %q, want previous content", back2)
	}

	back3, err := os.ReadFile(configPath + ".back3")
	if err != nil {
		t.Fatalf("missing .back3: %v", err)
	}
	if string(back3) != "gen = 1\n" {
		t.Errorf(".back3 = %q, want oldest content", back3)
	}
}

func TestSaveUserConfig_NestedKey(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "patmint.toml")

	doc := map[string]interface{}{
		"output": map[string]interface{}{"theme": "gruvbox"},
	}
	if err := saveUserConfig(doc, configPath); err != nil {
		t.Fatalf("saveUserConfig() failed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}

	var parsed map[string]interface{}
	if err := toml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("saved config is not valid TOML: %v", err)
	}

	output, ok := parsed["output"].(map[string]interface{})
	if !ok {
		t.Fatal("expected [output] section")
	}
	if output["theme"] != "gruvbox" {
		t.Errorf("output.theme = %v, want gruvbox", output["theme"])
	}
}

func TestIsBackupFile(t *testing.T) {
	if !isBackupFile("/home/x/.patmint/patmint.toml.back1") {
		t.Error("expected .back1 to be recognized as backup")
	}
	if !isBackupFile("patmint.toml.back3") {
		t.Error("expected .back3 to be recognized as backup")
	}
	if isBackupFile("/home/x/.patmint/patmint.toml") {
		t.Error("config file itself is not a backup")
	}
}
