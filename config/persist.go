package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/sbvh/patmint/errors"
	"github.com/sbvh/patmint/logger"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before modifying config
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	// Rotate: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		logger.Warnw("Failed to delete old backup", "path", back3, "error", err)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}

// loadOrInitializeUserConfig loads the user config file, or starts an empty
// document if it doesn't exist yet
func loadOrInitializeUserConfig() (map[string]interface{}, string, error) {
	configPath := UserConfigPath()
	if configPath == "" {
		return nil, "", errors.New("could not determine home directory")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), DefaultDirPermissions); err != nil {
		return nil, "", errors.Wrap(err, "failed to create .patmint directory")
	}

	var doc map[string]interface{}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, "", errors.Wrap(err, "failed to parse user config")
		}
	} else {
		doc = make(map[string]interface{})
	}

	return doc, configPath, nil
}

// saveUserConfig writes the config document to the user config file with backup
func saveUserConfig(doc map[string]interface{}, configPath string) error {
	if err := createBackup(configPath); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	// Mark this as our own write to prevent reload loops
	globalWatcherMu.Lock()
	if globalWatcher != nil {
		globalWatcher.MarkOwnWrite()
	}
	globalWatcherMu.Unlock()

	if err := os.WriteFile(configPath, data, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to write user config")
	}

	return nil
}

// Set updates a single dot-notation key in the user config file and
// invalidates the cached configuration so the next Load observes it
func Set(key string, value interface{}) error {
	segments := strings.Split(key, ".")
	if len(segments) == 0 || key == "" {
		return errors.New("empty config key")
	}

	doc, configPath, err := loadOrInitializeUserConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load user config")
	}

	// Descend into (or create) nested sections for all but the last segment
	section := doc
	for _, seg := range segments[:len(segments)-1] {
		child, ok := section[seg].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			section[seg] = child
		}
		section = child
	}
	section[segments[len(segments)-1]] = value

	if err := saveUserConfig(doc, configPath); err != nil {
		return err
	}

	Reset()
	return nil
}
