package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, layouts and scores.
const AppDir = ".crystalquest"

// configFile is the tuning file name looked up in each search location.
const configFile = "quest.yaml"

// LoadQuest loads Crystal Quest tuning.
// Search order: customPath -> ~/.crystalquest/configs/quest.yaml -> ./configs/quest.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadQuest(customPath string) (QuestConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultQuestConfig(), err
		}
		return cfg, nil
	}

	// User config directory, then local configs directory. Broken files here
	// are skipped rather than fatal.
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultQuestYAML)
	if err != nil {
		return DefaultQuestConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML tuning over the defaults and validates the result.
func Parse(data []byte) (QuestConfig, error) {
	cfg := DefaultQuestConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (QuestConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return QuestConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return QuestConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// UserDir returns ~/.crystalquest/<sub>, or empty if home is unavailable.
func UserDir(sub string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, sub)
}

// WatchPath returns the tuning file a --watch session should follow: the
// custom path if given, else the first existing file in the search order,
// else the user config path so a file created later is still picked up.
func WatchPath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	user := userConfigPath(configFile)
	for _, path := range []string{user, filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return user
}
