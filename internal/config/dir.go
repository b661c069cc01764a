package config

import (
	"os"
	"path/filepath"
	"strings"
)

const envConfigDir = "THEMEKIT_CONFIG_DIR"

// Dir is the configuration directory: $THEMEKIT_CONFIG_DIR when set,
// otherwise "themekit" under the user config directory.
func Dir() string {
	if dir := strings.TrimSpace(os.Getenv(envConfigDir)); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return ".themekit"
	}
	return filepath.Join(base, "themekit")
}

// ThemesDir is where user theme files are looked up by default.
func ThemesDir() string {
	return filepath.Join(Dir(), "themes")
}

// HistoryPath is the journal of actions replayed by scripts.
func HistoryPath() string {
	return filepath.Join(Dir(), "history.json")
}
