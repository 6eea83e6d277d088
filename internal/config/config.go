package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.reqline)
	ConfigDir string

	// SettingsFile is the YAML settings file
	SettingsFile string

	// KeybindsFile holds keybinding overrides
	KeybindsFile string

	// LogFile receives the structured log
	LogFile string
)

// Initialize sets up the configuration directory and the default settings
// file. It creates ~/.reqline/ if it doesn't exist.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	// Set global paths
	ConfigDir = filepath.Join(homeDir, ".reqline")
	SettingsFile = filepath.Join(ConfigDir, "config.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	LogFile = filepath.Join(ConfigDir, "reqline.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	// Create a commented settings file if it doesn't exist
	if _, err := os.Stat(SettingsFile); os.IsNotExist(err) {
		if err := os.WriteFile(SettingsFile, []byte(defaultSettingsYAML), FilePermissions); err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	return nil
}

// ResolveSettingsFile returns path when set, otherwise the global settings file
func ResolveSettingsFile(path string) string {
	if path != "" {
		return path
	}
	return SettingsFile
}

const defaultSettingsYAML = `# reqline settings
# Every key can be overridden with a REQLINE_<KEY> environment variable,
# e.g. REQLINE_TIMEOUT=5s.

# tick_rate: 250ms
# frame_rate: 0        # frames per second, 0 redraws on change only
# timeout: 30s
# default_method: GET  # sent when no method is selected
# log_level: info      # debug, info, warn or error
# headers:
#   - name: User-Agent
#     value: reqline
`
