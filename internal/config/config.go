package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"dialogkit/internal/constants"
	apperrors "dialogkit/internal/errors"
)

// Config represents the application configuration
type Config struct {
	Window WindowConfig `json:"window"`
	Theme  ThemeConfig  `json:"theme"`
	Dialog DialogConfig `json:"dialog"`
}

// WindowConfig represents the demo main window settings
type WindowConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ThemeConfig represents theme-related settings
type ThemeConfig struct {
	Dark     bool   `json:"dark"`
	FontSize int    `json:"fontSize"`
	FontPath string `json:"fontPath"`
}

// DialogConfig represents message and option dialog settings
type DialogConfig struct {
	Width         int          `json:"width"`         // Dialog window width
	Height        int          `json:"height"`        // Dialog window height
	Languages     []string     `json:"languages"`     // Preferred caption languages; empty uses the environment
	MessageFiles  []string     `json:"messageFiles"`  // Extra go-i18n catalogs
	Labels        LabelsConfig `json:"labels"`        // Fixed captions, override the catalogs
	DismissResult bool         `json:"dismissResult"` // Option dialog result when closed without a button
}

// LabelsConfig represents button caption overrides. Empty fields keep the
// localized caption.
type LabelsConfig struct {
	OK  string `json:"ok"`
	Yes string `json:"yes"`
	No  string `json:"no"`
}

// Manager provides configuration management functionality
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager using the OS config directory
func NewManager() *Manager {
	return &Manager{
		configPath: getConfigPath(),
	}
}

// NewManagerWithPath creates a configuration manager for an explicit file
func NewManagerWithPath(path string) *Manager {
	return &Manager{configPath: path}
}

// Path returns the configuration file path
func (m *Manager) Path() string {
	return m.configPath
}

// Load loads configuration from file and merges with defaults
func (m *Manager) Load() (*Config, error) {
	config := getDefaultConfig()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
		return config, nil
	}

	var fileConfig Config
	if err := json.Unmarshal(data, &fileConfig); err != nil {
		return nil, apperrors.NewConfigError("load", m.configPath, "error parsing config file", err)
	}

	mergeConfigs(config, &fileConfig)
	return config, nil
}

// Save saves configuration to file
func (m *Manager) Save(config *Config) error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return apperrors.NewConfigError("save", configDir, "error creating config directory", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return apperrors.NewConfigError("save", m.configPath, "error marshaling config", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return apperrors.NewConfigError("save", m.configPath, "error writing config file", err)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  constants.DefaultWindowWidth,
			Height: constants.DefaultWindowHeight,
		},
		Theme: ThemeConfig{
			Dark:     constants.DarkThemeDefault,
			FontSize: constants.DefaultFontSize,
			FontPath: "",
		},
		Dialog: DialogConfig{
			Width:         constants.DialogWidth,
			Height:        constants.DialogHeight,
			Languages:     make([]string, 0),
			MessageFiles:  make([]string, 0),
			DismissResult: constants.DefaultDismiss,
		},
	}
}

// getConfigPath returns the path to the configuration file following OS conventions
func getConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\vorb\dialogkit\config.json
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return constants.ConfigFileName
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, constants.VendorDirectory, constants.ApplicationName)

	case "darwin":
		// macOS: ~/Library/Application Support/vorb/dialogkit/config.json
		home, err := os.UserHomeDir()
		if err != nil {
			return constants.ConfigFileName
		}
		configDir = filepath.Join(home, "Library", "Application Support", constants.VendorDirectory, constants.ApplicationName)

	default:
		// Linux/Unix: $XDG_CONFIG_HOME/vorb/dialogkit/config.json or ~/.config/vorb/dialogkit/config.json
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return constants.ConfigFileName
			}
			xdgConfigHome = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfigHome, constants.VendorDirectory, constants.ApplicationName)
	}

	return filepath.Join(configDir, constants.ConfigFileName)
}

// mergeConfigs merges file config values into default config
func mergeConfigs(defaultConfig *Config, fileConfig *Config) {
	if fileConfig.Window.Width != 0 {
		defaultConfig.Window.Width = fileConfig.Window.Width
	}
	if fileConfig.Window.Height != 0 {
		defaultConfig.Window.Height = fileConfig.Window.Height
	}

	// Note: for bool values, we can't distinguish between false and unset, so we always use file value
	defaultConfig.Theme.Dark = fileConfig.Theme.Dark
	if fileConfig.Theme.FontSize != 0 {
		defaultConfig.Theme.FontSize = fileConfig.Theme.FontSize
	}
	if fileConfig.Theme.FontPath != "" {
		defaultConfig.Theme.FontPath = fileConfig.Theme.FontPath
	}

	// Dialog size is only taken as a pair
	if fileConfig.Dialog.Width > 0 && fileConfig.Dialog.Height > 0 {
		defaultConfig.Dialog.Width = fileConfig.Dialog.Width
		defaultConfig.Dialog.Height = fileConfig.Dialog.Height
	}
	if fileConfig.Dialog.Languages != nil {
		defaultConfig.Dialog.Languages = fileConfig.Dialog.Languages
	}
	if fileConfig.Dialog.MessageFiles != nil {
		defaultConfig.Dialog.MessageFiles = fileConfig.Dialog.MessageFiles
	}
	defaultConfig.Dialog.Labels = fileConfig.Dialog.Labels
	defaultConfig.Dialog.DismissResult = fileConfig.Dialog.DismissResult
}
