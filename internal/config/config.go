package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "sanad"
	configFile = "config.yaml"
)

// APIKeyEnvVar names the environment variable the suggestion credential is
// resolved from at startup. The key is never written to the config file.
const APIKeyEnvVar = "OPENAI_API_KEY"

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// Settings represents the user configuration file.
type Settings struct {
	Version int `yaml:"version"`

	// Language is the active UI and suggestion language ("en" or "ar")
	Language string `yaml:"language"`

	// Suggestion provider settings. The API key itself comes from the
	// environment, never from this file.
	Model          string `yaml:"model"`
	SuggestBaseURL string `yaml:"suggest_base_url,omitempty"`

	// SubmitURL is the application intake endpoint. When empty, submission
	// is simulated with a fixed delay.
	SubmitURL      string        `yaml:"submit_url,omitempty"`
	SimulatedDelay time.Duration `yaml:"simulated_delay,omitempty"`
}

// NewSettings returns settings with working defaults.
func NewSettings() *Settings {
	return &Settings{
		Version:        1,
		Language:       "en",
		Model:          "gpt-3.5-turbo",
		SimulatedDelay: 2 * time.Second,
	}
}

// GetConfigDir returns the OS-appropriate configuration directory for the
// application. This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/sanad or $HOME/.config/sanad
//   - macOS: $HOME/.config/sanad (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\sanad
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		// Linux and other Unix-like systems
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads the settings file from the given path. A missing file yields
// defaults, not an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := NewSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if settings.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", settings.Version)
	}
	if settings.Language != "ar" {
		settings.Language = "en"
	}
	if settings.Model == "" {
		settings.Model = "gpt-3.5-turbo"
	}

	return settings, nil
}

// LoadDefault loads the settings from the default config path.
func LoadDefault() (*Settings, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Save writes the settings to the given path, creating the directory if
// needed. The write is atomic to prevent corruption on crash.
func (s *Settings) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Sanad Configuration File
#
# Security Note: the OpenAI API key is NEVER stored in this file.
# Set it via the ` + APIKeyEnvVar + ` environment variable.

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace config file: %w", err)
	}

	return nil
}

// APIKey resolves the suggestion credential from the environment.
func APIKey() string {
	return os.Getenv(APIKeyEnvVar)
}
