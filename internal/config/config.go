// Package config provides configuration management for the event stream.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Config represents the application configuration
type Config struct {
	// Destination selects the output: "" disables it, "-" is the
	// diagnostic stream, anything else is a file path.
	Destination string `json:"destination"`

	// Description is sent in the connect and disconnect frames
	Description string `json:"description"`

	// KeepAliveSeconds is the idle time before a keep-alive frame is sent.
	// Zero disables keep-alives.
	KeepAliveSeconds int `json:"keep_alive_seconds"`

	// OmitKeyNames sends empty key names for readers that predate them
	OmitKeyNames bool `json:"omit_key_names"`

	// WheelDelta appends the scroll amount to wheel frames
	WheelDelta bool `json:"wheel_delta"`

	// Monitor contains the live monitor settings
	Monitor MonitorConfig `json:"monitor"`
}

// MonitorConfig contains settings of the HTTP/WebSocket monitor
type MonitorConfig struct {
	// Enabled starts the monitor when dumping a stream
	Enabled bool `json:"enabled"`

	// Port is the port for the monitor server (default: 18090)
	Port int `json:"port"`

	// Token is an optional bearer token for monitor requests
	Token string `json:"token,omitempty"`
}

// KeepAlive returns the keep-alive interval, zero when disabled.
func (c *Config) KeepAlive() time.Duration {
	if c.KeepAliveSeconds <= 0 {
		return 0
	}
	return time.Duration(c.KeepAliveSeconds) * time.Second
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if c.KeepAliveSeconds < 0 {
		return fmt.Errorf("keep_alive_seconds must not be negative, got %d", c.KeepAliveSeconds)
	}
	if c.Monitor.Port < 0 || c.Monitor.Port > 65535 {
		return fmt.Errorf("monitor.port out of range: %d", c.Monitor.Port)
	}
	return nil
}

// DefaultConfig returns a new Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Destination:      "",
		Description:      "inputwire",
		KeepAliveSeconds: 0,
		Monitor: MonitorConfig{
			Enabled: false,
			Port:    18090,
		},
	}
}

// Manager handles loading and saving configuration
type Manager struct {
	mu         sync.Mutex
	configPath string
	config     *Config
}

// NewManager creates a configuration manager for the per-user config file
func NewManager() (*Manager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(configPath), nil
}

// NewManagerAt creates a configuration manager for an explicit file path
func NewManagerAt(path string) *Manager {
	return &Manager{
		configPath: path,
		config:     DefaultConfig(),
	}
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, "Library", "Application Support", "inputwire")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "inputwire")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			configDir = filepath.Join(xdg, "inputwire")
			break
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config", "inputwire")
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Path returns the configuration file location
func (m *Manager) Path() string {
	return m.configPath
}

// Load reads the configuration from disk
func (m *Manager) Load() error {
	m.mu.Lock()
	data, err := os.ReadFile(m.configPath)
	if errors.Is(err, os.ErrNotExist) {
		// No config file, use defaults
		m.mu.Unlock()
		return nil
	}
	if err != nil {
		m.mu.Unlock()
		return err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("parse %s: %w", m.configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("invalid config %s: %w", m.configPath, err)
	}
	m.config = cfg
	m.mu.Unlock()
	return nil
}

// Save writes the configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return err
	}

	log.Printf("Config: Saving configuration to %s (%d bytes)", m.configPath, len(data))
	return os.WriteFile(m.configPath, data, 0644)
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.config
}

// Set replaces the configuration; Save persists it
func (m *Manager) Set(config *Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = config
}
