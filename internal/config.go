package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultServerURL is used when no config file or flag overrides it.
const DefaultServerURL = "http://localhost:5000"

// Config holds client settings loaded from the state directory
type Config struct {
	ServerURL      string `yaml:"server_url"`
	RequestTimeout string `yaml:"request_timeout,omitempty"`
	Safety         struct {
		Violence string `yaml:"violence"`
	} `yaml:"safety"`
}

// DefaultConfig returns the settings used when no file exists
func DefaultConfig() *Config {
	cfg := &Config{ServerURL: DefaultServerURL}
	cfg.Safety.Violence = "low"
	return cfg
}

// DefaultStateDir returns the per-user state directory (~/.ai-trpg)
func DefaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".ai-trpg"), nil
}

// ConfigPath returns the config file location inside a state directory
func ConfigPath(stateDir string) string {
	return filepath.Join(stateDir, "config.yaml")
}

// LoadConfig reads config.yaml from the state directory. A missing file
// yields the defaults, not an error.
func LoadConfig(stateDir string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath(stateDir))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	if cfg.Safety.Violence == "" {
		cfg.Safety.Violence = "low"
	}
	return cfg, nil
}

// SaveConfig writes config.yaml into the state directory
func SaveConfig(stateDir string, cfg *Config) error {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(ConfigPath(stateDir), data, 0644)
}

// Timeout parses RequestTimeout, defaulting to 30s on absence or a bad
// value. The server side may take several seconds per turn, so the bound
// is generous.
func (c *Config) Timeout() time.Duration {
	if c.RequestTimeout == "" {
		return 30 * time.Second
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		LogWarn("Invalid request_timeout %q, using default", c.RequestTimeout)
		return 30 * time.Second
	}
	return d
}
