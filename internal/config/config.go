// Package config loads the console configuration from an optional YAML
// file with environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// Config holds everything the console needs to reach the backend and
// persist its session.
type Config struct {
	// APIBaseURL is the commerce backend's base URL.
	APIBaseURL string `yaml:"api_base_url" env:"BACKOFFICE_API_URL"`
	// RequestTimeout bounds each API request.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"BACKOFFICE_REQUEST_TIMEOUT"`
	// SessionFile is where the session token and profile are persisted
	// between runs.
	SessionFile string `yaml:"session_file" env:"BACKOFFICE_SESSION_FILE"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"BACKOFFICE_LOG_LEVEL"`
}

// UnmarshalYAML fills only the fields the file sets, leaving defaults on
// the rest, and accepts durations in time.ParseDuration notation.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		APIBaseURL     string `yaml:"api_base_url"`
		RequestTimeout string `yaml:"request_timeout"`
		SessionFile    string `yaml:"session_file"`
		LogLevel       string `yaml:"log_level"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.APIBaseURL != "" {
		c.APIBaseURL = raw.APIBaseURL
	}
	if raw.RequestTimeout != "" {
		d, err := time.ParseDuration(raw.RequestTimeout)
		if err != nil {
			return fmt.Errorf("invalid request_timeout: %w", err)
		}
		c.RequestTimeout = d
	}
	if raw.SessionFile != "" {
		c.SessionFile = raw.SessionFile
	}
	if raw.LogLevel != "" {
		c.LogLevel = raw.LogLevel
	}
	return nil
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		APIBaseURL:     "http://localhost:3000/api",
		RequestTimeout: 30 * time.Second,
		SessionFile:    filepath.Join(home, ".backoffice", "session.json"),
		LogLevel:       "info",
	}
}

// Load reads the config file at path when it exists, then applies
// environment overrides. A missing file is not an error; a malformed
// one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// envdecode errors when no env tag matched anything; that just
	// means nothing was overridden.
	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base URL is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	if c.SessionFile == "" {
		return fmt.Errorf("session file path is required")
	}
	return nil
}
