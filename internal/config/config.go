package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	str2duration "github.com/xhit/go-str2duration/v2"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the config schema version written by this build.
const CurrentConfigVersion = 1

var validate = validator.New()

// Config represents the application configuration
type Config struct {
	Version         int            `yaml:"version"`
	Language        string         `yaml:"language" validate:"required"`         // Profile used when parsing alarm expressions (en, nl, de, fr, es)
	NaturalLanguage bool           `yaml:"natural_language"`                     // Try the natural-language parser before the rule cascade (English only)
	SnoozeDuration  string         `yaml:"snooze_duration"`              // How long snooze postpones an alarm (e.g. "9m", "1h30m")
	Database        DatabaseConfig `yaml:"database"`
	Webhook         WebhookConfig  `yaml:"webhook"`
	Update          UpdateConfig   `yaml:"update"`
}

// DatabaseConfig contains SQLite database configuration (optional)
type DatabaseConfig struct {
	Path string `yaml:"path"` // Path to SQLite database file (optional, defaults to ~/.wekker/wekker.db)
}

// WebhookConfig contains webhook notification configuration (optional)
type WebhookConfig struct {
	Enabled bool   `yaml:"enabled"`                        // Whether to post alarm events to a webhook
	URL     string `yaml:"url" validate:"omitempty,http_url"` // Webhook endpoint (required when enabled)
}

// UpdateConfig contains self-update configuration (optional)
type UpdateConfig struct {
	Disabled      bool   `yaml:"disabled"`                                        // Disable the background update check
	CheckInterval string `yaml:"check_interval"`                                  // Minimum time between update checks (e.g. "24h")
	Channel       string `yaml:"channel" validate:"omitempty,oneof=stable beta"` // Release channel to track
}

// Load loads configuration from the config file
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	log.Debug().Str("path", configPath).Msg("Loading configuration")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s. Run 'wekker config init' to create one", configPath)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults
	if config.SnoozeDuration == "" {
		config.SnoozeDuration = "9m"
	}
	if config.Database.Path == "" {
		config.Database.Path = filepath.Join(getConfigDir(), "wekker.db")
	}
	if config.Update.CheckInterval == "" {
		config.Update.CheckInterval = "24h"
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Debug().Msg("Configuration loaded successfully")
	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if c.SnoozeDuration != "" {
		if _, err := str2duration.ParseDuration(c.SnoozeDuration); err != nil {
			return fmt.Errorf("snooze_duration %q is not a valid duration: %w", c.SnoozeDuration, err)
		}
	}
	if c.Update.CheckInterval != "" {
		if _, err := str2duration.ParseDuration(c.Update.CheckInterval); err != nil {
			return fmt.Errorf("update.check_interval %q is not a valid duration: %w", c.Update.CheckInterval, err)
		}
	}
	if c.Webhook.Enabled && c.Webhook.URL == "" {
		return fmt.Errorf("webhook.url is required when webhook.enabled is true")
	}
	return nil
}

// Snooze returns the configured snooze duration, parsed.
func (c *Config) Snooze() (time.Duration, error) {
	return str2duration.ParseDuration(c.SnoozeDuration)
}

// UpdateInterval returns the configured update check interval, parsed.
func (c *Config) UpdateInterval() (time.Duration, error) {
	return str2duration.ParseDuration(c.Update.CheckInterval)
}

// getConfigDir returns the configuration directory path
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get user home directory")
	}
	return filepath.Join(homeDir, ".wekker")
}

// Dir returns the configuration directory path
func Dir() string {
	return getConfigDir()
}

// Path returns the full path to the config file.
// The WEKKER_CONFIG environment variable overrides the default location.
func Path() (string, error) {
	if envPath := os.Getenv("WEKKER_CONFIG"); envPath != "" {
		return envPath, nil
	}

	return filepath.Join(getConfigDir(), "config.yaml"), nil
}

// EnsureConfigDir ensures the config directory exists
func EnsureConfigDir() error {
	configDir := getConfigDir()
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}
