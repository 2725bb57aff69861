package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
)

type Config struct {
	// CMS
	APIEndpoint string `yaml:"api_endpoint" env:"DIRECTUS_API_ENDPOINT"`
	AssetURL    string `yaml:"asset_url" env:"DIRECTUS_URL"` // Public base for /assets/{id}; defaults to APIEndpoint
	Collection  string `yaml:"collection" env:"DIRECTUS_COLLECTION"`
	Username    string `yaml:"username" env:"DIRECTUS_USERNAME"`
	Password    string `yaml:"password,omitempty" env:"DIRECTUS_PASSWORD"`
	TimeoutSec  int    `yaml:"timeout_seconds" env:"DIRECTUS_TIMEOUT_SECONDS"`

	// Server
	Addr     string `yaml:"addr" env:"GALLERY_ADDR"`
	LogLevel string `yaml:"log_level" env:"GALLERY_LOG_LEVEL"`
	LogFile  string `yaml:"log_file" env:"GALLERY_LOG_FILE"`

	// Telemetry
	Telemetry bool `yaml:"telemetry" env:"GALLERY_TELEMETRY"`

	// Viewer
	DownloadDir   string `yaml:"download_dir" env:"GALLERY_DOWNLOAD_DIR"`
	DefaultFilter struct {
		Program string `yaml:"program"`
		Tag     string `yaml:"tag"`
	} `yaml:"default_filter"`
	ImageViewer string `yaml:"image_viewer"`
	ColorTheme  string `yaml:"color_theme"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	cfg := &Config{
		APIEndpoint: "",
		AssetURL:    "",
		Collection:  "success_stories",
		Username:    "",
		TimeoutSec:  30,
		Addr:        ":8080",
		LogLevel:    "info",
		LogFile:     "",
		Telemetry:   false,
		DownloadDir: "",
		ImageViewer: "",
		ColorTheme:  "auto",
	}
	cfg.DefaultFilter.Program = domain.All
	cfg.DefaultFilter.Tag = domain.All
	return cfg
}

// Load reads configuration from the specified file path, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Collection == "" {
		c.Collection = defaults.Collection
	}
	if c.TimeoutSec <= 0 {
		c.TimeoutSec = defaults.TimeoutSec
	}
	if c.Addr == "" {
		c.Addr = defaults.Addr
	}
	if !isValidLogLevel(c.LogLevel) {
		c.LogLevel = defaults.LogLevel
	}
	if c.ColorTheme == "" {
		c.ColorTheme = defaults.ColorTheme
	}
	if c.DefaultFilter.Program == "" {
		c.DefaultFilter.Program = domain.All
	}
	if c.DefaultFilter.Tag == "" {
		c.DefaultFilter.Tag = domain.All
	}
}

// AssetBase returns the URL images are served from
func (c *Config) AssetBase() string {
	if c.AssetURL != "" {
		return c.AssetURL
	}
	return c.APIEndpoint
}

// Timeout returns the CMS timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// Validate reports the first missing setting the CMS client needs
func (c *Config) Validate() error {
	if c.APIEndpoint == "" {
		return fmt.Errorf("%w: set api_endpoint or DIRECTUS_API_ENDPOINT", domain.ErrNotConfigured)
	}
	if c.Username == "" || c.Password == "" {
		return fmt.Errorf("%w: set DIRECTUS_USERNAME and DIRECTUS_PASSWORD", domain.ErrNoCredentials)
	}
	return nil
}

// Save persists the current configuration to the specified file path.
// The password is never written; it belongs in the environment.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := *c
	out.Password = ""

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isValidLogLevel(level string) bool {
	validLevels := []string{"debug", "info", "warn", "error"}
	for _, valid := range validLevels {
		if level == valid {
			return true
		}
	}
	return false
}
