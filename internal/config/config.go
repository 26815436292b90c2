// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	API    APIConfig    `toml:"api"`
	Search SearchConfig `toml:"search"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

// APIConfig holds image search API settings.
type APIConfig struct {
	Key         string `toml:"key"`
	BaseURL     string `toml:"base_url"`    // e.g., "https://pixabay.com"
	PerPage     int    `toml:"per_page"`    // hits per page, 3..200
	ImageType   string `toml:"image_type"`  // "all", "photo", "illustration", "vector"
	Orientation string `toml:"orientation"` // "all", "horizontal", "vertical"
	SafeSearch  bool   `toml:"safesearch"`
	Timeout     string `toml:"timeout"` // Go duration, e.g. "10s"
}

// SearchConfig holds session behavior settings.
type SearchConfig struct {
	Dedupe bool `toml:"dedupe"` // drop hits already shown for the current query
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme   string `toml:"theme"`    // "mocha", "macchiato", "frappe", "latte", "light"
	ToastMS int    `toml:"toast_ms"` // error toast lifetime in milliseconds
}

// LogConfig holds debug log settings.
type LogConfig struct {
	DebugPath string `toml:"debug_path"`
}

const (
	minPerPage = 3
	maxPerPage = 200
)

var validImageTypes = map[string]bool{
	"all":          true,
	"photo":        true,
	"illustration": true,
	"vector":       true,
}

var validOrientations = map[string]bool{
	"all":        true,
	"horizontal": true,
	"vertical":   true,
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "https://pixabay.com",
			PerPage:     12,
			ImageType:   "photo",
			Orientation: "horizontal",
			SafeSearch:  true,
			Timeout:     "10s",
		},
		Search: SearchConfig{
			Dedupe: true,
		},
		UI: UIConfig{
			Theme:   "mocha",
			ToastMS: 3000,
		},
		Log: LogConfig{
			DebugPath: "pixsearch-debug.log",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "pixsearch", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.API.Key = strings.TrimSpace(cfg.API.Key)
	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
	cfg.Log.DebugPath = expandPath(cfg.Log.DebugPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	// PIXABAY_API_KEY is the name the API docs use; the prefixed one wins.
	if v := os.Getenv("PIXABAY_API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("PIXSEARCH_API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("PIXSEARCH_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("PIXSEARCH_PER_PAGE"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.API.PerPage = n
		}
	}
	if v := os.Getenv("PIXSEARCH_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("PIXSEARCH_DEBUG_PATH"); v != "" {
		cfg.Log.DebugPath = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("base_url must be set")
	}
	if c.API.PerPage < minPerPage || c.API.PerPage > maxPerPage {
		return fmt.Errorf("per_page must be between %d and %d, got %d", minPerPage, maxPerPage, c.API.PerPage)
	}
	if !validImageTypes[strings.ToLower(c.API.ImageType)] {
		return fmt.Errorf("invalid image_type: %s", c.API.ImageType)
	}
	if !validOrientations[strings.ToLower(c.API.Orientation)] {
		return fmt.Errorf("invalid orientation: %s", c.API.Orientation)
	}
	if _, err := c.RequestTimeout(); err != nil {
		return err
	}
	if c.UI.ToastMS <= 0 {
		return fmt.Errorf("toast_ms must be positive, got %d", c.UI.ToastMS)
	}
	return nil
}

// RequestTimeout parses the API timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(c.API.Timeout))
	if err != nil {
		return 0, fmt.Errorf("timeout must be a duration like \"10s\", got %q", c.API.Timeout)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %q", c.API.Timeout)
	}
	return d, nil
}

// ToastDuration returns how long error toasts stay visible.
func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.UI.ToastMS) * time.Millisecond
}

// InfoToastDuration returns how long info toasts stay visible: two thirds of
// the error lifetime, never less than a millisecond.
func (c *Config) InfoToastDuration() time.Duration {
	return max(c.ToastDuration()*2/3, time.Millisecond)
}

// HasAPIKey reports whether an API key is configured.
func (c *Config) HasAPIKey() bool {
	return c.API.Key != ""
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// The file can hold an API key.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
