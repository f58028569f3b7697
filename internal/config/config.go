// Package config loads carpick settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/h0rv/carpick/internal/domain"
	"github.com/h0rv/carpick/internal/logging"
	"github.com/h0rv/carpick/internal/store"
	"github.com/h0rv/carpick/internal/vpic"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "carpick"
	configFile = "config.yaml"
	logFile    = "carpick.log"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full application configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Years  YearsConfig  `yaml:"years"`
	Loader LoaderConfig `yaml:"loader"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfig configures the vPIC client.
type APIConfig struct {
	BaseURL           string        `yaml:"base_url"`
	VehicleType       string        `yaml:"vehicle_type"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

// YearsConfig sets the window offered on the Year screen.
type YearsConfig struct {
	Latest int `yaml:"latest"`
	Count  int `yaml:"count"`
}

// LoaderConfig configures how make/model lists are loaded.
type LoaderConfig struct {
	StaleResponses string `yaml:"stale_responses"` // "discard" or "last-wins"
}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	Level string `yaml:"level"` // empty means silent
	File  string `yaml:"file"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           vpic.DefaultBaseURL,
			VehicleType:       vpic.DefaultVehicleType,
			Timeout:           vpic.DefaultTimeout,
			RequestsPerSecond: vpic.DefaultRequestsPerSecond,
			Burst:             vpic.DefaultBurst,
		},
		Years: YearsConfig{
			Latest: domain.DefaultLatestYear,
			Count:  domain.DefaultYearCount,
		},
		Loader: LoaderConfig{
			StaleResponses: store.PolicyNameDiscard,
		},
	}
}

// YearRange returns the configured year window.
func (c *Config) YearRange() domain.YearRange {
	return domain.YearRange{Latest: c.Years.Latest, Count: c.Years.Count}
}

// StalePolicy returns the parsed loader policy. Call Validate first.
func (c *Config) StalePolicy() store.StalePolicy {
	p, _ := store.ParseStalePolicy(c.Loader.StaleResponses)
	return p
}

// ClientOptions translates the API section into vpic client options.
func (c *Config) ClientOptions() []vpic.Option {
	return []vpic.Option{
		vpic.WithBaseURL(c.API.BaseURL),
		vpic.WithVehicleType(c.API.VehicleType),
		vpic.WithTimeout(c.API.Timeout),
		vpic.WithRateLimit(c.API.RequestsPerSecond, c.API.Burst),
	}
}

// Validate checks the configuration for values the application cannot use.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: api.base_url %q is not an absolute URL", ErrInvalid, c.API.BaseURL)
	}
	if c.API.VehicleType == "" {
		return fmt.Errorf("%w: api.vehicle_type must not be empty", ErrInvalid)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%w: api.timeout must be positive", ErrInvalid)
	}
	if c.API.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: api.requests_per_second must not be negative", ErrInvalid)
	}
	if c.Years.Count < 1 {
		return fmt.Errorf("%w: years.count must be at least 1", ErrInvalid)
	}
	if c.Years.Latest-c.Years.Count+1 < 1 {
		return fmt.Errorf("%w: years window %d..%d starts before year 1",
			ErrInvalid, c.Years.Latest-c.Years.Count+1, c.Years.Latest)
	}
	if _, err := store.ParseStalePolicy(c.Loader.StaleResponses); err != nil {
		return fmt.Errorf("%w: loader.stale_responses: %v", ErrInvalid, err)
	}
	if c.Log.Level != "" {
		if _, err := logging.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
		}
	}
	return nil
}

// LoadFromFile reads a YAML file on top of the defaults.
// Keys missing from the file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Load returns the configuration for path. An explicit path must exist; with an
// empty path the default location is tried and a missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFromFile(path)
	}

	defaultPath, err := GetConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	cfg, err := LoadFromFile(defaultPath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// GetConfigDir returns the carpick directory under the user config dir
// ($XDG_CONFIG_HOME or ~/.config on Linux).
func GetConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, appName), nil
}

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// DefaultLogPath returns where the TUI writes its log when no file is configured.
// It falls back to the temp directory when no cache directory is available.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appName, logFile)
}
