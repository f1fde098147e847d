package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/cheesesashimi/mazdadealers/pkg/dealer"
)

const (
	DefaultOutputPath string = "mazda_dealers.csv"
	DefaultEnv        string = "development"
)

// Config holds everything the export run needs. The zero-configuration values
// reproduce the fixed endpoint and output file.
type Config struct {
	DealersURL  string
	OutputPath  string
	Env         string
	HTTPTimeout time.Duration
	UserAgent   string
	MapWorkers  int
	StripMarkup bool
}

// Load reads an optional .env file, then the environment, falling back to
// defaults for anything unset.
func Load() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("DEALERS_URL", dealer.DealersEndpoint)
	v.SetDefault("OUTPUT_PATH", DefaultOutputPath)
	v.SetDefault("ENV", DefaultEnv)
	v.SetDefault("HTTP_TIMEOUT", "0s")
	v.SetDefault("USER_AGENT", "")
	v.SetDefault("MAP_WORKERS", 1)
	v.SetDefault("STRIP_MARKUP", false)

	v.AutomaticEnv()

	cfg := &Config{
		DealersURL:  v.GetString("DEALERS_URL"),
		OutputPath:  v.GetString("OUTPUT_PATH"),
		Env:         v.GetString("ENV"),
		HTTPTimeout: v.GetDuration("HTTP_TIMEOUT"),
		UserAgent:   v.GetString("USER_AGENT"),
		MapWorkers:  v.GetInt("MAP_WORKERS"),
		StripMarkup: v.GetBool("STRIP_MARKUP"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if c.DealersURL == "" {
		return fmt.Errorf("DEALERS_URL is required")
	}

	u, err := url.Parse(c.DealersURL)
	if err != nil {
		return fmt.Errorf("DEALERS_URL is invalid: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("DEALERS_URL must be an absolute http(s) URL, got %q", c.DealersURL)
	}

	if c.OutputPath == "" {
		return fmt.Errorf("OUTPUT_PATH is required")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be non-negative")
	}
	if c.MapWorkers < 1 {
		return fmt.Errorf("MAP_WORKERS must be at least 1")
	}

	return nil
}
