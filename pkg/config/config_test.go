package config

import (
	"testing"
	"time"
)

var configEnvVars = []string{
	"DEALERS_URL",
	"OUTPUT_PATH",
	"ENV",
	"HTTP_TIMEOUT",
	"USER_AGENT",
	"MAP_WORKERS",
	"STRIP_MARKUP",
}

func clearConfigEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	clearConfigEnvVars(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DealersURL != "https://www.mazda.co.uk/api/dealers" {
		t.Errorf("Expected default dealers URL, got %s", cfg.DealersURL)
	}
	if cfg.OutputPath != "mazda_dealers.csv" {
		t.Errorf("Expected output mazda_dealers.csv, got %s", cfg.OutputPath)
	}
	if cfg.Env != "development" {
		t.Errorf("Expected env development, got %s", cfg.Env)
	}
	if cfg.HTTPTimeout != 0 {
		t.Errorf("Expected no timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.UserAgent != "" {
		t.Errorf("Expected empty user agent, got %s", cfg.UserAgent)
	}
	if cfg.MapWorkers != 1 {
		t.Errorf("Expected 1 worker, got %d", cfg.MapWorkers)
	}
	if cfg.StripMarkup {
		t.Error("Expected markup stripping to be off")
	}
}

func TestLoad_WithEnvironmentVariables(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEALERS_URL", "http://localhost:9999/api/dealers")
	t.Setenv("OUTPUT_PATH", "/tmp/dealers.csv")
	t.Setenv("ENV", "production")
	t.Setenv("HTTP_TIMEOUT", "15s")
	t.Setenv("USER_AGENT", "mazdadealers/1.0")
	t.Setenv("MAP_WORKERS", "4")
	t.Setenv("STRIP_MARKUP", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DealersURL != "http://localhost:9999/api/dealers" {
		t.Errorf("Expected dealers URL from env, got %s", cfg.DealersURL)
	}
	if cfg.OutputPath != "/tmp/dealers.csv" {
		t.Errorf("Expected output from env, got %s", cfg.OutputPath)
	}
	if cfg.Env != "production" {
		t.Errorf("Expected env production, got %s", cfg.Env)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("Expected 15s timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.UserAgent != "mazdadealers/1.0" {
		t.Errorf("Expected user agent from env, got %s", cfg.UserAgent)
	}
	if cfg.MapWorkers != 4 {
		t.Errorf("Expected 4 workers, got %d", cfg.MapWorkers)
	}
	if !cfg.StripMarkup {
		t.Error("Expected markup stripping to be on")
	}
}

func TestLoad_InvalidWorkers(t *testing.T) {
	t.Chdir(t.TempDir())
	clearConfigEnvVars(t)
	t.Setenv("MAP_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Error("Expected error for zero workers")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DealersURL: "https://www.mazda.co.uk/api/dealers",
			OutputPath: "mazda_dealers.csv",
			Env:        "production",
			MapWorkers: 1,
		}
	}

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "empty url", mutate: func(c *Config) { c.DealersURL = "" }, wantErr: true},
		{name: "relative url", mutate: func(c *Config) { c.DealersURL = "/api/dealers" }, wantErr: true},
		{name: "ftp url", mutate: func(c *Config) { c.DealersURL = "ftp://example.com/dealers" }, wantErr: true},
		{name: "empty output", mutate: func(c *Config) { c.OutputPath = "" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.HTTPTimeout = -time.Second }, wantErr: true},
		{name: "zero workers", mutate: func(c *Config) { c.MapWorkers = 0 }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
