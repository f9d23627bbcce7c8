package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
holidays:
  base_url: "https://example.org"
  http_timeout: "5s"
  country: "KZ"
  search_paths:
    - "/tmp/holidays.cal"
log:
  file: "/var/log/cal.log"
  level: "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Holidays.BaseURL != "https://example.org" {
		t.Errorf("base_url = %q", cfg.Holidays.BaseURL)
	}
	if cfg.Holidays.Country != "KZ" {
		t.Errorf("country = %q", cfg.Holidays.Country)
	}
	if got := cfg.Holidays.GetHTTPTimeout(); got != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", got)
	}
	if len(cfg.Holidays.SearchPaths) != 1 || cfg.Holidays.SearchPaths[0] != "/tmp/holidays.cal" {
		t.Errorf("search_paths = %v", cfg.Holidays.SearchPaths)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() with missing explicit path: expected error, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Empty config", Config{}, false},
		{"Valid country", Config{Holidays: HolidaysConfig{Country: "RU"}}, false},
		{"Long country", Config{Holidays: HolidaysConfig{Country: "RUS"}}, true},
		{"Valid timeout", Config{Holidays: HolidaysConfig{HTTPTimeout: "30s"}}, false},
		{"Bad timeout", Config{Holidays: HolidaysConfig{HTTPTimeout: "soon"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetHTTPTimeout_Defaults(t *testing.T) {
	c := HolidaysConfig{}
	if got := c.GetHTTPTimeout(); got != 10*time.Second {
		t.Errorf("empty timeout = %v, want 10s", got)
	}
	c.HTTPTimeout = "garbage"
	if got := c.GetHTTPTimeout(); got != 10*time.Second {
		t.Errorf("unparseable timeout = %v, want 10s", got)
	}
}
