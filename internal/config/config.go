package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration. Everything has a working
// default: running without a config file is the normal case.
type Config struct {
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Log      LogConfig      `mapstructure:"log"`
}

// HolidaysConfig represents holiday provider configuration
type HolidaysConfig struct {
	BaseURL     string   `mapstructure:"base_url"`
	HTTPTimeout string   `mapstructure:"http_timeout"`
	Country     string   `mapstructure:"country"`
	SearchPaths []string `mapstructure:"search_paths"` // local classification files, tried in order
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. An absent config file is not an
// error unless a path was given explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.cal")
		v.AddConfigPath("/etc/cal")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && errors.As(err, &notFound) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Holidays.Country != "" && len(c.Holidays.Country) != 2 {
		return fmt.Errorf("holidays.country must be a 2-letter code, got %q", c.Holidays.Country)
	}
	if c.Holidays.HTTPTimeout != "" {
		if _, err := time.ParseDuration(c.Holidays.HTTPTimeout); err != nil {
			return fmt.Errorf("holidays.http_timeout is not a duration: %w", err)
		}
	}
	return nil
}

// GetHTTPTimeout returns the holiday fetch timeout duration
func (c *HolidaysConfig) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.HTTPTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}
