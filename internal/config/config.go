package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the environment-driven settings of the client.
type Config struct {
	BackendBaseURL     string `mapstructure:"BACKEND_BASE_URL"`
	DiagnosesFile      string `mapstructure:"DIAGNOSES_FILE"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	AlertTTLSeconds    int    `mapstructure:"ALERT_TTL_SECONDS"`
}

// Load reads configuration from the environment, with a .env file as
// optional fallback.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("BACKEND_BASE_URL", "http://localhost:3001")
	v.SetDefault("DIAGNOSES_FILE", "diagnoses.yaml")
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	v.SetDefault("ALERT_TTL_SECONDS", 5)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("BACKEND_BASE_URL")
	v.BindEnv("DIAGNOSES_FILE")
	v.BindEnv("HTTP_TIMEOUT_SECONDS")
	v.BindEnv("ALERT_TTL_SECONDS")

	// Try reading .env, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// HTTPTimeout returns the backend request timeout.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// AlertTTL returns how long an error message stays visible.
func (c *Config) AlertTTL() time.Duration {
	return time.Duration(c.AlertTTLSeconds) * time.Second
}
