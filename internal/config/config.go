package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreFirestore = "firestore"
	StoreMemory    = "memory"
)

// Config holds all configuration for the application.
type Config struct {
	Port                             string `mapstructure:"PORT"`
	GinMode                          string `mapstructure:"GIN_MODE"`
	StoreBackend                     string `mapstructure:"STORE_BACKEND"`
	StoreFixture                     string `mapstructure:"STORE_FIXTURE"`
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	ClientURL                        string `mapstructure:"CLIENT_URL"`
	SessionCookieName                string `mapstructure:"SESSION_COOKIE_NAME"`
	DisplayTimezone                  string `mapstructure:"DISPLAY_TIMEZONE"`
	FeedLookupConcurrency            int    `mapstructure:"FEED_LOOKUP_CONCURRENCY"`
	AMQPURL                          string `mapstructure:"AMQP_URL"`
	AMQPQueue                        string `mapstructure:"AMQP_QUEUE"`
}

var keys = []string{
	"PORT",
	"GIN_MODE",
	"STORE_BACKEND",
	"STORE_FIXTURE",
	"FIREBASE_PROJECT_ID",
	"GOOGLE_APPLICATION_CREDENTIALS",
	"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64",
	"CLIENT_URL",
	"SESSION_COOKIE_NAME",
	"DISPLAY_TIMEZONE",
	"FEED_LOOKUP_CONCURRENCY",
	"AMQP_URL",
	"AMQP_QUEUE",
}

// LoadConfig loads configuration from environment variables. Outside release
// mode a .env file in the working directory is loaded first, without
// overriding variables that are already set.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if !strings.EqualFold(v.GetString("GIN_MODE"), "release") {
		_ = godotenv.Load()
	}

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("STORE_BACKEND", StoreFirestore)
	v.SetDefault("SESSION_COOKIE_NAME", "session")
	v.SetDefault("DISPLAY_TIMEZONE", "Asia/Tokyo")
	v.SetDefault("FEED_LOOKUP_CONCURRENCY", 8)
	v.SetDefault("AMQP_QUEUE", "activity")

	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}
	cfg.StoreBackend = strings.ToLower(cfg.StoreBackend)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case StoreFirestore:
		if c.FirebaseProjectID == "" {
			return errors.New("FIREBASE_PROJECT_ID is required")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreFirestore, StoreMemory, c.StoreBackend)
	}
	if c.FeedLookupConcurrency < 1 {
		return errors.New("FEED_LOOKUP_CONCURRENCY must be at least 1")
	}
	if _, err := time.LoadLocation(c.DisplayTimezone); err != nil {
		return fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", c.DisplayTimezone, err)
	}
	return nil
}

// Location returns the display timezone. It falls back to UTC, which only
// happens for a Config that did not pass LoadConfig.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return strings.EqualFold(c.GinMode, "release")
}
