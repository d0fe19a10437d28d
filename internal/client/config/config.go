// Package config loads runtime settings for the healthtrack client from
// the environment, with an optional .env overlay for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the healthtrack client.
//
// The store base URL hosts both the identity provider (under /auth/v1)
// and the table collections (under /rest/v1). The chat endpoint is a
// separate service. Object storage is S3-compatible and addressed by
// endpoint+bucket; public URLs are built from StoragePublicURL when set,
// otherwise from the endpoint itself.
type Config struct {
	StoreBaseURL string `env:"HEALTHTRACK_STORE_URL"`
	StoreAPIKey  string `env:"HEALTHTRACK_STORE_API_KEY"`
	ChatBaseURL  string `env:"HEALTHTRACK_CHAT_URL"`

	S3BaseEndpoint   string `env:"HEALTHTRACK_S3_ENDPOINT"`
	S3Region         string `env:"HEALTHTRACK_S3_REGION" envDefault:"us-east-1"`
	S3Bucket         string `env:"HEALTHTRACK_S3_BUCKET" envDefault:"documents"`
	S3AccessKey      string `env:"HEALTHTRACK_S3_ACCESS_KEY"`
	S3SecretKey      string `env:"HEALTHTRACK_S3_SECRET_KEY"`
	StoragePublicURL string `env:"HEALTHTRACK_STORAGE_PUBLIC_URL"`

	RequestTimeout time.Duration `env:"HEALTHTRACK_REQUEST_TIMEOUT" envDefault:"15s"`
}

// Load reads the optional .env file, parses the environment into a Config
// and validates required values. A missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"HEALTHTRACK_STORE_URL", c.StoreBaseURL},
		{"HEALTHTRACK_STORE_API_KEY", c.StoreAPIKey},
		{"HEALTHTRACK_CHAT_URL", c.ChatBaseURL},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("missing required setting %s", r.name)
		}
	}
	return nil
}
