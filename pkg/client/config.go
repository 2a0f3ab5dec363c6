package client

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the client settings sourced from the environment.
type Config struct {
	// BaseURL is the API origin requests are resolved against,
	// e.g. "https://shop.example.com/admin/api/2024-01".
	BaseURL string `env:"API_BASE_URL,required"`

	// AccessToken is sent as the X-API-Access-Token header when no OAuth
	// token source is configured.
	AccessToken string `env:"API_ACCESS_TOKEN"`

	// Timeout bounds each request end to end.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`

	// UserAgent overrides the default user agent string.
	UserAgent string `env:"API_USER_AGENT"`
}

// LoadConfig populates a Config from environment variables. A .env file in
// the working directory is loaded first when present; its absence is not an
// error.
//
// Example:
//
//	cfg, err := client.LoadConfig()
//	if err != nil {
//		// API_BASE_URL missing or values unparsable
//	}
//	api, err := client.New(cfg)
func LoadConfig() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}
