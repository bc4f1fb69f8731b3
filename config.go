package sparkpost

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig is the client configuration read from the environment.
type EnvConfig struct {
	APIKey   string `env:"SPARKPOST_API_KEY,required,notEmpty"`
	Host     string `env:"SPARKPOST_HOST" envDefault:"api.sparkpost.com"`
	Protocol string `env:"SPARKPOST_PROTOCOL" envDefault:"https"`
	Port     int    `env:"SPARKPOST_PORT" envDefault:"443"`
	Version  string `env:"SPARKPOST_VERSION" envDefault:"v1"`
	Async    bool   `env:"SPARKPOST_ASYNC" envDefault:"true"`
	Debug    bool   `env:"SPARKPOST_DEBUG" envDefault:"false"`
	Retries  int    `env:"SPARKPOST_RETRIES" envDefault:"0"`
}

// LoadEnvConfig loads variables from the given .env files, or from ./.env
// when none are given, and parses the environment. A missing default .env
// file is not an error; variables already set in the environment take
// precedence over file values.
func LoadEnvConfig(files ...string) (*EnvConfig, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg, err := env.ParseAs[EnvConfig]()
	if err != nil {
		return nil, &ConfigurationError{Message: "failed to parse environment", Err: err}
	}
	return &cfg, nil
}

// Options converts the configuration into client options.
func (e *EnvConfig) Options() Options {
	return Options{
		Host:     e.Host,
		Protocol: e.Protocol,
		Port:     e.Port,
		Key:      e.APIKey,
		Version:  e.Version,
		Async:    e.Async,
		Debug:    e.Debug,
		Retries:  e.Retries,
	}
}

// NewFromEnv creates a client from LoadEnvConfig. opts are applied after the
// environment and override it.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadEnvConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg.APIKey, append([]Option{WithOptions(cfg.Options())}, opts...)...)
}
