package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	MySQLDSN   string `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/blog?charset=utf8mb4&parseTime=True&loc=Local"`
	// SecretKey signs and verifies bearer tokens. Must match across restarts
	// or previously issued tokens stop validating.
	SecretKey string `env:"SECRET_KEY" envDefault:"change-me"`

	// CreateDefaultLogin seeds a default user at startup when no user with
	// DefaultUsername exists yet.
	CreateDefaultLogin bool   `env:"CREATE_DEFAULT_LOGIN" envDefault:"false"`
	DefaultUsername    string `env:"DEFAULT_USERNAME" envDefault:"admin"`
	DefaultPassword    string `env:"DEFAULT_PASSWORD" envDefault:"admin"`

	SwaggerHost string `env:"SWAGGER_HOST"`
	LogLevel    int    `env:"LOG_LEVEL" envDefault:"0"`
}

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
