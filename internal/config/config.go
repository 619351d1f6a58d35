package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Admin  AdminConfig
}

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type StoreConfig struct {
	// DataDir holds the three flat JSON collections (orders, customers,
	// admin sessions). Created on first write.
	DataDir string `env:"DATA_DIR" envDefault:"data"`
}

type AdminConfig struct {
	// Password is the shared admin secret, compared in constant time.
	// When PasswordHash is set it takes precedence and the comparison
	// goes through bcrypt instead.
	Password     string        `env:"ADMIN_PASSWORD" envDefault:"sa9r2025"`
	PasswordHash string        `env:"ADMIN_PASSWORD_HASH" envDefault:""`
	SessionTTL   time.Duration `env:"ADMIN_SESSION_TTL" envDefault:"24h"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
