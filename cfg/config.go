package cfg

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Logger struct {
	Level  string `env:"LOG_LEVEL, default=debug"`
	Format string `env:"LOG_FORMAT, default=text"`
}

type Server struct {
	APIPath             string        `env:"SERVER_API_PATH, default=hello-cafe"`
	Port                string        `env:"SERVER_PORT, default=8080"`
	WriteTimeout        time.Duration `env:"SERVER_WRITE_TIMEOUT, default=15s"`
	ReadTimeout         time.Duration `env:"SERVER_READ_TIMEOUT, default=15s"`
	IdleTimeout         time.Duration `env:"SERVER_IDLE_TIMEOUT, default=60s"`
	DeadlineOnInterrupt time.Duration `env:"SERVER_DEADLINE_ON_INTERRUPT, default=15s"`
}

// Config groups all process settings
type Config struct {
	Logger Logger
	Server Server
}

// Load reads an optional .env file and then the process environment
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load() // a missing .env file is fine, the environment still applies
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith resolves the configuration from the given lookuper
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	config := &Config{}
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &config.Logger,
		Lookuper: lookuper,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot process logger config: %w", err)
	}
	err = envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &config.Server,
		Lookuper: lookuper,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot process server config: %w", err)
	}
	return config, nil
}
