package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Expense Tracker"`
		Port int    `envconfig:"PORT" default:"8000"`
	}

	Mongo struct {
		URI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
		Database string `envconfig:"MONGO_DATABASE" default:"expensetracker"`
	}

	Session struct {
		// Secret signs the session cookies.
		Secret string        `envconfig:"SECRET_KEY" required:"true"`
		TTL    time.Duration `envconfig:"SESSION_TTL" default:"720h"`
		Secure bool          `envconfig:"SESSION_SECURE" default:"false"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
