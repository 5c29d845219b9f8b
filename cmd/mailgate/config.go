package main

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/mailgate/gateway"
	"github.com/dmitrymomot/mailgate/pkg/db"
	"github.com/dmitrymomot/mailgate/pkg/logger"
	"github.com/dmitrymomot/mailgate/pkg/redis"
)

// Config is the process configuration, read from the environment.
type Config struct {
	gateway.Config
	Log      logger.Config
	Database db.Config
	Redis    redis.Config

	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// YAML settings file used when no database is configured.
	SettingsFile     string        `env:"SETTINGS_FILE" envDefault:"settings.yaml"`
	SettingsCacheTTL time.Duration `env:"SETTINGS_CACHE_TTL" envDefault:"1m"`
}

func loadConfig() (Config, error) {
	return env.ParseAs[Config]()
}

func loadConfigFrom(environ map[string]string) (Config, error) {
	return env.ParseAsWithOptions[Config](env.Options{Environment: environ})
}
