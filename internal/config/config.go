package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	Postgres Postgres
	Redis    Redis
	Scanner  Scanner
	Poster   Poster
	Worker   Worker
}

type App struct {
	Name     string `env:"APP_NAME" envDefault:"fba-scanner"`
	Version  string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
