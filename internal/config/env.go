package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds settings that can be overridden from the environment.
type Env struct {
	LogLevel     string        `env:"FOCUSDESK_LOG_LEVEL" envDefault:"info"`
	LogFormat    string        `env:"FOCUSDESK_LOG_FORMAT" envDefault:"text"`
	HistoryPath  string        `env:"FOCUSDESK_HISTORY_PATH"`
	TickInterval time.Duration `env:"FOCUSDESK_TICK_INTERVAL" envDefault:"1s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env and validates it.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.TickInterval <= 0 {
		return cfg, fmt.Errorf("tick interval must be positive, got %s", cfg.TickInterval)
	}
	return cfg, nil
}
