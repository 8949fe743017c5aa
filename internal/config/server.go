package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig controls the SSH preview server.
type ServerConfig struct {
	Address     string        `env:"DUNGEON_SSH_ADDR"     envDefault:":23234"`
	HostKeyPath string        `env:"DUNGEON_HOST_KEY"`
	DBPath      string        `env:"DUNGEON_DB"           envDefault:"~/.dungeon/levels.db"`
	IdleTimeout time.Duration `env:"DUNGEON_IDLE_TIMEOUT" envDefault:"5m"`
	LogLevel    string        `env:"DUNGEON_LOG_LEVEL"    envDefault:"info"`
}

// LoadServerConfig reads the server configuration from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
