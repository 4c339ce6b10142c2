// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Collector configures cmd/collector.
type Collector struct {
	PostgresDSN     string        `env:"KONJAC_POSTGRES_DSN,required,notEmpty"`
	HTTPAddr        string        `env:"KONJAC_HTTP_ADDR"           envDefault:":8080"`
	CORSOrigins     string        `env:"KONJAC_CORS_ORIGINS"        envDefault:"*"`
	MaxFetchLimit   int           `env:"KONJAC_MAX_FETCH_LIMIT"     envDefault:"1000"`
	MaxOpenConns    int           `env:"KONJAC_DB_MAX_OPEN_CONNS"   envDefault:"20"`
	MaxIdleConns    int           `env:"KONJAC_DB_MAX_IDLE_CONNS"   envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"KONJAC_DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	ShutdownTimeout time.Duration `env:"KONJAC_SHUTDOWN_TIMEOUT"    envDefault:"5s"`
}

func LoadCollector() (Collector, error) {
	var cfg Collector
	if err := ParseEnv(&cfg); err != nil {
		return Collector{}, err
	}
	return cfg, nil
}

// CLI holds the defaults of cmd/konjac; flags override them.
type CLI struct {
	APIKey   string        `env:"KONJAC_API_KEY"`
	Endpoint string        `env:"KONJAC_ENDPOINT"`
	Timeout  time.Duration `env:"KONJAC_TIMEOUT" envDefault:"10s"`
}

func LoadCLI() (CLI, error) {
	var cfg CLI
	if err := ParseEnv(&cfg); err != nil {
		return CLI{}, err
	}
	return cfg, nil
}
