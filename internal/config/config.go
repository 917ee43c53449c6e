package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/limaJavier/gatimetabling/pkg/ga"
	"github.com/limaJavier/gatimetabling/pkg/model"
)

// Config holds the defaults of the command-line tools, read from the environment
type Config struct {
	Environment string     `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string     `env:"LOG_LEVEL" envDefault:"info"`
	Seed        uint64     `env:"SEED" envDefault:"0"` // 0 draws a seed from the clock
	GA          ga.Config  `envPrefix:"GA_"`
	Grid        model.Grid `envPrefix:"GRID_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// Report only the first error to keep logs readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
