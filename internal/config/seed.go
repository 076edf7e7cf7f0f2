package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type SeedConfig struct {
	Games      int   `env:"SEED_GAMES" envDefault:"20"`
	MaxHands   int   `env:"SEED_MAX_HANDS" envDefault:"12"`
	RosterSize int   `env:"SEED_ROSTER_SIZE" envDefault:"8"`
	Seed       int64 `env:"SEED" envDefault:"1"`
	// End dates the most recent generated game. A fixed default keeps runs
	// with the same seed identical.
	End         time.Time `env:"SEED_END" envDefault:"2026-01-01T00:00:00Z"`
	Output      string    `env:"SEED_OUTPUT"`
	PostgresDSN string    `env:"POSTGRES_DSN"`
}

func LoadSeed() (SeedConfig, error) {
	var cfg SeedConfig
	err := env.Parse(&cfg)
	return cfg, err
}
