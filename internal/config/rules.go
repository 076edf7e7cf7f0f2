package config

import (
	"github.com/caarlos0/env/v11"

	"tarot345/internal/game"
)

type RulesConfig struct {
	// Path to a rules document; the embedded defaults are used when empty.
	Path string `env:"RULES_PATH"`
}

func LoadRulesConfig() (RulesConfig, error) {
	var cfg RulesConfig
	err := env.Parse(&cfg)
	return cfg, err
}

// Rules resolves the scoring constants named by the configuration.
func (c RulesConfig) Rules() (game.Rules, error) {
	if c.Path == "" {
		return game.DefaultRules(), nil
	}
	return game.LoadRules(c.Path)
}
