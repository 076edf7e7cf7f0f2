package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	AdminAPIKey string `env:"ADMIN_API_KEY"`

	MCPEnabled bool `env:"MCP_ENABLED" envDefault:"true"`
	// MaxBodyKB caps JSON request bodies; history imports can be large.
	MaxBodyKB int `env:"MAX_BODY_KB" envDefault:"4096"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
