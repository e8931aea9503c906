package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// ServerAddr points at a running signup server, e.g. "http://localhost:8080".
	ServerAddr string `envconfig:"SERVER_ADDR" default:"http://localhost:8080"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
