package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	CollectorAddr string `envconfig:"COLLECTOR_ADDR"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_AUTH must match the collector's AUTH_ENABLED setting
	Auth bool `envconfig:"E2E_AUTH" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
