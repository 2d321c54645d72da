package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// FORUM_ADDR is the host:port of a node started with SEED_DEMO=true.
	// The suite is skipped when it is empty.
	ForumAddr  string `envconfig:"FORUM_ADDR"`
	HealthAddr string `envconfig:"FORUM_HEALTH_ADDR"`
	// E2E_DEBUG_JSON dumps request and response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
