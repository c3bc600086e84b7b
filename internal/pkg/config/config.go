package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the root of the storefront management API, e.g.
	// https://store.example.com. Paths under /api/v1 are appended to it.
	APIBaseURL  string        `env:"STORE_API_URL, default=http://localhost:8080"`
	HTTPTimeout time.Duration `env:"STORE_HTTP_TIMEOUT, default=30s"`
	LogLevel    string        `env:"LOG_LEVEL, default=info"`
	LogPretty   bool          `env:"LOG_PRETTY, default=true"`

	// Username and Password, when set, let one-shot commands authenticate
	// without an interactive login. The process keeps no session across runs.
	Username string `env:"STORE_USERNAME"`
	Password string `env:"STORE_PASSWORD"`

	Ops OpsConfig
}

// OpsConfig configures the local health/metrics endpoint served while the
// interactive console runs.
type OpsConfig struct {
	Enabled bool   `env:"OPS_ENABLED, default=false"`
	Addr    string `env:"OPS_ADDR, default=127.0.0.1:9431"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
