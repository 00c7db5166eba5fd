package config

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// Config holds process configuration, sourced from the environment.
type Config struct {
	AppName    string `env:"APP_NAME" env-default:"NeuroBridge"`
	Env        string `env:"ENV" env-default:"DEV"`
	ListenAddr string `env:"LISTEN_ADDR" env-default:":8080"`

	// APIBaseURL is the remote auth/platform API this dashboard talks to
	APIBaseURL string `env:"API_BASE_URL" env-default:"http://localhost:3001/api/v1"`

	// SessionFile is where the auth session is persisted. Defaults to a
	// per-user path under the OS config directory
	SessionFile string `env:"SESSION_FILE"`
}

// New reads configuration from the environment.
func New() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "[config.New] read environment")
	}

	if cfg.SessionFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "[config.New] resolve user config dir")
		}
		cfg.SessionFile = filepath.Join(dir, "neurobridge", "auth_session.json")
	}

	return &cfg, nil
}

// IsDev reports whether the process runs in the development environment.
func (c *Config) IsDev() bool {
	return c.Env == "DEV"
}
