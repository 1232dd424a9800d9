package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the environment variable holding the YAML config path.
const PathEnv = "KATSUYOU_CONFIG"

const defaultPath = "config.yaml"

// Load builds the server configuration and validates it.
//
// A YAML file is read from $KATSUYOU_CONFIG, or from ./config.yaml when
// that variable is unset. Environment variables override the file and
// env-default tags fill whatever neither sets. ./config.yaml is
// optional; a path named by KATSUYOU_CONFIG must exist.
func Load() (*Config, error) {
	path, required := os.LookupEnv(PathEnv)
	if !required || path == "" {
		path, required = defaultPath, false
	}

	var cfg Config
	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: %w", err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
