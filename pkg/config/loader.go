package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no file is given
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{Address: ":8080"},
		API: APIConfig{
			BaseURL:       "https://api-v3.mbta.com",
			Timeout:       30 * time.Second,
			ScheduleLimit: 25,
		},
		Routes: RoutesConfig{SortBy: "none"},
		StopCache: StopCacheConfig{
			Backend: "none",
			TTL:     time.Hour,
		},
	}
}

// Load reads a YAML or TOML file over the defaults and validates the result.
// An empty path yields the validated defaults.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return AppConfig{}, err
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			if _, err := toml.Decode(string(data), &cfg); err != nil {
				return AppConfig{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		case ".yml", ".yaml":
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return AppConfig{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		default:
			return AppConfig{}, fmt.Errorf("unsupported config format: %s", path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func (cfg AppConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}

	// redis needs somewhere to connect to
	if cfg.StopCache.Backend == "redis" && cfg.StopCache.Redis.Address == "" {
		return fmt.Errorf("stop_cache.redis.address is required for the redis backend")
	}

	return nil
}
