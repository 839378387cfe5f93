package config

import "time"

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Address string `yaml:"address" toml:"address" validate:"required"`
}

// APIConfig describes the transit API the tables are built from
type APIConfig struct {
	BaseURL       string        `yaml:"base_url" toml:"base_url" validate:"required,url"`
	Timeout       time.Duration `yaml:"timeout" toml:"timeout" validate:"gte=0"`
	ScheduleLimit int           `yaml:"schedule_limit" toml:"schedule_limit" validate:"gt=0"`
}

// RoutesConfig controls how route listings are ordered
type RoutesConfig struct {
	SortBy        string `yaml:"sort_by" toml:"sort_by" validate:"oneof=none name-asc name-desc"`
	RequireRoutes bool   `yaml:"require_routes" toml:"require_routes"`
}

// RedisConfig contains the connection details of the redis stop cache
type RedisConfig struct {
	Address  string `yaml:"address" toml:"address"`
	Password string `yaml:"password" toml:"password"`
}

// StopCacheConfig selects where resolved stop names are kept, if anywhere
type StopCacheConfig struct {
	Backend string        `yaml:"backend" toml:"backend" validate:"oneof=none memory redis"`
	TTL     time.Duration `yaml:"ttl" toml:"ttl" validate:"gte=0"`
	Redis   RedisConfig   `yaml:"redis" toml:"redis"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server    ServerConfig    `yaml:"server" toml:"server"`
	API       APIConfig       `yaml:"api" toml:"api"`
	Routes    RoutesConfig    `yaml:"routes" toml:"routes"`
	StopCache StopCacheConfig `yaml:"stop_cache" toml:"stop_cache"`
}
