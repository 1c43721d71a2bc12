package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Labels       LabelsConfig    `mapstructure:"labels"`
	Importer     ImporterConfig  `mapstructure:"importer"`
	History      HistoryConfig   `mapstructure:"history"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	Verbose               bool          `mapstructure:"verbose"`
}

// LabelsConfig contains the deployment's label vocabulary. The entity
// store accepts any non-empty label; this set is what the presentation
// layer offers, not what the core enforces.
type LabelsConfig struct {
	Types []string `mapstructure:"types"`
}

// ImporterConfig contains bulk text import settings
type ImporterConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	WatchDir string `mapstructure:"watch_dir"`
}

// HistoryConfig contains audit feed display settings
type HistoryConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	RequestsPerSecond int `mapstructure:"requests_per_second"`
	Burst             int `mapstructure:"burst"`
}
