package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment variables override file values
		viper.SetEnvPrefix("ANNOTATOR")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing config file is fine: defaults plus env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetStringSlice returns a string slice config value
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		return fmt.Errorf("database path must be configured")
	}

	if len(viper.GetStringSlice("labels.types")) == 0 {
		return fmt.Errorf("at least one label type must be configured")
	}

	// Auto-correct invalid history limit
	if viper.GetInt("history.default_limit") <= 0 {
		viper.Set("history.default_limit", 10)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database path must be configured")
	}

	if len(c.Labels.Types) == 0 {
		return fmt.Errorf("at least one label type must be configured")
	}

	if c.History.DefaultLimit <= 0 {
		c.History.DefaultLimit = 10
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/annotator.db")
	viper.SetDefault("database.max_connections", 50)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", time.Hour)
	viper.SetDefault("database.verbose", false)

	// Label vocabulary defaults
	viper.SetDefault("labels.types", []string{"PERSON", "ORGANIZATION", "LOCATION", "MISCELLANEOUS"})

	// Importer defaults
	viper.SetDefault("importer.enabled", false)
	viper.SetDefault("importer.watch_dir", "./data/incoming")

	// History feed defaults: the audit view truncates to the most
	// recent actions
	viper.SetDefault("history.default_limit", 10)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.requests_per_second", 10)
	viper.SetDefault("rate_limiting.burst", 20)
}
