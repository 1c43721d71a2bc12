package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	assert.Equal(t, 8080, viper.GetInt("server.port"))
	assert.Equal(t, "./data/annotator.db", viper.GetString("database.path"))
	assert.Equal(t, []string{"PERSON", "ORGANIZATION", "LOCATION", "MISCELLANEOUS"}, viper.GetStringSlice("labels.types"))
	assert.Equal(t, 10, viper.GetInt("history.default_limit"))
	assert.Equal(t, 10*time.Second, viper.GetDuration("server.shutdown_timeout"))
}

func TestValidate(t *testing.T) {
	t.Run("accepts defaults", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()
		setDefaults()

		require.NoError(t, validate())
	})

	t.Run("rejects bad port", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()
		setDefaults()
		viper.Set("server.port", 0)

		assert.Error(t, validate())
	})

	t.Run("rejects empty label set", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()
		setDefaults()
		viper.Set("labels.types", []string{})

		assert.Error(t, validate())
	})

	t.Run("corrects non-positive history limit", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()
		setDefaults()
		viper.Set("history.default_limit", -1)

		require.NoError(t, validate())
		assert.Equal(t, 10, viper.GetInt("history.default_limit"))
	})
}

func TestConfigStructValidate(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Path: "./test.db"},
		Labels:   LabelsConfig{Types: []string{"PERSON"}},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.History.DefaultLimit)

	cfg.Labels.Types = nil
	assert.Error(t, cfg.Validate())
}
