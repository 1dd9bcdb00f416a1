package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerworks/rostergen/pkg/config"
)

func TestNewBuildsLoggerPerEnvironment(t *testing.T) {
	dev, err := New(&config.Config{Env: config.EnvDevelopment, Log: config.LogConfig{Level: "debug"}})
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(-1), "debug level enabled")

	prod, err := New(&config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "warn", Format: "json"}})
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(0), "info suppressed at warn level")
}

func TestNewToleratesBadLevel(t *testing.T) {
	log, err := New(&config.Config{Env: config.EnvDevelopment, Log: config.LogConfig{Level: "shouting"}})
	require.NoError(t, err)
	assert.NotNil(t, log)
}
