package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerworks/rostergen/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.Equal(t, 90*time.Second, cfg.Solver.MaxTime)
	assert.Equal(t, 0, cfg.Solver.Workers)

	assert.Equal(t, 4, cfg.Shift.MinSlots)
	assert.Equal(t, 8, cfg.Shift.MaxSlots)
	assert.Equal(t, 19.0, cfg.Shift.UniversalMaxHours)
	assert.Equal(t, 4, cfg.Shift.EmployeeDeviationSlots)
	assert.Equal(t, 4.0, cfg.Shift.DepartmentShortfallHours)

	assert.Equal(t, models.DefaultWeights(), cfg.Weights)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("SOLVER_MAX_TIME", "30s")
	t.Setenv("WEIGHT_FRONT_DESK_COVERAGE", "250")
	t.Setenv("SHIFT_MIN_SLOTS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Solver.MaxTime)
	assert.Equal(t, 250.0, cfg.Weights.FrontDeskCoverage)
	assert.Equal(t, 2, cfg.Shift.MinSlots)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("nonsense", time.Minute))
	assert.Equal(t, 5*time.Second, parseDuration("5s", time.Minute))
}
