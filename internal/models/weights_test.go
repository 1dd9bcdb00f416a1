package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWeightTiers(t *testing.T) {
	w := DefaultWeights()

	// Each tier must dominate the ones below it.
	assert.Greater(t, w.FrontDeskCoverage, w.EmployeeLargeDeviation)
	assert.Greater(t, w.EmployeeLargeDeviation, w.DepartmentLargeShortfall)
	assert.Greater(t, w.DepartmentLargeShortfall, w.DepartmentTarget)
	assert.Greater(t, w.DepartmentTarget, w.TargetAdherence)
	assert.Greater(t, w.TargetAdherence, w.DepartmentSpread)
	assert.Greater(t, w.DepartmentSpread, w.CollaborativeHours)
	assert.Greater(t, w.CollaborativeHours, w.DepartmentDayCoverage)
	assert.Greater(t, w.DepartmentDayCoverage, w.ShiftLength)
	assert.Greater(t, w.ShiftLength, w.DepartmentScarcity)
	assert.Greater(t, w.DepartmentScarcity, w.UnderclassmanFrontDesk)
}

func TestYearTargetMultiplier(t *testing.T) {
	assert.Equal(t, 1.5, YearTargetMultiplier(1))
	assert.Equal(t, 1.25, YearTargetMultiplier(2))
	assert.Equal(t, 1.0, YearTargetMultiplier(3))
	assert.Equal(t, 0.8, YearTargetMultiplier(4))
	assert.Equal(t, 1.0, YearTargetMultiplier(0))
}
