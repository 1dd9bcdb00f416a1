package engine

import (
	"github.com/careerworks/rostergen/internal/models"
	"github.com/careerworks/rostergen/pkg/config"
)

// Params carries the model's hard bounds, soft thresholds and objective
// weights. All quantities that enter constraints are expressed in 30-minute
// slots or quarter-hour units so the encoding stays integral.
type Params struct {
	// MinShiftSlots and MaxShiftSlots bound a day's contiguous shift.
	MinShiftSlots int
	MaxShiftSlots int
	// UniversalMaxHours caps every employee's week regardless of personal
	// preference.
	UniversalMaxHours float64
	// EmployeeDeviationSlots triggers the large-deviation penalty when an
	// employee lands this many slots or more off target.
	EmployeeDeviationSlots int
	// DepartmentShortfallHours triggers the department shortfall penalty.
	DepartmentShortfallHours float64

	Weights models.ObjectiveWeights
}

// DefaultParams returns the documented model bounds with default weights.
func DefaultParams() Params {
	return Params{
		MinShiftSlots:            4,
		MaxShiftSlots:            8,
		UniversalMaxHours:        19,
		EmployeeDeviationSlots:   4,
		DepartmentShortfallHours: 4,
		Weights:                  models.DefaultWeights(),
	}
}

// ParamsFromConfig maps loaded configuration onto model parameters.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		MinShiftSlots:            cfg.Shift.MinSlots,
		MaxShiftSlots:            cfg.Shift.MaxSlots,
		UniversalMaxHours:        cfg.Shift.UniversalMaxHours,
		EmployeeDeviationSlots:   cfg.Shift.EmployeeDeviationSlots,
		DepartmentShortfallHours: cfg.Shift.DepartmentShortfallHours,
		Weights:                  cfg.Weights,
	}
}

// maxWeeklyHours is the effective weekly cap for the employee.
func (p Params) maxWeeklyHours(e *models.Employee) float64 {
	if e.MaxHours < p.UniversalMaxHours {
		return e.MaxHours
	}
	return p.UniversalMaxHours
}
