package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerworks/rostergen/internal/models"
	apperrors "github.com/careerworks/rostergen/pkg/errors"
)

// availableRange marks slots [from, to) on the given days.
func availableRange(from, to int, days ...models.Day) [models.NumDays][models.SlotsPerDay]bool {
	var out [models.NumDays][models.SlotsPerDay]bool
	for _, d := range days {
		for t := from; t < to; t++ {
			out[models.DayIndex(d)][t] = true
		}
	}
	return out
}

func soloDeskInput() *models.RosterInput {
	return &models.RosterInput{
		Employees: []models.Employee{
			{
				Name:        "amy",
				Roles:       []models.Role{models.FrontDesk},
				MaxHours:    4,
				TargetHours: 2,
				Year:        1,
				Available:   availableRange(0, 4, models.Monday),
			},
		},
	}
}

func pairedInput() *models.RosterInput {
	return &models.RosterInput{
		Employees: []models.Employee{
			{
				Name:        "amy",
				Roles:       []models.Role{models.FrontDesk, "media"},
				MaxHours:    10,
				TargetHours: 6,
				Year:        1,
				Available:   availableRange(0, 8, models.Monday, models.Tuesday),
			},
			{
				Name:        "bob",
				Roles:       []models.Role{models.FrontDesk},
				MaxHours:    8,
				TargetHours: 4,
				Year:        3,
				Available:   availableRange(0, 8, models.Monday),
			},
		},
		Departments: []models.Department{
			{Role: "media", TargetHours: 4, MaxHours: 10},
		},
	}
}

func TestCompileRejectsEmptyDomain(t *testing.T) {
	_, err := Compile(&models.RosterInput{}, DefaultParams())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrConfiguration))
}

func TestCompileRejectsUnstaffedDepartment(t *testing.T) {
	input := soloDeskInput()
	input.Departments = []models.Department{{Role: "media", TargetHours: 4, MaxHours: 10}}

	_, err := Compile(input, DefaultParams())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrConfiguration))
	assert.Contains(t, err.Error(), "media")
}

func TestCompileRejectsInvalidShiftBounds(t *testing.T) {
	p := DefaultParams()
	p.MinShiftSlots = 6
	p.MaxShiftSlots = 4

	_, err := Compile(soloDeskInput(), p)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrConfiguration))
}

func TestCompileCreatesOnlyPermittedAssignVars(t *testing.T) {
	m, err := Compile(pairedInput(), DefaultParams())
	require.NoError(t, err)

	// amy: 2 days x 8 slots x 2 roles; bob: 1 day x 8 slots x 1 role.
	assert.Len(t, m.Vars.Assign, 2*8*2+8)

	for key := range m.Vars.Assign {
		var e *models.Employee
		for i := range m.Input.Employees {
			if m.Input.Employees[i].Name == key.Employee {
				e = &m.Input.Employees[i]
			}
		}
		require.NotNil(t, e)
		assert.True(t, e.QualifiedFor(key.Role), "variable for unheld role %s", key.Role)
		assert.True(t, e.AvailableAt(models.TimeSlot{Day: key.Day, Index: key.Slot}),
			"variable outside availability at %s slot %d", key.Day, key.Slot)
	}

	// Slot, day and coverage indicators span the full grid.
	assert.Len(t, m.Vars.Work, 2*models.NumDays*models.SlotsPerDay)
	assert.Len(t, m.Vars.WorksDay, 2*models.NumDays)
	assert.Len(t, m.Vars.Covered, models.NumDays*models.SlotsPerDay)
}

func TestCompiledModelSerializes(t *testing.T) {
	m, err := Compile(pairedInput(), DefaultParams())
	require.NoError(t, err)

	stats, err := m.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Employees)
	assert.Equal(t, 1, stats.Departments)
	assert.Equal(t, 2*8*2+8, stats.AssignVars)
	assert.Greater(t, stats.Constraints, 0)

	proto, err := m.Proto()
	require.NoError(t, err)
	assert.NotNil(t, proto.GetObjective())
}

func TestCompileIsDeterministic(t *testing.T) {
	first, err := Compile(pairedInput(), DefaultParams())
	require.NoError(t, err)
	second, err := Compile(pairedInput(), DefaultParams())
	require.NoError(t, err)

	firstProto, err := first.Proto()
	require.NoError(t, err)
	secondProto, err := second.Proto()
	require.NoError(t, err)

	// Identical input must produce the identical model: same variables,
	// same constraints, same objective coefficients in the same order.
	assert.Equal(t, len(firstProto.GetVariables()), len(secondProto.GetVariables()))
	assert.Equal(t, len(firstProto.GetConstraints()), len(secondProto.GetConstraints()))
	assert.Equal(t, firstProto.GetObjective().GetVars(), secondProto.GetObjective().GetVars())
	assert.Equal(t, firstProto.GetObjective().GetCoeffs(), secondProto.GetObjective().GetCoeffs())
}
