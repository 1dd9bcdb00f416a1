package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerworks/rostergen/internal/models"
)

func TestDiagnoseReportsHourLimitFamily(t *testing.T) {
	// A 1h personal cap cannot fit the 2h minimum shift: the hour-limit
	// family blocks the employee, not contiguity.
	input := soloDeskInput()
	input.Employees[0].MaxHours = 1
	input.Normalize()

	hints := DiagnoseInput(input, DefaultParams())
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "hour limits")
	assert.Contains(t, hints[0], "amy")
	assert.NotContains(t, hints[0], "contiguity")
}

func TestDiagnoseReportsFragmentedAvailability(t *testing.T) {
	input := soloDeskInput()
	var avail [models.NumDays][models.SlotsPerDay]bool
	for t2 := 0; t2 < models.SlotsPerDay; t2 += 2 {
		avail[models.DayIndex(models.Monday)][t2] = true
	}
	input.Employees[0].Available = avail
	input.Normalize()

	hints := DiagnoseInput(input, DefaultParams())
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "availability")
	assert.Contains(t, hints[0], "consecutive")
}

func TestDiagnoseReportsEmptyAvailability(t *testing.T) {
	input := soloDeskInput()
	input.Employees[0].Available = [models.NumDays][models.SlotsPerDay]bool{}
	input.Normalize()

	hints := DiagnoseInput(input, DefaultParams())
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "no available slots")
}

func TestDiagnoseReportsMissingDeskQualification(t *testing.T) {
	input := &models.RosterInput{
		Employees: []models.Employee{
			{Name: "amy", Roles: []models.Role{"media"}, MaxHours: 10, Year: 1,
				Available: availableRange(0, 8, models.Monday)},
		},
		Departments: []models.Department{
			{Role: "media", TargetHours: 4, MaxHours: 10},
		},
	}
	input.Normalize()

	hints := DiagnoseInput(input, DefaultParams())
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "front desk")
}

func TestDiagnoseCleanInput(t *testing.T) {
	input := pairedInput()
	input.Normalize()

	assert.Empty(t, DiagnoseInput(input, DefaultParams()))

	hints := DiagnoseInfeasible(input, DefaultParams())
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "jointly unsatisfiable")
}
