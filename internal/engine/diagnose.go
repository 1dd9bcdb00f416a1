package engine

import (
	"fmt"

	"github.com/careerworks/rostergen/internal/models"
)

// DiagnoseInput inspects the input for constraint-family conflicts that
// block employees from working or commonly make the model unsatisfiable.
// The hints are heuristic: they name the suspected family, not a proven
// root cause.
func DiagnoseInput(input *models.RosterInput, p Params) []string {
	var hints []string
	minShiftHours := float64(p.MinShiftSlots) / models.SlotsPerHour

	for ei := range input.Employees {
		e := &input.Employees[ei]

		// A weekly cap below one minimum shift excludes the employee
		// entirely: the hour-limit family, not contiguity, is what blocks
		// them.
		if p.maxWeeklyHours(e) < minShiftHours {
			hints = append(hints, fmt.Sprintf(
				"hour limits: employee %s has a %.1fh weekly cap, below the %.1fh minimum shift, so they can never be scheduled",
				e.Name, p.maxWeeklyHours(e), minShiftHours))
			continue
		}

		// Availability windows shorter than the minimum shift are unusable.
		usable := false
		for _, d := range models.Days {
			if longestRun(e, d) >= p.MinShiftSlots {
				usable = true
				break
			}
		}
		if !usable {
			if hasAvailability(e) {
				hints = append(hints, fmt.Sprintf(
					"availability: employee %s has no window of %d consecutive slots, so no valid shift fits",
					e.Name, p.MinShiftSlots))
			} else {
				hints = append(hints, fmt.Sprintf(
					"availability: employee %s reported no available slots", e.Name))
			}
		}
	}

	deskQualified := 0
	for ei := range input.Employees {
		if input.Employees[ei].QualifiedFor(models.FrontDesk) {
			deskQualified++
		}
	}
	if deskQualified == 0 {
		hints = append(hints, "qualifications: no employee is qualified for the front desk, so no slot can be covered and no department can work")
	}

	return hints
}

// DiagnoseInfeasible wraps DiagnoseInput for a solve that came back
// infeasible, adding a fallback when no single family stands out.
func DiagnoseInfeasible(input *models.RosterInput, p Params) []string {
	hints := DiagnoseInput(input, p)
	if len(hints) == 0 {
		hints = append(hints, "no single-family conflict detected; shift bounds, availability and hour limits are jointly unsatisfiable")
	}
	return hints
}

// longestRun returns the employee's longest run of consecutive available
// slots on the day.
func longestRun(e *models.Employee, d models.Day) int {
	longest, run := 0, 0
	for t := 0; t < models.SlotsPerDay; t++ {
		if e.AvailableAt(models.TimeSlot{Day: d, Index: t}) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

func hasAvailability(e *models.Employee) bool {
	for _, d := range models.Days {
		for t := 0; t < models.SlotsPerDay; t++ {
			if e.AvailableAt(models.TimeSlot{Day: d, Index: t}) {
				return true
			}
		}
	}
	return false
}
