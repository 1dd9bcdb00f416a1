package report

import (
	"fmt"
	"strings"

	"github.com/careerworks/rostergen/internal/engine"
	"github.com/careerworks/rostergen/internal/models"
	"github.com/careerworks/rostergen/pkg/export"
)

// uncoveredMark flags front-desk slots nobody staffs in the weekly grid.
const uncoveredMark = "--UNCOVERED--"

// WeeklyGrid renders the schedule as one row per slot and one column per
// day. Each cell lists the active employees with their role, the front
// desk first.
func WeeklyGrid(sched *models.Schedule) export.Dataset {
	headers := append([]string{"Time"}, daysAsStrings()...)
	rows := make([][]string, 0, models.SlotsPerDay)
	for t := 0; t < models.SlotsPerDay; t++ {
		row := []string{models.SlotNames[t]}
		for _, d := range models.Days {
			row = append(row, gridCell(sched, models.TimeSlot{Day: d, Index: t}))
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func gridCell(sched *models.Schedule, slot models.TimeSlot) string {
	var parts []string
	if name, ok := sched.FrontDeskEmployee(slot); ok {
		parts = append(parts, fmt.Sprintf("%s [desk]", name))
	} else {
		parts = append(parts, uncoveredMark)
	}
	for _, a := range sched.Assignments[slot] {
		if a.Role == models.FrontDesk {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s [%s]", a.Employee, a.Role))
	}
	return strings.Join(parts, ", ")
}

// EmployeeSummary renders per-employee weekly totals against their
// targets.
func EmployeeSummary(input *models.RosterInput, sched *models.Schedule) export.Dataset {
	rows := make([][]string, 0, len(input.Employees))
	for i := range input.Employees {
		e := &input.Employees[i]
		hours := sched.EmployeeHours[e.Name]
		rows = append(rows, []string{
			e.Name,
			fmt.Sprintf("%d", e.Year),
			fmt.Sprintf("%.1f", hours),
			fmt.Sprintf("%.1f", e.TargetHours),
			fmt.Sprintf("%+.1f", hours-e.TargetHours),
		})
	}
	return export.Dataset{
		Headers: []string{"Employee", "Year", "Hours", "Target", "Deviation"},
		Rows:    rows,
	}
}

// DepartmentSummary renders per-department effective hour accounting:
// focused hours plus half-credit dual front-desk hours.
func DepartmentSummary(input *models.RosterInput, sched *models.Schedule) export.Dataset {
	rows := make([][]string, 0, len(input.Departments))
	for i := range input.Departments {
		dept := &input.Departments[i]
		rows = append(rows, []string{
			string(dept.Role),
			fmt.Sprintf("%.1f", sched.DepartmentFocusedHours[dept.Role]),
			fmt.Sprintf("%.1f", sched.DepartmentDualHours[dept.Role]),
			fmt.Sprintf("%.2f", sched.DepartmentEffectiveHours(dept.Role)),
			fmt.Sprintf("%.1f", dept.TargetHours),
			fmt.Sprintf("%.1f", dept.MaxHours),
		})
	}
	return export.Dataset{
		Headers: []string{"Department", "Focused", "Dual Desk", "Effective", "Target", "Max"},
		Rows:    rows,
	}
}

// ShiftList renders every employee-day shift block.
func ShiftList(sched *models.Schedule) export.Dataset {
	rows := make([][]string, 0, len(sched.Shifts))
	for _, s := range sched.Shifts {
		end := s.Start + s.Length - 1
		rows = append(rows, []string{
			s.Employee,
			string(s.Day),
			models.SlotStarts[s.Start],
			models.SlotNames[end],
			fmt.Sprintf("%.1f", s.Hours()),
		})
	}
	return export.Dataset{
		Headers: []string{"Employee", "Day", "Start", "Last Slot", "Hours"},
		Rows:    rows,
	}
}

// ScoreBreakdown renders the objective term evaluation.
func ScoreBreakdown(scores []engine.TermScore) export.Dataset {
	rows := make([][]string, 0, len(scores))
	for _, s := range scores {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%g", s.Weight),
			fmt.Sprintf("%g", s.Raw),
			fmt.Sprintf("%.1f", s.Weighted),
		})
	}
	return export.Dataset{
		Headers: []string{"Term", "Weight", "Raw", "Weighted"},
		Rows:    rows,
	}
}

func daysAsStrings() []string {
	out := make([]string, 0, len(models.Days))
	for _, d := range models.Days {
		out = append(out, string(d))
	}
	return out
}
