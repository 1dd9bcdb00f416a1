package engine

import (
	"fmt"
	"sort"

	"github.com/careerworks/rostergen/internal/models"
	apperrors "github.com/careerworks/rostergen/pkg/errors"
)

// Extract decodes a solution into a schedule and re-validates every hard
// invariant against the raw assignment. A violation means the encoding
// and the solver disagree, so extraction fails loudly instead of
// repairing the output.
func Extract(input *models.RosterInput, p Params, sol *Solution) (*models.Schedule, error) {
	switch sol.Status {
	case StatusOptimal, StatusFeasible:
	default:
		return nil, apperrors.Clone(apperrors.ErrInternal,
			fmt.Sprintf("cannot extract a schedule from status %s", sol.Status))
	}

	sched := &models.Schedule{
		Assignments:            make(map[models.TimeSlot][]models.SlotAssignment),
		EmployeeHours:          make(map[string]float64),
		DepartmentFocusedHours: make(map[models.Role]float64),
		DepartmentDualHours:    make(map[models.Role]float64),
		Objective:              sol.Objective,
		Suboptimal:             sol.Status == StatusFeasible,
	}

	// perSlotRoles tracks each employee's roles per slot for the
	// single-role check; perDaySlots collects worked slot indices for the
	// contiguity checks.
	type empDay struct {
		employee string
		day      models.Day
	}
	perDaySlots := make(map[empDay][]int)

	for ei := range input.Employees {
		e := &input.Employees[ei]
		for _, d := range models.Days {
			for t := 0; t < models.SlotsPerDay; t++ {
				slot := models.TimeSlot{Day: d, Index: t}
				var role models.Role
				count := 0
				for _, r := range rolesInOrder(input) {
					if !sol.Assigned[AssignKey{e.Name, d, t, r}] {
						continue
					}
					count++
					role = r
					if !e.QualifiedFor(r) {
						return nil, invariant("employee %s assigned role %s without qualification at %s", e.Name, r, slot)
					}
					if !e.AvailableAt(slot) {
						return nil, invariant("employee %s assigned outside availability at %s", e.Name, slot)
					}
				}
				if count == 0 {
					continue
				}
				if count > 1 {
					return nil, invariant("employee %s holds %d roles at %s", e.Name, count, slot)
				}

				sched.Assignments[slot] = append(sched.Assignments[slot], models.SlotAssignment{Employee: e.Name, Role: role})
				sched.EmployeeHours[e.Name] += 1.0 / models.SlotsPerHour
				if role == models.FrontDesk {
					for _, dr := range e.Departments() {
						sched.DepartmentDualHours[dr] += 1.0 / models.SlotsPerHour
					}
				} else {
					sched.DepartmentFocusedHours[role] += 1.0 / models.SlotsPerHour
				}
				perDaySlots[empDay{e.Name, d}] = append(perDaySlots[empDay{e.Name, d}], t)
			}
		}
	}

	// Contiguity, shift length and role-run checks per employee-day.
	for ei := range input.Employees {
		e := &input.Employees[ei]
		for _, d := range models.Days {
			slots := perDaySlots[empDay{e.Name, d}]
			if len(slots) == 0 {
				continue
			}
			sort.Ints(slots)
			start, length := slots[0], len(slots)
			if slots[length-1]-start+1 != length {
				return nil, invariant("employee %s works a fragmented day on %s", e.Name, d)
			}
			if length < p.MinShiftSlots || length > p.MaxShiftSlots {
				return nil, invariant("employee %s works %d slots on %s, outside [%d,%d]",
					e.Name, length, d, p.MinShiftSlots, p.MaxShiftSlots)
			}
			if err := checkRoleRuns(sched, e, d, slots); err != nil {
				return nil, err
			}
			sched.Shifts = append(sched.Shifts, models.ShiftBlock{
				Employee: e.Name, Day: d, Start: start, Length: length,
			})
		}
	}

	// Weekly caps.
	for ei := range input.Employees {
		e := &input.Employees[ei]
		limit := p.maxWeeklyHours(e)
		if sched.EmployeeHours[e.Name] > limit+1e-9 {
			return nil, invariant("employee %s works %.1fh, over the %.1fh cap",
				e.Name, sched.EmployeeHours[e.Name], limit)
		}
	}

	// Front desk capacity and the supervision rule.
	for _, slot := range models.AllSlots() {
		deskCount := 0
		deptCount := 0
		for _, a := range sched.Assignments[slot] {
			if a.Role == models.FrontDesk {
				deskCount++
			} else {
				deptCount++
			}
		}
		if deskCount > 1 {
			return nil, invariant("front desk double-booked at %s", slot)
		}
		if deptCount > 0 && deskCount == 0 {
			return nil, invariant("department work without front desk cover at %s", slot)
		}
	}

	// Department ceilings on effective hours.
	for di := range input.Departments {
		dept := &input.Departments[di]
		effective := sched.DepartmentEffectiveHours(dept.Role)
		if effective > dept.MaxHours+1e-9 {
			return nil, invariant("department %s holds %.2f effective hours, over its %.1fh ceiling",
				dept.Role, effective, dept.MaxHours)
		}
	}

	for slot := range sched.Assignments {
		assignments := sched.Assignments[slot]
		sort.Slice(assignments, func(i, j int) bool {
			return assignments[i].Employee < assignments[j].Employee
		})
	}
	sort.Slice(sched.Shifts, func(i, j int) bool {
		a, b := sched.Shifts[i], sched.Shifts[j]
		if a.Employee != b.Employee {
			return a.Employee < b.Employee
		}
		if a.Day != b.Day {
			return models.DayIndex(a.Day) < models.DayIndex(b.Day)
		}
		return a.Start < b.Start
	})

	return sched, nil
}

// checkRoleRuns verifies the employee never holds a role for an isolated
// half hour within the day's shift.
func checkRoleRuns(sched *models.Schedule, e *models.Employee, d models.Day, slots []int) error {
	for _, t := range slots {
		role, ok := sched.RoleAt(models.TimeSlot{Day: d, Index: t}, e.Name)
		if !ok {
			continue
		}
		prev, prevOK := sched.RoleAt(models.TimeSlot{Day: d, Index: t - 1}, e.Name)
		next, nextOK := sched.RoleAt(models.TimeSlot{Day: d, Index: t + 1}, e.Name)
		if (prevOK && prev == role) || (nextOK && next == role) {
			continue
		}
		return invariant("employee %s holds %s for an isolated half hour at %s",
			e.Name, role, models.TimeSlot{Day: d, Index: t})
	}
	return nil
}

func invariant(format string, args ...any) *apperrors.Error {
	return apperrors.Clone(apperrors.ErrInvariant, fmt.Sprintf(format, args...))
}
