package engine

import (
	"math"

	"github.com/careerworks/rostergen/internal/models"
)

// TermScore is one objective term evaluated against a concrete schedule.
// Raw is the unweighted quantity; Weighted is Raw times the term weight.
type TermScore struct {
	Name     string
	Weight   float64
	Raw      float64
	Weighted float64
}

// ScoreSchedule recomputes all twelve objective terms from an extracted
// schedule. The breakdown explains what the solver traded off; its sum
// tracks the solver's objective up to scarcity rounding.
func ScoreSchedule(input *models.RosterInput, p Params, sched *models.Schedule) []TermScore {
	w := p.Weights
	scores := make([]TermScore, 0, 12)
	add := func(name string, weight, raw float64) {
		scores = append(scores, TermScore{Name: name, Weight: weight, Raw: raw, Weighted: weight * raw})
	}

	// Front desk coverage.
	covered := 0
	for _, slot := range models.AllSlots() {
		if _, ok := sched.FrontDeskEmployee(slot); ok {
			covered++
		}
	}
	add(TermFrontDeskCoverage, w.FrontDeskCoverage, float64(covered))

	// Employee deviation terms.
	largeDeviations := 0
	adherence := 0.0
	for ei := range input.Employees {
		e := &input.Employees[ei]
		actualSlots := sched.EmployeeHours[e.Name] * models.SlotsPerHour
		targetSlots := math.Round(e.TargetHours * models.SlotsPerHour)
		deviation := math.Abs(actualSlots - targetSlots)
		if deviation >= float64(p.EmployeeDeviationSlots) {
			largeDeviations++
		}
		adherence -= models.YearTargetMultiplier(e.Year) * deviation
	}
	add(TermEmployeeLargeDeviation, w.EmployeeLargeDeviation, -float64(largeDeviations))

	// Department workload terms.
	largeShortfalls := 0
	targetDistance := 0.0
	effectiveHours := 0.0
	for di := range input.Departments {
		dept := &input.Departments[di]
		units := sched.DepartmentEffectiveHours(dept.Role) * models.UnitsPerHour
		targetUnits := float64(adjustedTargetUnits(input, dept, p))
		shortfallUnits := math.Max(0, targetUnits-units)
		if shortfallUnits >= math.Round(p.DepartmentShortfallHours*models.UnitsPerHour) {
			largeShortfalls++
		}
		targetDistance -= math.Abs(units - targetUnits)
		effectiveHours += units / models.UnitsPerHour
	}
	add(TermDepartmentLargeShortfall, w.DepartmentLargeShortfall, -float64(largeShortfalls))
	add(TermDepartmentTarget, w.DepartmentTarget, targetDistance)
	add(TermTargetAdherence, w.TargetAdherence, adherence)

	// Departmental presence spread over slots and days.
	spreadSlots := 0
	coveredDays := 0
	for di := range input.Departments {
		r := input.Departments[di].Role
		for _, d := range models.Days {
			active := false
			for t := 0; t < models.SlotsPerDay; t++ {
				if deptHeadcountAt(sched, r, d, t) > 0 {
					spreadSlots++
					active = true
				}
			}
			if active {
				coveredDays++
			}
		}
	}
	add(TermDepartmentSpread, w.DepartmentSpread, float64(spreadSlots))

	// Sustained collaboration shortfall, in hours.
	collabShortfall := 0.0
	for di := range input.Departments {
		dept := &input.Departments[di]
		if dept.MinCollabHours <= 0 {
			continue
		}
		sustained := sustainedCollabSlots(sched, dept.Role)
		minSlots := math.Round(dept.MinCollabHours * models.SlotsPerHour)
		collabShortfall -= math.Max(0, minSlots-float64(sustained)) / models.SlotsPerHour
	}
	add(TermCollaborativeHours, w.CollaborativeHours, collabShortfall)
	add(TermDepartmentDayCoverage, w.DepartmentDayCoverage, float64(coveredDays))

	// Shift length shaping.
	shiftShape := 0.0
	for _, shift := range sched.Shifts {
		shiftShape += float64(shift.Length) - 6
	}
	add(TermShiftLength, w.ShiftLength, shiftShape)

	// Front desk staffing pressure terms.
	scarcity := 0.0
	underclassman := 0.0
	for ei := range input.Employees {
		e := &input.Employees[ei]
		deskSlots := 0
		for _, slot := range models.AllSlots() {
			if name, ok := sched.FrontDeskEmployee(slot); ok && name == e.Name {
				deskSlots++
			}
		}
		if deskSlots == 0 {
			continue
		}
		if size := input.ScarcestDepartmentSize(e); size > 0 {
			scarcity -= 10.0 / float64(size) * float64(deskSlots)
		}
		underclassman -= float64(e.Year) * float64(deskSlots)
	}
	add(TermDepartmentScarcity, w.DepartmentScarcity, scarcity)
	add(TermUnderclassmanFrontDesk, w.UnderclassmanFrontDesk, underclassman)

	add(TermDepartmentTotal, w.DepartmentTotal, effectiveHours)

	return scores
}

// TotalScore sums the weighted term values.
func TotalScore(scores []TermScore) float64 {
	total := 0.0
	for _, s := range scores {
		total += s.Weighted
	}
	return total
}

// deptHeadcountAt counts focused department assignments at one slot.
func deptHeadcountAt(sched *models.Schedule, r models.Role, d models.Day, t int) int {
	count := 0
	for _, a := range sched.Assignments[models.TimeSlot{Day: d, Index: t}] {
		if a.Role == r {
			count++
		}
	}
	return count
}

// sustainedCollabSlots counts slots where at least two employees work the
// department and an adjacent slot in the same day also does.
func sustainedCollabSlots(sched *models.Schedule, r models.Role) int {
	sustained := 0
	for _, d := range models.Days {
		overlap := make([]bool, models.SlotsPerDay)
		for t := 0; t < models.SlotsPerDay; t++ {
			overlap[t] = deptHeadcountAt(sched, r, d, t) >= 2
		}
		for t := 0; t < models.SlotsPerDay; t++ {
			if !overlap[t] {
				continue
			}
			if (t > 0 && overlap[t-1]) || (t < models.SlotsPerDay-1 && overlap[t+1]) {
				sustained++
			}
		}
	}
	return sustained
}
