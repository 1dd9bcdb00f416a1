package engine

import (
	"math"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/careerworks/rostergen/internal/models"
)

// weightScale converts fractional weights into integer objective
// coefficients. Every documented weight and seniority multiplier is exact
// at a scale of 100; only the per-size scarcity quotient rounds.
const weightScale = 100

// Canonical objective term names, shared by the composer and the scorer.
const (
	TermFrontDeskCoverage        = "front_desk_coverage"
	TermEmployeeLargeDeviation   = "employee_large_deviation"
	TermDepartmentLargeShortfall = "department_large_shortfall"
	TermDepartmentTarget         = "department_target"
	TermTargetAdherence          = "target_adherence"
	TermDepartmentSpread         = "department_spread"
	TermCollaborativeHours       = "collaborative_hours"
	TermDepartmentDayCoverage    = "department_day_coverage"
	TermShiftLength              = "shift_length"
	TermDepartmentScarcity       = "department_scarcity"
	TermUnderclassmanFrontDesk   = "underclassman_front_desk"
	TermDepartmentTotal          = "department_total"
)

// Term describes one weighted objective component.
type Term struct {
	Name   string
	Weight float64
}

// composeObjective builds the maximized weighted sum of all twelve soft
// terms and returns their metadata in priority order.
func composeObjective(b *cpmodel.Builder, v *Variables, input *models.RosterInput, p Params) []Term {
	obj := cpmodel.NewLinearExpr()

	// add contributes arg to the objective with the scaled coefficient
	// weight*multiplier.
	add := func(arg cpmodel.LinearArgument, weight, multiplier float64) {
		c := int64(math.Round(weight * multiplier * weightScale))
		if c != 0 {
			obj.AddTerm(arg, c)
		}
	}
	w := p.Weights

	// 1. Front desk coverage: reward every covered slot.
	for _, d := range models.Days {
		for t := 0; t < models.SlotsPerDay; t++ {
			add(v.Covered[GridKey{d, t}], w.FrontDeskCoverage, 1)
		}
	}

	// 2 and 5. Per-employee target adherence with a step penalty once the
	// deviation reaches the large-deviation threshold.
	maxWeekSlots := int64(models.NumDays * models.SlotsPerDay)
	for ei := range input.Employees {
		e := &input.Employees[ei]
		target := int64(math.Round(e.TargetHours * models.SlotsPerHour))

		over := b.NewIntVarFromDomain(cpmodel.NewDomain(0, maxWeekSlots))
		under := b.NewIntVarFromDomain(cpmodel.NewDomain(0, maxWeekSlots))
		balance := cpmodel.NewLinearExpr().AddConstant(target).Add(over).AddTerm(under, -1)
		b.AddEquality(v.weekSlots(e), balance)

		mult := models.YearTargetMultiplier(e.Year)
		add(over, w.TargetAdherence, -mult)
		add(under, w.TargetAdherence, -mult)

		threshold := int64(p.EmployeeDeviationSlots)
		add(reifyAtLeast(b, over, threshold), w.EmployeeLargeDeviation, -1)
		add(reifyAtLeast(b, under, threshold), w.EmployeeLargeDeviation, -1)
	}

	// 3, 4 and 12. Department workload terms over effective quarter-hour
	// units: proximity to the adjusted target, a step penalty for large
	// shortfalls, and a small reward per effective hour.
	maxDeptUnits := int64(2 * models.NumDays * models.SlotsPerDay * len(input.Employees))
	for di := range input.Departments {
		dept := &input.Departments[di]
		units := v.deptUnits(dept.Role)
		target := adjustedTargetUnits(input, dept, p)

		over := b.NewIntVarFromDomain(cpmodel.NewDomain(0, maxDeptUnits))
		under := b.NewIntVarFromDomain(cpmodel.NewDomain(0, maxDeptUnits))
		balance := cpmodel.NewLinearExpr().AddConstant(target).Add(over).AddTerm(under, -1)
		b.AddEquality(units, balance)

		add(over, w.DepartmentTarget, -1)
		add(under, w.DepartmentTarget, -1)

		shortfall := int64(math.Round(p.DepartmentShortfallHours * models.UnitsPerHour))
		add(reifyAtLeast(b, under, shortfall), w.DepartmentLargeShortfall, -1)

		// One effective hour is four units.
		add(units, w.DepartmentTotal, 0.25)
	}

	// 6 and 8. Spread departmental presence across slots and days.
	for di := range input.Departments {
		r := input.Departments[di].Role
		for _, d := range models.Days {
			daySum := cpmodel.NewLinearExpr()
			for t := 0; t < models.SlotsPerDay; t++ {
				head := v.deptHeadcount(r, d, t)
				add(reifyAtLeast(b, head, 1), w.DepartmentSpread, 1)
				daySum.Add(head)
			}
			add(reifyAtLeast(b, daySum, 1), w.DepartmentDayCoverage, 1)
		}
	}

	// 7. Sustained collaboration: penalize each half-hour the department
	// falls short of its sustained two-person overlap minimum. A slot
	// counts only when an adjacent slot in the same day also overlaps.
	encodeCollaboration(b, v, input, add, w.CollaborativeHours)

	// 9. Shift length shaping: fewer, longer shifts beat many short ones.
	for ei := range input.Employees {
		e := &input.Employees[ei]
		for _, d := range models.Days {
			for t := 0; t < models.SlotsPerDay; t++ {
				add(v.Work[SlotKey{e.Name, d, t}], w.ShiftLength, 1)
			}
			add(v.WorksDay[DayKey{e.Name, d}], w.ShiftLength, -6)
		}
	}

	// 10 and 11. Steer the front desk away from scarce-department members
	// and toward underclassmen.
	for ei := range input.Employees {
		e := &input.Employees[ei]
		size := input.ScarcestDepartmentSize(e)
		for _, d := range models.Days {
			for t := 0; t < models.SlotsPerDay; t++ {
				a, ok := v.Assign[AssignKey{e.Name, d, t, models.FrontDesk}]
				if !ok {
					continue
				}
				add(a, w.UnderclassmanFrontDesk, -float64(e.Year))
				if size > 0 {
					add(a, w.DepartmentScarcity, -10.0/float64(size))
				}
			}
		}
	}

	b.Maximize(obj)

	return []Term{
		{TermFrontDeskCoverage, w.FrontDeskCoverage},
		{TermEmployeeLargeDeviation, w.EmployeeLargeDeviation},
		{TermDepartmentLargeShortfall, w.DepartmentLargeShortfall},
		{TermDepartmentTarget, w.DepartmentTarget},
		{TermTargetAdherence, w.TargetAdherence},
		{TermDepartmentSpread, w.DepartmentSpread},
		{TermCollaborativeHours, w.CollaborativeHours},
		{TermDepartmentDayCoverage, w.DepartmentDayCoverage},
		{TermShiftLength, w.ShiftLength},
		{TermDepartmentScarcity, w.DepartmentScarcity},
		{TermUnderclassmanFrontDesk, w.UnderclassmanFrontDesk},
		{TermDepartmentTotal, w.DepartmentTotal},
	}
}

// encodeCollaboration adds per-department sustained-overlap shortfall
// variables. sustained[t] may only be true when the slot overlaps and a
// neighboring slot overlaps too; the objective pressure keeps the
// shortfall variable honest.
func encodeCollaboration(b *cpmodel.Builder, v *Variables, input *models.RosterInput, add func(cpmodel.LinearArgument, float64, float64), weight float64) {
	for di := range input.Departments {
		dept := &input.Departments[di]
		if dept.MinCollabHours <= 0 {
			continue
		}
		minSlots := int64(math.Round(dept.MinCollabHours * models.SlotsPerHour))
		if minSlots <= 0 {
			continue
		}

		sustainedSum := cpmodel.NewLinearExpr()
		for _, d := range models.Days {
			collab := make([]cpmodel.BoolVar, models.SlotsPerDay)
			for t := 0; t < models.SlotsPerDay; t++ {
				collab[t] = reifyAtLeast(b, v.deptHeadcount(dept.Role, d, t), 2)
			}
			for t := 0; t < models.SlotsPerDay; t++ {
				sustained := b.NewBoolVar()
				b.AddLessOrEqual(sustained, collab[t])
				neighbors := cpmodel.NewLinearExpr()
				if t > 0 {
					neighbors.Add(collab[t-1])
				}
				if t < models.SlotsPerDay-1 {
					neighbors.Add(collab[t+1])
				}
				b.AddLessOrEqual(sustained, neighbors)
				sustainedSum.Add(sustained)
			}
		}

		under := b.NewIntVarFromDomain(cpmodel.NewDomain(0, minSlots))
		b.AddGreaterOrEqual(cpmodel.NewLinearExpr().Add(sustainedSum).Add(under), cpmodel.NewConstant(minSlots))
		// The weight is per hour of shortfall; under counts half-hours.
		add(under, weight, -0.5)
	}
}

// adjustedTargetUnits clamps the department's weekly target to what the
// qualified staff can actually supply and to the department's own ceiling,
// then converts it to quarter-hour units.
func adjustedTargetUnits(input *models.RosterInput, dept *models.Department, p Params) int64 {
	capacity := 0.0
	for ei := range input.Employees {
		e := &input.Employees[ei]
		if e.QualifiedFor(dept.Role) {
			capacity += p.maxWeeklyHours(e)
		}
	}
	target := dept.TargetHours
	if capacity < target {
		target = capacity
	}
	if dept.MaxHours < target {
		target = dept.MaxHours
	}
	return int64(math.Round(target * models.UnitsPerHour))
}
