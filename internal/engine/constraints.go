package engine

import (
	"math"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/careerworks/rostergen/internal/models"
)

// encodeHard adds every hard constraint family to the builder. Violating
// any of these makes a schedule invalid rather than merely undesirable.
func encodeHard(b *cpmodel.Builder, v *Variables, input *models.RosterInput, p Params) {
	one := cpmodel.NewConstant(1)

	for ei := range input.Employees {
		e := &input.Employees[ei]

		for _, d := range models.Days {
			// A slot is worked exactly when one of the employee's role
			// assignments covers it. Summing also caps each slot at a
			// single role because work is binary.
			for t := 0; t < models.SlotsPerDay; t++ {
				b.AddEquality(v.Work[SlotKey{e.Name, d, t}], v.assignSum(e, d, t))
			}

			encodeContiguity(b, v, e, d)
			encodeShiftLength(b, v, e, d, p)
			encodeRoleRuns(b, v, e, d)
		}

		maxSlots := int64(math.Round(p.maxWeeklyHours(e) * models.SlotsPerHour))
		b.AddLessOrEqual(v.weekSlots(e), cpmodel.NewConstant(maxSlots))
	}

	// Front desk capacity is one, and the coverage indicator reflects
	// whether anybody holds it.
	for _, d := range models.Days {
		for t := 0; t < models.SlotsPerDay; t++ {
			head := v.frontDeskHeadcount(d, t)
			b.AddLessOrEqual(head, one)
			linkAtLeast(b, v.Covered[GridKey{d, t}], head, 1)
		}
	}

	// Department work requires a staffed front desk in the same slot.
	for ei := range input.Employees {
		e := &input.Employees[ei]
		for _, r := range e.Departments() {
			for _, d := range models.Days {
				for t := 0; t < models.SlotsPerDay; t++ {
					if a, ok := v.Assign[AssignKey{e.Name, d, t, r}]; ok {
						b.AddImplication(a, v.Covered[GridKey{d, t}])
					}
				}
			}
		}
	}

	// Department weekly ceilings, in quarter-hour units.
	for di := range input.Departments {
		dept := &input.Departments[di]
		maxUnits := int64(math.Round(dept.MaxHours * models.UnitsPerHour))
		b.AddLessOrEqual(v.deptUnits(dept.Role), cpmodel.NewConstant(maxUnits))
	}
}

// encodeContiguity restricts the employee to at most one unbroken run of
// worked slots per day. Start and end indicators track the run's
// boundaries through per-slot transition equations.
func encodeContiguity(b *cpmodel.Builder, v *Variables, e *models.Employee, d models.Day) {
	one := cpmodel.NewConstant(1)

	starts := cpmodel.NewLinearExpr()
	ends := cpmodel.NewLinearExpr()
	for t := 0; t < models.SlotsPerDay; t++ {
		starts.Add(v.ShiftStart[SlotKey{e.Name, d, t}])
		ends.Add(v.ShiftEnd[SlotKey{e.Name, d, t}])
	}
	b.AddLessOrEqual(starts, one)
	b.AddLessOrEqual(ends, one)
	b.AddEquality(starts, ends)

	first := SlotKey{e.Name, d, 0}
	last := SlotKey{e.Name, d, models.SlotsPerDay - 1}
	b.AddEquality(v.Work[first], v.ShiftStart[first])
	b.AddEquality(v.Work[last], v.ShiftEnd[last])

	for t := 1; t < models.SlotsPerDay; t++ {
		cur := SlotKey{e.Name, d, t}
		prev := SlotKey{e.Name, d, t - 1}
		delta := cpmodel.NewLinearExpr().Add(v.Work[cur]).AddTerm(v.Work[prev], -1)
		transition := cpmodel.NewLinearExpr().Add(v.ShiftStart[cur]).AddTerm(v.ShiftEnd[prev], -1)
		b.AddEquality(delta, transition)
	}
}

// encodeShiftLength links the day indicator to worked slots and bounds a
// worked day's length.
func encodeShiftLength(b *cpmodel.Builder, v *Variables, e *models.Employee, d models.Day, p Params) {
	day := v.daySlots(e, d)
	worked := v.WorksDay[DayKey{e.Name, d}]

	// worked=false forces the day to zero slots.
	linkAtLeast(b, worked, day, 1)
	b.AddGreaterOrEqual(day, cpmodel.NewConstant(int64(p.MinShiftSlots))).OnlyEnforceIf(worked)
	b.AddLessOrEqual(day, cpmodel.NewConstant(int64(p.MaxShiftSlots)))
}

// encodeRoleRuns forbids isolated half-hour stints on a single role: an
// assigned slot must neighbor another slot on the same role.
func encodeRoleRuns(b *cpmodel.Builder, v *Variables, e *models.Employee, d models.Day) {
	for _, r := range e.Roles {
		for t := 0; t < models.SlotsPerDay; t++ {
			cur, ok := v.Assign[AssignKey{e.Name, d, t, r}]
			if !ok {
				continue
			}
			lits := []cpmodel.BoolVar{cur.Not()}
			if prev, ok := v.Assign[AssignKey{e.Name, d, t - 1, r}]; ok {
				lits = append(lits, prev)
			}
			if next, ok := v.Assign[AssignKey{e.Name, d, t + 1, r}]; ok {
				lits = append(lits, next)
			}
			b.AddBoolOr(lits...)
		}
	}
}
