package engine

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/careerworks/rostergen/internal/models"
)

// AssignKey identifies one assignment decision: employee e covers role r
// during slot t of day d.
type AssignKey struct {
	Employee string
	Day      models.Day
	Slot     int
	Role     models.Role
}

// SlotKey identifies a per-employee slot indicator.
type SlotKey struct {
	Employee string
	Day      models.Day
	Slot     int
}

// DayKey identifies a per-employee day indicator.
type DayKey struct {
	Employee string
	Day      models.Day
}

// GridKey identifies a calendar position shared by all employees.
type GridKey struct {
	Day  models.Day
	Slot int
}

// Variables is the registry of decision variables for one compiled model.
// Assignment variables exist only for combinations the input permits:
// the employee must hold the role and be available in the slot. Slot,
// day and coverage indicators exist for the full grid.
type Variables struct {
	Assign     map[AssignKey]cpmodel.BoolVar
	Work       map[SlotKey]cpmodel.BoolVar
	ShiftStart map[SlotKey]cpmodel.BoolVar
	ShiftEnd   map[SlotKey]cpmodel.BoolVar
	WorksDay   map[DayKey]cpmodel.BoolVar
	Covered    map[GridKey]cpmodel.BoolVar

	input *models.RosterInput
}

// newVariables builds the variable registry. Iteration follows the
// normalized input order so repeated compilations of the same input
// produce identical models.
func newVariables(b *cpmodel.Builder, input *models.RosterInput) *Variables {
	v := &Variables{
		Assign:     make(map[AssignKey]cpmodel.BoolVar),
		Work:       make(map[SlotKey]cpmodel.BoolVar),
		ShiftStart: make(map[SlotKey]cpmodel.BoolVar),
		ShiftEnd:   make(map[SlotKey]cpmodel.BoolVar),
		WorksDay:   make(map[DayKey]cpmodel.BoolVar),
		Covered:    make(map[GridKey]cpmodel.BoolVar),
		input:      input,
	}

	roles := rolesInOrder(input)
	for ei := range input.Employees {
		e := &input.Employees[ei]
		for _, d := range models.Days {
			v.WorksDay[DayKey{e.Name, d}] = b.NewBoolVar()
			for t := 0; t < models.SlotsPerDay; t++ {
				sk := SlotKey{e.Name, d, t}
				v.Work[sk] = b.NewBoolVar()
				v.ShiftStart[sk] = b.NewBoolVar()
				v.ShiftEnd[sk] = b.NewBoolVar()
				if !e.AvailableAt(models.TimeSlot{Day: d, Index: t}) {
					continue
				}
				for _, r := range roles {
					if !e.QualifiedFor(r) {
						continue
					}
					v.Assign[AssignKey{e.Name, d, t, r}] = b.NewBoolVar()
				}
			}
		}
	}
	for _, d := range models.Days {
		for t := 0; t < models.SlotsPerDay; t++ {
			v.Covered[GridKey{d, t}] = b.NewBoolVar()
		}
	}
	return v
}

// rolesInOrder lists the front desk first, then department roles in
// normalized order.
func rolesInOrder(input *models.RosterInput) []models.Role {
	return append([]models.Role{models.FrontDesk}, input.DepartmentRoles()...)
}

// assignSum sums the employee's assignment variables for one slot across
// all roles. The result equals the work indicator once linked.
func (v *Variables) assignSum(e *models.Employee, d models.Day, t int) *cpmodel.LinearExpr {
	expr := cpmodel.NewLinearExpr()
	for _, r := range rolesInOrder(v.input) {
		if a, ok := v.Assign[AssignKey{e.Name, d, t, r}]; ok {
			expr.Add(a)
		}
	}
	return expr
}

// frontDeskHeadcount sums front desk assignments for one grid position.
func (v *Variables) frontDeskHeadcount(d models.Day, t int) *cpmodel.LinearExpr {
	expr := cpmodel.NewLinearExpr()
	for ei := range v.input.Employees {
		e := &v.input.Employees[ei]
		if a, ok := v.Assign[AssignKey{e.Name, d, t, models.FrontDesk}]; ok {
			expr.Add(a)
		}
	}
	return expr
}

// deptHeadcount sums focused assignments to a department for one grid
// position.
func (v *Variables) deptHeadcount(r models.Role, d models.Day, t int) *cpmodel.LinearExpr {
	expr := cpmodel.NewLinearExpr()
	for ei := range v.input.Employees {
		e := &v.input.Employees[ei]
		if a, ok := v.Assign[AssignKey{e.Name, d, t, r}]; ok {
			expr.Add(a)
		}
	}
	return expr
}

// daySlots sums the employee's work indicators over one day.
func (v *Variables) daySlots(e *models.Employee, d models.Day) *cpmodel.LinearExpr {
	expr := cpmodel.NewLinearExpr()
	for t := 0; t < models.SlotsPerDay; t++ {
		expr.Add(v.Work[SlotKey{e.Name, d, t}])
	}
	return expr
}

// weekSlots sums the employee's work indicators over the whole week.
func (v *Variables) weekSlots(e *models.Employee) *cpmodel.LinearExpr {
	expr := cpmodel.NewLinearExpr()
	for _, d := range models.Days {
		for t := 0; t < models.SlotsPerDay; t++ {
			expr.Add(v.Work[SlotKey{e.Name, d, t}])
		}
	}
	return expr
}

// deptUnits builds the department's effective workload in quarter-hour
// units: a focused department slot is worth two units, a front desk slot
// staffed by someone qualified in the department is worth one.
func (v *Variables) deptUnits(r models.Role) *cpmodel.LinearExpr {
	expr := cpmodel.NewLinearExpr()
	for ei := range v.input.Employees {
		e := &v.input.Employees[ei]
		if !e.QualifiedFor(r) {
			continue
		}
		for _, d := range models.Days {
			for t := 0; t < models.SlotsPerDay; t++ {
				if a, ok := v.Assign[AssignKey{e.Name, d, t, r}]; ok {
					expr.AddTerm(a, 2)
				}
				if a, ok := v.Assign[AssignKey{e.Name, d, t, models.FrontDesk}]; ok {
					expr.Add(a)
				}
			}
		}
	}
	return expr
}
