package models

import "sort"

// Role identifies a staffing category an employee can be qualified for.
// Departments are roles; the front desk is the distinguished shared role.
type Role string

// FrontDesk is the capacity-one shared role that should be staffed at all
// times during opening hours.
const FrontDesk Role = "front_desk"

// Employee describes one student employee and their fixed weekly input.
type Employee struct {
	Name        string  `validate:"required"`
	Roles       []Role  `validate:"required,min=1"`
	MaxHours    float64 `validate:"gt=0"`
	TargetHours float64 `validate:"gte=0"`
	Year        int     `validate:"min=1,max=4"`
	// Available marks the slots the employee can work, indexed by
	// [dayIndex][slotIndex].
	Available [NumDays][SlotsPerDay]bool
}

// QualifiedFor reports whether the employee may be assigned the role.
func (e *Employee) QualifiedFor(r Role) bool {
	for _, role := range e.Roles {
		if role == r {
			return true
		}
	}
	return false
}

// AvailableAt reports whether the employee can work the slot.
func (e *Employee) AvailableAt(s TimeSlot) bool {
	d := DayIndex(s.Day)
	if d < 0 || s.Index < 0 || s.Index >= SlotsPerDay {
		return false
	}
	return e.Available[d][s.Index]
}

// Departments returns the employee's non-front-desk qualifications.
func (e *Employee) Departments() []Role {
	depts := make([]Role, 0, len(e.Roles))
	for _, r := range e.Roles {
		if r != FrontDesk {
			depts = append(depts, r)
		}
	}
	return depts
}

// Department describes a departmental role's weekly requirements.
type Department struct {
	Role Role `validate:"required"`
	// TargetHours is the weekly staffing target the objective steers toward.
	TargetHours float64 `validate:"gte=0"`
	// MaxHours is the hard weekly ceiling in effective hours.
	MaxHours float64 `validate:"gt=0"`
	// MinCollabHours is the desired weekly amount of sustained multi-person
	// overlap; zero disables the collaboration term for the department.
	MinCollabHours float64 `validate:"gte=0"`
	// Size is the count of qualified employees, filled in at model-build
	// time and used for scarcity weighting.
	Size int
}

// RosterInput is the immutable problem domain for one scheduling run.
type RosterInput struct {
	Employees   []Employee
	Departments []Department
}

// Department returns the department for the role, or nil.
func (in *RosterInput) Department(r Role) *Department {
	for i := range in.Departments {
		if in.Departments[i].Role == r {
			return &in.Departments[i]
		}
	}
	return nil
}

// DepartmentRoles lists the departmental roles in fixed order.
func (in *RosterInput) DepartmentRoles() []Role {
	roles := make([]Role, 0, len(in.Departments))
	for i := range in.Departments {
		roles = append(roles, in.Departments[i].Role)
	}
	return roles
}

// Normalize sorts employees and departments into deterministic model-build
// order and recomputes department sizes from qualifications.
func (in *RosterInput) Normalize() {
	sort.Slice(in.Employees, func(i, j int) bool {
		return in.Employees[i].Name < in.Employees[j].Name
	})
	for i := range in.Employees {
		roles := in.Employees[i].Roles
		sort.Slice(roles, func(a, b int) bool { return roles[a] < roles[b] })
	}
	sort.Slice(in.Departments, func(i, j int) bool {
		return in.Departments[i].Role < in.Departments[j].Role
	})
	for i := range in.Departments {
		size := 0
		for j := range in.Employees {
			if in.Employees[j].QualifiedFor(in.Departments[i].Role) {
				size++
			}
		}
		in.Departments[i].Size = size
	}
}

// ScarcestDepartmentSize returns the size of the smallest department the
// employee is qualified for, or 0 when they hold no departmental role.
// Static precomputation used by the scarcity objective term.
func (in *RosterInput) ScarcestDepartmentSize(e *Employee) int {
	smallest := 0
	for _, r := range e.Departments() {
		dept := in.Department(r)
		if dept == nil || dept.Size == 0 {
			continue
		}
		if smallest == 0 || dept.Size < smallest {
			smallest = dept.Size
		}
	}
	return smallest
}
