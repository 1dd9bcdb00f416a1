package models

// SlotAssignment is one employee working one role during one slot.
type SlotAssignment struct {
	Employee string
	Role     Role
}

// ShiftBlock is a day's single contiguous run of assigned slots for one
// employee. Start is the first slot index, Length the number of slots.
type ShiftBlock struct {
	Employee string
	Day      Day
	Start    int
	Length   int
}

// Hours returns the shift duration in hours.
func (s ShiftBlock) Hours() float64 {
	return float64(s.Length) / SlotsPerHour
}

// Schedule is the decoded, validated output of one scheduling run.
type Schedule struct {
	// Assignments maps each slot to the employees active in it, sorted by
	// employee name.
	Assignments map[TimeSlot][]SlotAssignment
	// EmployeeHours is each employee's total assigned hours for the week.
	EmployeeHours map[string]float64
	// DepartmentFocusedHours counts hours spent directly in the department.
	DepartmentFocusedHours map[Role]float64
	// DepartmentDualHours counts front-desk hours worked by the
	// department's qualified members; each credits the department at half
	// value in the effective total.
	DepartmentDualHours map[Role]float64
	// Shifts lists every employee-day shift block.
	Shifts []ShiftBlock
	// Objective is the solver's objective value, descaled to weight units.
	Objective float64
	// Suboptimal marks schedules extracted after the time budget elapsed
	// before optimality was proven.
	Suboptimal bool
}

// DepartmentEffectiveHours is the department's accounting total: focused
// hours plus half credit for dual front-desk hours.
func (s *Schedule) DepartmentEffectiveHours(r Role) float64 {
	return s.DepartmentFocusedHours[r] + s.DepartmentDualHours[r]/2
}

// RoleAt returns the role the employee holds at the slot, if any.
func (s *Schedule) RoleAt(slot TimeSlot, employee string) (Role, bool) {
	for _, a := range s.Assignments[slot] {
		if a.Employee == employee {
			return a.Role, true
		}
	}
	return "", false
}

// FrontDeskEmployee returns who staffs the front desk at the slot, if
// anyone.
func (s *Schedule) FrontDeskEmployee(slot TimeSlot) (string, bool) {
	for _, a := range s.Assignments[slot] {
		if a.Role == FrontDesk {
			return a.Employee, true
		}
	}
	return "", false
}

// TotalHours sums assigned hours across all employees.
func (s *Schedule) TotalHours() float64 {
	total := 0.0
	for _, h := range s.EmployeeHours {
		total += h
	}
	return total
}
