package loader

import (
	"github.com/careerworks/rostergen/internal/models"
)

// BuildRoster cross-validates the two input files against each other and
// assembles the scheduling domain. Role identities must match exactly:
// an employee qualification that names no department is a configuration
// error, not a silently ignored column.
func BuildRoster(employees []models.Employee, departments []models.Department) (*models.RosterInput, error) {
	input := &models.RosterInput{Employees: employees, Departments: departments}

	known := make(map[models.Role]bool, len(departments)+1)
	known[models.FrontDesk] = true
	for i := range departments {
		known[departments[i].Role] = true
	}

	for i := range employees {
		for _, r := range employees[i].Roles {
			if !known[r] {
				return nil, configErr("employee %q holds role %q, which matches no department and is not %q",
					employees[i].Name, r, models.FrontDesk)
			}
		}
	}

	input.Normalize()
	for i := range input.Departments {
		if input.Departments[i].Size == 0 {
			return nil, configErr("department %q has no qualified employees", input.Departments[i].Role)
		}
	}
	return input, nil
}
