package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/careerworks/rostergen/internal/models"
	apperrors "github.com/careerworks/rostergen/pkg/errors"
)

// DepartmentLoader reads the department requirements CSV: one row per
// departmental role with weekly target and ceiling, plus an optional
// minimum for sustained collaborative hours.
type DepartmentLoader struct {
	validate *validator.Validate
}

// NewDepartmentLoader builds a department loader.
func NewDepartmentLoader() *DepartmentLoader {
	return &DepartmentLoader{validate: validator.New()}
}

// Load parses and validates the requirements file.
func (l *DepartmentLoader) Load(path string) ([]models.Department, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrConfiguration.Code, apperrors.ErrConfiguration.ExitCode,
			fmt.Sprintf("open requirements file %s", path))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrConfiguration.Code, apperrors.ErrConfiguration.ExitCode,
			fmt.Sprintf("parse requirements file %s", path))
	}
	if len(records) < 1 {
		return nil, configErr("requirements file %s is empty", path)
	}

	header := records[0]
	want := []string{"department", "target_hours", "max_hours"}
	for i, col := range want {
		if i >= len(header) || strings.TrimSpace(header[i]) != col {
			return nil, configErr("requirements header column %d must be %q", i+1, col)
		}
	}
	hasCollab := len(header) > 3 && strings.TrimSpace(header[3]) == "min_collab_hours"

	departments := make([]models.Department, 0, len(records)-1)
	seen := make(map[models.Role]bool)
	for i, record := range records[1:] {
		line := i + 2
		if len(record) < 3 {
			return nil, configErr("requirements row %d: expected at least 3 columns, got %d", line, len(record))
		}

		dept := models.Department{Role: models.Role(strings.TrimSpace(record[0]))}
		if dept.Role == models.FrontDesk {
			return nil, configErr("requirements row %d: %q is the shared desk role, not a department", line, models.FrontDesk)
		}
		if seen[dept.Role] {
			return nil, configErr("requirements row %d: duplicate department %q", line, dept.Role)
		}
		seen[dept.Role] = true

		if dept.TargetHours, err = strconv.ParseFloat(strings.TrimSpace(record[1]), 64); err != nil {
			return nil, configErr("requirements row %d (%s): invalid target_hours %q", line, dept.Role, record[1])
		}
		if dept.MaxHours, err = strconv.ParseFloat(strings.TrimSpace(record[2]), 64); err != nil {
			return nil, configErr("requirements row %d (%s): invalid max_hours %q", line, dept.Role, record[2])
		}
		if hasCollab && len(record) > 3 && strings.TrimSpace(record[3]) != "" {
			if dept.MinCollabHours, err = strconv.ParseFloat(strings.TrimSpace(record[3]), 64); err != nil {
				return nil, configErr("requirements row %d (%s): invalid min_collab_hours %q", line, dept.Role, record[3])
			}
		}

		if err := l.validate.Struct(dept); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrConfiguration.Code, apperrors.ErrConfiguration.ExitCode,
				fmt.Sprintf("requirements row %d (%s) failed validation", line, dept.Role))
		}
		departments = append(departments, dept)
	}
	return departments, nil
}
