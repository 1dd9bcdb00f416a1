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

// staffFixedColumns precede the 90 availability columns in the staff CSV.
var staffFixedColumns = []string{"name", "roles", "max_weekly_hours", "target_weekly_hours", "year"}

// StaffLoader reads the staff CSV: one row per employee with identity,
// pipe-separated roles, hour preferences, seniority year and one
// availability column per weekly slot (header "Mon_08:00" style, value 1
// when available).
type StaffLoader struct {
	validate *validator.Validate
}

// NewStaffLoader builds a staff loader.
func NewStaffLoader() *StaffLoader {
	return &StaffLoader{validate: validator.New()}
}

// Load parses and validates the staff file.
func (l *StaffLoader) Load(path string) ([]models.Employee, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrConfiguration.Code, apperrors.ErrConfiguration.ExitCode,
			fmt.Sprintf("open staff file %s", path))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrConfiguration.Code, apperrors.ErrConfiguration.ExitCode,
			fmt.Sprintf("parse staff file %s", path))
	}
	if len(records) < 2 {
		return nil, configErr("staff file %s has no employee rows", path)
	}

	slotColumn, err := l.checkHeader(records[0])
	if err != nil {
		return nil, err
	}

	employees := make([]models.Employee, 0, len(records)-1)
	seen := make(map[string]bool)
	for i, record := range records[1:] {
		line := i + 2
		e, err := l.parseRow(record, slotColumn, line)
		if err != nil {
			return nil, err
		}
		if seen[e.Name] {
			return nil, configErr("staff row %d: duplicate employee %q", line, e.Name)
		}
		seen[e.Name] = true
		employees = append(employees, e)
	}
	return employees, nil
}

// checkHeader verifies the fixed columns and maps each (day, slot) to its
// column index. All 90 availability columns must be present.
func (l *StaffLoader) checkHeader(header []string) (map[models.TimeSlot]int, error) {
	for i, want := range staffFixedColumns {
		if i >= len(header) || strings.TrimSpace(header[i]) != want {
			return nil, configErr("staff header column %d must be %q", i+1, want)
		}
	}

	byName := make(map[string]int)
	for i := len(staffFixedColumns); i < len(header); i++ {
		byName[strings.TrimSpace(header[i])] = i
	}

	slotColumn := make(map[models.TimeSlot]int)
	for _, d := range models.Days {
		for t := 0; t < models.SlotsPerDay; t++ {
			name := fmt.Sprintf("%s_%s", d, models.SlotStarts[t])
			idx, ok := byName[name]
			if !ok {
				return nil, configErr("staff header is missing availability column %q", name)
			}
			slotColumn[models.TimeSlot{Day: d, Index: t}] = idx
		}
	}
	return slotColumn, nil
}

func (l *StaffLoader) parseRow(record []string, slotColumn map[models.TimeSlot]int, line int) (models.Employee, error) {
	var e models.Employee
	if len(record) < len(staffFixedColumns) {
		return e, configErr("staff row %d: expected at least %d columns, got %d", line, len(staffFixedColumns), len(record))
	}

	e.Name = strings.TrimSpace(record[0])
	for _, raw := range strings.Split(record[1], "|") {
		role := models.Role(strings.TrimSpace(raw))
		if role == "" {
			continue
		}
		e.Roles = append(e.Roles, role)
	}

	var err error
	if e.MaxHours, err = strconv.ParseFloat(strings.TrimSpace(record[2]), 64); err != nil {
		return e, configErr("staff row %d (%s): invalid max_weekly_hours %q", line, e.Name, record[2])
	}
	if e.TargetHours, err = strconv.ParseFloat(strings.TrimSpace(record[3]), 64); err != nil {
		return e, configErr("staff row %d (%s): invalid target_weekly_hours %q", line, e.Name, record[3])
	}
	if e.Year, err = strconv.Atoi(strings.TrimSpace(record[4])); err != nil {
		return e, configErr("staff row %d (%s): invalid year %q", line, e.Name, record[4])
	}

	for slot, idx := range slotColumn {
		if idx >= len(record) {
			return e, configErr("staff row %d (%s): missing availability value for %s", line, e.Name, slot)
		}
		value := strings.TrimSpace(record[idx])
		switch value {
		case "1", "true", "TRUE", "yes":
			e.Available[models.DayIndex(slot.Day)][slot.Index] = true
		case "0", "", "false", "FALSE", "no":
		default:
			return e, configErr("staff row %d (%s): availability value %q for %s is not boolean", line, e.Name, value, slot)
		}
	}

	if err := l.validate.Struct(e); err != nil {
		return e, apperrors.Wrap(err, apperrors.ErrConfiguration.Code, apperrors.ErrConfiguration.ExitCode,
			fmt.Sprintf("staff row %d (%s) failed validation", line, e.Name))
	}
	return e, nil
}

func configErr(format string, args ...any) *apperrors.Error {
	return apperrors.Clone(apperrors.ErrConfiguration, fmt.Sprintf(format, args...))
}
