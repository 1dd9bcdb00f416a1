package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careerworks/rostergen/internal/dto"
	"github.com/careerworks/rostergen/internal/engine"
	"github.com/careerworks/rostergen/internal/loader"
	"github.com/careerworks/rostergen/internal/models"
	apperrors "github.com/careerworks/rostergen/pkg/errors"
)

type stubStaffLoader struct {
	employees []models.Employee
	err       error
}

func (s stubStaffLoader) Load(string) ([]models.Employee, error) { return s.employees, s.err }

type stubDepartmentLoader struct {
	departments []models.Department
	err         error
}

func (s stubDepartmentLoader) Load(string) ([]models.Department, error) {
	return s.departments, s.err
}

type stubSolver struct {
	sol      *engine.Solution
	err      error
	lastOpts engine.SolveOptions
}

func (s *stubSolver) Solve(_ context.Context, _ *engine.Model, opts engine.SolveOptions) (*engine.Solution, error) {
	s.lastOpts = opts
	return s.sol, s.err
}

type memStore struct {
	files map[string][]byte
}

func (s *memStore) Save(filename string, data []byte) (string, error) {
	if s.files == nil {
		s.files = make(map[string][]byte)
	}
	s.files[filename] = data
	return "/out/" + filename, nil
}

func soloDeskEmployees() []models.Employee {
	var avail [models.NumDays][models.SlotsPerDay]bool
	for t := 0; t < 4; t++ {
		avail[models.DayIndex(models.Monday)][t] = true
	}
	return []models.Employee{{
		Name:        "amy",
		Roles:       []models.Role{models.FrontDesk},
		MaxHours:    4,
		TargetHours: 2,
		Year:        1,
		Available:   avail,
	}}
}

func deskSolution(status engine.Status) *engine.Solution {
	sol := &engine.Solution{
		Status:    status,
		Objective: 40198,
		WallTime:  120 * time.Millisecond,
		Assigned:  make(map[engine.AssignKey]bool),
	}
	for t := 0; t < 4; t++ {
		sol.Assigned[engine.AssignKey{Employee: "amy", Day: models.Monday, Slot: t, Role: models.FrontDesk}] = true
	}
	return sol
}

func newTestService(solver engine.Solver, store *memStore) *RosterService {
	return NewRosterService(
		stubStaffLoader{employees: soloDeskEmployees()},
		stubDepartmentLoader{},
		loader.BuildRoster,
		solver,
		store,
		engine.DefaultParams(),
		engine.SolveOptions{MaxTime: 90 * time.Second},
		zap.NewNop(),
	)
}

func validRequest() dto.ScheduleRequest {
	return dto.ScheduleRequest{
		StaffPath:        "staff.csv",
		RequirementsPath: "requirements.csv",
		OutputBase:       "schedule",
	}
}

func TestRunProducesScheduleAndExports(t *testing.T) {
	store := &memStore{}
	solver := &stubSolver{sol: deskSolution(engine.StatusOptimal)}
	svc := newTestService(solver, store)

	result, err := svc.Run(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(engine.StatusOptimal), result.Summary.Status)
	assert.False(t, result.Summary.Suboptimal)
	assert.Equal(t, 4, result.Summary.CoveredSlots)
	assert.Equal(t, models.NumDays*models.SlotsPerDay, result.Summary.TotalSlots)
	assert.InDelta(t, 2.0, result.Summary.EmployeeHours["amy"], 1e-9)
	assert.NotEmpty(t, result.Summary.RunID)
	assert.Len(t, result.Scores, 12)

	// The exact 4-slot Monday morning desk block.
	require.Len(t, result.Schedule.Shifts, 1)
	assert.Equal(t, models.ShiftBlock{Employee: "amy", Day: models.Monday, Start: 0, Length: 4},
		result.Schedule.Shifts[0])

	assert.Contains(t, store.files, "schedule.csv")
	assert.Contains(t, store.files, "schedule_employees.csv")
	assert.Contains(t, store.files, "schedule_departments.csv")
	assert.Contains(t, store.files, "schedule.pdf")
	assert.Equal(t, []string{
		"/out/schedule.csv",
		"/out/schedule_employees.csv",
		"/out/schedule_departments.csv",
		"/out/schedule.pdf",
	}, result.Summary.OutputFiles)
}

func TestRunMarksFeasibleAsSuboptimal(t *testing.T) {
	store := &memStore{}
	svc := newTestService(&stubSolver{sol: deskSolution(engine.StatusFeasible)}, store)

	result, err := svc.Run(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, result.Summary.Suboptimal)
	assert.Equal(t, string(engine.StatusFeasible), result.Summary.Status)
}

func TestRunMapsInfeasibleWithHints(t *testing.T) {
	svc := newTestService(&stubSolver{sol: &engine.Solution{Status: engine.StatusInfeasible}}, &memStore{})

	_, err := svc.Run(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrInfeasible))
	assert.Contains(t, err.Error(), "suspected families")
}

func TestRunMapsTimeout(t *testing.T) {
	svc := newTestService(&stubSolver{sol: &engine.Solution{Status: engine.StatusTimeout}}, &memStore{})

	_, err := svc.Run(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrTimeout))
}

func TestRunOverridesTimeBudget(t *testing.T) {
	solver := &stubSolver{sol: deskSolution(engine.StatusOptimal)}
	svc := newTestService(solver, &memStore{})

	req := validRequest()
	req.MaxSolveTime = 5 * time.Second
	_, err := svc.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, solver.lastOpts.MaxTime)
}

func TestRunRejectsInvalidRequest(t *testing.T) {
	svc := newTestService(&stubSolver{sol: deskSolution(engine.StatusOptimal)}, &memStore{})

	_, err := svc.Run(context.Background(), dto.ScheduleRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrValidation))
}

func TestRunSurfacesInvariantViolation(t *testing.T) {
	// A solver claiming a 2-slot shift violates the minimum shift length;
	// extraction must fail with the invariant code, never repair.
	sol := &engine.Solution{
		Status:   engine.StatusOptimal,
		Assigned: make(map[engine.AssignKey]bool),
	}
	for t2 := 0; t2 < 2; t2++ {
		sol.Assigned[engine.AssignKey{Employee: "amy", Day: models.Monday, Slot: t2, Role: models.FrontDesk}] = true
	}
	svc := newTestService(&stubSolver{sol: sol}, &memStore{})

	_, err := svc.Run(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrInvariant))
}
