package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerworks/rostergen/internal/dto"
	"github.com/careerworks/rostergen/internal/engine"
	"github.com/careerworks/rostergen/internal/models"
	"github.com/careerworks/rostergen/internal/report"
	apperrors "github.com/careerworks/rostergen/pkg/errors"
	"github.com/careerworks/rostergen/pkg/export"
)

// Collaborator interfaces; the concrete loaders, solver and storage are
// injected so tests can substitute them.
type staffLoader interface {
	Load(path string) ([]models.Employee, error)
}

type departmentLoader interface {
	Load(path string) ([]models.Department, error)
}

type rosterBuilder func(employees []models.Employee, departments []models.Department) (*models.RosterInput, error)

type fileStore interface {
	Save(filename string, data []byte) (string, error)
}

// RunResult bundles everything a caller needs to present one run.
type RunResult struct {
	Summary  dto.RunSummary
	Input    *models.RosterInput
	Schedule *models.Schedule
	Scores   []engine.TermScore
}

// RosterService orchestrates one scheduling run: load and cross-validate
// the inputs, compile the constraint model, solve within the time budget,
// re-validate and extract the schedule, then write the exports.
type RosterService struct {
	staff       staffLoader
	departments departmentLoader
	buildRoster rosterBuilder
	solver      engine.Solver
	store       fileStore
	csv         *export.CSVExporter
	pdf         *export.PDFExporter
	params      engine.Params
	opts        engine.SolveOptions
	validate    *validator.Validate
	log         *zap.Logger
}

// NewRosterService wires the service from its collaborators.
func NewRosterService(
	staff staffLoader,
	departments departmentLoader,
	buildRoster rosterBuilder,
	solver engine.Solver,
	store fileStore,
	params engine.Params,
	opts engine.SolveOptions,
	log *zap.Logger,
) *RosterService {
	return &RosterService{
		staff:       staff,
		departments: departments,
		buildRoster: buildRoster,
		solver:      solver,
		store:       store,
		csv:         export.NewCSVExporter(),
		pdf:         export.NewPDFExporter(),
		params:      params,
		opts:        opts,
		validate:    validator.New(),
		log:         log,
	}
}

// Run executes one scheduling run end to end.
func (s *RosterService) Run(ctx context.Context, req dto.ScheduleRequest) (*RunResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.ExitCode, "invalid schedule request")
	}

	runID := uuid.NewString()
	log := s.log.With(zap.String("runId", runID))
	log.Info("starting scheduling run",
		zap.String("staff", req.StaffPath),
		zap.String("requirements", req.RequirementsPath))

	employees, err := s.staff.Load(req.StaffPath)
	if err != nil {
		return nil, err
	}
	departments, err := s.departments.Load(req.RequirementsPath)
	if err != nil {
		return nil, err
	}
	input, err := s.buildRoster(employees, departments)
	if err != nil {
		return nil, err
	}
	for _, hint := range engine.DiagnoseInput(input, s.params) {
		log.Warn("input conflict", zap.String("hint", hint))
	}

	model, err := engine.Compile(input, s.params)
	if err != nil {
		return nil, err
	}
	if stats, err := model.Stats(); err == nil {
		log.Info("model compiled",
			zap.Int("employees", stats.Employees),
			zap.Int("departments", stats.Departments),
			zap.Int("assignVars", stats.AssignVars),
			zap.Int("constraints", stats.Constraints))
	}

	opts := s.opts
	if req.MaxSolveTime > 0 {
		opts.MaxTime = req.MaxSolveTime
	}
	sol, err := s.solver.Solve(ctx, model, opts)
	if err != nil {
		return nil, err
	}
	log.Info("solver finished",
		zap.String("status", string(sol.Status)),
		zap.Float64("objective", sol.Objective),
		zap.Duration("wallTime", sol.WallTime))

	switch sol.Status {
	case engine.StatusInfeasible:
		hints := engine.DiagnoseInfeasible(input, s.params)
		return nil, apperrors.Clone(apperrors.ErrInfeasible,
			"scheduling model is infeasible; suspected families: "+strings.Join(hints, "; "))
	case engine.StatusTimeout:
		return nil, apperrors.Clone(apperrors.ErrTimeout,
			fmt.Sprintf("no feasible schedule found within %s", opts.MaxTime))
	}

	sched, err := engine.Extract(input, s.params, sol)
	if err != nil {
		return nil, err
	}
	if sched.Suboptimal {
		log.Warn("time budget elapsed before optimality was proven; extracting best feasible schedule")
	}
	scores := engine.ScoreSchedule(input, s.params, sched)

	outputs, err := s.writeExports(req.OutputBase, input, sched, scores)
	if err != nil {
		return nil, err
	}
	for _, path := range outputs {
		log.Info("wrote export", zap.String("path", path))
	}

	return &RunResult{
		Summary:  s.summarize(runID, input, sched, sol, scores, outputs),
		Input:    input,
		Schedule: sched,
		Scores:   scores,
	}, nil
}

// writeExports renders the weekly grid and both summaries as CSV, plus the
// combined report as PDF.
func (s *RosterService) writeExports(base string, input *models.RosterInput, sched *models.Schedule, scores []engine.TermScore) ([]string, error) {
	grid := report.WeeklyGrid(sched)

	var outputs []string
	csvFiles := []struct {
		name string
		data export.Dataset
	}{
		{base + ".csv", grid},
		{base + "_employees.csv", report.EmployeeSummary(input, sched)},
		{base + "_departments.csv", report.DepartmentSummary(input, sched)},
	}
	for _, f := range csvFiles {
		data, err := s.csv.Render(f.data)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.ExitCode, "render "+f.name)
		}
		path, err := s.store.Save(f.name, data)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.ExitCode, "save "+f.name)
		}
		outputs = append(outputs, path)
	}

	pdfBytes, err := s.pdf.Render("Weekly Schedule", []export.Section{
		{Title: "Weekly Grid", Data: grid},
		{Title: "Employees", Data: report.EmployeeSummary(input, sched)},
		{Title: "Departments", Data: report.DepartmentSummary(input, sched)},
		{Title: "Objective Breakdown", Data: report.ScoreBreakdown(scores)},
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.ExitCode, "render schedule pdf")
	}
	pdfPath, err := s.store.Save(base+".pdf", pdfBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.ExitCode, "save schedule pdf")
	}

	return append(outputs, pdfPath), nil
}

func (s *RosterService) summarize(runID string, input *models.RosterInput, sched *models.Schedule, sol *engine.Solution, scores []engine.TermScore, outputs []string) dto.RunSummary {
	covered := 0
	for _, slot := range models.AllSlots() {
		if _, ok := sched.FrontDeskEmployee(slot); ok {
			covered++
		}
	}

	deptHours := make(map[string]float64, len(input.Departments))
	for i := range input.Departments {
		r := input.Departments[i].Role
		deptHours[string(r)] = sched.DepartmentEffectiveHours(r)
	}

	terms := make([]dto.TermReport, 0, len(scores))
	for _, sc := range scores {
		terms = append(terms, dto.TermReport{Name: sc.Name, Weight: sc.Weight, Raw: sc.Raw, Weighted: sc.Weighted})
	}

	return dto.RunSummary{
		RunID:           runID,
		Status:          string(sol.Status),
		Suboptimal:      sched.Suboptimal,
		Objective:       sched.Objective,
		WallTime:        sol.WallTime,
		CoveredSlots:    covered,
		TotalSlots:      models.NumDays * models.SlotsPerDay,
		EmployeeHours:   sched.EmployeeHours,
		DepartmentHours: deptHours,
		Terms:           terms,
		OutputFiles:     outputs,
	}
}
