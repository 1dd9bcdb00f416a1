package engine

import (
	"context"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
	"google.golang.org/protobuf/proto"

	apperrors "github.com/careerworks/rostergen/pkg/errors"
)

// Status classifies a solve outcome.
type Status string

const (
	// StatusOptimal: proven best assignment within the model.
	StatusOptimal Status = "OPTIMAL"
	// StatusFeasible: a valid assignment was found but the time budget
	// elapsed before optimality was proven.
	StatusFeasible Status = "FEASIBLE"
	// StatusInfeasible: the hard constraints admit no assignment.
	StatusInfeasible Status = "INFEASIBLE"
	// StatusTimeout: the budget elapsed with no assignment found.
	StatusTimeout Status = "TIMEOUT"
)

// SolveOptions bounds one solver invocation.
type SolveOptions struct {
	// MaxTime caps wall-clock solve time. Zero means no limit.
	MaxTime time.Duration
	// Workers sets the solver's parallel search workers. Zero keeps the
	// solver default.
	Workers int
	// RandomSeed fixes the search's tie-breaking for reproducible runs.
	RandomSeed int
}

// Solution is the solver's verdict plus the raw assignment values, keyed
// by the same assignment keys the model was built from.
type Solution struct {
	Status    Status
	Objective float64
	WallTime  time.Duration
	Assigned  map[AssignKey]bool
}

// Solver turns a compiled model into a solution. The single
// implementation delegates to CP-SAT; tests substitute their own.
type Solver interface {
	Solve(ctx context.Context, m *Model, opts SolveOptions) (*Solution, error)
}

// CpSatSolver runs the CP-SAT solver in-process.
type CpSatSolver struct{}

// NewCpSatSolver returns the production solver.
func NewCpSatSolver() *CpSatSolver {
	return &CpSatSolver{}
}

// Solve serializes the model, invokes CP-SAT with the requested limits
// and maps the response onto the solve taxonomy. The solver runs to its
// internal time limit; ctx is checked before starting.
func (s *CpSatSolver) Solve(ctx context.Context, m *Model, opts SolveOptions) (*Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrTimeout.Code, apperrors.ErrTimeout.ExitCode, "solve aborted before start")
	}

	modelProto, err := m.Proto()
	if err != nil {
		return nil, err
	}

	params := &sppb.SatParameters{}
	if opts.MaxTime > 0 {
		params.MaxTimeInSeconds = proto.Float64(opts.MaxTime.Seconds())
	}
	if opts.Workers > 0 {
		params.NumSearchWorkers = proto.Int32(int32(opts.Workers))
	}
	params.RandomSeed = proto.Int32(int32(opts.RandomSeed))

	resp, err := cpmodel.SolveCpModelWithParameters(modelProto, params)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.ExitCode, "invoke cp-sat solver")
	}

	return s.decode(m, resp)
}

// decode maps a solver response onto a Solution. Assignment values are
// read only for the terminal states that carry a solution.
func (s *CpSatSolver) decode(m *Model, resp *cmpb.CpSolverResponse) (*Solution, error) {
	sol := &Solution{
		WallTime: time.Duration(resp.GetWallTime() * float64(time.Second)),
		Assigned: make(map[AssignKey]bool),
	}

	switch resp.GetStatus() {
	case cmpb.CpSolverStatus_OPTIMAL:
		sol.Status = StatusOptimal
	case cmpb.CpSolverStatus_FEASIBLE:
		sol.Status = StatusFeasible
	case cmpb.CpSolverStatus_INFEASIBLE:
		sol.Status = StatusInfeasible
		return sol, nil
	case cmpb.CpSolverStatus_UNKNOWN:
		sol.Status = StatusTimeout
		return sol, nil
	default:
		return nil, apperrors.Clone(apperrors.ErrInternal,
			"cp-sat rejected the model: "+resp.GetStatus().String())
	}

	sol.Objective = resp.GetObjectiveValue() / weightScale
	for key, v := range m.Vars.Assign {
		if cpmodel.SolutionBooleanValue(resp, v) {
			sol.Assigned[key] = true
		}
	}
	return sol, nil
}
