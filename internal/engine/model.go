package engine

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/careerworks/rostergen/internal/models"
	apperrors "github.com/careerworks/rostergen/pkg/errors"
)

// Model is a compiled decision problem together with the bookkeeping
// needed to decode a solved assignment back into the domain.
type Model struct {
	builder *cpmodel.Builder

	Vars   *Variables
	Input  *models.RosterInput
	Params Params
	Terms  []Term
}

// Compile normalizes the input and translates it into a constraint model:
// variables for every permitted assignment, the hard constraint families,
// and the weighted soft objective. The input is mutated only by
// normalization (ordering and department sizes).
func Compile(input *models.RosterInput, p Params) (*Model, error) {
	if len(input.Employees) == 0 {
		return nil, apperrors.Clone(apperrors.ErrConfiguration, "scheduling domain is empty: no employees")
	}
	if p.MinShiftSlots < 1 || p.MaxShiftSlots < p.MinShiftSlots {
		return nil, apperrors.Clone(apperrors.ErrConfiguration,
			fmt.Sprintf("invalid shift bounds: min %d slots, max %d slots", p.MinShiftSlots, p.MaxShiftSlots))
	}
	input.Normalize()
	for di := range input.Departments {
		dept := &input.Departments[di]
		if dept.Size == 0 {
			return nil, apperrors.Clone(apperrors.ErrConfiguration,
				fmt.Sprintf("department %q has no qualified employees", dept.Role))
		}
	}

	b := cpmodel.NewCpModelBuilder()
	v := newVariables(b, input)
	encodeHard(b, v, input, p)
	terms := composeObjective(b, v, input, p)

	return &Model{builder: b, Vars: v, Input: input, Params: p, Terms: terms}, nil
}

// Proto serializes the model for solving or inspection.
func (m *Model) Proto() (*cmpb.CpModelProto, error) {
	proto, err := m.builder.Model()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.ExitCode, "serialize constraint model")
	}
	return proto, nil
}

// Stats summarizes model size for logging.
type Stats struct {
	Employees   int
	Departments int
	AssignVars  int
	Constraints int
}

// Stats counts the model's variables and constraints.
func (m *Model) Stats() (Stats, error) {
	proto, err := m.Proto()
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Employees:   len(m.Input.Employees),
		Departments: len(m.Input.Departments),
		AssignVars:  len(m.Vars.Assign),
		Constraints: len(proto.GetConstraints()),
	}, nil
}
