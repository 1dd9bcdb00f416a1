package engine

import (
	"testing"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReifyAtLeastAddsPairedHalfReifications(t *testing.T) {
	b := cpmodel.NewCpModelBuilder()
	x := b.NewBoolVar()
	y := b.NewBoolVar()
	expr := cpmodel.NewLinearExpr().Add(x).Add(y)

	reifyAtLeast(b, expr, 2)

	proto, err := b.Model()
	require.NoError(t, err)

	// One fresh literal, two linear constraints each enforced by one side
	// of it.
	assert.Len(t, proto.GetVariables(), 3)
	require.Len(t, proto.GetConstraints(), 2)
	for _, c := range proto.GetConstraints() {
		assert.Len(t, c.GetEnforcementLiteral(), 1)
		assert.NotNil(t, c.GetLinear())
	}
}

func TestLinkAtLeastUsesProvidedLiteral(t *testing.T) {
	b := cpmodel.NewCpModelBuilder()
	x := b.NewBoolVar()
	lit := b.NewBoolVar()

	linkAtLeast(b, lit, cpmodel.NewLinearExpr().Add(x), 1)

	proto, err := b.Model()
	require.NoError(t, err)
	assert.Len(t, proto.GetVariables(), 2)
	assert.Len(t, proto.GetConstraints(), 2)
}
