package engine

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

// linkAtLeast ties lit to the condition expr >= threshold in both
// directions using a pair of half-reified inequalities.
func linkAtLeast(b *cpmodel.Builder, lit cpmodel.BoolVar, expr cpmodel.LinearArgument, threshold int64) {
	b.AddGreaterOrEqual(expr, cpmodel.NewConstant(threshold)).OnlyEnforceIf(lit)
	b.AddLessOrEqual(expr, cpmodel.NewConstant(threshold-1)).OnlyEnforceIf(lit.Not())
}

// reifyAtLeast creates a fresh literal that is true exactly when
// expr >= threshold.
func reifyAtLeast(b *cpmodel.Builder, expr cpmodel.LinearArgument, threshold int64) cpmodel.BoolVar {
	lit := b.NewBoolVar()
	linkAtLeast(b, lit, expr, threshold)
	return lit
}
