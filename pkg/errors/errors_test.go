package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	base := New("SOME_CODE", 3, "something failed")
	assert.Equal(t, "something failed", base.Error())

	wrapped := Wrap(errors.New("root cause"), "SOME_CODE", 3, "something failed")
	assert.Equal(t, "something failed: root cause", wrapped.Error())
	assert.Equal(t, "root cause", wrapped.Unwrap().Error())
}

func TestFromErrorNormalizes(t *testing.T) {
	assert.Nil(t, FromError(nil))

	typed := Clone(ErrInfeasible, "no assignment")
	assert.Same(t, typed, FromError(typed))

	// A typed error surviving fmt wrapping is still recovered.
	recovered := FromError(fmt.Errorf("run failed: %w", typed))
	assert.Equal(t, ErrInfeasible.Code, recovered.Code)
	assert.Equal(t, 3, recovered.ExitCode)

	plain := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, plain.Code)
	assert.Equal(t, 1, plain.ExitCode)
}

func TestCloneOverridesMessageOnly(t *testing.T) {
	c := Clone(ErrTimeout, "budget spent")
	assert.Equal(t, ErrTimeout.Code, c.Code)
	assert.Equal(t, ErrTimeout.ExitCode, c.ExitCode)
	assert.Equal(t, "budget spent", c.Message)
	assert.Equal(t, "solver time budget elapsed with no solution", ErrTimeout.Message, "original untouched")
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Clone(ErrInvariant, "bad schedule"))
	assert.True(t, HasCode(err, ErrInvariant))
	assert.False(t, HasCode(err, ErrTimeout))
	assert.False(t, HasCode(nil, ErrTimeout))
	assert.False(t, HasCode(errors.New("plain"), ErrTimeout))
}

func TestExitCodeTaxonomy(t *testing.T) {
	assert.Equal(t, 2, ErrConfiguration.ExitCode)
	assert.Equal(t, 2, ErrValidation.ExitCode)
	assert.Equal(t, 3, ErrInfeasible.ExitCode)
	assert.Equal(t, 4, ErrTimeout.ExitCode)
	assert.Equal(t, 5, ErrInvariant.ExitCode)
}
