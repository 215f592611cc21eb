package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("message names the entity", func(t *testing.T) {
		assert.Equal(t, "group not found", ErrGroupNotFound.Error())
		assert.Equal(t, "allocation not found", ErrAllocationNotFound.Error())
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("load group: %w", ErrGroupNotFound)
		assert.True(t, IsNotFound(err))
		assert.True(t, errors.Is(err, ErrGroupNotFound))
		assert.False(t, errors.Is(err, ErrDepartmentNotFound))
	})

	t.Run("validation errors are not not-found", func(t *testing.T) {
		assert.False(t, IsNotFound(ErrInvalidGroupCount))
		assert.False(t, IsNotFound(errors.New("boom")))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("message includes the field", func(t *testing.T) {
		err := NewValidationError("body", "must not be empty")
		assert.Equal(t, "validation error: body - must not be empty", err.Error())
	})

	t.Run("message without a field", func(t *testing.T) {
		err := NewValidationError("", "nothing to do")
		assert.Equal(t, "validation error: nothing to do", err.Error())
	})

	t.Run("empty pool sentinels share a message", func(t *testing.T) {
		assert.Contains(t, ErrNoUnassignedStudents.Error(), "need at least 1 unassigned student")
		assert.Contains(t, ErrNoSupervisors.Error(), "need at least 1 unassigned student")
		assert.False(t, errors.Is(ErrNoSupervisors, ErrNoUnassignedStudents))
	})

	t.Run("too many groups", func(t *testing.T) {
		err := NewTooManyGroupsError(3)
		assert.Contains(t, err.Error(), "cannot exceed number of supervisors (3)")
		assert.True(t, IsValidation(err))
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(fmt.Errorf("run: %w", ErrInvalidAllocationMethod)))
		assert.True(t, IsValidation(ErrInvalidKeepPolicy))
		assert.False(t, IsValidation(ErrGroupNotFound))
	})
}
