// Package errors defines the error kinds handlers translate into HTTP statuses:
// NotFoundError becomes 404 and ValidationError becomes 400. Anything else is
// treated as an internal failure.
package errors

import (
	"errors"
	"fmt"
)

// NotFoundError reports a missing entity, or one outside the caller's department
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is matches any NotFoundError for the same entity
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && e.Entity == t.Entity
}

// ValidationError reports a request the caller can fix
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Is matches a ValidationError with the same field and message
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && e.Field == t.Field && e.Message == t.Message
}

var (
	ErrDepartmentNotFound = &NotFoundError{Entity: "department"}
	ErrGroupNotFound      = &NotFoundError{Entity: "group"}
	ErrAllocationNotFound = &NotFoundError{Entity: "allocation"}
)

const emptyPoolMessage = "need at least 1 unassigned student and 1 supervisor to run allocation"

var (
	ErrNoUnassignedStudents    = &ValidationError{Field: "students", Message: emptyPoolMessage}
	ErrNoSupervisors           = &ValidationError{Field: "supervisors", Message: emptyPoolMessage}
	ErrInvalidGroupCount       = &ValidationError{Field: "num_groups", Message: "number of groups must be at least 1"}
	ErrInvalidAllocationMethod = &ValidationError{Field: "allocation_method", Message: "must be one of grade_based, random, balanced"}
	ErrDepartmentRequired      = &ValidationError{Field: "department_id", Message: "a department is required"}
	ErrInvalidKeepPolicy       = &ValidationError{Field: "keep", Message: "keep policy must be first or last"}
)

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// NewValidationError creates a ValidationError for field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewTooManyGroupsError reports a group count larger than the supervisor pool
func NewTooManyGroupsError(supervisors int) error {
	return &ValidationError{
		Field:   "num_groups",
		Message: fmt.Sprintf("number of groups cannot exceed number of supervisors (%d)", supervisors),
	}
}
