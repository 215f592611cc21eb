package service

import (
	"errors"
	"fmt"

	apperrors "github.com/Dolapo001/SPAS/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationError maps the first failed validator rule to a typed
// ValidationError so handlers can answer 400.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}

	fe := verrs[0]
	switch fe.StructField() {
	case "NumGroups":
		return apperrors.ErrInvalidGroupCount
	case "AllocationMethod":
		return apperrors.ErrInvalidAllocationMethod
	}
	return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
}
