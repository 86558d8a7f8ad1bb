package errors

import (
	"net/http"
	"testing"

	"directory/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_CollectsFields(t *testing.T) {
	verr := NewValidationError()
	assert.False(t, verr.HasErrors())
	assert.NoError(t, verr.ErrOrNil())

	verr.Add("business_name", "can't be blank")
	verr.Add("city", "is not included in the list")

	err := verr.ErrOrNil()
	assert.Error(t, err)
	assert.True(t, errors.Is(errors.Wrap(err, "create listing"), ErrValidationFailed))
	assert.Equal(t, http.StatusUnprocessableEntity, verr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", verr.ErrorCode())
	assert.Equal(t, "business_name: can't be blank; city: is not included in the list", verr.Details())
}

func TestValidationError_AsAppError(t *testing.T) {
	var appErr AppError

	err := errors.Wrap(NewValidationError(FieldError{Field: "email", Message: "is invalid"}), "wrapped")

	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Input validation failed", appErr.Message())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrForbidden.WithDetails("listing owned by someone else")

	assert.Equal(t, "listing owned by someone else", detailed.Details())
	assert.Empty(t, ErrForbidden.Details())
	assert.Equal(t, http.StatusForbidden, detailed.HTTPCode())
}
