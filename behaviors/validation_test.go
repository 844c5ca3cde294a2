package behaviors

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidationBehavior(t *testing.T) {
	t.Run("valid request passes through to next", func(t *testing.T) {
		behavior := NewValidationBehavior()
		var invoked bool

		result, err := behavior.Handle(context.Background(), newSearchRequest("orders", 10), nextReturning("found", nil, &invoked))

		assert.NoError(t, err)
		assert.True(t, invoked)
		assert.Equal(t, "found", result)
	})

	t.Run("invalid request fails before the handler runs", func(t *testing.T) {
		behavior := NewValidationBehavior()
		var invoked bool

		_, err := behavior.Handle(context.Background(), newSearchRequest("", 10), nextReturning("found", nil, &invoked))

		assert.Error(t, err)
		assert.False(t, invoked)
		assert.Contains(t, err.Error(), "request validation failed")

		var validationErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &validationErrs)
	})

	t.Run("range violation is reported", func(t *testing.T) {
		behavior := NewValidationBehavior()
		var invoked bool

		_, err := behavior.Handle(context.Background(), newSearchRequest("orders", 500), nextReturning(nil, nil, &invoked))

		assert.Error(t, err)
		assert.False(t, invoked)
	})

	t.Run("custom validator instance is used", func(t *testing.T) {
		validate := validator.New()
		assert.NoError(t, validate.RegisterValidation("never", func(fl validator.FieldLevel) bool {
			return false
		}))
		behavior := NewValidationBehavior(WithValidator(validate))

		type strictRequest struct {
			searchRequest
			Flag string `validate:"never"`
		}
		request := &strictRequest{searchRequest: *newSearchRequest("orders", 1)}

		_, err := behavior.Handle(context.Background(), request, nextReturning(nil, nil, nil))

		assert.Error(t, err)
	})

	t.Run("Name identifies the behavior", func(t *testing.T) {
		assert.Equal(t, "ValidationBehavior", NewValidationBehavior().Name())
	})
}
