package behaviors

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/glimte/mediate-go/contracts"
	"github.com/glimte/mediate-go/mediator"
)

// ValidationBehavior validates request struct tags before the handler runs
type ValidationBehavior struct {
	validate *validator.Validate
}

// ValidationOption configures the ValidationBehavior
type ValidationOption func(*ValidationBehavior)

// WithValidator sets a pre-configured validator instance, for hosts that
// register custom validation functions or translations
func WithValidator(validate *validator.Validate) ValidationOption {
	return func(b *ValidationBehavior) {
		if validate != nil {
			b.validate = validate
		}
	}
}

// NewValidationBehavior creates a validation behavior with a dedicated
// validator instance
func NewValidationBehavior(options ...ValidationOption) *ValidationBehavior {
	b := &ValidationBehavior{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	for _, opt := range options {
		opt(b)
	}

	return b
}

// Handle implements mediator.PipelineBehavior
func (b *ValidationBehavior) Handle(ctx context.Context, request contracts.Request, next mediator.Next) (any, error) {
	if err := b.validate.StructCtx(ctx, request); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			// Not a struct; nothing to validate.
			return next(ctx)
		}
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return next(ctx)
}

// Name implements mediator.PipelineBehavior
func (b *ValidationBehavior) Name() string {
	return "ValidationBehavior"
}
