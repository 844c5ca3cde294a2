package behaviors

import (
	"context"

	"github.com/glimte/mediate-go/contracts"
	"github.com/glimte/mediate-go/mediator"
)

// ShortCircuitEvaluator decides whether the rest of the pipeline should be
// skipped for a request
type ShortCircuitEvaluator interface {
	// ShouldShortCircuit returns true when the handler and any inner
	// behaviors should not run, together with the result to return in place
	// of the handler's response.
	ShouldShortCircuit(ctx context.Context, request contracts.Request) (bool, any, error)
}

// ShortCircuitEvaluatorFunc is a function adapter for ShortCircuitEvaluator
type ShortCircuitEvaluatorFunc func(ctx context.Context, request contracts.Request) (bool, any, error)

// ShouldShortCircuit implements ShortCircuitEvaluator
func (f ShortCircuitEvaluatorFunc) ShouldShortCircuit(ctx context.Context, request contracts.Request) (bool, any, error) {
	return f(ctx, request)
}

// ShortCircuitBehavior skips the rest of the pipeline based on conditions,
// returning the evaluator's result as the dispatch result
type ShortCircuitBehavior struct {
	evaluator ShortCircuitEvaluator
}

// NewShortCircuitBehavior creates a new short-circuit behavior
func NewShortCircuitBehavior(evaluator ShortCircuitEvaluator) *ShortCircuitBehavior {
	return &ShortCircuitBehavior{evaluator: evaluator}
}

// Handle implements mediator.PipelineBehavior
func (b *ShortCircuitBehavior) Handle(ctx context.Context, request contracts.Request, next mediator.Next) (any, error) {
	shouldShortCircuit, result, err := b.evaluator.ShouldShortCircuit(ctx, request)
	if err != nil {
		return nil, err
	}

	if shouldShortCircuit {
		return result, nil
	}

	return next(ctx)
}

// Name implements mediator.PipelineBehavior
func (b *ShortCircuitBehavior) Name() string {
	return "ShortCircuitBehavior"
}
