package behaviors

import (
	"context"

	"github.com/google/uuid"

	"github.com/glimte/mediate-go/contracts"
	"github.com/glimte/mediate-go/mediator"
)

// CorrelationBehavior assigns a generated correlation ID to requests that
// carry none, so downstream handlers and notifications published from them
// can be tied back to the originating dispatch. Requests must be dispatched
// as pointers for the assignment to stick.
type CorrelationBehavior struct{}

// NewCorrelationBehavior creates a new correlation behavior
func NewCorrelationBehavior() *CorrelationBehavior {
	return &CorrelationBehavior{}
}

// Handle implements mediator.PipelineBehavior
func (b *CorrelationBehavior) Handle(ctx context.Context, request contracts.Request, next mediator.Next) (any, error) {
	if request.GetCorrelationID() == "" {
		request.SetCorrelationID(uuid.New().String())
	}

	return next(ctx)
}

// Name implements mediator.PipelineBehavior
func (b *CorrelationBehavior) Name() string {
	return "CorrelationBehavior"
}
