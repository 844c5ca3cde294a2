package mediator

import (
	"context"

	"github.com/glimte/mediate-go/contracts"
)

// RequestHandler processes a specific request type and produces its response
type RequestHandler[TRequest contracts.Request, TResponse any] interface {
	Handle(ctx context.Context, request TRequest) (TResponse, error)
}

// RequestHandlerFunc is a function adapter for RequestHandler
type RequestHandlerFunc[TRequest contracts.Request, TResponse any] func(ctx context.Context, request TRequest) (TResponse, error)

// Handle implements RequestHandler
func (f RequestHandlerFunc[TRequest, TResponse]) Handle(ctx context.Context, request TRequest) (TResponse, error) {
	return f(ctx, request)
}

// NotificationHandler processes a specific notification type
type NotificationHandler[TNotification contracts.Notification] interface {
	Handle(ctx context.Context, notification TNotification) error
}

// NotificationHandlerFunc is a function adapter for NotificationHandler
type NotificationHandlerFunc[TNotification contracts.Notification] func(ctx context.Context, notification TNotification) error

// Handle implements NotificationHandler
func (f NotificationHandlerFunc[TNotification]) Handle(ctx context.Context, notification TNotification) error {
	return f(ctx, notification)
}

// Next invokes the remainder of the pipeline and returns the handler's response
type Next func(ctx context.Context) (any, error)

// PipelineBehavior wraps request handling with cross-cutting logic.
// Behaviors execute in registration order on the way in and reverse order on
// the way out. A behavior may run logic before and after calling next, skip
// next entirely to short-circuit the handler, or rewrite the result after next
// returns.
type PipelineBehavior interface {
	// Handle processes a request and calls next to run the rest of the pipeline
	Handle(ctx context.Context, request contracts.Request, next Next) (any, error)

	// Name returns the behavior name for logging and debugging
	Name() string
}

// PipelineBehaviorFunc is a function adapter for PipelineBehavior
type PipelineBehaviorFunc struct {
	name string
	fn   func(ctx context.Context, request contracts.Request, next Next) (any, error)
}

// NewPipelineBehaviorFunc creates a new function-based pipeline behavior
func NewPipelineBehaviorFunc(name string, fn func(ctx context.Context, request contracts.Request, next Next) (any, error)) *PipelineBehaviorFunc {
	return &PipelineBehaviorFunc{name: name, fn: fn}
}

// Handle implements PipelineBehavior
func (b *PipelineBehaviorFunc) Handle(ctx context.Context, request contracts.Request, next Next) (any, error) {
	return b.fn(ctx, request, next)
}

// Name implements PipelineBehavior
func (b *PipelineBehaviorFunc) Name() string {
	return b.name
}
