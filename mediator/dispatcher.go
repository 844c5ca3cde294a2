package mediator

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/glimte/mediate-go/contracts"
)

// Dispatcher routes requests to their registered handlers and fans
// notifications out to theirs. Dispatchers are safe for concurrent use.
type Dispatcher struct {
	registry *Registry
	cache    dispatchCache
	logger   *slog.Logger
}

// DispatcherOption configures the Dispatcher
type DispatcherOption func(*Dispatcher)

// WithDispatcherLogger sets the logger
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher creates a dispatcher backed by the given registry
func NewDispatcher(registry *Registry, options ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		logger:   slog.Default(),
	}

	for _, opt := range options {
		opt(d)
	}

	return d
}

// Send dispatches a request to its registered handler, running it through the
// behavior pipeline, and returns the typed response. Errors raised by the
// handler or a behavior propagate unchanged. Send is a package function
// because Go methods cannot declare type parameters.
func Send[TResponse any](ctx context.Context, d *Dispatcher, request contracts.Request) (TResponse, error) {
	var zero TResponse

	result, err := d.send(ctx, request)
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}

	response, ok := result.(TResponse)
	if !ok {
		return zero, &InvalidResponseError{
			RequestType: reflect.TypeOf(request).String(),
			Expected:    typeOf[TResponse]().String(),
			Actual:      reflect.TypeOf(result).String(),
		}
	}
	return response, nil
}

// send runs one dispatch with the response type erased
func (d *Dispatcher) send(ctx context.Context, request contracts.Request) (any, error) {
	if request == nil {
		return nil, ErrNilRequest
	}

	requestType := reflect.TypeOf(request)
	entry, err := d.cache.entryFor(requestType, d.registry)
	if err != nil {
		d.logger.Warn("no handler registered for request type", "requestType", requestType.String())
		return nil, err
	}

	handler, err := entry.resolveHandler(d.registry.Lifetime())
	if err != nil {
		return nil, err
	}

	// Fast path: no behaviors, invoke the handler thunk directly without
	// building a chain.
	if len(entry.behaviors) == 0 {
		result, err := entry.binding.invoke(ctx, handler, request)
		if err == nil {
			d.logger.Debug("request dispatched",
				"requestType", requestType.String(),
				"requestId", request.GetID(),
			)
		}
		return result, err
	}

	// Compose from the last registered behavior inward, so the first
	// registered behavior runs outermost.
	next := Next(func(ctx context.Context) (any, error) {
		return entry.binding.invoke(ctx, handler, request)
	})
	for i := len(entry.behaviors) - 1; i >= 0; i-- {
		behavior := entry.behaviors[i]
		inner := next
		next = func(ctx context.Context) (any, error) {
			return behavior.Handle(ctx, request, inner)
		}
	}

	result, err := next(ctx)
	if err == nil {
		d.logger.Debug("request dispatched",
			"requestType", requestType.String(),
			"requestId", request.GetID(),
			"behaviorCount", len(entry.behaviors),
		)
	}
	return result, err
}

// Publish fans a notification out to every handler registered for its
// concrete type, invoking them sequentially in registration order and
// awaiting each before starting the next. The first handler error aborts the
// remaining handlers and propagates unchanged. Zero registered handlers is
// not an error.
func (d *Dispatcher) Publish(ctx context.Context, notification contracts.Notification) error {
	if notification == nil {
		return ErrNilNotification
	}

	notificationType := reflect.TypeOf(notification)
	bindings := d.registry.notificationBindingsFor(notificationType)
	if len(bindings) == 0 {
		d.logger.Debug("no handlers registered for notification type",
			"notificationType", notificationType.String(),
		)
		return nil
	}

	lifetime := d.registry.Lifetime()
	for _, binding := range bindings {
		handler, err := binding.resolveHandler(lifetime)
		if err != nil {
			return err
		}
		if err := binding.invoke(ctx, handler, notification); err != nil {
			return err
		}
	}

	d.logger.Debug("notification published",
		"notificationType", notificationType.String(),
		"notificationId", notification.GetID(),
		"handlerCount", len(bindings),
	)

	return nil
}
