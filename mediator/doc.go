// Package mediator implements the in-process dispatch engine.
//
// A Dispatcher routes a request to the single handler registered for the
// request's concrete type, runs it through an ordered chain of pipeline
// behaviors, and returns a typed response. Notifications fan out to zero or
// more handlers, invoked sequentially. This package provides:
//   - Registry: typed handler and behavior registration with a lifetime policy
//   - Dispatcher: the Send and Publish entry points
//   - Per-request-type dispatch caching for repeated sends
//
// Example usage:
//
//	registry := mediator.NewRegistry(mediator.WithLifetime(mediator.Singleton))
//
//	err := mediator.RegisterRequestHandler(registry, func() mediator.RequestHandler[*GetOrder, *Order] {
//		return &getOrderHandler{store: store}
//	})
//
//	dispatcher := mediator.NewDispatcher(registry)
//	order, err := mediator.Send[*Order](ctx, dispatcher, &GetOrder{OrderID: "42"})
//
// Behaviors wrap handler invocation in registration order, with the first
// registered behavior outermost. A behavior may short-circuit the chain by
// returning without calling next, or transform the result after next returns:
//
//	registry.RegisterBehavior(mediator.NewPipelineBehaviorFunc("audit",
//		func(ctx context.Context, request contracts.Request, next mediator.Next) (any, error) {
//			audit.Record(request)
//			return next(ctx)
//		}))
//
// Send is a package function rather than a method because Go methods cannot
// declare type parameters. Cancellation is cooperative: the context is threaded
// to every handler and behavior, and the dispatcher itself never checks it.
package mediator
