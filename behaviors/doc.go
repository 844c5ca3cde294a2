// Package behaviors provides built-in pipeline behaviors for the mediate
// dispatch engine.
//
// Behaviors add cross-cutting concerns to request handling without touching
// handler code. They wrap the handler in registration order, with the first
// registered behavior outermost. This package provides:
//   - LoggingBehavior: Logs request handling with timing information
//   - MetricsBehavior: Collects metrics about request handling
//   - ValidationBehavior: Validates request struct tags before the handler runs
//   - TimeoutBehavior: Bounds request handling with a per-dispatch timeout
//   - ShortCircuitBehavior: Skips the rest of the pipeline based on conditions
//   - CorrelationBehavior: Assigns correlation IDs to requests that carry none
//
// Example usage:
//
//	registry.RegisterBehavior(behaviors.NewLoggingBehavior(logger))
//	registry.RegisterBehavior(behaviors.NewValidationBehavior())
//	registry.RegisterBehavior(behaviors.NewTimeoutBehavior(30 * time.Second))
//
// Custom behaviors implement mediator.PipelineBehavior:
//
//	type CustomBehavior struct{}
//
//	func (b *CustomBehavior) Handle(ctx context.Context, request contracts.Request, next mediator.Next) (any, error) {
//		// Pre-processing logic
//		result, err := next(ctx)
//		// Post-processing logic
//		return result, err
//	}
//
//	func (b *CustomBehavior) Name() string {
//		return "CustomBehavior"
//	}
package behaviors
