package mediator

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/glimte/mediate-go/contracts"
)

// Lifetime governs how handler instances are reused across dispatches
type Lifetime int

const (
	// Singleton resolves one handler instance per binding and reuses it for
	// the process lifetime
	Singleton Lifetime = iota

	// Scoped resolves a fresh handler instance per dispatch. Scope boundaries
	// are owned by the host environment, so the dispatcher cannot distinguish
	// Scoped from Transient and treats both identically.
	Scoped

	// Transient resolves a fresh handler instance per dispatch
	Transient
)

// String returns the lifetime name
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Scoped:
		return "scoped"
	case Transient:
		return "transient"
	default:
		return fmt.Sprintf("lifetime(%d)", int(l))
	}
}

// requestBinding associates a request type with its handler factory and the
// type-erased invoker captured at registration, where the static request and
// response types are known
type requestBinding struct {
	requestType reflect.Type
	handlerName string
	factory     func() any
	invoke      func(ctx context.Context, handler any, request any) (any, error)
}

// notificationBinding associates a notification type with one handler factory
type notificationBinding struct {
	notificationType reflect.Type
	handlerName      string
	factory          func() any
	invoke           func(ctx context.Context, handler any, notification any) error
	instance         atomic.Value
}

// resolveHandler returns the handler instance for this binding, reusing one
// instance under singleton lifetime and re-resolving otherwise
func (b *notificationBinding) resolveHandler(lifetime Lifetime) (any, error) {
	if lifetime == Singleton {
		if h := b.instance.Load(); h != nil {
			return h, nil
		}
		h := b.factory()
		if h == nil {
			return nil, fmt.Errorf("handler factory returned nil for notification type: %s", b.notificationType)
		}
		// Concurrent publishes may race to resolve; the first stored instance
		// wins and later resolutions are discarded.
		b.instance.CompareAndSwap(nil, h)
		return b.instance.Load(), nil
	}

	h := b.factory()
	if h == nil {
		return nil, fmt.Errorf("handler factory returned nil for notification type: %s", b.notificationType)
	}
	return h, nil
}

// Registry stores handler bindings and the ordered pipeline behavior list.
// It is the resolve-by-type surface the Dispatcher consumes: exactly one
// request binding per concrete request type, zero or more notification
// bindings per concrete notification type, and behaviors applied to every
// request in registration order.
type Registry struct {
	mu            sync.RWMutex
	requests      map[reflect.Type]*requestBinding
	notifications map[reflect.Type][]*notificationBinding
	behaviors     []PipelineBehavior
	lifetime      Lifetime
	logger        *slog.Logger
}

// RegistryOption configures the Registry
type RegistryOption func(*Registry)

// WithLifetime sets the handler lifetime policy for the whole registry.
// The policy is fixed at construction time.
func WithLifetime(lifetime Lifetime) RegistryOption {
	return func(r *Registry) {
		r.lifetime = lifetime
	}
}

// WithRegistryLogger sets the logger
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates a new registry with transient lifetime by default
func NewRegistry(options ...RegistryOption) *Registry {
	r := &Registry{
		requests:      make(map[reflect.Type]*requestBinding),
		notifications: make(map[reflect.Type][]*notificationBinding),
		lifetime:      Transient,
		logger:        slog.Default(),
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// Lifetime returns the registry's handler lifetime policy
func (r *Registry) Lifetime() Lifetime {
	return r.lifetime
}

// RegisterRequestHandler registers a handler factory for the concrete request
// type TRequest. Exactly one handler may be registered per request type; a
// second registration fails with DuplicateHandlerError.
func RegisterRequestHandler[TRequest contracts.Request, TResponse any](r *Registry, factory func() RequestHandler[TRequest, TResponse]) error {
	if r == nil {
		return fmt.Errorf("registry cannot be nil")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	requestType := typeOf[TRequest]()
	handlerType := reflect.TypeOf((*RequestHandler[TRequest, TResponse])(nil)).Elem()

	binding := &requestBinding{
		requestType: requestType,
		handlerName: handlerType.String(),
		factory: func() any {
			return factory()
		},
		invoke: func(ctx context.Context, handler any, request any) (any, error) {
			return handler.(RequestHandler[TRequest, TResponse]).Handle(ctx, request.(TRequest))
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.requests[requestType]; exists {
		return &DuplicateHandlerError{
			RequestType: requestType.String(),
			Existing:    existing.handlerName,
		}
	}

	r.requests[requestType] = binding

	r.logger.Info("registered request handler",
		"requestType", requestType.String(),
		"handler", binding.handlerName,
		"lifetime", r.lifetime.String(),
	)

	return nil
}

// RegisterRequestHandlerFunc registers a function as a request handler
func RegisterRequestHandlerFunc[TRequest contracts.Request, TResponse any](r *Registry, fn func(ctx context.Context, request TRequest) (TResponse, error)) error {
	if fn == nil {
		return fmt.Errorf("fn cannot be nil")
	}
	handler := RequestHandlerFunc[TRequest, TResponse](fn)
	return RegisterRequestHandler(r, func() RequestHandler[TRequest, TResponse] {
		return handler
	})
}

// RegisterNotificationHandler registers a handler factory for the concrete
// notification type TNotification. Any number of handlers may be registered
// per notification type; they are invoked in registration order.
func RegisterNotificationHandler[TNotification contracts.Notification](r *Registry, factory func() NotificationHandler[TNotification]) error {
	if r == nil {
		return fmt.Errorf("registry cannot be nil")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	notificationType := typeOf[TNotification]()
	handlerType := reflect.TypeOf((*NotificationHandler[TNotification])(nil)).Elem()

	binding := &notificationBinding{
		notificationType: notificationType,
		handlerName:      handlerType.String(),
		factory: func() any {
			return factory()
		},
		invoke: func(ctx context.Context, handler any, notification any) error {
			return handler.(NotificationHandler[TNotification]).Handle(ctx, notification.(TNotification))
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications[notificationType] = append(r.notifications[notificationType], binding)

	r.logger.Info("registered notification handler",
		"notificationType", notificationType.String(),
		"handlerCount", len(r.notifications[notificationType]),
	)

	return nil
}

// RegisterNotificationHandlerFunc registers a function as a notification handler
func RegisterNotificationHandlerFunc[TNotification contracts.Notification](r *Registry, fn func(ctx context.Context, notification TNotification) error) error {
	if fn == nil {
		return fmt.Errorf("fn cannot be nil")
	}
	handler := NotificationHandlerFunc[TNotification](fn)
	return RegisterNotificationHandler(r, func() NotificationHandler[TNotification] {
		return handler
	})
}

// RegisterBehavior appends a pipeline behavior to the registry. Registration
// order is wrap order: the first registered behavior runs outermost.
func (r *Registry) RegisterBehavior(behavior PipelineBehavior) error {
	if behavior == nil {
		return fmt.Errorf("behavior cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.behaviors = append(r.behaviors, behavior)

	r.logger.Info("registered pipeline behavior",
		"behavior", behavior.Name(),
		"position", len(r.behaviors),
	)

	return nil
}

// RegisteredRequestTypes returns the names of all request types that have a handler
func (r *Registry) RegisteredRequestTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.requests))
	for requestType := range r.requests {
		types = append(types, requestType.String())
	}
	return types
}

// requestBindingFor returns the binding for a concrete request type
func (r *Registry) requestBindingFor(requestType reflect.Type) (*requestBinding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	binding, exists := r.requests[requestType]
	return binding, exists
}

// notificationBindingsFor returns a copy of the ordered bindings for a
// concrete notification type
func (r *Registry) notificationBindingsFor(notificationType reflect.Type) []*notificationBinding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bindings, exists := r.notifications[notificationType]
	if !exists {
		return nil
	}

	result := make([]*notificationBinding, len(bindings))
	copy(result, bindings)
	return result
}

// behaviorSnapshot returns a copy of the ordered behavior list
func (r *Registry) behaviorSnapshot() []PipelineBehavior {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.behaviors) == 0 {
		return nil
	}

	result := make([]PipelineBehavior, len(r.behaviors))
	copy(result, r.behaviors)
	return result
}

// typeOf returns the reflect.Type for a type parameter
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
