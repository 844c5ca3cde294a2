package mediator

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// cacheEntry holds the routing metadata memoized for one request type: the
// binding with its invoker thunk, the behavior list captured when the entry
// was built, and the lazily resolved singleton handler instance. Entries are
// immutable after construction except for the singleton slot.
type cacheEntry struct {
	binding   *requestBinding
	behaviors []PipelineBehavior
	instance  atomic.Value
}

// resolveHandler returns the handler instance for this entry, reusing one
// instance under singleton lifetime and re-resolving otherwise
func (e *cacheEntry) resolveHandler(lifetime Lifetime) (any, error) {
	if lifetime == Singleton {
		if h := e.instance.Load(); h != nil {
			return h, nil
		}
		h := e.binding.factory()
		if h == nil {
			return nil, &HandlerNotFoundError{RequestType: e.binding.requestType.String()}
		}
		// Concurrent dispatches may race to resolve; the first stored
		// instance wins and later resolutions are discarded. Instances
		// resolved the same way are interchangeable.
		e.instance.CompareAndSwap(nil, h)
		return e.instance.Load(), nil
	}

	h := e.binding.factory()
	if h == nil {
		return nil, &HandlerNotFoundError{RequestType: e.binding.requestType.String()}
	}
	return h, nil
}

// dispatchCache memoizes per-request-type routing metadata across dispatches.
// Entries are inserted with load-or-store semantics: concurrent first
// dispatches of the same type may each build an entry, exactly one survives
// and is shared, and redundant builds are discarded. Building is idempotent,
// so no single-flight barrier is needed. Entries live for the process
// lifetime; the map is bounded by the number of distinct request types.
type dispatchCache struct {
	entries sync.Map // reflect.Type -> *cacheEntry
}

// entryFor returns the cache entry for a request type, building it on first
// dispatch. A missing binding is not cached, since a handler may legally be
// registered before the next dispatch.
func (c *dispatchCache) entryFor(requestType reflect.Type, registry *Registry) (*cacheEntry, error) {
	if cached, ok := c.entries.Load(requestType); ok {
		return cached.(*cacheEntry), nil
	}

	binding, exists := registry.requestBindingFor(requestType)
	if !exists {
		return nil, &HandlerNotFoundError{RequestType: requestType.String()}
	}

	entry := &cacheEntry{
		binding:   binding,
		behaviors: registry.behaviorSnapshot(),
	}

	actual, _ := c.entries.LoadOrStore(requestType, entry)
	return actual.(*cacheEntry), nil
}
