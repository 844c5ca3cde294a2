package mediator

import (
	"context"
	"errors"
	"testing"

	"github.com/glimte/mediate-go/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBehavior appends markers around the continuation so tests can
// observe nesting order
func recordingBehavior(name string, events *[]string) *PipelineBehaviorFunc {
	return NewPipelineBehaviorFunc(name, func(ctx context.Context, request contracts.Request, next Next) (any, error) {
		*events = append(*events, "Before"+name)
		result, err := next(ctx)
		*events = append(*events, "After"+name)
		return result, err
	})
}

func TestPipeline(t *testing.T) {
	t.Run("behaviors wrap the handler in registration order", func(t *testing.T) {
		registry := NewRegistry()
		var events []string
		require.NoError(t, registry.RegisterBehavior(recordingBehavior("1", &events)))
		require.NoError(t, registry.RegisterBehavior(recordingBehavior("2", &events)))
		require.NoError(t, registry.RegisterBehavior(recordingBehavior("3", &events)))
		require.NoError(t, RegisterRequestHandlerFunc(registry, func(ctx context.Context, req *pingRequest) (string, error) {
			events = append(events, "Handler")
			return "done", nil
		}))
		dispatcher := NewDispatcher(registry)

		result, err := Send[string](context.Background(), dispatcher, &pingRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "done", result)
		assert.Equal(t, []string{"Before1", "Before2", "Before3", "Handler", "After3", "After2", "After1"}, events)
	})

	t.Run("behavior that skips next short-circuits the handler", func(t *testing.T) {
		registry := NewRegistry()
		var handlerRan, innerRan bool
		require.NoError(t, registry.RegisterBehavior(NewPipelineBehaviorFunc("gate", func(ctx context.Context, request contracts.Request, next Next) (any, error) {
			return "short-circuited", nil
		})))
		require.NoError(t, registry.RegisterBehavior(NewPipelineBehaviorFunc("inner", func(ctx context.Context, request contracts.Request, next Next) (any, error) {
			innerRan = true
			return next(ctx)
		})))
		require.NoError(t, RegisterRequestHandlerFunc(registry, func(ctx context.Context, req *pingRequest) (string, error) {
			handlerRan = true
			return "handler response", nil
		}))
		dispatcher := NewDispatcher(registry)

		result, err := Send[string](context.Background(), dispatcher, &pingRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "short-circuited", result)
		assert.False(t, handlerRan)
		assert.False(t, innerRan)
	})

	t.Run("behavior can transform the handler result", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.RegisterBehavior(NewPipelineBehaviorFunc("modifier", func(ctx context.Context, request contracts.Request, next Next) (any, error) {
			result, err := next(ctx)
			if err != nil {
				return nil, err
			}
			return "[Modified] " + result.(string), nil
		})))
		require.NoError(t, RegisterRequestHandlerFunc(registry, func(ctx context.Context, req *pingRequest) (string, error) {
			return "test response", nil
		}))
		dispatcher := NewDispatcher(registry)

		result, err := Send[string](context.Background(), dispatcher, &pingRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "[Modified] test response", result)
	})

	t.Run("behavior error propagates unchanged and stops the chain", func(t *testing.T) {
		registry := NewRegistry()
		behaviorErr := errors.New("not authorized")
		var handlerRan bool
		require.NoError(t, registry.RegisterBehavior(NewPipelineBehaviorFunc("auth", func(ctx context.Context, request contracts.Request, next Next) (any, error) {
			return nil, behaviorErr
		})))
		require.NoError(t, RegisterRequestHandlerFunc(registry, func(ctx context.Context, req *pingRequest) (string, error) {
			handlerRan = true
			return "", nil
		}))
		dispatcher := NewDispatcher(registry)

		_, err := Send[string](context.Background(), dispatcher, &pingRequest{})

		assert.ErrorIs(t, err, behaviorErr)
		assert.False(t, handlerRan)
	})

	t.Run("behavior receives the dispatched request", func(t *testing.T) {
		registry := NewRegistry()
		var seen contracts.Request
		require.NoError(t, registry.RegisterBehavior(NewPipelineBehaviorFunc("capture", func(ctx context.Context, request contracts.Request, next Next) (any, error) {
			seen = request
			return next(ctx)
		})))
		require.NoError(t, RegisterRequestHandlerFunc(registry, func(ctx context.Context, req *pingRequest) (string, error) {
			return "", nil
		}))
		dispatcher := NewDispatcher(registry)

		request := &pingRequest{Value: "observed"}
		_, err := Send[string](context.Background(), dispatcher, request)

		assert.NoError(t, err)
		assert.Same(t, request, seen)
	})
}
