package behaviors

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingBehavior(t *testing.T) {
	t.Run("passes the result and error through", func(t *testing.T) {
		behavior := NewLoggingBehavior(nil)
		var invoked bool

		result, err := behavior.Handle(context.Background(), newSearchRequest("orders", 1), nextReturning("done", nil, &invoked))

		assert.NoError(t, err)
		assert.Equal(t, "done", result)
		assert.True(t, invoked)
	})

	t.Run("logs failures with the error", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		behavior := NewLoggingBehavior(logger)
		handlerErr := errors.New("storage offline")

		_, err := behavior.Handle(context.Background(), newSearchRequest("orders", 1), nextReturning(nil, handlerErr, nil))

		assert.ErrorIs(t, err, handlerErr)
		assert.Contains(t, buf.String(), "request handling failed")
		assert.Contains(t, buf.String(), "storage offline")
	})

	t.Run("logs successes with timing", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		behavior := NewLoggingBehavior(logger)

		_, err := behavior.Handle(context.Background(), newSearchRequest("orders", 1), nextReturning("done", nil, nil))

		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "request handled")
		assert.Contains(t, buf.String(), "duration")
	})

	t.Run("Name identifies the behavior", func(t *testing.T) {
		assert.Equal(t, "LoggingBehavior", NewLoggingBehavior(nil).Name())
	})
}
