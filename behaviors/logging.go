package behaviors

import (
	"context"
	"log/slog"
	"time"

	"github.com/glimte/mediate-go/contracts"
	"github.com/glimte/mediate-go/mediator"
)

// LoggingBehavior logs request handling with timing information
type LoggingBehavior struct {
	logger *slog.Logger
}

// NewLoggingBehavior creates a new logging behavior
func NewLoggingBehavior(logger *slog.Logger) *LoggingBehavior {
	if logger == nil {
		logger = slog.Default()
	}

	return &LoggingBehavior{logger: logger}
}

// Handle implements mediator.PipelineBehavior
func (b *LoggingBehavior) Handle(ctx context.Context, request contracts.Request, next mediator.Next) (any, error) {
	start := time.Now()

	b.logger.Info("handling request",
		"requestId", request.GetID(),
		"requestType", request.GetType(),
		"correlationId", request.GetCorrelationID(),
	)

	result, err := next(ctx)
	duration := time.Since(start)

	if err != nil {
		b.logger.Error("request handling failed",
			"requestId", request.GetID(),
			"requestType", request.GetType(),
			"duration", duration,
			"error", err,
		)
	} else {
		b.logger.Info("request handled",
			"requestId", request.GetID(),
			"requestType", request.GetType(),
			"duration", duration,
		)
	}

	return result, err
}

// Name implements mediator.PipelineBehavior
func (b *LoggingBehavior) Name() string {
	return "LoggingBehavior"
}
