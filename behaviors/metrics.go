package behaviors

import (
	"context"
	"time"

	"github.com/glimte/mediate-go/contracts"
	"github.com/glimte/mediate-go/mediator"
)

// MetricsCollector defines the interface for collecting request metrics
type MetricsCollector interface {
	IncrementRequestCount(requestType string)
	RecordHandlingTime(requestType string, duration time.Duration)
	IncrementErrorCount(requestType string, errorType string)
}

// MetricsBehavior collects metrics about request handling
type MetricsBehavior struct {
	collector MetricsCollector
}

// NewMetricsBehavior creates a new metrics behavior
func NewMetricsBehavior(collector MetricsCollector) *MetricsBehavior {
	return &MetricsBehavior{collector: collector}
}

// Handle implements mediator.PipelineBehavior
func (b *MetricsBehavior) Handle(ctx context.Context, request contracts.Request, next mediator.Next) (any, error) {
	start := time.Now()
	requestType := request.GetType()

	b.collector.IncrementRequestCount(requestType)

	result, err := next(ctx)
	duration := time.Since(start)

	b.collector.RecordHandlingTime(requestType, duration)

	if err != nil {
		b.collector.IncrementErrorCount(requestType, "handling_error")
	}

	return result, err
}

// Name implements mediator.PipelineBehavior
func (b *MetricsBehavior) Name() string {
	return "MetricsBehavior"
}
