package behaviors

import (
	"context"
	"fmt"
	"time"

	"github.com/glimte/mediate-go/contracts"
	"github.com/glimte/mediate-go/mediator"
)

// TimeoutBehavior bounds request handling with a per-dispatch timeout.
// The rest of the pipeline runs on its own goroutine; when the deadline
// expires first, that goroutine is abandoned and keeps the cancelled context.
type TimeoutBehavior struct {
	timeout time.Duration
}

// NewTimeoutBehavior creates a new timeout behavior
func NewTimeoutBehavior(timeout time.Duration) *TimeoutBehavior {
	return &TimeoutBehavior{timeout: timeout}
}

// Handle implements mediator.PipelineBehavior
func (b *TimeoutBehavior) Handle(ctx context.Context, request contracts.Request, next mediator.Next) (any, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	type outcome struct {
		result any
		err    error
	}

	done := make(chan outcome, 1)
	go func() {
		result, err := next(timeoutCtx)
		done <- outcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		return out.result, out.err
	case <-timeoutCtx.Done():
		return nil, fmt.Errorf("request handling timeout after %v for request %s", b.timeout, request.GetID())
	}
}

// Name implements mediator.PipelineBehavior
func (b *TimeoutBehavior) Name() string {
	return "TimeoutBehavior"
}
