package behaviors

import (
	"context"

	"github.com/glimte/mediate-go/contracts"
	"github.com/glimte/mediate-go/mediator"
)

// Test request types shared across behavior tests

type searchRequest struct {
	contracts.BaseRequest
	Query string `validate:"required"`
	Limit int    `validate:"gte=0,lte=100"`
}

func newSearchRequest(query string, limit int) *searchRequest {
	return &searchRequest{
		BaseRequest: contracts.NewBaseRequest("SearchRequest"),
		Query:       query,
		Limit:       limit,
	}
}

// nextReturning builds a continuation with a canned outcome and records
// whether it was invoked
func nextReturning(result any, err error, invoked *bool) mediator.Next {
	return func(ctx context.Context) (any, error) {
		if invoked != nil {
			*invoked = true
		}
		return result, err
	}
}
