package contracts

import (
	"time"
)

// Message is the base interface for all dispatched values
type Message interface {
	GetID() string
	GetTimestamp() time.Time
	GetType() string
	GetCorrelationID() string
	SetCorrelationID(correlationID string)
}

// Request is a message dispatched to exactly one handler, producing a typed
// response. The handler is selected by the request's concrete (runtime) type,
// so requests must be registered and sent as the same concrete type.
type Request interface {
	Message
}

// Notification is a message dispatched to zero or more independent handlers,
// producing no response. Zero registered handlers is valid.
type Notification interface {
	Message
}

// Unit is the response type of fire-and-forget requests that produce no
// meaningful value.
type Unit struct{}
