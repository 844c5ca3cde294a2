package contracts

import (
	"time"

	"github.com/google/uuid"
)

// BaseMessage provides common fields for all message types
type BaseMessage struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Type          string    `json:"type"`
	CorrelationID string    `json:"correlationId,omitempty"`
}

// NewBaseMessage creates a new base message with generated ID and current timestamp
func NewBaseMessage(messageType string) BaseMessage {
	return BaseMessage{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Type:      messageType,
	}
}

// GetID returns the message ID
func (m BaseMessage) GetID() string {
	return m.ID
}

// GetTimestamp returns the message timestamp
func (m BaseMessage) GetTimestamp() time.Time {
	return m.Timestamp
}

// GetType returns the message type
func (m BaseMessage) GetType() string {
	return m.Type
}

// GetCorrelationID returns the correlation ID
func (m BaseMessage) GetCorrelationID() string {
	return m.CorrelationID
}

// SetCorrelationID sets the correlation ID
func (m *BaseMessage) SetCorrelationID(correlationID string) {
	m.CorrelationID = correlationID
}

// BaseRequest provides common fields for request messages
type BaseRequest struct {
	BaseMessage
}

// NewBaseRequest creates a new request base with generated ID and current timestamp
func NewBaseRequest(requestType string) BaseRequest {
	return BaseRequest{
		BaseMessage: NewBaseMessage(requestType),
	}
}

// BaseNotification provides common fields for notification messages
type BaseNotification struct {
	BaseMessage
}

// NewBaseNotification creates a new notification base with generated ID and current timestamp
func NewBaseNotification(notificationType string) BaseNotification {
	return BaseNotification{
		BaseMessage: NewBaseMessage(notificationType),
	}
}
