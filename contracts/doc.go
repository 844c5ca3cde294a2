// Package contracts provides the core message types and interfaces for the mediate dispatch engine.
//
// This package defines the contracts for values that flow through the mediator:
//   - Message: Base interface for all dispatched values
//   - Request: A message routed to exactly one handler, producing a typed response
//   - Notification: A message fanned out to zero or more handlers, producing no response
//
// BaseRequest and BaseNotification are embeddable implementations that populate
// a generated ID and timestamp, so application message types only declare their
// own payload fields:
//
//	type CreateOrder struct {
//		contracts.BaseRequest
//		CustomerID string `json:"customerId"`
//		Amount     int64  `json:"amount"`
//	}
//
// Request and Notification carry no behavior of their own; routing is keyed on
// the concrete (runtime) type of the value handed to the dispatcher.
package contracts
