package mediator

import (
	"errors"
	"fmt"
)

// ErrNilRequest is returned when Send is called with a nil request
var ErrNilRequest = errors.New("request cannot be nil")

// ErrNilNotification is returned when Publish is called with a nil notification
var ErrNilNotification = errors.New("notification cannot be nil")

// HandlerNotFoundError indicates no handler is registered for a request type
type HandlerNotFoundError struct {
	RequestType string
}

// Error implements the error interface
func (e *HandlerNotFoundError) Error() string {
	return fmt.Sprintf("no handler registered for request type: %s", e.RequestType)
}

// DuplicateHandlerError indicates a second handler registration for a request
// type that already has one. Exactly one handler may be registered per
// concrete request type.
type DuplicateHandlerError struct {
	RequestType string
	Existing    string
}

// Error implements the error interface
func (e *DuplicateHandlerError) Error() string {
	return fmt.Sprintf("handler already registered for request type %s: %s", e.RequestType, e.Existing)
}

// InvalidResponseError indicates the response produced by the registered
// handler does not match the response type requested at the Send call site
type InvalidResponseError struct {
	RequestType string
	Expected    string
	Actual      string
}

// Error implements the error interface
func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("handler for %s produced response of type %s, caller expected %s", e.RequestType, e.Actual, e.Expected)
}
