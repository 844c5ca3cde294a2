// Copyright 2025 Mediate Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mediate provides an in-process mediator: requests are routed to
// exactly one handler through an ordered behavior pipeline and return a typed
// response, notifications fan out to zero or more handlers.
package mediate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/glimte/mediate-go/contracts"
	"github.com/glimte/mediate-go/mediator"
)

// Client provides the main entry point for mediate-go
type Client struct {
	registry   *mediator.Registry
	dispatcher *mediator.Dispatcher
}

// NewClient creates a new client with its own registry and dispatcher
func NewClient(options ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		logger:   slog.Default(),
		lifetime: mediator.Transient,
	}

	for _, opt := range options {
		opt(cfg)
	}

	registry := mediator.NewRegistry(
		mediator.WithLifetime(cfg.lifetime),
		mediator.WithRegistryLogger(cfg.logger),
	)

	for _, behavior := range cfg.behaviors {
		if err := registry.RegisterBehavior(behavior); err != nil {
			return nil, fmt.Errorf("failed to register behavior: %w", err)
		}
	}

	dispatcher := mediator.NewDispatcher(
		registry,
		mediator.WithDispatcherLogger(cfg.logger),
	)

	return &Client{
		registry:   registry,
		dispatcher: dispatcher,
	}, nil
}

// Registry returns the handler registry
func (c *Client) Registry() *mediator.Registry {
	return c.registry
}

// Dispatcher returns the dispatcher
func (c *Client) Dispatcher() *mediator.Dispatcher {
	return c.dispatcher
}

// Publish fans a notification out to its registered handlers
func (c *Client) Publish(ctx context.Context, notification contracts.Notification) error {
	return c.dispatcher.Publish(ctx, notification)
}

// Send dispatches a request through the client's dispatcher and returns the
// typed response
func Send[TResponse any](ctx context.Context, c *Client, request contracts.Request) (TResponse, error) {
	return mediator.Send[TResponse](ctx, c.dispatcher, request)
}

// clientConfig holds client configuration
type clientConfig struct {
	logger    *slog.Logger
	lifetime  mediator.Lifetime
	behaviors []mediator.PipelineBehavior
}

// ClientOption configures the client
type ClientOption func(*clientConfig)

// WithLogger sets the logger for all components
func WithLogger(logger *slog.Logger) ClientOption {
	return func(cfg *clientConfig) {
		cfg.logger = logger
	}
}

// WithLifetime sets the handler lifetime policy for the client's registry
func WithLifetime(lifetime mediator.Lifetime) ClientOption {
	return func(cfg *clientConfig) {
		cfg.lifetime = lifetime
	}
}

// WithBehaviors registers pipeline behaviors in the given order; the first
// behavior runs outermost
func WithBehaviors(behaviors ...mediator.PipelineBehavior) ClientOption {
	return func(cfg *clientConfig) {
		cfg.behaviors = append(cfg.behaviors, behaviors...)
	}
}
