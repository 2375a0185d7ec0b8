// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-presence-keeper/internal/adapter"
	"github.com/MKhiriev/go-presence-keeper/internal/logger"
	"github.com/MKhiriev/go-presence-keeper/models"
)

// Client opens sessions through a gateway factory.
type Client struct {
	factory        adapter.GatewayFactory
	connectTimeout time.Duration

	logger *logger.Logger
}

// NewClient returns a Client building gateways with factory. A positive
// connectTimeout bounds the handshake; zero waits until ready, failure or
// cancellation.
func NewClient(factory adapter.GatewayFactory, connectTimeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		factory:        factory,
		connectTimeout: connectTimeout,
		logger:         log,
	}
}

// Connect authenticates a new session with cred and blocks until it is ready.
//
// The session is returned even when an error is: its state is then
// [StateErrored] and the caller still owns its Close. The error wraps
// [ErrAuthentication] and, on cancellation or timeout, the context error.
func (c *Client) Connect(ctx context.Context, cred models.Credential) (*Session, error) {
	s := newSession(c.logger)

	gw, err := c.factory(cred)
	if err != nil {
		s.state.Store(int32(StateErrored))
		return s, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	s.gateway = gw
	s.state.Store(int32(StateAuthenticating))
	s.logger.Debug().Msg("gateway handshake started")

	openCtx := ctx
	if c.connectTimeout > 0 {
		var cancel context.CancelFunc
		openCtx, cancel = context.WithTimeout(ctx, c.connectTimeout)
		defer cancel()
	}

	user, err := gw.Open(openCtx, s.hooks())
	if err != nil {
		s.state.CompareAndSwap(int32(StateAuthenticating), int32(StateErrored))
		return s, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	if !s.markReady(user) {
		return s, fmt.Errorf("%w: session closed during handshake", ErrAuthentication)
	}
	s.logger.Debug().Str("user_id", user.ID).Msg("gateway ready")
	return s, nil
}
