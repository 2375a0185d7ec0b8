// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-presence-keeper/internal/adapter"
	"github.com/MKhiriev/go-presence-keeper/internal/logger"
	"github.com/MKhiriev/go-presence-keeper/internal/utils"
	"github.com/MKhiriev/go-presence-keeper/models"
)

// eventBuffer is the capacity of the events channel. Events beyond it are
// dropped while nobody reads.
const eventBuffer = 16

// Session is one authenticated gateway connection.
type Session struct {
	id      string
	gateway adapter.Gateway

	state atomic.Int32
	user  models.User

	ready     chan struct{}
	readyOnce sync.Once

	events chan Event

	done      chan struct{}
	closeOnce sync.Once
	closeErr  error

	logger *logger.Logger
}

func newSession(log *logger.Logger) *Session {
	id := utils.NewTraceID()
	return &Session{
		id:     id,
		ready:  make(chan struct{}),
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
		logger: log.WithStr("session_id", id),
	}
}

// ID returns the session identifier used in log fields.
func (s *Session) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// User returns the authenticated account. It is the zero User until Ready
// is closed.
func (s *Session) User() models.User {
	select {
	case <-s.ready:
		return s.user
	default:
		return models.User{}
	}
}

// Ready is closed once the session has authenticated.
func (s *Session) Ready() <-chan struct{} {
	return s.ready
}

// Events delivers asynchronous session signals. The channel is never closed;
// use Done to stop reading.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Done is closed by Close.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// SetActivity replaces the account activity.
func (s *Session) SetActivity(ctx context.Context, activity models.PresenceSnapshot) error {
	if s.State() != StateReady {
		return fmt.Errorf("set activity: %w (state %s)", ErrNotReady, s.State())
	}
	if err := s.gateway.UpdateActivity(ctx, activity); err != nil {
		return fmt.Errorf("set activity: %w", err)
	}
	return nil
}

// SetStatus replaces the account presence status.
func (s *Session) SetStatus(ctx context.Context, status models.StatusType) error {
	if s.State() != StateReady {
		return fmt.Errorf("set status: %w (state %s)", ErrNotReady, s.State())
	}
	if err := s.gateway.UpdateStatus(ctx, status); err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}

// Close tears the gateway down and moves the session to
// [StateDisconnected]. Subsequent calls return the first call's result.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.state.Store(int32(StateDisconnected))
		close(s.done)
		if s.gateway != nil {
			s.closeErr = s.gateway.Close()
		}
		s.logger.Debug().Err(s.closeErr).Msg("session closed")
	})
	return s.closeErr
}

// markReady reports false when the session left StateAuthenticating before
// the handshake completed.
func (s *Session) markReady(user models.User) bool {
	ok := false
	s.readyOnce.Do(func() {
		s.user = user
		if s.state.CompareAndSwap(int32(StateAuthenticating), int32(StateReady)) {
			close(s.ready)
			ok = true
		}
	})
	return ok
}

func (s *Session) hooks() models.GatewayHooks {
	return models.GatewayHooks{
		OnError:      s.onError,
		OnDisconnect: s.onDisconnect,
	}
}

func (s *Session) onError(err error) {
	if err == nil || s.closed() {
		return
	}
	s.emit(Event{Kind: EventError, Err: err})
}

func (s *Session) onDisconnect() {
	if s.closed() {
		return
	}
	if s.state.CompareAndSwap(int32(StateReady), int32(StateDisconnected)) {
		s.emit(Event{Kind: EventDisconnected})
	}
}

func (s *Session) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Session) emit(e Event) {
	select {
	case s.events <- e:
	default:
		s.logger.Debug().Stringer("kind", e.Kind).Err(e.Err).Msg("session event dropped")
	}
}
