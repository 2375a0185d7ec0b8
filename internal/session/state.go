// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "strconv"

// State is the lifecycle state of a [Session].
type State int32

const (
	// StateDisconnected is the initial state and the state after Close or
	// after the transport dropped the connection.
	StateDisconnected State = iota
	// StateAuthenticating is held while the gateway handshake is running.
	StateAuthenticating
	// StateReady means the account is authenticated and presence updates
	// are accepted.
	StateReady
	// StateErrored means the handshake failed.
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateAuthenticating:
		return "AUTHENTICATING"
	case StateReady:
		return "READY"
	case StateErrored:
		return "ERRORED"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// EventKind distinguishes the asynchronous signals of a session.
type EventKind int

const (
	// EventError carries a non-terminal transport error.
	EventError EventKind = iota + 1
	// EventDisconnected reports that the transport closed the connection.
	EventDisconnected
)

func (k EventKind) String() string {
	switch k {
	case EventError:
		return "error"
	case EventDisconnected:
		return "disconnected"
	default:
		return "EventKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Event is emitted on [Session.Events].
type Event struct {
	Kind EventKind

	// Err is set for EventError.
	Err error
}
