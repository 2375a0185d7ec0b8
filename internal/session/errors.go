// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrAuthentication is returned by [Client.Connect] when the gateway
	// could not be created or the handshake did not reach the ready state.
	ErrAuthentication = errors.New("session authentication failed")

	// ErrNotReady is returned by presence updates on a session that is not
	// in [StateReady].
	ErrNotReady = errors.New("session is not ready")
)
