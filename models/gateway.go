// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GatewayHooks are the callbacks a gateway invokes for asynchronous
// lifecycle signals after the connection was opened. Both callbacks may be
// invoked from SDK goroutines and must not block.
type GatewayHooks struct {
	// OnError receives non-terminal transport errors.
	OnError func(err error)

	// OnDisconnect is invoked when the transport closed the connection.
	OnDisconnect func()
}
