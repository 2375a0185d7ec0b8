// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the authenticated gateway connection.
//
// A [Client] turns a credential into a [Session] by opening a gateway and
// waiting for it to report the account as ready. The session moves through
//
//	Disconnected → Authenticating → Ready → Disconnected
//	                      ↘ Errored
//
// and exposes the transitions as signals: [Session.Ready] is closed exactly
// once on authentication and [Session.Events] carries non-terminal errors
// and the transport-closed notification. The session never reconnects on its
// own.
package session
