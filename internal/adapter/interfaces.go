// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the remote
// systems the presence client talks to.
//
// [CredentialAdapter] reads the session secret from a plain-text HTTP
// endpoint; [Gateway] is the real-time presence gateway the session is
// authenticated against. The package ships a resty implementation of the
// former ([NewHTTPCredentialAdapter]) and a discordgo implementation of the
// latter ([NewDiscordGateway]).
//
// Error values defined in errors.go are wrapped by the implementations so that
// callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrCredentialFetch] for non-2xx responses).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-presence-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CredentialAdapter resolves the session credential from its remote source.
type CredentialAdapter interface {
	// Fetch performs one read of the credential endpoint. It never retries.
	// Returns an error wrapping [ErrCredentialFetch] on transport failure or
	// non-2xx status (the message carries "HTTP <code>"), and
	// [ErrEmptyCredential] when the trimmed body is empty.
	Fetch(ctx context.Context) (models.Credential, error)

	// Close releases idle connections held by the adapter.
	Close() error
}

// Gateway is the real-time connection a session is authenticated on.
// Implementations wrap a platform SDK and translate its types to models.
type Gateway interface {
	// Open performs the authentication handshake and blocks until the gateway
	// reports the account as ready, the handshake fails, or ctx is done.
	// hooks receive asynchronous errors and the disconnect signal afterwards.
	Open(ctx context.Context, hooks models.GatewayHooks) (models.User, error)

	// UpdateActivity replaces the account's current activity.
	UpdateActivity(ctx context.Context, activity models.PresenceSnapshot) error

	// UpdateStatus replaces the account's presence status.
	UpdateStatus(ctx context.Context, status models.StatusType) error

	// Close tears the connection down. It is safe to call on a gateway that
	// was never opened.
	Close() error
}

// GatewayFactory builds a [Gateway] bound to cred.
type GatewayFactory func(cred models.Credential) (Gateway, error)
