// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrCredentialFetch is returned when the credential endpoint cannot be
	// reached or answers with a non-2xx status.
	ErrCredentialFetch = errors.New("credential fetch failed")

	// ErrEmptyCredential is returned when the endpoint answered 2xx with a
	// body that is empty after trimming whitespace.
	ErrEmptyCredential = errors.New("empty credential received")

	// ErrUnauthorized is wrapped together with ErrCredentialFetch for 401 and
	// 403 responses.
	ErrUnauthorized = errors.New("credential endpoint refused access")

	// ErrNotFound is wrapped together with ErrCredentialFetch for 404
	// responses.
	ErrNotFound = errors.New("credential endpoint not found")

	// ErrInvalidCredentialURL is returned by the constructor for unusable URLs.
	ErrInvalidCredentialURL = errors.New("invalid credential url")

	// ErrGatewayOpen is returned when the gateway handshake fails.
	ErrGatewayOpen = errors.New("gateway handshake failed")
)
