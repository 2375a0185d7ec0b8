// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [GetClientConfig] when required settings are
// missing or invalid.
var (
	// ErrInvalidPresenceConfigs indicates an empty descriptor path or a
	// non-positive update limit.
	ErrInvalidPresenceConfigs = errors.New("invalid presence configuration")
	// ErrInvalidCredentialConfigs indicates a missing or non-HTTP credential
	// URL, or a non-positive request timeout.
	ErrInvalidCredentialConfigs = errors.New("invalid credential configuration")
	// ErrInvalidSessionConfigs indicates a negative connect timeout.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidLogConfigs indicates an unknown log level or format.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
