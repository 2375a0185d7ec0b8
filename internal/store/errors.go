// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrConfigNotFound is returned when the presence descriptor does not
	// exist or cannot be read.
	ErrConfigNotFound = errors.New("presence config not found")

	// ErrConfigParse is returned when the presence descriptor is malformed
	// or lacks a required key.
	ErrConfigParse = errors.New("presence config malformed")

	// ErrEmptyDocument is wrapped by ErrConfigParse for empty files.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrMissingStatusType is wrapped by ErrConfigParse when status.type is absent.
	ErrMissingStatusType = errors.New("missing required key status.type")

	// ErrMissingRPCState is wrapped by ErrConfigParse when rpcState is absent.
	ErrMissingRPCState = errors.New("missing required key rpcState")
)
