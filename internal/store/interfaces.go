// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-presence-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/presence_file_storage_mock.go -package=mock

// PresenceFileStorage reads the operator-declared presence descriptor.
type PresenceFileStorage interface {
	// Load reads and decodes the descriptor at path. It returns an error
	// wrapping [ErrConfigNotFound] when the file is absent or unreadable and
	// [ErrConfigParse] when it is malformed or lacks status.type or rpcState.
	// No defaults are substituted for missing keys.
	Load(path string) (models.PresenceConfig, error)
}
