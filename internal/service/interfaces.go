// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-presence-keeper/internal/session"
	"github.com/MKhiriev/go-presence-keeper/models"
)

// PresenceService pushes the declared presence to a ready session.
type PresenceService interface {
	// Apply builds a fresh snapshot from cfg and submits the activity, then
	// the status. Both submissions are attempted; every failure is joined
	// into the returned error. Apply does not log failures: the caller
	// reports the returned error.
	Apply(ctx context.Context, sess *session.Session, cfg models.PresenceConfig) error
}
