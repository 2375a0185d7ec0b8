// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PresenceSnapshot is the activity handed to the gateway at the moment the
// presence is applied. It is rebuilt from [PresenceConfig] on every
// application and never cached.
type PresenceSnapshot struct {
	Type    ActivityType
	Name    string
	Details string
	State   string
	URL     string

	// StartedAt is set only when the descriptor carries timestamps.start.
	StartedAt *time.Time

	// Assets is nil when no asset field was configured.
	Assets *SnapshotAssets
}

// SnapshotAssets carries only the asset fields that were supplied.
type SnapshotAssets struct {
	LargeImage string
	LargeText  string
	SmallImage string
	SmallText  string
}
