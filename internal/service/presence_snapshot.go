// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-presence-keeper/models"

// BuildSnapshot converts the declared activity into the snapshot sent to the
// gateway. Fields are copied in order type, name, details, state, URL, start
// timestamp, assets. Absent optional fields stay absent.
//
// The URL is kept only for STREAMING activities. A STREAMING activity
// without URL still yields a usable snapshot together with
// [ErrStreamingURLMissing].
func BuildSnapshot(activity models.ActivityConfig) (models.PresenceSnapshot, error) {
	snapshot := models.PresenceSnapshot{
		Type:    activity.Type,
		Name:    activity.Name,
		Details: activity.Details,
		State:   activity.State,
	}

	var err error
	if activity.Type == models.ActivityStreaming {
		if activity.URL == "" {
			err = ErrStreamingURLMissing
		}
		snapshot.URL = activity.URL
	}

	if activity.Timestamps != nil && activity.Timestamps.Start != nil {
		started := activity.Timestamps.Start.Time
		snapshot.StartedAt = &started
	}

	snapshot.Assets = buildAssets(activity.Assets)

	return snapshot, err
}

// buildAssets returns nil when no asset field is set.
func buildAssets(assets *models.ActivityAssets) *models.SnapshotAssets {
	if assets == nil {
		return nil
	}

	out := models.SnapshotAssets{
		LargeImage: assets.LargeImage,
		LargeText:  assets.LargeText,
		SmallImage: assets.SmallImage,
		SmallText:  assets.SmallText,
	}
	if out == (models.SnapshotAssets{}) {
		return nil
	}
	return &out
}
