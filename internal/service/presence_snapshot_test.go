// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-presence-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshot_AllFields(t *testing.T) {
	start := time.UnixMilli(1700000000000)
	snapshot, err := BuildSnapshot(models.ActivityConfig{
		Type:       models.ActivityPlaying,
		Name:       "Chess",
		Details:    "Ranked",
		State:      "Move 12",
		URL:        "https://ignored.example",
		Timestamps: &models.ActivityTimestamps{Start: &models.Timestamp{Time: start}},
		Assets: &models.ActivityAssets{
			LargeImage: "board",
			LargeText:  "Board",
			SmallImage: "pawn",
			SmallText:  "Pawn",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, models.ActivityPlaying, snapshot.Type)
	assert.Equal(t, "Chess", snapshot.Name)
	assert.Equal(t, "Ranked", snapshot.Details)
	assert.Equal(t, "Move 12", snapshot.State)
	assert.Empty(t, snapshot.URL, "URL is only kept for streaming")
	require.NotNil(t, snapshot.StartedAt)
	assert.True(t, start.Equal(*snapshot.StartedAt))
	assert.Equal(t, &models.SnapshotAssets{
		LargeImage: "board",
		LargeText:  "Board",
		SmallImage: "pawn",
		SmallText:  "Pawn",
	}, snapshot.Assets)
}

func TestBuildSnapshot_NoOptionalFields(t *testing.T) {
	snapshot, err := BuildSnapshot(models.ActivityConfig{Type: models.ActivityWatching, Name: "Films"})

	require.NoError(t, err)
	assert.Equal(t, models.PresenceSnapshot{Type: models.ActivityWatching, Name: "Films"}, snapshot)
}

func TestBuildSnapshot_PartialAssets(t *testing.T) {
	snapshot, err := BuildSnapshot(models.ActivityConfig{
		Name:   "Chess",
		Assets: &models.ActivityAssets{SmallText: "Pawn"},
	})

	require.NoError(t, err)
	assert.Equal(t, &models.SnapshotAssets{SmallText: "Pawn"}, snapshot.Assets)
}

func TestBuildSnapshot_EmptyAssetsBlock(t *testing.T) {
	snapshot, err := BuildSnapshot(models.ActivityConfig{Name: "Chess", Assets: &models.ActivityAssets{}})

	require.NoError(t, err)
	assert.Nil(t, snapshot.Assets)
}

func TestBuildSnapshot_TimestampsWithoutStart(t *testing.T) {
	snapshot, err := BuildSnapshot(models.ActivityConfig{Name: "Chess", Timestamps: &models.ActivityTimestamps{}})

	require.NoError(t, err)
	assert.Nil(t, snapshot.StartedAt)
}

func TestBuildSnapshot_Streaming(t *testing.T) {
	snapshot, err := BuildSnapshot(models.ActivityConfig{
		Type: models.ActivityStreaming,
		Name: "Live",
		URL:  "https://twitch.tv/someone",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://twitch.tv/someone", snapshot.URL)
}

func TestBuildSnapshot_StreamingWithoutURL(t *testing.T) {
	snapshot, err := BuildSnapshot(models.ActivityConfig{Type: models.ActivityStreaming, Name: "Live"})

	assert.ErrorIs(t, err, ErrStreamingURLMissing)
	assert.Equal(t, "Live", snapshot.Name, "snapshot is still usable")
	assert.Empty(t, snapshot.URL)
}

func TestBuildSnapshot_FreshCopyOfStart(t *testing.T) {
	ts := &models.Timestamp{Time: time.UnixMilli(1000)}
	snapshot, _ := BuildSnapshot(models.ActivityConfig{Timestamps: &models.ActivityTimestamps{Start: ts}})

	ts.Time = time.UnixMilli(2000)
	assert.Equal(t, int64(1000), snapshot.StartedAt.UnixMilli())
}
