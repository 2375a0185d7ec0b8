// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-presence-keeper/internal/logger"
	"github.com/MKhiriev/go-presence-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func newTestStorage() PresenceFileStorage {
	return NewPresenceFileStorage(logger.Nop())
}

// ── success ──────────────────────────────────────────────────────────────────

func TestLoad_MinimalJSON(t *testing.T) {
	p := writeDescriptor(t, "config.json", `{"status":{"type":"idle"},"rpcState":{"type":"PLAYING","name":"Test"}}`)

	cfg, err := newTestStorage().Load(p)
	require.NoError(t, err)

	assert.Equal(t, models.PresenceConfig{
		Status: models.StatusIdle,
		Activity: models.ActivityConfig{
			Type: models.ActivityPlaying,
			Name: "Test",
		},
	}, cfg)
}

func TestLoad_FullJSONWithComments(t *testing.T) {
	p := writeDescriptor(t, "config.json", `{
		// shown to friends
		"status": {"type": "dnd"},
		"rpcState": {
			"type": "STREAMING",
			"name": "Live",
			"details": "Ranked",
			"state": "In queue",
			"url": "https://twitch.tv/onyx",
			"timestamps": {"start": 1700000000000},
			"assets": {
				"largeImage": "logo",
				"largeText": "Onyx",
				"smallImageKey": "badge",
				"smallText": "Level 3", /* trailing comma below */
			},
		},
	}`)

	cfg, err := newTestStorage().Load(p)
	require.NoError(t, err)

	assert.Equal(t, models.StatusDoNotDisturb, cfg.Status)
	assert.Equal(t, models.ActivityStreaming, cfg.Activity.Type)
	assert.Equal(t, "Live", cfg.Activity.Name)
	assert.Equal(t, "Ranked", cfg.Activity.Details)
	assert.Equal(t, "In queue", cfg.Activity.State)
	assert.Equal(t, "https://twitch.tv/onyx", cfg.Activity.URL)
	require.NotNil(t, cfg.Activity.Timestamps)
	require.NotNil(t, cfg.Activity.Timestamps.Start)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), cfg.Activity.Timestamps.Start.Time)
	assert.Equal(t, &models.ActivityAssets{
		LargeImage: "logo",
		LargeText:  "Onyx",
		SmallImage: "badge",
		SmallText:  "Level 3",
	}, cfg.Activity.Assets)
}

func TestLoad_YAML(t *testing.T) {
	p := writeDescriptor(t, "presence.yaml", `
status:
  type: online
rpcState:
  type: watching
  name: Movies
  timestamps:
    start: 2024-05-01T10:00:00Z
  assets:
    largeImageKey: poster
`)

	cfg, err := newTestStorage().Load(p)
	require.NoError(t, err)

	assert.Equal(t, models.StatusOnline, cfg.Status)
	assert.Equal(t, models.ActivityWatching, cfg.Activity.Type)
	assert.Equal(t, "Movies", cfg.Activity.Name)
	require.NotNil(t, cfg.Activity.Timestamps.Start)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), cfg.Activity.Timestamps.Start.Time)
	assert.Equal(t, "poster", cfg.Activity.Assets.LargeImage)
	assert.Empty(t, cfg.Activity.Assets.SmallImage)
}

func TestLoad_PartialSubFieldsAreNotDefaulted(t *testing.T) {
	p := writeDescriptor(t, "config.json", `{"status":{"type":"invisible"},"rpcState":{}}`)

	cfg, err := newTestStorage().Load(p)
	require.NoError(t, err)

	assert.Equal(t, models.StatusInvisible, cfg.Status)
	assert.Equal(t, models.ActivityPlaying, cfg.Activity.Type)
	assert.Empty(t, cfg.Activity.Name)
	assert.Nil(t, cfg.Activity.Timestamps)
	assert.Nil(t, cfg.Activity.Assets)
}

// ── errors ───────────────────────────────────────────────────────────────────

func TestLoad_MissingActivityTypeDefaultsToPlaying(t *testing.T) {
	for _, tt := range []struct{ name, file, body string }{
		{"json", "config.json", `{"status":{"type":"online"},"rpcState":{"name":"Chess"}}`},
		{"yaml", "config.yaml", "status:\n  type: online\nrpcState:\n  name: Chess\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := newTestStorage().Load(writeDescriptor(t, tt.file, tt.body))
			require.NoError(t, err)
			assert.Equal(t, models.ActivityPlaying, cfg.Activity.Type)
			assert.Equal(t, "Chess", cfg.Activity.Name)
		})
	}
}

func TestLoad_ExplicitActivityTypeKept(t *testing.T) {
	p := writeDescriptor(t, "config.json", `{"status":{"type":"online"},"rpcState":{"type":"LISTENING","name":"Radio"}}`)

	cfg, err := newTestStorage().Load(p)
	require.NoError(t, err)
	assert.Equal(t, models.ActivityListening, cfg.Activity.Type)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newTestStorage().Load(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.NotErrorIs(t, err, ErrConfigParse)
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr error
	}{
		{name: "malformed json", file: "c.json", body: `{"status":`},
		{name: "empty file", file: "c.json", body: "  \n", wantErr: ErrEmptyDocument},
		{name: "missing status", file: "c.json", body: `{"rpcState":{"name":"x"}}`, wantErr: ErrMissingStatusType},
		{name: "missing status type", file: "c.json", body: `{"status":{},"rpcState":{}}`, wantErr: ErrMissingStatusType},
		{name: "missing rpcState", file: "c.json", body: `{"status":{"type":"idle"}}`, wantErr: ErrMissingRPCState},
		{name: "unknown status", file: "c.json", body: `{"status":{"type":"away"},"rpcState":{}}`},
		{name: "unknown activity type", file: "c.json", body: `{"status":{"type":"idle"},"rpcState":{"type":"DANCING"}}`},
		{name: "bad timestamp", file: "c.json", body: `{"status":{"type":"idle"},"rpcState":{"timestamps":{"start":"soon"}}}`},
		{name: "malformed yaml", file: "c.yml", body: "status: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeDescriptor(t, tt.file, tt.body)

			_, err := newTestStorage().Load(p)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfigParse)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
