// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "settings.json")
	body := `{
		"presence": {"file": "presence.yaml", "update_burst": 2, "update_window": "10s"},
		"credential": {"url": "https://example.org/token", "request_timeout": "5s"},
		"session": {"connect_timeout": "1m"},
		"log": {"level": "debug", "format": "json"}
	}`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "presence.yaml", cfg.Presence.FilePath)
	assert.Equal(t, 2, cfg.Presence.UpdateBurst)
	assert.Equal(t, 10*time.Second, cfg.Presence.UpdateWindow)
	assert.Equal(t, "https://example.org/token", cfg.Credential.URL)
	assert.Equal(t, 5*time.Second, cfg.Credential.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Session.ConnectTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"later"`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(30 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"30s"`, string(b))
}
