// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusType(t *testing.T) {
	tests := []struct {
		in   string
		want StatusType
	}{
		{"online", StatusOnline},
		{"IDLE", StatusIdle},
		{"dnd", StatusDoNotDisturb},
		{"doNotDisturb", StatusDoNotDisturb},
		{"do_not_disturb", StatusDoNotDisturb},
		{" invisible ", StatusInvisible},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatusType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatusType_Unknown(t *testing.T) {
	_, err := ParseStatusType("away")
	assert.Error(t, err)
}

func TestParseActivityType(t *testing.T) {
	got, err := ParseActivityType("streaming")
	require.NoError(t, err)
	assert.Equal(t, ActivityStreaming, got)

	got, err = ParseActivityType("PLAYING")
	require.NoError(t, err)
	assert.Equal(t, ActivityPlaying, got)

	_, err = ParseActivityType("dancing")
	assert.Error(t, err)
}

func TestActivityType_String(t *testing.T) {
	assert.Equal(t, "WATCHING", ActivityWatching.String())
	assert.Equal(t, "ActivityType(42)", ActivityType(42).String())
}

func TestActivityType_UnmarshalJSON(t *testing.T) {
	var v struct {
		Type ActivityType `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"Listening"}`), &v))
	assert.Equal(t, ActivityListening, v.Type)

	assert.Error(t, json.Unmarshal([]byte(`{"type":"nope"}`), &v))
}

func TestTimestamp_UnmarshalJSON_Milliseconds(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`1700000000000`), &ts))
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), ts.Time)
}

func TestTimestamp_UnmarshalJSON_Seconds(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`1700000000`), &ts))
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), ts.Time)
}

func TestTimestamp_UnmarshalJSON_RFC3339(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T10:00:00Z"`), &ts))
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), ts.Time)
}

func TestTimestamp_UnmarshalJSON_Invalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`true`), &ts))
	assert.Error(t, ts.UnmarshalText([]byte("  ")))
}

func TestCredential_NeverPrintsSecret(t *testing.T) {
	c := NewCredential("super-secret")

	assert.Equal(t, "super-secret", c.Secret())
	assert.False(t, c.IsEmpty())
	assert.NotContains(t, c.String(), "super-secret")
	assert.NotContains(t, c.GoString(), "super-secret")

	b, err := json.Marshal(struct{ C Credential }{c})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "super-secret")

	assert.True(t, Credential{}.IsEmpty())
}

func TestUser_Tag(t *testing.T) {
	assert.Equal(t, "onyx#1234", User{Username: "onyx", Discriminator: "1234"}.Tag())
	assert.Equal(t, "onyx", User{Username: "onyx", Discriminator: "0"}.Tag())
	assert.Equal(t, "onyx", User{Username: "onyx"}.Tag())
}
