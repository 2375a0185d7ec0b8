// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StatusType is the presence status shown next to the account
// (online dot, idle moon, do-not-disturb sign or hidden).
type StatusType string

const (
	// StatusOnline marks the account as online.
	StatusOnline StatusType = "online"
	// StatusIdle marks the account as idle.
	StatusIdle StatusType = "idle"
	// StatusDoNotDisturb suppresses notifications and shows the DND sign.
	StatusDoNotDisturb StatusType = "dnd"
	// StatusInvisible hides the account while keeping the session alive.
	StatusInvisible StatusType = "invisible"
)

// ParseStatusType converts the descriptor spelling of a status into a
// [StatusType]. Matching is case-insensitive; "doNotDisturb" and
// "do_not_disturb" are accepted for [StatusDoNotDisturb].
func ParseStatusType(s string) (StatusType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "online":
		return StatusOnline, nil
	case "idle":
		return StatusIdle, nil
	case "dnd", "donotdisturb", "do_not_disturb":
		return StatusDoNotDisturb, nil
	case "invisible":
		return StatusInvisible, nil
	default:
		return "", fmt.Errorf("unknown status type %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *StatusType) UnmarshalText(text []byte) error {
	parsed, err := ParseStatusType(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ActivityType is the verb shown in front of the activity name
// ("Playing", "Streaming", ...).
type ActivityType int

const (
	// ActivityPlaying renders as "Playing <name>".
	ActivityPlaying ActivityType = iota
	// ActivityStreaming renders as "Streaming <name>" and links to URL.
	ActivityStreaming
	// ActivityListening renders as "Listening to <name>".
	ActivityListening
	// ActivityWatching renders as "Watching <name>".
	ActivityWatching
	// ActivityCustom is a custom status; the text is taken from State.
	ActivityCustom
	// ActivityCompeting renders as "Competing in <name>".
	ActivityCompeting
)

var activityTypeNames = map[ActivityType]string{
	ActivityPlaying:   "PLAYING",
	ActivityStreaming: "STREAMING",
	ActivityListening: "LISTENING",
	ActivityWatching:  "WATCHING",
	ActivityCustom:    "CUSTOM",
	ActivityCompeting: "COMPETING",
}

// String returns the upper-case descriptor spelling of the type.
func (a ActivityType) String() string {
	if name, ok := activityTypeNames[a]; ok {
		return name
	}
	return "ActivityType(" + strconv.Itoa(int(a)) + ")"
}

// ParseActivityType converts the descriptor spelling of an activity type
// (case-insensitive) into an [ActivityType].
func ParseActivityType(s string) (ActivityType, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for t, name := range activityTypeNames {
		if name == upper {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown activity type %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ActivityType) UnmarshalText(text []byte) error {
	parsed, err := ParseActivityType(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// PresenceConfig is the operator-declared presence, loaded once at startup and
// never modified afterwards.
type PresenceConfig struct {
	// Status is applied as the account presence status.
	Status StatusType

	// Activity is the rich presence activity shown under the account name.
	Activity ActivityConfig
}

// ActivityConfig describes the rich presence activity.
// Empty strings and nil pointers mean "not configured" and are omitted from
// the resulting snapshot.
type ActivityConfig struct {
	Type    ActivityType
	Name    string
	Details string
	State   string

	// URL is only meaningful for [ActivityStreaming].
	URL string

	Timestamps *ActivityTimestamps
	Assets     *ActivityAssets
}

// ActivityTimestamps holds the optional activity start instant.
type ActivityTimestamps struct {
	Start *Timestamp
}

// ActivityAssets holds image keys and their hover texts. Every field is
// optional on its own.
type ActivityAssets struct {
	LargeImage string
	LargeText  string
	SmallImage string
	SmallText  string
}

// Timestamp is an instant read from the presence descriptor.
//
// It accepts a unix epoch number or an RFC 3339 string. Epoch numbers are
// treated as milliseconds (the unit the platform uses for activity
// timestamps) unless they are too small to be a millisecond value, in which
// case they are read as seconds.
type Timestamp struct {
	time.Time
}

// epochSecondsLimit separates second and millisecond epoch values: 1e11
// milliseconds is March 1973, 1e11 seconds is year 5138.
const epochSecondsLimit = 100_000_000_000

// UnmarshalText implements encoding.TextUnmarshaler and is used for both
// quoted strings and bare YAML scalars.
func (t *Timestamp) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" {
		return fmt.Errorf("empty timestamp")
	}

	if epoch, err := strconv.ParseInt(raw, 10, 64); err == nil {
		t.Time = fromEpoch(epoch)
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("timestamp %q is neither an epoch number nor RFC 3339", raw)
	}
	t.Time = parsed
	return nil
}

// UnmarshalJSON accepts both JSON numbers and JSON strings.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		t.Time = fromEpoch(int64(value))
		return nil
	case string:
		return t.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("timestamp must be a number or a string, got %s", string(b))
	}
}

func fromEpoch(epoch int64) time.Time {
	if epoch < epochSecondsLimit {
		return time.Unix(epoch, 0).UTC()
	}
	return time.UnixMilli(epoch).UTC()
}
