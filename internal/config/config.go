// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level process settings container for the
// go-presence-keeper client. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON settings file.
//
// The presence descriptor itself (status and activity) is not part of these
// settings: it is read by the store package from Presence.FilePath.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Presence locates the presence descriptor and bounds how often the
	// presence may be pushed to the gateway.
	Presence Presence `envPrefix:"PRESENCE_"`

	// Credential holds the remote location the session secret is read from.
	Credential Credential `envPrefix:"CREDENTIAL_"`

	// Session holds gateway session settings.
	Session Session `envPrefix:"SESSION_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON settings file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Presence holds settings of the presence descriptor and its application.
type Presence struct {
	// FilePath is the path of the presence descriptor (JSON, JSONC or YAML).
	// Env: PRESENCE_FILE
	FilePath string `env:"FILE"`

	// UpdateBurst is the number of presence submissions allowed per
	// UpdateWindow.
	// Env: PRESENCE_UPDATE_BURST
	UpdateBurst int `env:"UPDATE_BURST"`

	// UpdateWindow is the window UpdateBurst refers to (e.g. "20s").
	// Env: PRESENCE_UPDATE_WINDOW
	UpdateWindow time.Duration `env:"UPDATE_WINDOW"`
}

// Credential holds settings of the remote credential source.
type Credential struct {
	// URL is the plain-text endpoint returning the session credential.
	// Env: CREDENTIAL_URL
	URL string `env:"URL"`

	// RequestTimeout bounds the single credential request (e.g. "15s").
	// Env: CREDENTIAL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds gateway session settings.
type Session struct {
	// ConnectTimeout bounds authentication. Zero waits until the gateway
	// resolves, however long that takes.
	// Env: SESSION_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimal printed level ("debug", "info", "warn", "error").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format selects the log sink: "console" for human-readable lines or
	// "json" for one JSON object per line.
	// Env: LOG_FORMAT
	Format string `env:"FORMAT"`
}

// Default values applied before any other source.
const (
	DefaultPresenceFile      = "config.json"
	DefaultUpdateBurst       = 5
	DefaultUpdateWindow      = 20 * time.Second
	DefaultRequestTimeout    = 15 * time.Second
	DefaultLogLevel          = "info"
	DefaultLogFormat         = LogFormatConsole
	defaultConfigSourceCount = 4
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Presence: Presence{
			FilePath:     DefaultPresenceFile,
			UpdateBurst:  DefaultUpdateBurst,
			UpdateWindow: DefaultUpdateWindow,
		},
		Credential: Credential{
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// GetStructuredConfig loads and merges the process settings from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
