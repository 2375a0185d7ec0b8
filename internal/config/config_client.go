// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ClientPresence holds the presence descriptor location and update limits.
type ClientPresence struct {
	// FilePath is the presence descriptor path.
	FilePath string
	// UpdateBurst is the number of submissions allowed per UpdateWindow.
	UpdateBurst int
	// UpdateWindow is the refill window of the submission limiter.
	UpdateWindow time.Duration
}

// ClientCredential holds the credential source used by the adapter.
type ClientCredential struct {
	// URL is the credential endpoint.
	URL string
	// RequestTimeout bounds the credential request.
	RequestTimeout time.Duration
}

// ClientSession holds gateway session settings.
type ClientSession struct {
	// ConnectTimeout bounds authentication; zero means unbounded.
	ConnectTimeout time.Duration
}

// Log sink formats accepted by [Log.Format].
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// ClientLog holds the parsed log settings.
type ClientLog struct {
	// Level is the minimal printed level.
	Level zerolog.Level
	// Format is [LogFormatConsole] or [LogFormatJSON].
	Format string
}

// ClientConfig is the validated runtime view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Presence contains presence descriptor settings.
	Presence ClientPresence
	// Credential contains credential source settings.
	Credential ClientCredential
	// Session contains gateway session settings.
	Session ClientSession
	// Log contains log settings.
	Log ClientLog
}

// GetClientConfig builds and validates the runtime config from the merged
// structured configuration. args are the command-line arguments without the
// program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	clientCfg := &ClientConfig{
		Presence: ClientPresence{
			FilePath:     cfg.Presence.FilePath,
			UpdateBurst:  cfg.Presence.UpdateBurst,
			UpdateWindow: cfg.Presence.UpdateWindow,
		},
		Credential: ClientCredential{
			URL:            cfg.Credential.URL,
			RequestTimeout: cfg.Credential.RequestTimeout,
		},
		Session: ClientSession{
			ConnectTimeout: cfg.Session.ConnectTimeout,
		},
		Log: ClientLog{
			Level:  level,
			Format: strings.ToLower(strings.TrimSpace(cfg.Log.Format)),
		},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
