// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks only that every setting the client needs is present and
// usable. The presence descriptor is validated by the store when loaded.
func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Presence.FilePath) == "" ||
		cfg.Presence.UpdateBurst <= 0 || cfg.Presence.UpdateWindow <= 0 {
		return ErrInvalidPresenceConfigs
	}

	u, err := url.Parse(strings.TrimSpace(cfg.Credential.URL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidCredentialConfigs
	}
	if cfg.Credential.RequestTimeout <= 0 {
		return ErrInvalidCredentialConfigs
	}

	if cfg.Session.ConnectTimeout < 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Log.Format != LogFormatConsole && cfg.Log.Format != LogFormatJSON {
		return ErrInvalidLogConfigs
	}

	return nil
}
