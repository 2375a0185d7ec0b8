// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-presence-keeper/internal/config"
	"github.com/MKhiriev/go-presence-keeper/internal/logger"
	"github.com/MKhiriev/go-presence-keeper/internal/utils"
	"github.com/MKhiriev/go-presence-keeper/models"
)

type httpCredentialAdapter struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewHTTPCredentialAdapter constructs the resty implementation of
// [CredentialAdapter] reading the credential from credentialCfg.URL with
// credentialCfg.RequestTimeout.
//
// Returns an error wrapping [ErrInvalidCredentialURL] if the URL is not an
// absolute http(s) URL.
func NewHTTPCredentialAdapter(credentialCfg config.ClientCredential, logger *logger.Logger) (CredentialAdapter, error) {
	rawURL := strings.TrimSpace(credentialCfg.URL)
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentialURL, err)
	}
	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q must be an absolute http(s) url", ErrInvalidCredentialURL, rawURL)
	}

	client := utils.NewHTTPClient(logger)
	client.
		SetTimeout(credentialCfg.RequestTimeout).
		SetHeader("Accept", "text/plain")

	return &httpCredentialAdapter{client: client, url: rawURL, logger: logger}, nil
}

// Fetch implements [CredentialAdapter]. It GETs the configured URL once and
// returns the whitespace-trimmed body as the credential.
func (h *httpCredentialAdapter) Fetch(ctx context.Context) (models.Credential, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.url)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrCredentialFetch, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	secret := strings.TrimSpace(resp.String())
	if secret == "" {
		return models.Credential{}, ErrEmptyCredential
	}

	h.logger.Debug().
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("credential fetched")

	return models.NewCredential(secret), nil
}

// Close implements [CredentialAdapter].
func (h *httpCredentialAdapter) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}
