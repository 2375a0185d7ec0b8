// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and an error wrapping
// [ErrCredentialFetch] otherwise. The body is deliberately left out of the
// error: it may echo secrets.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	status := fmt.Sprintf("HTTP %d", resp.StatusCode())

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrCredentialFetch, ErrUnauthorized, status)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrCredentialFetch, ErrNotFound, status)
	default:
		return fmt.Errorf("%w: %s", ErrCredentialFetch, status)
	}
}
