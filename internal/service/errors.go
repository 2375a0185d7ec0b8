// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidSessionState is returned by Apply for sessions that are not
	// ready.
	ErrInvalidSessionState = errors.New("session is not ready for presence updates")

	// ErrStreamingURLMissing is reported when a STREAMING activity has no
	// URL. The activity is still applied, without the link.
	ErrStreamingURLMissing = errors.New("streaming activity has no url")

	// ErrSubmissionPanic wraps a recovered panic of a presence submission.
	ErrSubmissionPanic = errors.New("presence submission panicked")
)
