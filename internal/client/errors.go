// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrStartup wraps failures that end the process before a session exists:
// a missing or malformed presence descriptor and a failed credential fetch.
var ErrStartup = errors.New("startup failed")
