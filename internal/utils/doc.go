// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the adapter and session
// layers: a resty client wired to the application logger and trace id
// generation.
package utils
