// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the presence client runtime.
//
// It wires the presence descriptor, the credential source, the gateway
// session and the presence reconciler into a single process lifecycle:
// startup, ready, degraded operation and one graceful teardown on
// interrupt.
package client
