// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides loading, merging, and validation of the process
// settings of the presence client.
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON settings file
//
// The main entry point is [GetClientConfig]. The presence descriptor
// (status and activity) is a separate document read by the store package.
package config
