// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/go-presence-keeper/internal/logger"
	"github.com/rs/zerolog"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(logger.Nop())

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(logger.Nop())
	client2 := NewHTTPClient(logger.Nop())

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestRestyLogger_RoutesToLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}

	rl := restyLogger{log: l}
	rl.Warnf("retrying %s\n", "GET")

	if !bytes.Contains(buf.Bytes(), []byte(`"message":"retrying GET"`)) {
		t.Fatalf("expected trimmed message in log output, got %s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"level":"warn"`)) {
		t.Fatalf("expected warn level in log output, got %s", buf.String())
	}
}

func TestNewTraceID_Unique(t *testing.T) {
	a, b := NewTraceID(), NewTraceID()
	if a == "" || a == b {
		t.Fatalf("expected two distinct non-empty ids, got %q and %q", a, b)
	}
}
