// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-presence-keeper/internal/adapter"
	"github.com/MKhiriev/go-presence-keeper/internal/client"
	"github.com/MKhiriev/go-presence-keeper/internal/config"
	"github.com/MKhiriev/go-presence-keeper/internal/logger"
	"github.com/MKhiriev/go-presence-keeper/internal/service"
	"github.com/MKhiriev/go-presence-keeper/internal/session"
	"github.com/MKhiriev/go-presence-keeper/internal/store"
	"github.com/MKhiriev/go-presence-keeper/models"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewConsoleLogger("presence", os.Stdout, zerolog.InfoLevel)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}

	log = newLogger(cfg.Log)

	credentials, err := adapter.NewHTTPCredentialAdapter(cfg.Credential, log)
	if err != nil {
		log.Error().Err(err).Msg("create credential adapter")
		return 1
	}

	app := client.NewApp(cfg, client.Dependencies{
		Presence:    store.NewPresenceFileStorage(log),
		Credentials: credentials,
		Sessions:    session.NewClient(adapter.DiscordGatewayFactory(log), cfg.Session.ConnectTimeout, log),
		Reconciler:  service.NewPresenceService(cfg.Presence, log),
	}, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		return 1
	}
	return 0
}

func newLogger(cfg config.ClientLog) *logger.Logger {
	if cfg.Format == config.LogFormatJSON {
		log := logger.NewLogger("presence")
		log.Logger = log.Level(cfg.Level)
		return log
	}
	return logger.NewConsoleLogger("presence", os.Stdout, cfg.Level)
}
