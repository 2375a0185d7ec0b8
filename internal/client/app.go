// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-presence-keeper/internal/adapter"
	"github.com/MKhiriev/go-presence-keeper/internal/app"
	"github.com/MKhiriev/go-presence-keeper/internal/config"
	"github.com/MKhiriev/go-presence-keeper/internal/logger"
	"github.com/MKhiriev/go-presence-keeper/internal/service"
	"github.com/MKhiriev/go-presence-keeper/internal/session"
	"github.com/MKhiriev/go-presence-keeper/internal/store"
	"github.com/MKhiriev/go-presence-keeper/internal/workers"
	"github.com/MKhiriev/go-presence-keeper/models"
	"go.uber.org/multierr"
)

// Dependencies groups the components the App drives.
type Dependencies struct {
	Presence    store.PresenceFileStorage
	Credentials adapter.CredentialAdapter
	Sessions    *session.Client
	Reconciler  service.PresenceService
}

// App is the presence client lifecycle supervisor.
type App struct {
	cfg       *config.ClientConfig
	deps      Dependencies
	buildInfo models.AppBuildInfo
	out       io.Writer

	mu   sync.Mutex
	sess *session.Session

	teardownOnce sync.Once

	logger *logger.Logger
}

// NewApp returns an App. The ready banner is written to out; every other
// line goes through logger.
func NewApp(cfg *config.ClientConfig, deps Dependencies, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	return &App{
		cfg:       cfg,
		deps:      deps,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}
}

// Run loads the presence descriptor, fetches the credential and connects
// the session, then keeps the process alive until ctx is done.
//
// A missing descriptor or a failed credential fetch is logged and returned
// wrapped in [ErrStartup]. Everything after that is logged and survived:
// Run returns nil once ctx is done and the single teardown has run.
func (a *App) Run(ctx context.Context) error {
	presence, err := a.deps.Presence.Load(a.cfg.Presence.FilePath)
	if err != nil {
		a.logger.Error().Err(err).Msg(app.MsgConfigLoadFailed)
		return fmt.Errorf("%w: %w", ErrStartup, err)
	}

	cred, err := a.deps.Credentials.Fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return a.shutdown()
		}
		a.logger.Error().Err(err).Msg(app.MsgTokenFetchFailed)
		if closeErr := a.deps.Credentials.Close(); closeErr != nil {
			a.logger.Debug().Err(closeErr).Msg("credential adapter close failed")
		}
		return fmt.Errorf("%w: %w", ErrStartup, err)
	}

	sess, err := a.deps.Sessions.Connect(ctx, cred)
	a.setSession(sess)
	if err != nil {
		if ctx.Err() != nil {
			return a.shutdown()
		}
		a.logger.Error().Err(err).Msg(app.MsgConnectionError)
		<-ctx.Done()
		return a.shutdown()
	}

	ctx = a.logger.WithStr("session_id", sess.ID()).WithContext(ctx)
	a.onReady(ctx, sess, presence)

	ws := workers.NewWorkers(a.logger)
	ws.Add(workers.WorkerFunc(func(ctx context.Context) error {
		return a.watchSession(ctx, sess)
	}))
	ws.Run(ctx)

	return a.shutdown()
}

func (a *App) onReady(ctx context.Context, sess *session.Session, presence models.PresenceConfig) {
	_, _ = fmt.Fprintln(a.out, renderBanner(a.buildInfo))

	user := sess.User()
	logger.FromContext(ctx, a.logger).Success().Msg(app.MsgAuthenticated)
	a.logger.Info().Msgf(app.MsgLoggedInAs, user.Tag())
	a.logger.Info().Msgf(app.MsgUserID, user.ID)

	if err := a.deps.Reconciler.Apply(ctx, sess, presence); err != nil {
		a.logger.Error().Err(err).Msg(app.MsgPresenceUpdateError)
	}
}

// watchSession reports session events until ctx is done or the session is
// closed. A dropped connection is reported and not re-established.
func (a *App) watchSession(ctx context.Context, sess *session.Session) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sess.Done():
			return nil
		case e := <-sess.Events():
			switch e.Kind {
			case session.EventError:
				a.logger.Error().Err(e.Err).Msg(app.MsgConnectionError)
			case session.EventDisconnected:
				a.logger.Error().Err(errors.New(app.MsgDisconnected)).Msg(app.MsgConnectionError)
			default:
				return fmt.Errorf("unknown session event %s", e.Kind)
			}
		}
	}
}

// shutdown runs the teardown at most once and always returns nil.
func (a *App) shutdown() error {
	a.teardownOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				a.logger.Error().Err(fmt.Errorf("panic: %v", r)).Msg(app.MsgTeardownFailed)
			}
		}()

		a.logger.Warn().Msg(app.MsgShuttingDown)

		var err error
		if sess := a.session(); sess != nil {
			err = multierr.Append(err, sess.Close())
		}
		err = multierr.Append(err, a.deps.Credentials.Close())

		if err != nil {
			a.logger.Error().Err(err).Msg(app.MsgTeardownFailed)
		}
	})

	return nil
}

func (a *App) setSession(sess *session.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sess = sess
}

func (a *App) session() *session.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sess
}
