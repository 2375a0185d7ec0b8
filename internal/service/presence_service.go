// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-presence-keeper/internal/app"
	"github.com/MKhiriev/go-presence-keeper/internal/config"
	"github.com/MKhiriev/go-presence-keeper/internal/logger"
	"github.com/MKhiriev/go-presence-keeper/internal/session"
	"github.com/MKhiriev/go-presence-keeper/models"
	"golang.org/x/time/rate"
)

type presenceService struct {
	limiter *rate.Limiter

	logger *logger.Logger
}

// NewPresenceService returns a [PresenceService] allowing cfg.UpdateBurst
// submissions per cfg.UpdateWindow. Non-positive values disable the limit.
func NewPresenceService(cfg config.ClientPresence, logger *logger.Logger) PresenceService {
	limit := rate.Inf
	if cfg.UpdateBurst > 0 && cfg.UpdateWindow > 0 {
		limit = rate.Every(cfg.UpdateWindow / time.Duration(cfg.UpdateBurst))
	}

	return &presenceService{
		limiter: rate.NewLimiter(limit, max(cfg.UpdateBurst, 1)),
		logger:  logger,
	}
}

func (p *presenceService) Apply(ctx context.Context, sess *session.Session, cfg models.PresenceConfig) error {
	if sess == nil {
		return fmt.Errorf("%w: no session", ErrInvalidSessionState)
	}
	if state := sess.State(); state != session.StateReady {
		return fmt.Errorf("%w: state %s", ErrInvalidSessionState, state)
	}

	snapshot, buildErr := BuildSnapshot(cfg.Activity)

	activityErr := p.submit(ctx, "activity", func(ctx context.Context) error {
		return sess.SetActivity(ctx, snapshot)
	})
	statusErr := p.submit(ctx, "status", func(ctx context.Context) error {
		return sess.SetStatus(ctx, cfg.Status)
	})

	if err := errors.Join(buildErr, activityErr, statusErr); err != nil {
		return err
	}

	logger.FromContext(ctx, p.logger).Info().
		Stringer("activity_type", snapshot.Type).
		Str("status", string(cfg.Status)).
		Msgf(app.MsgPresenceApplied, snapshot.Name)
	return nil
}

// submit waits for a limiter token and runs fn, turning a panic into an
// error wrapping [ErrSubmissionPanic].
func (p *presenceService) submit(ctx context.Context, what string, fn func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %w: %v", what, ErrSubmissionPanic, r)
		}
	}()

	if err = p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: wait for update slot: %w", what, err)
	}
	return fn(ctx)
}
