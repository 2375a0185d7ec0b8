// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-presence-keeper/internal/logger"
	"github.com/MKhiriev/go-presence-keeper/models"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// sdkLogMu guards the process-wide discordgo.Logger hook.
var sdkLogMu sync.Mutex

type discordGateway struct {
	session *discordgo.Session

	mu       sync.Mutex
	status   models.StatusType
	activity *discordgo.Activity

	// discordgo holds the session lock for the whole handshake, so a Close
	// issued while it runs is deferred until the handshake returns.
	lifeMu    sync.Mutex
	handshake chan struct{}
	closing   bool

	logger *logger.Logger
}

// NewDiscordGateway builds a [Gateway] on top of a discordgo session
// authenticated with cred. The connection is not opened until [Gateway.Open].
//
// Automatic reconnection of the SDK is disabled: a dropped connection is
// surfaced through [models.GatewayHooks.OnDisconnect] and stays dropped.
func NewDiscordGateway(cred models.Credential, log *logger.Logger) (Gateway, error) {
	if cred.IsEmpty() {
		return nil, ErrEmptyCredential
	}

	s, err := discordgo.New(cred.Secret())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGatewayOpen, err)
	}
	s.ShouldReconnectOnError = false
	s.StateEnabled = false
	s.LogLevel = discordgo.LogWarning

	return &discordGateway{
		session: s,
		status:  models.StatusOnline,
		logger:  log.GetChildLogger().WithStr("component", "gateway"),
	}, nil
}

// DiscordGatewayFactory returns an [GatewayFactory] producing discordgo
// gateways logging to log.
func DiscordGatewayFactory(log *logger.Logger) GatewayFactory {
	return func(cred models.Credential) (Gateway, error) {
		return NewDiscordGateway(cred, log)
	}
}

// Open implements [Gateway].
func (g *discordGateway) Open(ctx context.Context, hooks models.GatewayHooks) (models.User, error) {
	g.routeSDKLogs(hooks)

	ready := make(chan models.User, 1)
	g.session.AddHandlerOnce(func(_ *discordgo.Session, r *discordgo.Ready) {
		ready <- toUser(r.User)
	})
	g.session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		if hooks.OnDisconnect != nil {
			hooks.OnDisconnect()
		}
	})

	handshake := make(chan struct{})
	g.lifeMu.Lock()
	g.handshake = handshake
	g.lifeMu.Unlock()

	opened := make(chan error, 1)
	go func() {
		err := g.session.Open()

		g.lifeMu.Lock()
		closing := g.closing
		close(handshake)
		g.lifeMu.Unlock()

		if closing && err == nil {
			_ = g.session.Close()
		}
		opened <- err
	}()

	select {
	case err := <-opened:
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrGatewayOpen, err)
		}
	case <-ctx.Done():
		// the handshake cannot be interrupted; drop the connection once it settles
		g.lifeMu.Lock()
		g.closing = true
		g.lifeMu.Unlock()
		return models.User{}, ctx.Err()
	}

	select {
	case user := <-ready:
		return user, nil
	case <-ctx.Done():
		return models.User{}, ctx.Err()
	}
}

// UpdateActivity implements [Gateway]. The last status set through
// [Gateway.UpdateStatus] is sent along with the activity.
func (g *discordGateway) UpdateActivity(ctx context.Context, activity models.PresenceSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.activity = toDiscordActivity(activity)
	return g.session.UpdateStatusComplex(g.statusData())
}

// UpdateStatus implements [Gateway]. The last activity set through
// [Gateway.UpdateActivity] is sent along with the status.
func (g *discordGateway) UpdateStatus(ctx context.Context, status models.StatusType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.status = status
	return g.session.UpdateStatusComplex(g.statusData())
}

// Close implements [Gateway]. While a handshake is still in flight Close
// returns immediately and the connection is dropped as soon as the
// handshake returns.
func (g *discordGateway) Close() error {
	g.lifeMu.Lock()
	g.closing = true
	inFlight := g.handshakeInFlight()
	g.lifeMu.Unlock()

	if inFlight {
		return nil
	}
	return g.session.Close()
}

// handshakeInFlight must be called with g.lifeMu held.
func (g *discordGateway) handshakeInFlight() bool {
	if g.handshake == nil {
		return false
	}
	select {
	case <-g.handshake:
		return false
	default:
		return true
	}
}

// statusData must be called with g.mu held.
func (g *discordGateway) statusData() discordgo.UpdateStatusData {
	data := discordgo.UpdateStatusData{
		Status: toDiscordStatus(g.status),
		AFK:    g.status == models.StatusIdle,
	}
	if g.activity != nil {
		data.Activities = []*discordgo.Activity{g.activity}
	}
	return data
}

// routeSDKLogs sends discordgo diagnostics to the gateway logger and forwards
// SDK errors to hooks.OnError. A forwarded error is reported by the hook's
// owner, so the gateway keeps its own copy at debug level.
func (g *discordGateway) routeSDKLogs(hooks models.GatewayHooks) {
	sdkLogMu.Lock()
	defer sdkLogMu.Unlock()

	discordgo.Logger = func(msgL, _ int, format string, a ...interface{}) {
		msg := strings.TrimSpace(fmt.Sprintf(format, a...))
		if msgL == discordgo.LogError && hooks.OnError != nil {
			g.logger.Debug().Msg(msg)
			hooks.OnError(errors.New(msg))
			return
		}
		g.logger.WithLevel(sdkLevel(msgL)).Msg(msg)
	}
}

func sdkLevel(msgL int) zerolog.Level {
	switch msgL {
	case discordgo.LogError:
		return zerolog.ErrorLevel
	case discordgo.LogWarning:
		return zerolog.WarnLevel
	case discordgo.LogInformational:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func toUser(u *discordgo.User) models.User {
	if u == nil {
		return models.User{}
	}
	return models.User{
		ID:            u.ID,
		Username:      u.Username,
		Discriminator: u.Discriminator,
		GlobalName:    u.GlobalName,
	}
}

func toDiscordStatus(s models.StatusType) string {
	switch s {
	case models.StatusIdle:
		return string(discordgo.StatusIdle)
	case models.StatusDoNotDisturb:
		return string(discordgo.StatusDoNotDisturb)
	case models.StatusInvisible:
		return string(discordgo.StatusInvisible)
	default:
		return string(discordgo.StatusOnline)
	}
}

func toDiscordActivityType(t models.ActivityType) discordgo.ActivityType {
	switch t {
	case models.ActivityStreaming:
		return discordgo.ActivityTypeStreaming
	case models.ActivityListening:
		return discordgo.ActivityTypeListening
	case models.ActivityWatching:
		return discordgo.ActivityTypeWatching
	case models.ActivityCustom:
		return discordgo.ActivityTypeCustom
	case models.ActivityCompeting:
		return discordgo.ActivityTypeCompeting
	default:
		return discordgo.ActivityTypeGame
	}
}

func toDiscordActivity(s models.PresenceSnapshot) *discordgo.Activity {
	a := &discordgo.Activity{
		Name:    s.Name,
		Type:    toDiscordActivityType(s.Type),
		URL:     s.URL,
		Details: s.Details,
		State:   s.State,
	}
	if s.StartedAt != nil {
		a.Timestamps.StartTimestamp = s.StartedAt.UnixMilli()
	}
	if s.Assets != nil {
		a.Assets = discordgo.Assets{
			LargeImageID: s.Assets.LargeImage,
			LargeText:    s.Assets.LargeText,
			SmallImageID: s.Assets.SmallImage,
			SmallText:    s.Assets.SmallText,
		}
	}
	return a
}
