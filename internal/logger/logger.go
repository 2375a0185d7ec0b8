// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-presence-keeper application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain task-scoped
// loggers via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// RoleFieldName is the field carrying the component role label.
	RoleFieldName = "role"

	// OutcomeFieldName marks events that report a successful step.
	OutcomeFieldName = "outcome"

	// OutcomeSuccess is the OutcomeFieldName value rendered as [SUCCESS].
	OutcomeSuccess = "success"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON *Logger for the given role label
// (e.g. "presence", "session").
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is written to os.Stdout in JSON format.
func NewLogger(role string) *Logger {
	setGlobals()

	logger := zerolog.New(os.Stdout).With().
		Str(RoleFieldName, role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewConsoleLogger constructs a *Logger that renders human-readable lines of
// the form
//
//	[LEVEL] 2006-01-02 15:04:05 → message
//
// to w, dropping events below level. Structured fields stay on the event
// (and in JSON sinks) but are not printed, except for the error which is
// appended to the message.
func NewConsoleLogger(role string, w io.Writer, level zerolog.Level) *Logger {
	setGlobals()

	logger := zerolog.New(newConsoleWriter(w)).
		Level(level).
		With().
		Str(RoleFieldName, role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func setGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Success starts an info-level event marked as a successful outcome.
// Console output renders it with the [SUCCESS] prefix.
func (l *Logger) Success() *zerolog.Event {
	return l.Info().Str(OutcomeFieldName, OutcomeSuccess)
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithStr returns a child logger enriched with key=value.
func (l *Logger) WithStr(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// FromContext returns the logger attached to ctx through WithContext, or
// fallback when ctx carries none.
func FromContext(ctx context.Context, fallback *Logger) *Logger {
	if l := log.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return &Logger{*l}
	}
	return fallback
}
