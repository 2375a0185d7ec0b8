// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// ConsoleTimeFormat is the timestamp layout of console lines.
const ConsoleTimeFormat = "2006-01-02 15:04:05"

var consoleLevels = map[string]string{
	zerolog.LevelTraceValue: "[DEBUG]",
	zerolog.LevelDebugValue: "[DEBUG]",
	zerolog.LevelInfoValue:  "[INFO]",
	OutcomeSuccess:          "[SUCCESS]",
	zerolog.LevelWarnValue:  "[WARNING]",
	zerolog.LevelErrorValue: "[ERROR]",
	zerolog.LevelFatalValue: "[ERROR]",
	zerolog.LevelPanicValue: "[ERROR]",
}

func newConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: ConsoleTimeFormat,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.MessageFieldName,
		},
		FormatPrepare: prepareConsoleEvent,
		FormatLevel:   formatConsoleLevel,
		FormatMessage: formatConsoleMessage,
	}
}

// prepareConsoleEvent rewrites success-marked info events to the "success"
// level, folds the error field into the message and drops every other field,
// so that each event is printed as a single "[LEVEL] time → message" line.
func prepareConsoleEvent(evt map[string]any) error {
	if evt[OutcomeFieldName] == OutcomeSuccess && evt[zerolog.LevelFieldName] == zerolog.LevelInfoValue {
		evt[zerolog.LevelFieldName] = OutcomeSuccess
	}

	if errValue, ok := evt[zerolog.ErrorFieldName]; ok {
		msg, _ := evt[zerolog.MessageFieldName].(string)
		if msg == "" {
			evt[zerolog.MessageFieldName] = fmt.Sprint(errValue)
		} else {
			evt[zerolog.MessageFieldName] = fmt.Sprintf("%s: %v", msg, errValue)
		}
	}

	for key := range evt {
		switch key {
		case zerolog.LevelFieldName, zerolog.TimestampFieldName, zerolog.MessageFieldName:
		default:
			delete(evt, key)
		}
	}

	return nil
}

func formatConsoleLevel(i any) string {
	level, _ := i.(string)
	if prefix, ok := consoleLevels[level]; ok {
		return prefix
	}
	return "[LOG]"
}

func formatConsoleMessage(i any) string {
	if i == nil {
		return "→"
	}
	return fmt.Sprintf("→ %s", i)
}
