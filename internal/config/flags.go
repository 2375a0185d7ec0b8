// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-p, --presence         presence descriptor path
//	-u, --credential-url   credential endpoint URL
//	    --request-timeout  credential request timeout (e.g. "15s")
//	    --connect-timeout  session authentication timeout, 0 waits forever
//	    --log-level        log level
//	    --log-format       log sink format (console, json)
//	-c, --config           JSON settings file path
//
// pflag.ErrHelp is returned (wrapped) when -h/--help was requested.
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := pflag.NewFlagSet("presence", pflag.ContinueOnError)
	fs.StringVarP(&cfg.Presence.FilePath, "presence", "p", "", "Presence descriptor path (JSON, JSONC or YAML)")
	fs.StringVarP(&cfg.Credential.URL, "credential-url", "u", "", "Credential endpoint URL")
	fs.DurationVar(&cfg.Credential.RequestTimeout, "request-timeout", 0, "Credential request timeout (e.g. 15s)")
	fs.DurationVar(&cfg.Session.ConnectTimeout, "connect-timeout", 0, "Session authentication timeout, 0 waits forever")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Log.Format, "log-format", "", "Log format (console, json)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON settings file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
