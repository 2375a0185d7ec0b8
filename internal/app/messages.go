// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-presence-keeper client.
//
// All Msg* constants are the human-readable console messages of the
// presence client. Keeping them in one place keeps the console wording
// identical wherever a step is reported. Constants containing a verb are
// format strings.
package app

const (
	// MsgBanner is rendered as the title of the ready banner.
	MsgBanner = "Presence Keeper"

	// MsgAuthenticated is logged at success level once the session is ready.
	MsgAuthenticated = "Successfully Authenticated"

	// MsgLoggedInAs is logged with the account tag after authentication.
	MsgLoggedInAs = "Logged in as %s"

	// MsgUserID is logged with the account ID after authentication.
	MsgUserID = "User ID: %s"

	// MsgPresenceApplied is logged with the activity name after both the
	// activity and the status were accepted.
	MsgPresenceApplied = "Set RPC to %s"

	// MsgPresenceUpdateError prefixes a failed presence application.
	MsgPresenceUpdateError = "RPC Update Error"

	// MsgConnectionError prefixes session-level errors (failed handshake,
	// transport errors, disconnects).
	MsgConnectionError = "Client Connection Error"

	// MsgDisconnected is the error text reported when the transport closed
	// the connection.
	MsgDisconnected = "connection closed by gateway"

	// MsgUnhandledRejection prefixes an error or panic escaping a background
	// task.
	MsgUnhandledRejection = "Unhandled System Rejection"

	// MsgTokenFetchFailed prefixes a failed credential fetch.
	MsgTokenFetchFailed = "Failed to fetch token"

	// MsgConfigLoadFailed prefixes a missing or malformed presence
	// descriptor.
	MsgConfigLoadFailed = "Failed to load presence config"

	// MsgShuttingDown is logged at warning level when an interrupt starts
	// the teardown.
	MsgShuttingDown = "Shutting down gracefully"

	// MsgTeardownFailed prefixes errors collected while tearing down.
	MsgTeardownFailed = "Teardown Error"
)
