// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the account the session authenticated as.
type User struct {
	// ID is the platform snowflake of the account.
	ID string

	// Username is the unique account name.
	Username string

	// Discriminator is the legacy four-digit suffix; "0" or empty for
	// accounts migrated to unique usernames.
	Discriminator string

	// GlobalName is the optional display name.
	GlobalName string
}

// Tag returns the printable account tag: "name#1234" for legacy accounts and
// the bare username otherwise.
func (u User) Tag() string {
	if u.Discriminator == "" || u.Discriminator == "0" {
		return u.Username
	}
	return u.Username + "#" + u.Discriminator
}
