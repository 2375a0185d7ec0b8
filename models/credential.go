// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// redacted replaces the credential wherever it would be printed.
const redacted = "[REDACTED]"

// Credential is the opaque session secret. It is fetched once per process,
// never persisted and never printed: every formatting path returns a
// redacted placeholder. Only the gateway reads the value via [Credential.Secret].
type Credential struct {
	secret string
}

// NewCredential wraps secret into a [Credential].
func NewCredential(secret string) Credential {
	return Credential{secret: secret}
}

// Secret returns the raw credential value.
func (c Credential) Secret() string {
	return c.secret
}

// IsEmpty reports whether no secret is held.
func (c Credential) IsEmpty() bool {
	return c.secret == ""
}

// String implements fmt.Stringer.
func (c Credential) String() string {
	return redacted
}

// GoString implements fmt.GoStringer so %#v does not leak the secret either.
func (c Credential) GoString() string {
	return redacted
}

// MarshalJSON implements json.Marshaler.
func (c Credential) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}
