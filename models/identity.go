// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// identitySeparator joins the parts of an identity signal.
const identitySeparator = "-"

// Identity holds the ambient connection characteristics a key is derived
// from. It is not a credential: anyone able to reproduce the same address
// and user agent derives the same key.
type Identity struct {
	// RemoteAddr is the client IP address without port.
	RemoteAddr string

	// UserAgent is the client-declared User-Agent header, possibly empty.
	UserAgent string
}

// Signal returns "<RemoteAddr>-<UserAgent>", the key-derivation input for the
// identity key scheme.
func (i Identity) Signal() string {
	return i.RemoteAddr + identitySeparator + i.UserAgent
}
