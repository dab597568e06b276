// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// KeySize is the length of a derived key in bytes (AES-256).
const KeySize = 32

// Key is a derived symmetric key. It is never persisted.
type Key [KeySize]byte

// String hides key material from fmt and loggers.
func (k Key) String() string {
	return "[REDACTED]"
}
