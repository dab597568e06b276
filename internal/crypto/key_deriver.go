// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/MKhiriev/go-sse-keeper/internal/config"
	"golang.org/x/crypto/argon2"
)

// Supported key schemes.
const (
	// KeySchemeIdentity derives keys from the client's address and declared
	// user agent.
	KeySchemeIdentity = "identity"

	// KeySchemePassphrase derives keys from a client-supplied passphrase with
	// Argon2id.
	KeySchemePassphrase = "passphrase"
)

// NewKeyDeriver returns the [KeyDeriver] for cfg.KeyScheme. An empty scheme
// selects [KeySchemeIdentity].
func NewKeyDeriver(cfg config.App) (KeyDeriver, error) {
	switch cfg.KeyScheme {
	case "", KeySchemeIdentity:
		return NewIdentityKeyDeriver(), nil
	case KeySchemePassphrase:
		if cfg.KeySalt == "" {
			return nil, ErrEmptyKeySalt
		}
		return NewPassphraseKeyDeriver([]byte(cfg.KeySalt)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyScheme, cfg.KeyScheme)
	}
}

// identityKeyDeriver hashes the identity signal with SHA-256 and uses the
// full digest as the key.
//
// This binds decryptability to connection metadata rather than to a
// credential. It is not authentication.
type identityKeyDeriver struct{}

// NewIdentityKeyDeriver constructs the SHA-256 identity [KeyDeriver].
func NewIdentityKeyDeriver() KeyDeriver {
	return identityKeyDeriver{}
}

// Derive implements [KeyDeriver].
func (identityKeyDeriver) Derive(signal string) Key {
	return sha256.Sum256([]byte(signal))
}

// passphraseKeyDeriver stretches a passphrase into a key with Argon2id.
type passphraseKeyDeriver struct {
	salt []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewPassphraseKeyDeriver constructs an Argon2id [KeyDeriver] with the
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//
// The salt is deployment-wide so that the same passphrase always maps to
// the same key.
func NewPassphraseKeyDeriver(salt []byte) KeyDeriver {
	return &passphraseKeyDeriver{
		salt:         salt,
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
	}
}

// Derive implements [KeyDeriver].
func (p *passphraseKeyDeriver) Derive(signal string) Key {
	var key Key
	copy(key[:], argon2.IDKey([]byte(signal), p.salt, p.argonTime, p.argonMemory, p.argonThreads, KeySize))
	return key
}
