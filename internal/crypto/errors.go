// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryption is returned when a ciphertext cannot be decrypted under
	// the supplied key. Every decryption failure wraps it.
	ErrDecryption = errors.New("decryption failed")

	// ErrCiphertextTooShort is returned when the ciphertext is shorter than
	// one IV or its body is not a whole number of blocks.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrInvalidPadding is returned when PKCS#7 padding validation fails,
	// which in practice means the key was wrong.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrUnknownKeyScheme is returned by [NewKeyDeriver] for an unsupported
	// key scheme name.
	ErrUnknownKeyScheme = errors.New("unknown key scheme")

	// ErrEmptyKeySalt is returned by [NewKeyDeriver] when the passphrase
	// scheme is requested without a salt.
	ErrEmptyKeySalt = errors.New("passphrase key scheme requires a salt")
)
