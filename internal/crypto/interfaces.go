// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "io"

// KeyDeriver turns a key-derivation signal into a fixed-length key.
//
// Derive is deterministic and pure: the same signal always yields the same
// key. It performs no validation and never fails. What the signal contains
// is decided by the caller and by the configured key scheme.
type KeyDeriver interface {
	Derive(signal string) Key
}

// ContentAddresser computes the content hash of a file.
// The hash is an identity and deduplication key, not a security primitive.
type ContentAddresser interface {
	// Hash streams r in bounded chunks and returns the hex-encoded digest.
	Hash(r io.Reader) (string, error)

	// HashBytes is Hash for an in-memory payload.
	HashBytes(b []byte) string
}

// CipherEngine encrypts and decrypts byte payloads under a supplied key.
// Ciphertexts are self-contained: each one embeds the random IV it was
// produced with.
type CipherEngine interface {
	// Encrypt returns IV || encrypted(padded plaintext). A fresh random IV
	// is generated on every call, so encrypting the same plaintext twice
	// yields different ciphertexts.
	Encrypt(plaintext []byte, key Key) ([]byte, error)

	// Decrypt reverses Encrypt. It returns an error wrapping [ErrDecryption]
	// when the key is wrong or the ciphertext is malformed.
	Decrypt(ciphertext []byte, key Key) ([]byte, error)

	// TryDecrypt is Decrypt for callers where a failure is an expected
	// outcome rather than an error (e.g. scanning records that belong to a
	// different key). ok is false whenever Decrypt would fail.
	TryDecrypt(ciphertext []byte, key Key) (plaintext []byte, ok bool)
}
