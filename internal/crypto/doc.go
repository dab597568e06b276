// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the cryptographic building blocks of the vault:
//
//   - [KeyDeriver] turns a per-request key-derivation signal into a 256-bit key.
//   - [ContentAddresser] computes the content hash used for deduplication.
//   - [CipherEngine] encrypts and decrypts record content.
//
// None of these types store key material. Keys live only for the duration of
// the request that derived them.
package crypto
