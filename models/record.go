// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Record is a single stored file: the hex-encoded content hash of the original
// plaintext, the client-declared file name and the encrypted content.
//
// Records are immutable. They are created by the ingest pipeline on first
// sight of new content and only ever removed by a bulk clear.
type Record struct {
	// ContentHash is the hex-encoded SHA-256 digest of the plaintext. Unique.
	ContentHash string `json:"content_hash"`

	// DisplayName is the sanitised original file name. Informational only and
	// not unique. Stored in clear text.
	DisplayName string `json:"display_name"`

	// Ciphertext is IV || AES-CFB(PKCS#7(plaintext)).
	Ciphertext []byte `json:"-"`

	// CreatedAt is set by the storage backend on insert.
	CreatedAt time.Time `json:"created_at"`
}
