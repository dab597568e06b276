// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SearchRequest is the input of a substring search over stored records.
type SearchRequest struct {
	// Query is matched case-insensitively against decrypted content.
	Query string `json:"query"`

	// IdentitySignal is the per-request key-derivation input.
	IdentitySignal string `json:"-"`
}

// FetchRequest asks for the decrypted content of one record.
type FetchRequest struct {
	ContentHash    string
	IdentitySignal string
}
