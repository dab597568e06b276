// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IngestOutcome reports what the ingest pipeline did with an uploaded file.
type IngestOutcome string

const (
	// Stored means the content was new and a record was created.
	Stored IngestOutcome = "stored"

	// AlreadyPresent means a record with the same content hash already
	// existed. Nothing was encrypted or written.
	AlreadyPresent IngestOutcome = "already_present"
)

// String implements fmt.Stringer.
func (o IngestOutcome) String() string {
	return string(o)
}

// IngestRequest is the input of a single ingest operation.
type IngestRequest struct {
	// Content is the raw uploaded file content.
	Content []byte

	// DisplayName is the client-declared file name.
	DisplayName string

	// IdentitySignal is the per-request key-derivation input assembled by the
	// transport layer (see [Identity.Signal]).
	IdentitySignal string
}

// IngestResult is returned by a successful ingest operation.
type IngestResult struct {
	Outcome     IngestOutcome `json:"outcome"`
	ContentHash string        `json:"content_hash"`
	DisplayName string        `json:"display_name"`
}
