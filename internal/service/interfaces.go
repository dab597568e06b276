// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-sse-keeper/models"
)

// IngestService hashes, deduplicates, encrypts and stores uploaded files.
type IngestService interface {
	// Ingest stores req.Content encrypted under the key derived from
	// req.IdentitySignal. Content already present (by hash) is not
	// re-encrypted and yields [models.AlreadyPresent].
	Ingest(ctx context.Context, req models.IngestRequest) (models.IngestResult, error)
}

// SearchService performs brute-force substring search over stored records.
type SearchService interface {
	// Search returns the display names of records that decrypt under the
	// derived key and contain req.Query, compared case-insensitively. An
	// empty result is not an error.
	Search(ctx context.Context, req models.SearchRequest) ([]string, error)
}

// RecordService groups direct record operations.
type RecordService interface {
	// Fetch returns the decrypted content of one record. Unlike Search, a
	// decryption failure is surfaced as [ErrWrongKey].
	Fetch(ctx context.Context, req models.FetchRequest) ([]byte, error)

	// ClearAll removes every record and returns how many were deleted.
	ClearAll(ctx context.Context) (int64, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IngestServiceWrapper defines middleware composition for IngestService.
// Implementations wrap an existing IngestService to add behavior such as
// logging or validating.
type IngestServiceWrapper interface {
	Wrap(IngestService) IngestService // returns a decorated IngestService applying additional behavior
}

// SearchServiceWrapper is the [IngestServiceWrapper] counterpart for
// SearchService.
type SearchServiceWrapper interface {
	Wrap(SearchService) SearchService
}

// RecordServiceWrapper is the [IngestServiceWrapper] counterpart for
// RecordService.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService
}
