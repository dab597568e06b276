// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/record_storage_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-sse-keeper/models"
)

// ScanFunc receives records during [RecordStorage.Scan]. Returning a non-nil
// error stops the scan and the error is returned from Scan unchanged.
type ScanFunc func(record models.Record) error

// RecordRepository is the relational persistence contract for records.
type RecordRepository interface {
	// Exists reports whether a record with contentHash is stored.
	Exists(ctx context.Context, contentHash string) (bool, error)

	// Insert stores a new record. It returns an error wrapping
	// [ErrRecordAlreadyExists] when the content hash is already present; the
	// check is enforced atomically by a unique constraint.
	Insert(ctx context.Context, record models.Record) error

	// Get returns the record with contentHash or [ErrRecordNotFound].
	Get(ctx context.Context, contentHash string) (models.Record, error)

	// Scan streams every record to fn in insertion order.
	Scan(ctx context.Context, fn ScanFunc) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)

	// Clear removes all records and returns how many were deleted.
	Clear(ctx context.Context) (int64, error)
}

// RecordStorage is the storage contract consumed by the service layer.
// Implementations are opened once at startup and closed at shutdown.
type RecordStorage interface {
	RecordRepository

	// Close releases the underlying connection or files.
	Close() error
}

// GarbageCollector is implemented by backends that need periodic
// maintenance (Badger value-log GC).
type GarbageCollector interface {
	// CollectGarbage runs one maintenance pass. It returns the number of
	// rewritten files.
	CollectGarbage(ctx context.Context) (int, error)
}
