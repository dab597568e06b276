// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sse-keeper/internal/config"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
)

// Storages holds the opened storage backend for the lifetime of the process.
type Storages struct {
	RecordStorage RecordStorage

	// GarbageCollector is non-nil only for backends that need periodic
	// maintenance.
	GarbageCollector GarbageCollector
}

// NewStorages opens the backend selected by cfg.Driver, applying schema
// migrations for SQL drivers.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverSQLite, config.DriverPostgres:
		var (
			db  *DB
			err error
		)
		if cfg.Driver == config.DriverPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(); err != nil {
			db.Close()
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}

		return &Storages{RecordStorage: NewSQLRecordStorage(db, log)}, nil

	case config.DriverBadger:
		s, err := NewBadgerStorage(cfg.Badger, log)
		if err != nil {
			return nil, err
		}

		return &Storages{
			RecordStorage:    s,
			GarbageCollector: s.(GarbageCollector),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close closes the record storage.
func (s *Storages) Close() error {
	return s.RecordStorage.Close()
}
