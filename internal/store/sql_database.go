// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/migrations"
)

// DB wraps a *sql.DB together with the dialect specific pieces the
// repositories need: error classification and the migration dialect.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// wrapError attaches the sentinels matching err's classification.
func (db *DB) wrapError(sentinel, err error) error {
	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrRecordAlreadyExists, err)
	case Unavailable:
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, sentinel, err)
	default:
		return fmt.Errorf("%w: %w", sentinel, err)
	}
}
