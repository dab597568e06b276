// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
)

// sqlRecordStorage adapts a [RecordRepository] plus its [DB] to the
// [RecordStorage] lifecycle.
type sqlRecordStorage struct {
	RecordRepository
	db     *DB
	logger *logger.Logger
}

// NewSQLRecordStorage wraps db into a [RecordStorage]. Migrations must have
// been applied already.
func NewSQLRecordStorage(db *DB, log *logger.Logger) RecordStorage {
	return &sqlRecordStorage{
		RecordRepository: NewRecordRepository(db, log),
		db:               db,
		logger:           log,
	}
}

func (s *sqlRecordStorage) Close() error {
	if err := s.db.Close(); err != nil {
		s.logger.Err(err).Str("func", "sqlRecordStorage.Close").Msg("error closing database")
		return err
	}
	s.logger.Info().Str("func", "sqlRecordStorage.Close").Msg("database closed")
	return nil
}
