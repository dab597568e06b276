// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/models"
)

type recordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRecordRepository returns a [RecordRepository] backed by db.
func NewRecordRepository(db *DB, log *logger.Logger) RecordRepository {
	return &recordRepository{
		db:     db,
		logger: log,
	}
}

func (r *recordRepository) Exists(ctx context.Context, contentHash string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsQuery(r.db.dialect, contentHash)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Exists").Msg("error building exists query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Exists").Msg("error executing exists query")
		return false, r.db.wrapError(ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *recordRepository) Insert(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecordQuery(r.db.dialect, record)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Insert").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		wrapped := r.db.wrapError(ErrExecutingStatement, err)
		if errors.Is(wrapped, ErrRecordAlreadyExists) {
			log.Debug().Str("func", "recordRepository.Insert").Str("content_hash", record.ContentHash).Msg("record already exists")
			return wrapped
		}
		log.Err(err).Str("func", "recordRepository.Insert").Msg("error inserting record")
		return wrapped
	}

	return nil
}

func (r *recordRepository) Get(ctx context.Context, contentHash string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(r.db.dialect, contentHash)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Get").Msg("error building get query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.Record
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&record.ContentHash,
		&record.DisplayName,
		&record.Ciphertext,
		&record.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Get").Msg("error scanning record")
		return models.Record{}, r.db.wrapError(ErrScanningRow, err)
	}

	return record, nil
}

func (r *recordRepository) Scan(ctx context.Context, fn ScanFunc) error {
	log := logger.FromContext(ctx)

	query, args, err := buildScanRecordsQuery(r.db.dialect)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Scan").Msg("error building scan query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Scan").Msg("error executing scan query")
		return r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var record models.Record
		if err = rows.Scan(
			&record.ContentHash,
			&record.DisplayName,
			&record.Ciphertext,
			&record.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "recordRepository.Scan").Msg("error scanning record row")
			return r.db.wrapError(ErrScanningRow, err)
		}

		if err = fn(record); err != nil {
			return err
		}
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "recordRepository.Scan").Msg("error iterating record rows")
		return r.db.wrapError(ErrScanningRows, err)
	}

	return nil
}

func (r *recordRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountRecordsQuery(r.db.dialect)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Count").Msg("error building count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "recordRepository.Count").Msg("error counting records")
		return 0, r.db.wrapError(ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *recordRepository) Clear(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildClearRecordsQuery(r.db.dialect)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Clear").Msg("error building clear query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Clear").Msg("error clearing records")
		return 0, r.db.wrapError(ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Warn().Err(err).Str("func", "recordRepository.Clear").Msg("rows affected unavailable")
		return 0, nil
	}

	return deleted, nil
}
