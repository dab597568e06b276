// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sse-keeper/migrations"
	"github.com/MKhiriev/go-sse-keeper/models"
)

const (
	recordsTable = "encrypted_records"

	colID          = "id"
	colContentHash = "content_hash"
	colDisplayName = "display_name"
	colCiphertext  = "ciphertext"
	colCreatedAt   = "created_at"
)

var recordColumns = []string{colContentHash, colDisplayName, colCiphertext, colCreatedAt}

// statementBuilder returns a squirrel builder using the placeholder style of
// dialect: $N for PostgreSQL, ? for SQLite.
func statementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func buildExistsQuery(dialect, contentHash string) (string, []any, error) {
	return statementBuilder(dialect).
		Select("1").
		From(recordsTable).
		Where(sq.Eq{colContentHash: contentHash}).
		Limit(1).
		ToSql()
}

func buildInsertRecordQuery(dialect string, record models.Record) (string, []any, error) {
	return statementBuilder(dialect).
		Insert(recordsTable).
		Columns(recordColumns...).
		Values(record.ContentHash, record.DisplayName, record.Ciphertext, record.CreatedAt).
		ToSql()
}

func buildGetRecordQuery(dialect, contentHash string) (string, []any, error) {
	return statementBuilder(dialect).
		Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{colContentHash: contentHash}).
		ToSql()
}

func buildScanRecordsQuery(dialect string) (string, []any, error) {
	return statementBuilder(dialect).
		Select(recordColumns...).
		From(recordsTable).
		OrderBy(colID).
		ToSql()
}

func buildCountRecordsQuery(dialect string) (string, []any, error) {
	return statementBuilder(dialect).
		Select("COUNT(*)").
		From(recordsTable).
		ToSql()
}

func buildClearRecordsQuery(dialect string) (string, []any, error) {
	return statementBuilder(dialect).
		Delete(recordsTable).
		ToSql()
}
