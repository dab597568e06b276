// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordAlreadyExists is returned when an insert collides with an
	// existing content hash.
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrRecordNotFound is returned when a lookup by content hash matches
	// nothing.
	ErrRecordNotFound = errors.New("record not found")

	// ErrStorageUnavailable is returned (wrapped) when the persistence layer
	// cannot be reached: connection failures, I/O errors, a closed store.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (wrapped) when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan record rows")

	// ErrDecodingRecord is returned when a key-value entry cannot be decoded.
	ErrDecodingRecord = errors.New("failed to decode record")
)
