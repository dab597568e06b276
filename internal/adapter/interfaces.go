// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for talking to the
// go-sse-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the command-line
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrForbidden] for a record encrypted under another key).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sse-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the go-sse-keeper server. The key
// used by the server is derived from the connection (or the configured
// passphrase); implementations must keep the User-Agent stable.
type ServerAdapter interface {
	// Upload sends one text file. The result tells whether the content was
	// stored or already present.
	Upload(ctx context.Context, filename string, content []byte) (models.IngestResult, error)

	// Search returns the display names of the caller's records containing
	// query. No match yields an empty slice and a nil error.
	Search(ctx context.Context, query string) ([]string, error)

	// Get returns the decrypted content of one record.
	Get(ctx context.Context, contentHash string) ([]byte, error)

	// Clear removes every record on the server and returns how many were
	// deleted.
	Clear(ctx context.Context) (int64, error)

	// Count returns the number of records on the server.
	Count(ctx context.Context) (int64, error)

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)
}
