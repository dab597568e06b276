// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingPassphrase is returned under the passphrase key scheme when
	// the request carries no X-Vault-Passphrase header.
	ErrMissingPassphrase = errors.New("missing `X-Vault-Passphrase` header")

	// ErrNoFileProvided is returned when an upload has no "file" part.
	ErrNoFileProvided = errors.New("no file provided")

	// ErrInvalidRequestBody is returned for bodies that cannot be parsed as
	// multipart, form or JSON data.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header is
	// missing or does not match the request body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrRequestBodyTooLarge is returned when the body exceeds the
	// configured limit.
	ErrRequestBodyTooLarge = errors.New("request body too large")
)
