// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("record is encrypted under another key")
	ErrNotFound            = errors.New("not found")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrServiceUnavailable  = errors.New("server storage unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnexpectedResponse is returned when a 2xx response cannot be
	// decoded.
	ErrUnexpectedResponse = errors.New("unexpected server response")
)
