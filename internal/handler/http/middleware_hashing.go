// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/utils"
)

// withHashing verifies the HashSHA256 header against an HMAC-SHA256 of the
// raw request body. It is a no-op when no integrity key is configured.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if h.hasher == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.withHashing").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, r, bodyReadError(err), "*Handler.withHashing")
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, r.Header.Get(utils.HashHeader)) {
			writeError(w, r, ErrIntegrityCheckFailed, "*Handler.withHashing")
			return
		}

		log.Debug().Str("func", "*Handler.withHashing").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}

// bodyReadError maps a failed body read to a transport sentinel.
func bodyReadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
}
