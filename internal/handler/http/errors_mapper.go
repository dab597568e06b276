// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sse-keeper/internal/crypto"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/service"
	"github.com/MKhiriev/go-sse-keeper/internal/store"
	"github.com/MKhiriev/go-sse-keeper/internal/utils"
	"github.com/MKhiriev/go-sse-keeper/models"
)

// errorStatusMap must not hold two sentinels that can match the same error
// with different statuses: map iteration order is random.
var errorStatusMap = map[error]int{
	ErrMissingPassphrase:    http.StatusUnauthorized,
	ErrNoFileProvided:       http.StatusBadRequest,
	ErrInvalidRequestBody:   http.StatusBadRequest,
	ErrIntegrityCheckFailed: http.StatusBadRequest,
	ErrRequestBodyTooLarge:  http.StatusRequestEntityTooLarge,

	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrPayloadTooLarge:       http.StatusRequestEntityTooLarge,
	service.ErrWrongKey:              http.StatusForbidden,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	crypto.ErrDecryption: http.StatusForbidden,

	store.ErrRecordNotFound:     http.StatusNotFound,
	store.ErrStorageUnavailable: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage returns the text sent to the client. Only client errors echo
// the error itself; everything else gets the generic status text.
func errorMessage(err error, status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnauthorized:
		return err.Error()
	default:
		return http.StatusText(status)
	}
}

// writeError logs err on the request logger and writes the mapped status
// with a [models.ErrorResponse] body.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.ErrorResponse{Message: errorMessage(err, status)}, status); wErr != nil {
		log.Err(wErr).Str("func", funcName).Msg("failed to write error response")
	}
}
