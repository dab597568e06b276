// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/utils"
	"github.com/MKhiriev/go-sse-keeper/models"
	"github.com/go-chi/chi/v5"
)

const (
	uploadFormField = "file"
	queryFormField  = "query"

	// multipartMemory is the part of a multipart body kept in memory; the
	// body itself is already capped by withBodyLimit.
	multipartMemory = 1 << 20

	recordsDeletedHeader = "X-Records-Deleted"

	wordNotFoundMessage = "word not found"
)

// upload handles POST /api/records. The multipart "file" part is ingested
// under the caller's key: 201 when stored, 200 when already present.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, r, formParseError(err), "*Handler.upload")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrNoFileProvided, err), "*Handler.upload")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, bodyReadError(err), "*Handler.upload")
		return
	}

	signal, _ := utils.GetIdentitySignalFromContext(ctx)
	result, err := h.services.IngestService.Ingest(ctx, models.IngestRequest{
		Content:        content,
		DisplayName:    secureFilename(header.Filename),
		IdentitySignal: signal,
	})
	if err != nil {
		writeError(w, r, err, "*Handler.upload")
		return
	}

	status := http.StatusOK
	if result.Outcome == models.Stored {
		status = http.StatusCreated
	}

	log.Info().
		Str("content_hash", result.ContentHash).
		Str("outcome", string(result.Outcome)).
		Msg("file ingested")

	if _, err = utils.WriteJSON(w, result, status); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("failed to write response")
	}
}

// search handles POST /api/records/search. The query comes from a JSON body
// or the "query" form value. No match answers 404 with "word not found".
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query, err := searchQuery(r)
	if err != nil {
		writeError(w, r, err, "*Handler.search")
		return
	}

	signal, _ := utils.GetIdentitySignalFromContext(ctx)
	results, err := h.services.SearchService.Search(ctx, models.SearchRequest{
		Query:          query,
		IdentitySignal: signal,
	})
	if err != nil {
		writeError(w, r, err, "*Handler.search")
		return
	}

	log.Info().Int("matches", len(results)).Msg("search finished")

	response := models.SearchResponse{Results: results}
	status := http.StatusOK
	if len(results) == 0 {
		response = models.SearchResponse{Results: []string{}, Message: wordNotFoundMessage}
		status = http.StatusNotFound
	}

	if _, err = utils.WriteJSON(w, response, status); err != nil {
		log.Err(err).Str("func", "*Handler.search").Msg("failed to write response")
	}
}

// fetch handles GET /api/records/{hash} and returns the decrypted content as
// plain text.
func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	signal, _ := utils.GetIdentitySignalFromContext(ctx)
	content, err := h.services.RecordService.Fetch(ctx, models.FetchRequest{
		ContentHash:    chi.URLParam(r, "hash"),
		IdentitySignal: signal,
	})
	if err != nil {
		writeError(w, r, err, "*Handler.fetch")
		return
	}

	if _, err = utils.WriteText(w, content, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.fetch").Msg("failed to write response")
	}
}

// clear handles DELETE /api/records. The number of removed records is
// reported in X-Records-Deleted.
func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.RecordService.ClearAll(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.clear")
		return
	}

	logger.FromRequest(r).Info().Int64("deleted", deleted).Msg("store cleared")

	w.Header().Set(recordsDeletedHeader, strconv.FormatInt(deleted, 10))
	w.WriteHeader(http.StatusNoContent)
}

// count handles GET /api/records/count.
func (h *Handler) count(w http.ResponseWriter, r *http.Request) {
	n, err := h.services.RecordService.Count(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.count")
		return
	}

	if _, err = utils.WriteJSON(w, models.CountResponse{Count: n}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.count").Msg("failed to write response")
	}
}

// searchQuery reads the search string from a JSON body or form data
// depending on Content-Type.
func searchQuery(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/json" {
		var req models.SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				return "", bodyReadError(err)
			}
			return "", fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		return req.Query, nil
	}

	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return "", formParseError(err)
		}
		defer r.MultipartForm.RemoveAll()
	} else if err := r.ParseForm(); err != nil {
		return "", formParseError(err)
	}

	return r.PostFormValue(queryFormField), nil
}

// formParseError maps multipart and urlencoded parse failures.
func formParseError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return bodyReadError(err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
}
