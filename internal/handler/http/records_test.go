// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-sse-keeper/internal/crypto"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/service"
	"github.com/MKhiriev/go-sse-keeper/internal/store"
	"github.com/MKhiriev/go-sse-keeper/internal/validators"
	"github.com/MKhiriev/go-sse-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// upload
// ─────────────────────────────────────────────

func TestUpload_Stored_Returns201(t *testing.T) {
	var got models.IngestRequest
	svcs := newTestServices(t)
	svcs.IngestService = &mockIngestService{
		ingestFn: func(_ context.Context, req models.IngestRequest) (models.IngestResult, error) {
			got = req
			return models.IngestResult{Outcome: models.Stored, ContentHash: testHash, DisplayName: req.DisplayName}, nil
		},
	}
	h := NewHandler(svcs, testConfig(), logger.Nop())

	rec := serve(h, newUploadRequest(t, "my notes.txt", []byte("hello world")))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result models.IngestResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, models.Stored, result.Outcome)
	assert.Equal(t, testHash, result.ContentHash)

	assert.Equal(t, []byte("hello world"), got.Content)
	assert.Equal(t, "my_notes.txt", got.DisplayName)
	assert.Equal(t, testSignal, got.IdentitySignal)
}

func TestUpload_AlreadyPresent_Returns200(t *testing.T) {
	svcs := newTestServices(t)
	svcs.IngestService = &mockIngestService{
		ingestFn: func(_ context.Context, req models.IngestRequest) (models.IngestResult, error) {
			return models.IngestResult{Outcome: models.AlreadyPresent, ContentHash: testHash, DisplayName: req.DisplayName}, nil
		},
	}
	h := NewHandler(svcs, testConfig(), logger.Nop())

	rec := serve(h, newUploadRequest(t, "a.txt", []byte("hello world")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"already_present"`)
}

func TestUpload_NoFilePart_Returns400(t *testing.T) {
	h := NewHandler(newTestServices(t), testConfig(), logger.Nop())

	body, contentType := multipartBody(t, "other", "a.txt", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/records", body)
	req.Header.Set("Content-Type", contentType)

	rec := serve(h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, ErrNoFileProvided.Error())
}

func TestUpload_NotMultipart_Returns400(t *testing.T) {
	h := NewHandler(newTestServices(t), testConfig(), logger.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/records", strings.NewReader("plain"))
	req.Header.Set("Content-Type", "text/plain")

	rec := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation error echoes the reason",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrExtensionNotAllowed),
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ErrExtensionNotAllowed.Error(),
		},
		{
			name:        "content too large",
			err:         fmt.Errorf("%w: %w", service.ErrPayloadTooLarge, validators.ErrContentTooLarge),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: validators.ErrContentTooLarge.Error(),
		},
		{
			name:        "storage unavailable hides details",
			err:         fmt.Errorf("%w: dial tcp: connection refused", store.ErrStorageUnavailable),
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: http.StatusText(http.StatusServiceUnavailable),
		},
		{
			name:        "unknown error hides details",
			err:         errors.New("secret internal detail"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices(t)
			svcs.IngestService = &mockIngestService{
				ingestFn: func(context.Context, models.IngestRequest) (models.IngestResult, error) {
					return models.IngestResult{}, tt.err
				},
			}
			h := NewHandler(svcs, testConfig(), logger.Nop())

			rec := serve(h, newUploadRequest(t, "a.txt", []byte("hello")))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, decodeError(t, rec).Message, tt.wantMessage)
			assert.NotContains(t, rec.Body.String(), "secret")
		})
	}
}

// ─────────────────────────────────────────────
// search
// ─────────────────────────────────────────────

func newSearchServices(t *testing.T, got *models.SearchRequest, results []string, err error) *service.Services {
	t.Helper()

	svcs := newTestServices(t)
	svcs.SearchService = &mockSearchService{
		searchFn: func(_ context.Context, req models.SearchRequest) ([]string, error) {
			*got = req
			return results, err
		},
	}
	return svcs
}

func TestSearch_JSONBody(t *testing.T) {
	var got models.SearchRequest
	h := NewHandler(newSearchServices(t, &got, []string{"a.txt", "b.txt"}, nil), testConfig(), logger.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/records/search", strings.NewReader(`{"query":"World"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", testUserAgent)

	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"a.txt", "b.txt"}, resp.Results)
	assert.Empty(t, resp.Message)

	assert.Equal(t, "World", got.Query)
	assert.Equal(t, testSignal, got.IdentitySignal)
}

func TestSearch_FormBody(t *testing.T) {
	var got models.SearchRequest
	h := NewHandler(newSearchServices(t, &got, []string{"a.txt"}, nil), testConfig(), logger.Nop())

	form := url.Values{queryFormField: {"hello"}}
	req := httptest.NewRequest(http.MethodPost, "/api/records/search", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", got.Query)
}

func TestSearch_NoMatches_Returns404WordNotFound(t *testing.T) {
	var got models.SearchRequest
	h := NewHandler(newSearchServices(t, &got, []string{}, nil), testConfig(), logger.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/records/search", strings.NewReader(`{"query":"absent"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := serve(h, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"results":[],"message":"word not found"}`, rec.Body.String())
}

func TestSearch_InvalidJSON_Returns400(t *testing.T) {
	h := NewHandler(newTestServices(t), testConfig(), logger.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/records/search", strings.NewReader(`{"query":`))
	req.Header.Set("Content-Type", "application/json")

	rec := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch_ValidationError_Returns400(t *testing.T) {
	var got models.SearchRequest
	err := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyQuery)
	h := NewHandler(newSearchServices(t, &got, nil, err), testConfig(), logger.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/records/search", strings.NewReader(`{"query":""}`))
	req.Header.Set("Content-Type", "application/json")

	rec := serve(h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, validators.ErrEmptyQuery.Error())
}

// ─────────────────────────────────────────────
// fetch
// ─────────────────────────────────────────────

func TestFetch(t *testing.T) {
	tests := []struct {
		name       string
		content    []byte
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "decrypted content", content: []byte("hello world"), wantStatus: http.StatusOK, wantBody: "hello world"},
		{name: "record not found", err: store.ErrRecordNotFound, wantStatus: http.StatusNotFound},
		{name: "wrong key", err: fmt.Errorf("%w: %w", service.ErrWrongKey, crypto.ErrDecryption), wantStatus: http.StatusForbidden},
		{name: "invalid hash", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidContentHash), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.FetchRequest
			svcs := newTestServices(t)
			svcs.RecordService = &mockRecordService{
				fetchFn: func(_ context.Context, req models.FetchRequest) ([]byte, error) {
					got = req
					return tt.content, tt.err
				},
			}
			h := NewHandler(svcs, testConfig(), logger.Nop())

			req := httptest.NewRequest(http.MethodGet, "/api/records/"+testHash, nil)
			req.Header.Set("User-Agent", testUserAgent)

			rec := serve(h, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, testHash, got.ContentHash)
			assert.Equal(t, testSignal, got.IdentitySignal)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
				assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
			}
		})
	}
}

// ─────────────────────────────────────────────
// clear / count
// ─────────────────────────────────────────────

func TestClear_Returns204WithDeletedCount(t *testing.T) {
	svcs := newTestServices(t)
	svcs.RecordService = &mockRecordService{
		clearAllFn: func(context.Context) (int64, error) { return 3, nil },
	}
	h := NewHandler(svcs, testConfig(), logger.Nop())

	rec := serve(h, httptest.NewRequest(http.MethodDelete, "/api/records", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "3", rec.Header().Get(recordsDeletedHeader))
	assert.Empty(t, rec.Body.String())
}

func TestClear_StorageError_Returns503(t *testing.T) {
	svcs := newTestServices(t)
	svcs.RecordService = &mockRecordService{
		clearAllFn: func(context.Context) (int64, error) { return 0, store.ErrStorageUnavailable },
	}
	h := NewHandler(svcs, testConfig(), logger.Nop())

	rec := serve(h, httptest.NewRequest(http.MethodDelete, "/api/records", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCount_ReturnsJSON(t *testing.T) {
	svcs := newTestServices(t)
	svcs.RecordService = &mockRecordService{
		countFn: func(context.Context) (int64, error) { return 5, nil },
	}
	h := NewHandler(svcs, testConfig(), logger.Nop())

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/records/count", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":5}`, rec.Body.String())
}
