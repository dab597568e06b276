// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-sse-keeper/internal/config"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/utils"
	"github.com/MKhiriev/go-sse-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHashKey   = "testhashkey"
	testUserAgent = "sse-client-test"
	testHash      = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
)

func testConfig(serverURL string) config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{HashKey: testHashKey},
		Client: config.Client{
			ServerAddress:  serverURL,
			RequestTimeout: 5 * time.Second,
			UserAgent:      testUserAgent,
		},
	}
}

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, cfg config.StructuredConfig) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://localhost:5000/", want: "http://localhost:5000"},
		{in: "localhost:5000", want: "http://localhost:5000"},
		{in: "  https://vault.example.com  ", want: "https://vault.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(testConfig(""), logger.Nop())

	assert.Error(t, err)
}

func TestNewHTTPServerAdapter_NoHashKeyNoHasher(t *testing.T) {
	cfg := testConfig("http://localhost:5000")
	cfg.App.HashKey = ""

	a := newTestAdapter(t, cfg)

	assert.Nil(t, a.hasher)
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestUpload_SendsSignedMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/records", r.URL.Path)
		assert.Equal(t, testUserAgent, r.UserAgent())

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.True(t, utils.NewHasher(testHashKey).Verify(body, r.Header.Get(utils.HashHeader)))

		r.Body = io.NopCloser(bytes.NewReader(body))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "notes.txt", header.Filename)
		assert.Equal(t, "hello world", string(content))

		writeJSON(t, w, http.StatusCreated, models.IngestResult{Outcome: models.Stored, ContentHash: testHash, DisplayName: "notes.txt"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, testConfig(srv.URL))
	got, err := a.Upload(context.Background(), "notes.txt", []byte("hello world"))

	require.NoError(t, err)
	assert.Equal(t, models.Stored, got.Outcome)
	assert.Equal(t, testHash, got.ContentHash)
}

func TestUpload_AlreadyPresent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, models.IngestResult{Outcome: models.AlreadyPresent, ContentHash: testHash})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, testConfig(srv.URL)).Upload(context.Background(), "a.txt", []byte("x"))

	require.NoError(t, err)
	assert.Equal(t, models.AlreadyPresent, got.Outcome)
}

func TestUpload_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"too large", http.StatusRequestEntityTooLarge, ErrPayloadTooLarge},
		{"unavailable", http.StatusServiceUnavailable, ErrServiceUnavailable},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(t, w, tt.status, models.ErrorResponse{Message: "server says no"})
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, testConfig(srv.URL)).Upload(context.Background(), "a.txt", []byte("x"))

			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "server says no")
		})
	}
}

// ── Search ───────────────────────────────────────────────────────────────────

func TestSearch_Results(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/records/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"query":"hello"}`, string(body))
		assert.Equal(t, utils.HashString(string(body), testHashKey), r.Header.Get(utils.HashHeader))

		writeJSON(t, w, http.StatusOK, models.SearchResponse{Results: []string{"a.txt", "b.txt"}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, testConfig(srv.URL)).Search(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, got)
}

func TestSearch_WordNotFoundIsEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.SearchResponse{Results: []string{}, Message: "word not found"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, testConfig(srv.URL)).Search(context.Background(), "absent")

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestSearch_RouteNotFoundIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Message: "Not Found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, testConfig(srv.URL)).Search(context.Background(), "x")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearch_PassphraseHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "correct horse", r.Header.Get(passphraseHeader))
		writeJSON(t, w, http.StatusOK, models.SearchResponse{Results: []string{"a.txt"}})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Client.Passphrase = "correct horse"

	_, err := newTestAdapter(t, cfg).Search(context.Background(), "x")

	require.NoError(t, err)
}

func TestSearch_NoPassphraseNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header[passphraseHeader]
		assert.False(t, present)
		writeJSON(t, w, http.StatusOK, models.SearchResponse{Results: []string{}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, testConfig(srv.URL)).Search(context.Background(), "x")

	require.NoError(t, err)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestGet_ReturnsContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/records/"+testHash, r.URL.Path)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("hello world"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, testConfig(srv.URL)).Get(context.Background(), testHash)

	require.NoError(t, err)
	assert.Equal(t, "hello world", string(got))
}

func TestGet_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Message: "Forbidden"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, testConfig(srv.URL)).Get(context.Background(), testHash)

	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Clear / Count / Version ─────────────────────────────────────────────────

func TestClear_ReadsDeletedHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Header().Set(recordsDeletedHeader, "7")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, testConfig(srv.URL)).Clear(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
}

func TestClear_MissingHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, testConfig(srv.URL)).Clear(context.Background())

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/records/count", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.CountResponse{Count: 42})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, testConfig(srv.URL)).Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		_, _ = w.Write([]byte("1.4.0"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, testConfig(srv.URL)).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}

func TestVersion_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := newTestAdapter(t, testConfig(srv.URL)).Version(context.Background())

	assert.Error(t, err)
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, testConfig(srv.URL)).Version(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}
