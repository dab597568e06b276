// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithLogging(t *testing.T, next http.HandlerFunc, target string) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	h := NewHandler(newTestServices(t), testConfig(), logger.Nop())
	h.logger = &logger.Logger{Logger: zerolog.New(&buf)}

	req := httptest.NewRequest(http.MethodPost, target, nil)
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	entry := runWithLogging(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	}, "/api/records")

	assert.Equal(t, "/api/records", entry["path"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
	assert.EqualValues(t, 5, entry["size"])
	assert.Contains(t, entry, "duration")
	assert.Contains(t, entry, "trace_id")
}

func TestWithLogging_ImplicitStatusOK(t *testing.T) {
	entry := runWithLogging(t, func(http.ResponseWriter, *http.Request) {}, "/api/records")

	assert.EqualValues(t, http.StatusOK, entry["status"])
}

func TestWithLogging_DoesNotLogQueryString(t *testing.T) {
	entry := runWithLogging(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, "/api/records/search?query=secret-term")

	assert.Equal(t, "/api/records/search", entry["path"])
	raw, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-term")
}
