// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZipRequest_DecompressesBody(t *testing.T) {
	var got []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		require.NoError(t, r.Body.Close())
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, []byte("hello world"))))
	req.Header.Set("Content-Encoding", "gzip")

	withGZipRequest(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []byte("hello world"), got)
}

func TestWithGZipRequest_PlainBodyUntouched(t *testing.T) {
	var got []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = io.ReadAll(r.Body)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))

	withGZipRequest(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []byte("plain"), got)
}

func TestWithGZipRequest_InvalidGzip_Returns400(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZipRequest(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestRouter_GzipSearchRequestAndResponse(t *testing.T) {
	var got models.SearchRequest
	h := NewHandler(newSearchServices(t, &got, []string{"a.txt"}, nil), testConfig(), logger.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/records/search", bytes.NewReader(gzipBytes(t, []byte(`{"query":"zip"}`))))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")

	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "zip", got.Query)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"results":["a.txt"]}`, string(body))
}

func TestRouter_NoAcceptEncoding_PlainResponse(t *testing.T) {
	svcs := newTestServices(t)
	svcs.RecordService = &mockRecordService{
		countFn: func(context.Context) (int64, error) { return 1, nil },
	}
	h := NewHandler(svcs, testConfig(), logger.Nop())

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/records/count", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"count":1}`, rec.Body.String())
}
