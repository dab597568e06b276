// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-sse-keeper/internal/crypto"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/utils"
	"github.com/MKhiriev/go-sse-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSignal runs req through withIdentity and returns the stored signal.
func captureSignal(t *testing.T, h *Handler, req *http.Request) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()

	var (
		signal string
		ok     bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signal, ok = utils.GetIdentitySignalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.withIdentity(next).ServeHTTP(rec, req)
	return rec, signal, ok
}

func TestWithIdentity_IdentityScheme(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		userAgent  string
		want       string
	}{
		{name: "ipv4 with port", remoteAddr: "10.0.0.7:52100", userAgent: "curl/8.0", want: "10.0.0.7-curl/8.0"},
		{name: "ipv6 with port", remoteAddr: "[::1]:52100", userAgent: "curl/8.0", want: "::1-curl/8.0"},
		{name: "address without port", remoteAddr: "10.0.0.7", userAgent: "ua", want: "10.0.0.7-ua"},
		{name: "empty user agent", remoteAddr: "10.0.0.7:1", userAgent: "", want: "10.0.0.7-"},
	}

	h := NewHandler(newTestServices(t), testConfig(), logger.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			req.Header.Set("User-Agent", tt.userAgent)

			rec, signal, ok := captureSignal(t, h, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.True(t, ok)
			assert.Equal(t, tt.want, signal)
		})
	}
}

func TestWithIdentity_PortDoesNotChangeSignal(t *testing.T) {
	h := NewHandler(newTestServices(t), testConfig(), logger.Nop())

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.7:40000"
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.0.0.7:40001"

	_, s1, _ := captureSignal(t, h, first)
	_, s2, _ := captureSignal(t, h, second)

	assert.Equal(t, s1, s2)
}

func TestWithIdentity_PassphraseScheme(t *testing.T) {
	cfg := testConfig()
	cfg.App.KeyScheme = crypto.KeySchemePassphrase
	cfg.App.KeySalt = "salt"
	h := NewHandler(newTestServices(t), cfg, logger.Nop())

	t.Run("header present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(passphraseHeader, "correct horse")

		rec, signal, ok := captureSignal(t, h, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, ok)
		assert.Equal(t, "correct horse", signal)
	})

	t.Run("header missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		rec, _, ok := captureSignal(t, h, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, ok)
	})
}

// ─────────────────────────────────────────────
// Forwarding headers through the router
// ─────────────────────────────────────────────

func TestIdentity_ForwardedFor_OnlyWithTrustProxy(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		want       string
	}{
		{name: "trusted proxy", trustProxy: true, want: "203.0.113.9-" + testUserAgent},
		{name: "untrusted proxy", trustProxy: false, want: testSignal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.SearchRequest
			cfg := testConfig()
			cfg.Server.TrustProxy = tt.trustProxy
			h := NewHandler(newSearchServices(t, &got, []string{"a.txt"}, nil), cfg, logger.Nop())

			req := httptest.NewRequest(http.MethodPost, "/api/records/search", strings.NewReader(`{"query":"x"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("User-Agent", testUserAgent)
			req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

			rec := serve(h, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, got.IdentitySignal)
		})
	}
}

func TestIdentity_SignalNotSharedAcrossRequests(t *testing.T) {
	var signals []string
	svcs := newTestServices(t)
	svcs.SearchService = &mockSearchService{
		searchFn: func(_ context.Context, req models.SearchRequest) ([]string, error) {
			signals = append(signals, req.IdentitySignal)
			return []string{"a.txt"}, nil
		},
	}
	h := NewHandler(svcs, testConfig(), logger.Nop())

	for _, ua := range []string{"alice", "bob"} {
		req := httptest.NewRequest(http.MethodPost, "/api/records/search", strings.NewReader(`{"query":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", ua)
		serve(h, req)
	}

	assert.Equal(t, []string{"192.0.2.1-alice", "192.0.2.1-bob"}, signals)
}
