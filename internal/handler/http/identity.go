// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-sse-keeper/internal/crypto"
	"github.com/MKhiriev/go-sse-keeper/internal/utils"
	"github.com/MKhiriev/go-sse-keeper/models"
)

const passphraseHeader = "X-Vault-Passphrase"

// withIdentity assembles the key-derivation signal of the caller and stores
// it in the request context for the record handlers.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signal, err := h.identitySignal(r)
		if err != nil {
			writeError(w, r, err, "*Handler.withIdentity")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentitySignal(r.Context(), signal)))
	})
}

// identitySignal returns "<ip>-<user agent>" under the identity scheme and
// the X-Vault-Passphrase header under the passphrase scheme. Forwarding
// headers only affect RemoteAddr when RealIP is installed (TrustProxy).
func (h *Handler) identitySignal(r *http.Request) (string, error) {
	if h.app.KeyScheme == crypto.KeySchemePassphrase {
		passphrase := r.Header.Get(passphraseHeader)
		if passphrase == "" {
			return "", ErrMissingPassphrase
		}
		return passphrase, nil
	}

	identity := models.Identity{
		RemoteAddr: remoteIP(r),
		UserAgent:  r.UserAgent(),
	}

	return identity.Signal(), nil
}

// remoteIP strips the port from r.RemoteAddr. Addresses without a port
// (as set by chi's RealIP) are returned unchanged.
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
