// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// withBodyLimit caps the request body at Server.MaxBodySize. Reads beyond
// the limit fail with [*http.MaxBytesError].
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	if h.cfg.MaxBodySize <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodySize)
		next.ServeHTTP(w, r)
	})
}
