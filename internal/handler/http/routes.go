// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressedContentTypes lists response types gzip-encoded for clients that
// accept it.
var compressedContentTypes = []string{"application/json", "text/plain"}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.cfg.TrustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID, h.withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(withGZipRequest, middleware.Compress(5, compressedContentTypes...))

	router.Get("/api/version/", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withBodyLimit)

		r.Get("/api/records/count", h.count)
		r.Delete("/api/records", h.clear)

		// routes whose key is derived from the caller
		r.Group(func(r chi.Router) {
			r.Use(h.withIdentity)

			r.With(h.withHashing).Post("/api/records", h.upload)
			r.With(h.withHashing).Post("/api/records/search", h.search)
			r.Get("/api/records/{hash}", h.fetch)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
