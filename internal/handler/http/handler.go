// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-sse-keeper/internal/config"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/service"
	"github.com/MKhiriev/go-sse-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	cfg config.Server
	app config.App

	// hasher is nil when no integrity key is configured.
	hasher   *utils.Hasher
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	var hasher *utils.Hasher
	if cfg.App.HashKey != "" {
		hasher = utils.NewHasher(cfg.App.HashKey)
	}

	logger.Info().
		Str("key_scheme", cfg.App.KeyScheme).
		Bool("integrity_check", hasher != nil).
		Bool("trust_proxy", cfg.Server.TrustProxy).
		Msg("http handler created")

	return &Handler{
		services: services,
		cfg:      cfg.Server,
		app:      cfg.App,
		hasher:   hasher,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
