// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-sse-keeper/internal/config"
	"github.com/MKhiriev/go-sse-keeper/internal/crypto"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/store"
)

type Services struct {
	IngestService  IngestService
	SearchService  SearchService
	RecordService  RecordService
	AppInfoService AppInfoService
}

// NewServices builds every service over the already opened storages. The
// key deriver is selected by cfg.App.KeyScheme.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	keyDeriver, err := crypto.NewKeyDeriver(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating key deriver: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	addresser := crypto.NewContentAddresser()
	cipherEngine := crypto.NewCipherEngine()
	storage := storages.RecordStorage

	return &Services{
		IngestService: NewIngestValidationService(cfg.App).Wrap(
			NewIngestService(storage, keyDeriver, addresser, cipherEngine, logger),
		),
		SearchService: NewSearchValidationService(cfg.App).Wrap(
			NewSearchService(storage, keyDeriver, cipherEngine, logger),
		),
		RecordService: NewRecordValidationService(cfg.App).Wrap(
			NewRecordService(storage, keyDeriver, cipherEngine, logger),
		),
		AppInfoService: appInfoService,
	}, nil
}
