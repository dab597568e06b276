// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sse-keeper/internal/crypto"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/store"
	"github.com/MKhiriev/go-sse-keeper/models"
)

type ingestService struct {
	recordStorage store.RecordStorage
	keyDeriver    crypto.KeyDeriver
	addresser     crypto.ContentAddresser
	cipher        crypto.CipherEngine

	now    func() time.Time
	logger *logger.Logger
}

func NewIngestService(
	recordStorage store.RecordStorage,
	keyDeriver crypto.KeyDeriver,
	addresser crypto.ContentAddresser,
	cipher crypto.CipherEngine,
	logger *logger.Logger,
) IngestService {
	return &ingestService{
		recordStorage: recordStorage,
		keyDeriver:    keyDeriver,
		addresser:     addresser,
		cipher:        cipher,
		now:           time.Now,
		logger:        logger,
	}
}

// Ingest is idempotent by content: the exists check short-circuits the
// common case and the store's unique constraint settles concurrent uploads
// of the same content.
func (s *ingestService) Ingest(ctx context.Context, req models.IngestRequest) (models.IngestResult, error) {
	log := logger.FromContext(ctx)

	contentHash, err := s.addresser.Hash(bytes.NewReader(req.Content))
	if err != nil {
		log.Err(err).Str("func", "ingestService.Ingest").Msg("error hashing content")
		return models.IngestResult{}, fmt.Errorf("%w: %w", ErrHashing, err)
	}

	result := models.IngestResult{
		ContentHash: contentHash,
		DisplayName: req.DisplayName,
	}

	exists, err := s.recordStorage.Exists(ctx, contentHash)
	if err != nil {
		return models.IngestResult{}, err
	}
	if exists {
		log.Debug().Str("func", "ingestService.Ingest").Str("content_hash", contentHash).Msg("content already present")
		result.Outcome = models.AlreadyPresent
		return result, nil
	}

	ciphertext, err := s.cipher.Encrypt(req.Content, s.keyDeriver.Derive(req.IdentitySignal))
	if err != nil {
		log.Err(err).Str("func", "ingestService.Ingest").Msg("error encrypting content")
		return models.IngestResult{}, fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	err = s.recordStorage.Insert(ctx, models.Record{
		ContentHash: contentHash,
		DisplayName: req.DisplayName,
		Ciphertext:  ciphertext,
		CreatedAt:   s.now().UTC(),
	})
	if errors.Is(err, store.ErrRecordAlreadyExists) {
		log.Debug().Str("func", "ingestService.Ingest").Str("content_hash", contentHash).Msg("lost insert race, content already present")
		result.Outcome = models.AlreadyPresent
		return result, nil
	}
	if err != nil {
		return models.IngestResult{}, err
	}

	log.Info().
		Str("func", "ingestService.Ingest").
		Str("content_hash", contentHash).
		Str("display_name", req.DisplayName).
		Int("size", len(req.Content)).
		Msg("record stored")

	result.Outcome = models.Stored
	return result, nil
}
