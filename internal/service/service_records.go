// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sse-keeper/internal/crypto"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/store"
	"github.com/MKhiriev/go-sse-keeper/models"
)

type recordService struct {
	recordStorage store.RecordStorage
	keyDeriver    crypto.KeyDeriver
	cipher        crypto.CipherEngine

	logger *logger.Logger
}

func NewRecordService(
	recordStorage store.RecordStorage,
	keyDeriver crypto.KeyDeriver,
	cipher crypto.CipherEngine,
	logger *logger.Logger,
) RecordService {
	return &recordService{
		recordStorage: recordStorage,
		keyDeriver:    keyDeriver,
		cipher:        cipher,
		logger:        logger,
	}
}

func (s *recordService) Fetch(ctx context.Context, req models.FetchRequest) ([]byte, error) {
	record, err := s.recordStorage.Get(ctx, req.ContentHash)
	if err != nil {
		return nil, err
	}

	plaintext, err := s.cipher.Decrypt(record.Ciphertext, s.keyDeriver.Derive(req.IdentitySignal))
	if err != nil {
		logger.FromContext(ctx).Debug().Str("func", "recordService.Fetch").Str("content_hash", req.ContentHash).Msg("record does not decrypt with derived key")
		return nil, fmt.Errorf("%w: %w", ErrWrongKey, err)
	}

	return plaintext, nil
}

func (s *recordService) ClearAll(ctx context.Context) (int64, error) {
	deleted, err := s.recordStorage.Clear(ctx)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().Str("func", "recordService.ClearAll").Int64("deleted", deleted).Msg("record store cleared")
	return deleted, nil
}

func (s *recordService) Count(ctx context.Context) (int64, error) {
	return s.recordStorage.Count(ctx)
}
