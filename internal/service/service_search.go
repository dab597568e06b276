// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-sse-keeper/internal/crypto"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/store"
	"github.com/MKhiriev/go-sse-keeper/models"
)

type searchService struct {
	recordStorage store.RecordStorage
	keyDeriver    crypto.KeyDeriver
	cipher        crypto.CipherEngine

	logger *logger.Logger
}

func NewSearchService(
	recordStorage store.RecordStorage,
	keyDeriver crypto.KeyDeriver,
	cipher crypto.CipherEngine,
	logger *logger.Logger,
) SearchService {
	return &searchService{
		recordStorage: recordStorage,
		keyDeriver:    keyDeriver,
		cipher:        cipher,
		logger:        logger,
	}
}

// Search decrypts every record with the caller's key. Records that fail to
// decrypt, or decrypt to something that is not UTF-8 text, belong to another
// key and are skipped.
func (s *searchService) Search(ctx context.Context, req models.SearchRequest) ([]string, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	key := s.keyDeriver.Derive(req.IdentitySignal)
	needle := bytes.ToLower([]byte(req.Query))

	results := make([]string, 0)
	var scanned, readable int
	err := s.recordStorage.Scan(ctx, func(record models.Record) error {
		scanned++

		plaintext, ok := s.cipher.TryDecrypt(record.Ciphertext, key)
		if !ok || !utf8.Valid(plaintext) {
			return nil
		}
		readable++

		if bytes.Contains(bytes.ToLower(plaintext), needle) {
			results = append(results, record.DisplayName)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("func", "searchService.Search").
		Int("scanned", scanned).
		Int("readable", readable).
		Int("matched", len(results)).
		Dur("took", time.Since(start)).
		Msg("search finished")

	return results, nil
}
