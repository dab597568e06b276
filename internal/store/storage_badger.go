// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/MKhiriev/go-sse-keeper/internal/config"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/models"
)

const (
	badgerRecordPrefix = "record/"

	badgerInsertRetries = 3
	badgerGCDiscardRate = 0.5
)

// badgerRecord is the value stored under badgerRecordPrefix+content_hash.
type badgerRecord struct {
	DisplayName string    `json:"display_name"`
	Ciphertext  []byte    `json:"ciphertext"`
	CreatedAt   time.Time `json:"created_at"`
}

type badgerRecordStorage struct {
	db     *badger.DB
	logger *logger.Logger
}

// NewBadgerStorage opens (or creates) a Badger database in cfg.Dir. An empty
// Dir opens an in-memory database.
func NewBadgerStorage(cfg config.Badger, log *logger.Logger) (RecordStorage, error) {
	opts := badger.DefaultOptions(cfg.Dir).
		WithLogger(newBadgerLogger(log)).
		WithLoggingLevel(badger.WARNING)
	if cfg.Dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("func", "NewBadgerStorage").Msg("error opening badger database")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	log.Info().Str("func", "NewBadgerStorage").Str("dir", cfg.Dir).Bool("in_memory", cfg.Dir == "").Msg("badger database opened")

	return &badgerRecordStorage{db: db, logger: log}, nil
}

func recordKey(contentHash string) []byte {
	return []byte(badgerRecordPrefix + contentHash)
}

func (s *badgerRecordStorage) Exists(ctx context.Context, contentHash string) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(recordKey(contentHash))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "badgerRecordStorage.Exists").Msg("error reading record key")
		return false, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return true, nil
}

// Insert sets the key inside a read-write transaction that first reads it:
// two concurrent inserts of the same hash conflict at commit and the retry
// observes the winner's key.
func (s *badgerRecordStorage) Insert(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	value, err := json.Marshal(badgerRecord{
		DisplayName: record.DisplayName,
		Ciphertext:  record.Ciphertext,
		CreatedAt:   record.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	key := recordKey(record.ContentHash)
	for attempt := 1; ; attempt++ {
		err = s.db.Update(func(txn *badger.Txn) error {
			_, getErr := txn.Get(key)
			if getErr == nil {
				return ErrRecordAlreadyExists
			}
			if !errors.Is(getErr, badger.ErrKeyNotFound) {
				return getErr
			}
			return txn.Set(key, value)
		})
		if !errors.Is(err, badger.ErrConflict) || attempt == badgerInsertRetries {
			break
		}
		log.Debug().Str("func", "badgerRecordStorage.Insert").Int("attempt", attempt).Msg("transaction conflict, retrying")
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrRecordAlreadyExists):
		return err
	default:
		log.Err(err).Str("func", "badgerRecordStorage.Insert").Msg("error inserting record")
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingStatement, err)
	}
}

func (s *badgerRecordStorage) Get(ctx context.Context, contentHash string) (models.Record, error) {
	var record models.Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(contentHash))
		if err != nil {
			return err
		}
		record, err = decodeBadgerItem(item)
		return err
	})
	switch {
	case err == nil:
		return record, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return models.Record{}, ErrRecordNotFound
	case errors.Is(err, ErrDecodingRecord):
		logger.FromContext(ctx).Err(err).Str("func", "badgerRecordStorage.Get").Msg("corrupted record")
		return models.Record{}, err
	default:
		logger.FromContext(ctx).Err(err).Str("func", "badgerRecordStorage.Get").Msg("error reading record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
}

// Scan iterates the record prefix inside one read-only transaction, so the
// callback observes a consistent snapshot.
func (s *badgerRecordStorage) Scan(ctx context.Context, fn ScanFunc) error {
	var callbackErr error
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   100,
			Prefix:         []byte(badgerRecordPrefix),
		})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			record, err := decodeBadgerItem(it.Item())
			if err != nil {
				return err
			}

			if err = fn(record); err != nil {
				callbackErr = err
				return err
			}
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case callbackErr != nil:
		return callbackErr
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), errors.Is(err, ErrDecodingRecord):
		return err
	default:
		logger.FromContext(ctx).Err(err).Str("func", "badgerRecordStorage.Scan").Msg("error iterating records")
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrScanningRows, err)
	}
}

func (s *badgerRecordStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(badgerRecordPrefix)})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "badgerRecordStorage.Count").Msg("error counting records")
		return 0, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return count, nil
}

func (s *badgerRecordStorage) Clear(ctx context.Context) (int64, error) {
	count, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}

	if err = s.db.DropPrefix([]byte(badgerRecordPrefix)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "badgerRecordStorage.Clear").Msg("error dropping records")
		return 0, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingStatement, err)
	}

	return count, nil
}

// CollectGarbage runs value-log GC until Badger reports nothing left to
// rewrite. It is a no-op for in-memory databases.
func (s *badgerRecordStorage) CollectGarbage(ctx context.Context) (int, error) {
	rewritten := 0
	for ctx.Err() == nil {
		err := s.db.RunValueLogGC(badgerGCDiscardRate)
		switch {
		case err == nil:
			rewritten++
			continue
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return rewritten, nil
		default:
			return rewritten, err
		}
	}

	return rewritten, ctx.Err()
}

func (s *badgerRecordStorage) Close() error {
	if err := s.db.Close(); err != nil {
		s.logger.Err(err).Str("func", "badgerRecordStorage.Close").Msg("error closing badger database")
		return err
	}
	s.logger.Info().Str("func", "badgerRecordStorage.Close").Msg("badger database closed")
	return nil
}

func decodeBadgerItem(item *badger.Item) (models.Record, error) {
	var stored badgerRecord
	err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &stored)
	})
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %s: %w", ErrDecodingRecord, item.Key(), err)
	}

	return models.Record{
		ContentHash: string(item.Key()[len(badgerRecordPrefix):]),
		DisplayName: stored.DisplayName,
		Ciphertext:  stored.Ciphertext,
		CreatedAt:   stored.CreatedAt,
	}, nil
}
