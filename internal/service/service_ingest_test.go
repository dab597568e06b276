// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sse-keeper/internal/crypto"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/mock"
	"github.com/MKhiriev/go-sse-keeper/internal/store"
	"github.com/MKhiriev/go-sse-keeper/models"
)

// newTestIngestSvc — helper building ingestService over a mocked storage and
// the real crypto primitives.
func newTestIngestSvc(t *testing.T, ctrl *gomock.Controller) (*ingestService, *mock.MockRecordStorage) {
	t.Helper()
	mockStorage := mock.NewMockRecordStorage(ctrl)

	svc := NewIngestService(
		mockStorage,
		crypto.NewIdentityKeyDeriver(),
		crypto.NewContentAddresser(),
		crypto.NewCipherEngine(),
		logger.Nop(),
	).(*ingestService)
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	return svc, mockStorage
}

var helloHash = crypto.NewContentAddresser().HashBytes([]byte("hello"))

func ingestReq() models.IngestRequest {
	return models.IngestRequest{
		Content:        []byte("hello"),
		DisplayName:    "a.txt",
		IdentitySignal: "10.0.0.1-curl",
	}
}

// ── Stored ───────────────────────────────────────────────────────────────────

func TestIngestService_Ingest_Stored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStorage := newTestIngestSvc(t, ctrl)
	ctx := context.Background()
	key := crypto.NewIdentityKeyDeriver().Derive("10.0.0.1-curl")

	gomock.InOrder(
		mockStorage.EXPECT().Exists(ctx, helloHash).Return(false, nil),
		mockStorage.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r models.Record) error {
				assert.Equal(t, helloHash, r.ContentHash)
				assert.Equal(t, "a.txt", r.DisplayName)
				assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), r.CreatedAt)
				assert.NotContains(t, string(r.Ciphertext), "hello")

				plaintext, err := crypto.NewCipherEngine().Decrypt(r.Ciphertext, key)
				require.NoError(t, err)
				assert.Equal(t, []byte("hello"), plaintext)
				return nil
			},
		),
	)

	res, err := svc.Ingest(ctx, ingestReq())
	require.NoError(t, err)
	assert.Equal(t, models.IngestResult{Outcome: models.Stored, ContentHash: helloHash, DisplayName: "a.txt"}, res)
}

// ── AlreadyPresent ───────────────────────────────────────────────────────────

func TestIngestService_Ingest_AlreadyPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStorage := newTestIngestSvc(t, ctrl)
	ctx := context.Background()

	mockStorage.EXPECT().Exists(ctx, helloHash).Return(true, nil)
	// Insert must not be called

	res, err := svc.Ingest(ctx, ingestReq())
	require.NoError(t, err)
	assert.Equal(t, models.AlreadyPresent, res.Outcome)
	assert.Equal(t, helloHash, res.ContentHash)
}

func TestIngestService_Ingest_LostInsertRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStorage := newTestIngestSvc(t, ctrl)
	ctx := context.Background()

	mockStorage.EXPECT().Exists(ctx, helloHash).Return(false, nil)
	mockStorage.EXPECT().Insert(ctx, gomock.Any()).
		Return(errors.Join(store.ErrRecordAlreadyExists, errors.New("UNIQUE constraint failed")))

	res, err := svc.Ingest(ctx, ingestReq())
	require.NoError(t, err)
	assert.Equal(t, models.AlreadyPresent, res.Outcome)
}

// ── Errors ───────────────────────────────────────────────────────────────────

func TestIngestService_Ingest_ExistsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStorage := newTestIngestSvc(t, ctrl)
	ctx := context.Background()

	mockStorage.EXPECT().Exists(ctx, helloHash).Return(false, store.ErrStorageUnavailable)

	_, err := svc.Ingest(ctx, ingestReq())
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestIngestService_Ingest_InsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStorage := newTestIngestSvc(t, ctrl)
	ctx := context.Background()

	mockStorage.EXPECT().Exists(ctx, helloHash).Return(false, nil)
	mockStorage.EXPECT().Insert(ctx, gomock.Any()).Return(store.ErrStorageUnavailable)

	_, err := svc.Ingest(ctx, ingestReq())
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestIngestService_Ingest_EncryptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStorage := newTestIngestSvc(t, ctrl)
	mockCipher := mock.NewMockCipherEngine(ctrl)
	svc.cipher = mockCipher
	ctx := context.Background()

	mockStorage.EXPECT().Exists(ctx, helloHash).Return(false, nil)
	mockCipher.EXPECT().Encrypt([]byte("hello"), gomock.Any()).Return(nil, errors.New("entropy exhausted"))

	_, err := svc.Ingest(ctx, ingestReq())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncryption)
}

func TestIngestService_Ingest_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestIngestSvc(t, ctrl)
	mockAddresser := mock.NewMockContentAddresser(ctrl)
	svc.addresser = mockAddresser

	mockAddresser.EXPECT().Hash(gomock.Any()).Return("", errors.New("read failed"))

	_, err := svc.Ingest(context.Background(), ingestReq())
	assert.ErrorIs(t, err, ErrHashing)
}
