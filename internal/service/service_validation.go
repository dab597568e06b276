// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sse-keeper/internal/config"
	"github.com/MKhiriev/go-sse-keeper/internal/validators"
	"github.com/MKhiriev/go-sse-keeper/models"
)

// validationError wraps a validator error with the matching service
// sentinel so that transports can map it without knowing validators.
func validationError(err error) error {
	if errors.Is(err, validators.ErrContentTooLarge) {
		return fmt.Errorf("%w: %w", ErrPayloadTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

type IngestValidationService struct {
	inner     IngestService
	validator validators.Validator
}

func NewIngestValidationService(cfg config.App) IngestServiceWrapper {
	return &IngestValidationService{
		validator: validators.NewRecordValidator(cfg),
	}
}

func (v *IngestValidationService) Ingest(ctx context.Context, req models.IngestRequest) (models.IngestResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.IngestResult{}, validationError(err)
	}

	return v.inner.Ingest(ctx, req)
}

func (v *IngestValidationService) Wrap(wrapped IngestService) IngestService {
	v.inner = wrapped
	return v
}

type SearchValidationService struct {
	inner     SearchService
	validator validators.Validator
}

func NewSearchValidationService(cfg config.App) SearchServiceWrapper {
	return &SearchValidationService{
		validator: validators.NewRecordValidator(cfg),
	}
}

func (v *SearchValidationService) Search(ctx context.Context, req models.SearchRequest) ([]string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, validationError(err)
	}

	return v.inner.Search(ctx, req)
}

func (v *SearchValidationService) Wrap(wrapped SearchService) SearchService {
	v.inner = wrapped
	return v
}

type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService(cfg config.App) RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(cfg),
	}
}

func (v *RecordValidationService) Fetch(ctx context.Context, req models.FetchRequest) ([]byte, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, validationError(err)
	}

	return v.inner.Fetch(ctx, req)
}

func (v *RecordValidationService) ClearAll(ctx context.Context) (int64, error) {
	return v.inner.ClearAll(ctx)
}

func (v *RecordValidationService) Count(ctx context.Context) (int64, error) {
	return v.inner.Count(ctx)
}

func (v *RecordValidationService) Wrap(wrapped RecordService) RecordService {
	v.inner = wrapped
	return v
}
